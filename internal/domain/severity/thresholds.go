package severity

import (
	"errors"
	"fmt"
)

// Thresholds пороги лестницы тяжести. Нулевое значение порога отключает его.
type Thresholds struct {
	FullyDamagedMinDefects  int     `yaml:"fully_damaged_min_defects"`
	CriticalMinDefects      int     `yaml:"critical_min_defects"`
	FullyDamagedMinCoverage float64 `yaml:"fully_damaged_min_coverage"`
	CriticalMinCoverage     float64 `yaml:"critical_min_coverage"`
	// GoodMaxCoverage снимки с дефектами, но покрытием ниже порога, считаются исправными.
	GoodMaxCoverage float64 `yaml:"good_max_coverage"`
}

// DefaultThresholds пороги по площади дефектов, в процентах от площади снимка.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FullyDamagedMinCoverage: 15,
		CriticalMinCoverage:     8,
	}
}

// Validate проверяет согласованность порогов
func (t Thresholds) Validate() error {
	if t.FullyDamagedMinDefects < 0 || t.CriticalMinDefects < 0 {
		return errors.New("defect count thresholds must not be negative")
	}
	if t.FullyDamagedMinCoverage < 0 || t.CriticalMinCoverage < 0 || t.GoodMaxCoverage < 0 {
		return errors.New("coverage thresholds must not be negative")
	}
	if t.FullyDamagedMinCoverage > 100 || t.CriticalMinCoverage > 100 || t.GoodMaxCoverage > 100 {
		return errors.New("coverage thresholds must not exceed 100")
	}
	if t.FullyDamagedMinDefects > 0 && t.CriticalMinDefects > 0 && t.FullyDamagedMinDefects < t.CriticalMinDefects {
		return fmt.Errorf("fully_damaged_min_defects (%d) is below critical_min_defects (%d)",
			t.FullyDamagedMinDefects, t.CriticalMinDefects)
	}
	if t.FullyDamagedMinCoverage > 0 && t.CriticalMinCoverage > 0 && t.FullyDamagedMinCoverage < t.CriticalMinCoverage {
		return fmt.Errorf("fully_damaged_min_coverage (%.2f) is below critical_min_coverage (%.2f)",
			t.FullyDamagedMinCoverage, t.CriticalMinCoverage)
	}
	if t.GoodMaxCoverage > 0 && t.CriticalMinCoverage > 0 && t.GoodMaxCoverage > t.CriticalMinCoverage {
		return fmt.Errorf("good_max_coverage (%.2f) is above critical_min_coverage (%.2f)",
			t.GoodMaxCoverage, t.CriticalMinCoverage)
	}
	return nil
}
