package entity

// Category степень повреждения панели
type Category string

const (
	CategoryGood         Category = "good"          // дефектов нет
	CategoryNeedsRepair  Category = "needs_repair"  // требуется ремонт
	CategoryCritical     Category = "critical"      // критическое состояние
	CategoryFullyDamaged Category = "fully_damaged" // панель полностью повреждена
)

// Categories возвращает все категории в порядке возрастания тяжести.
func Categories() []Category {
	return []Category{CategoryGood, CategoryNeedsRepair, CategoryCritical, CategoryFullyDamaged}
}

// Valid проверяет, что категория входит в известный набор
func (c Category) Valid() bool {
	switch c {
	case CategoryGood, CategoryNeedsRepair, CategoryCritical, CategoryFullyDamaged:
		return true
	}
	return false
}

// Label возвращает подпись для дашборда и ответа анализа
func (c Category) Label() string {
	switch c {
	case CategoryGood:
		return "GOOD CONDITION"
	case CategoryNeedsRepair:
		return "NEEDS REPAIR"
	case CategoryCritical:
		return "CRITICAL"
	case CategoryFullyDamaged:
		return "FULLY DAMAGED"
	default:
		return "UNKNOWN"
	}
}
