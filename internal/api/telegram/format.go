package telegram

import (
	"fmt"
	"sort"
	"strings"

	"solar-inspector/internal/domain/entity"
)

var categoryIcons = map[entity.Category]string{
	entity.CategoryGood:         "🟢",
	entity.CategoryNeedsRepair:  "🟡",
	entity.CategoryCritical:     "🟠",
	entity.CategoryFullyDamaged: "🔴",
}

func formatSummary(s entity.SummaryStatistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Снимков: %d\n", s.TotalImages)
	fmt.Fprintf(&b, "🔎 Дефектов найдено: %d\n", s.TotalDetectedObjects)

	b.WriteString("\nСостояние панелей:\n")
	for _, c := range entity.Categories() {
		n := s.Categories[c]
		fmt.Fprintf(&b, "%s %s: %d (%s)\n", categoryIcons[c], c.Label(), n, percent(n, s.TotalImages))
	}

	if len(s.DefectsByType) > 0 {
		types := make([]string, 0, len(s.DefectsByType))
		for t := range s.DefectsByType {
			types = append(types, t)
		}
		sort.Strings(types)

		b.WriteString("\nТипы дефектов:\n")
		for _, t := range types {
			fmt.Fprintf(&b, "• %s: %d\n", t, s.DefectsByType[t])
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatImages режет список на сообщения не длиннее limit байт
func formatImages(images []entity.ImageSummary, limit int) []string {
	if len(images) == 0 {
		return []string{msgNoImages}
	}

	var (
		chunks []string
		b      strings.Builder
	)
	for _, img := range images {
		line := fmt.Sprintf("%s %s: %s, дефектов %d\n", categoryIcons[img.Category], img.ImageID, img.Category.Label(), img.DefectCount)
		if b.Len() > 0 && b.Len()+len(line) > limit {
			chunks = append(chunks, strings.TrimRight(b.String(), "\n"))
			b.Reset()
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, strings.TrimRight(b.String(), "\n"))
	}
	return chunks
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
