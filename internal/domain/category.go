package domain

import "strings"

// DefaultCategory — категория-заглушка для строк без известной категории.
const DefaultCategory = "Others"

// CategoryOrder — фиксированный набор категорий витрины в порядке показа.
var CategoryOrder = []string{
	"OTC Medicine",
	"5 hr energy",
	"Deodorant",
	"Rolling papers",
	"Lighters",
	"Incense",
	"Trojan",
	"Batteries",
	"Others",
}

// IsKnownCategory сообщает, входит ли категория в фиксированный список.
func IsKnownCategory(category string) bool {
	for _, c := range CategoryOrder {
		if c == category {
			return true
		}
	}

	return false
}

// NormalizeCategory возвращает категорию из списка либо DefaultCategory.
func NormalizeCategory(category string) string {
	if IsKnownCategory(category) {
		return category
	}

	return DefaultCategory
}

// CategoryToSlug строит URL-безопасный слаг: нижний регистр, пробелы заменяются дефисами.
func CategoryToSlug(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "-")
}

// SlugToCategory возвращает категорию по слагу.
// Для неизвестного слага возвращается пустая строка и false.
func SlugToCategory(slug string) (string, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(slug, "-", " "))
	for _, category := range CategoryOrder {
		if strings.ToLower(category) == normalized {
			return category, true
		}
	}

	return "", false
}
