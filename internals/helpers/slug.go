package helper

import (
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug convierte un título en slug url-safe.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	// normaliza acentos comunes del español
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	)
	s = replacer.Replace(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EnsureUniqueSlug agrega sufijos -2, -3... hasta que el slug no exista
// en la tabla/columna indicada.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Table(table).Where(column+" = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(i)
	}
}
