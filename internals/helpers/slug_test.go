package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Diplomado en Acción Comunal", "diplomado-en-accion-comunal"},
		{"  Bienvenida!  ", "bienvenida"},
		{"Año Ñandú ÚNICO", "ano-nandu-unico"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "in=%q", tc.in)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE courses (course_slug TEXT)").Error)

	slug, err := EnsureUniqueSlug(db, "curso", "courses", "course_slug")
	require.NoError(t, err)
	assert.Equal(t, "curso", slug)

	require.NoError(t, db.Exec("INSERT INTO courses (course_slug) VALUES ('curso')").Error)
	slug, err = EnsureUniqueSlug(db, "curso", "courses", "course_slug")
	require.NoError(t, err)
	assert.Equal(t, "curso-2", slug)

	require.NoError(t, db.Exec("INSERT INTO courses (course_slug) VALUES ('curso-2')").Error)
	slug, err = EnsureUniqueSlug(db, "curso", "courses", "course_slug")
	require.NoError(t, err)
	assert.Equal(t, "curso-3", slug)
}
