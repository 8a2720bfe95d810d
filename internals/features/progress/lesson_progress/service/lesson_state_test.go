package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	progressModel "aprendia_backend/internals/features/progress/lesson_progress/model"
)

func TestIsWelcomeTitle(t *testing.T) {
	cases := []struct {
		title string
		want  bool
	}{
		{"Bienvenida al curso", true},
		{"BIENVENIDA", true},
		{"Welcome to the course", true},
		{"Sesión 1: fundamentos", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsWelcomeTitle(tc.title), "title=%q", tc.title)
	}
}

func TestUnlockEligible(t *testing.T) {
	// sin actividades: solo manda el porcentaje
	assert.False(t, UnlockEligible(99, false, false))
	assert.True(t, UnlockEligible(100, false, false))

	// con actividades: la primera debe estar completada
	assert.False(t, UnlockEligible(100, true, false))
	assert.True(t, UnlockEligible(100, true, true))
	assert.False(t, UnlockEligible(50, true, true))
}

func testLessons(courseID uint, titles ...string) []lessonModel.LessonModel {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lessons := make([]lessonModel.LessonModel, 0, len(titles))
	for i, title := range titles {
		lessons = append(lessons, lessonModel.LessonModel{
			LessonID:        uint(i + 1),
			LessonCourseID:  courseID,
			LessonTitle:     title,
			LessonCreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return lessons
}

func TestBuildStatesForceUnlock(t *testing.T) {
	lessons := testLessons(1, "Sesión 1", "Sesión 2", "Sesión 3")

	// sin filas persistidas: todo bloqueado salvo la primera
	states := BuildStates(lessons, nil, "Curso X")
	require.Len(t, states, 3)
	assert.False(t, states[0].IsLocked)
	assert.True(t, states[1].IsLocked)
	assert.True(t, states[2].IsLocked)
	for _, st := range states {
		assert.Equal(t, "Curso X", st.CourseTitle)
	}
}

func TestBuildStatesWelcomeAlwaysUnlocked(t *testing.T) {
	lessons := testLessons(1, "Sesión 1", "Bienvenida", "Sesión 3")

	// la fila persistida dice bloqueada, el force-unlock la pisa
	rows := []progressModel.LessonProgressModel{
		{LessonProgressLessonID: 2, LessonProgressIsLocked: true},
	}
	states := BuildStates(lessons, rows, "Curso X")
	require.Len(t, states, 3)
	assert.False(t, states[0].IsLocked, "primera lección siempre desbloqueada")
	assert.False(t, states[1].IsLocked, "bienvenida siempre desbloqueada")
	assert.True(t, states[2].IsLocked)
}

func TestBuildStatesMergesPersistedRows(t *testing.T) {
	lessons := testLessons(1, "Sesión 1", "Sesión 2")
	rows := []progressModel.LessonProgressModel{
		{LessonProgressLessonID: 2, LessonProgressPercent: 40, LessonProgressIsLocked: false, LessonProgressIsNew: true},
	}
	states := BuildStates(lessons, rows, "Curso X")
	require.Len(t, states, 2)
	assert.Equal(t, 40, states[1].Percent)
	assert.False(t, states[1].IsLocked)
	assert.True(t, states[1].IsNew)
}

func TestBuildStatesOrdersByCreatedAt(t *testing.T) {
	lessons := testLessons(1, "A", "B", "C")
	// entrada desordenada
	shuffled := []lessonModel.LessonModel{lessons[2], lessons[0], lessons[1]}

	states := BuildStates(shuffled, nil, "Curso X")
	require.Len(t, states, 3)
	assert.Equal(t, uint(1), states[0].LessonID)
	assert.Equal(t, uint(2), states[1].LessonID)
	assert.Equal(t, uint(3), states[2].LessonID)
	assert.False(t, states[0].IsLocked, "el force-unlock aplica tras ordenar")
}

func TestFindAdjacentUnlocked(t *testing.T) {
	states := BuildStates(testLessons(1, "A", "B", "C"), []progressModel.LessonProgressModel{
		{LessonProgressLessonID: 1, LessonProgressIsLocked: false},
		{LessonProgressLessonID: 2, LessonProgressIsLocked: false},
	}, "Curso X")

	next := FindAdjacentUnlocked(states, 1, DirectionNext)
	require.NotNil(t, next)
	assert.Equal(t, uint(2), next.LessonID)

	prev := FindAdjacentUnlocked(states, 2, DirectionPrev)
	require.NotNil(t, prev)
	assert.Equal(t, uint(1), prev.LessonID)

	// más allá de la última desbloqueada: nil, la navegación es no-op
	assert.Nil(t, FindAdjacentUnlocked(states, 2, DirectionNext))
	assert.Nil(t, FindAdjacentUnlocked(states, 1, DirectionPrev))
}

func TestFindAdjacentUnlockedSkipsLocked(t *testing.T) {
	// lección 2 bloqueada, 3 desbloqueada: next desde 1 salta a la 3
	states := BuildStates(testLessons(1, "A", "B", "C"), []progressModel.LessonProgressModel{
		{LessonProgressLessonID: 2, LessonProgressIsLocked: true},
		{LessonProgressLessonID: 3, LessonProgressIsLocked: false},
	}, "Curso X")

	next := FindAdjacentUnlocked(states, 1, DirectionNext)
	require.NotNil(t, next)
	assert.Equal(t, uint(3), next.LessonID)
}

func TestFindAdjacentUnlockedUnknownLesson(t *testing.T) {
	states := BuildStates(testLessons(1, "A", "B"), nil, "Curso X")
	assert.Nil(t, FindAdjacentUnlocked(states, 99, DirectionNext))
}
