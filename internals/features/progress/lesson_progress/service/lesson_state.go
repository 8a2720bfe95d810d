package service

import (
	"sort"
	"strings"
	"time"

	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	progressModel "aprendia_backend/internals/features/progress/lesson_progress/model"
)

// LessonState es la vista por-usuario de una lección: la lección más el
// estado de progreso/bloqueo derivado de lesson_progress.
type LessonState struct {
	LessonID        uint
	CourseID        uint
	Title           string
	DurationMinutes int
	CoverVideoKey   string
	CreatedAt       time.Time // clave de orden dentro del curso
	Percent         int
	IsLocked        bool
	IsCompleted     bool
	IsNew           bool
	CourseTitle     string
}

type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Marcadores de lección de bienvenida. El match por título es una
// heurística heredada del producto; la primera lección por orden SIEMPRE
// se desbloquea además del match, así el acceso al curso nunca depende
// del título.
var welcomeMarkers = []string{"bienvenida", "welcome"}

func IsWelcomeTitle(title string) bool {
	t := strings.ToLower(title)
	for _, marker := range welcomeMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}

// UnlockEligible: una lección habilita la siguiente si el video llegó a
// 100 Y (no tiene actividades O la primera actividad está completada).
func UnlockEligible(percent int, hasActivities, firstActivityCompleted bool) bool {
	if percent < 100 {
		return false
	}
	return !hasActivities || firstActivityCompleted
}

// BuildStates arma los LessonState de un curso a partir de las lecciones
// (cualquier orden) y las filas de progreso persistidas del usuario.
// Sin fila persistida la lección queda bloqueada, salvo el force-unlock
// de la primera lección / lección de bienvenida.
func BuildStates(lessons []lessonModel.LessonModel, rows []progressModel.LessonProgressModel, courseTitle string) []LessonState {
	byLesson := make(map[uint]*progressModel.LessonProgressModel, len(rows))
	for i := range rows {
		byLesson[rows[i].LessonProgressLessonID] = &rows[i]
	}

	states := make([]LessonState, 0, len(lessons))
	for i := range lessons {
		l := &lessons[i]
		st := LessonState{
			LessonID:        l.LessonID,
			CourseID:        l.LessonCourseID,
			Title:           l.LessonTitle,
			DurationMinutes: l.LessonDurationMinutes,
			CoverVideoKey:   l.LessonCoverVideoKey,
			CreatedAt:       l.LessonCreatedAt,
			IsLocked:        true,
			CourseTitle:     courseTitle,
		}
		if row, ok := byLesson[l.LessonID]; ok {
			st.Percent = row.LessonProgressPercent
			st.IsLocked = row.LessonProgressIsLocked
			st.IsCompleted = row.LessonProgressIsCompleted
			st.IsNew = row.LessonProgressIsNew
		}
		states = append(states, st)
	}

	sortStates(states)

	// Force-unlock: primera lección por orden y lecciones de bienvenida,
	// sin importar lo que diga la fila persistida.
	for i := range states {
		if i == 0 || IsWelcomeTitle(states[i].Title) {
			states[i].IsLocked = false
		}
	}

	return states
}

// FindAdjacentUnlocked devuelve la lección desbloqueada más CERCANA en la
// dirección pedida, o nil si no hay (la navegación es no-op).
func FindAdjacentUnlocked(states []LessonState, currentID uint, direction Direction) *LessonState {
	ordered := make([]LessonState, len(states))
	copy(ordered, states)
	sortStates(ordered)

	idx := -1
	for i := range ordered {
		if ordered[i].LessonID == currentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	switch direction {
	case DirectionNext:
		for i := idx + 1; i < len(ordered); i++ {
			if !ordered[i].IsLocked {
				return &ordered[i]
			}
		}
	case DirectionPrev:
		for i := idx - 1; i >= 0; i-- {
			if !ordered[i].IsLocked {
				return &ordered[i]
			}
		}
	}
	return nil
}

func sortStates(states []LessonState) {
	sort.SliceStable(states, func(i, j int) bool {
		if states[i].CreatedAt.Equal(states[j].CreatedAt) {
			return states[i].LessonID < states[j].LessonID
		}
		return states[i].CreatedAt.Before(states[j].CreatedAt)
	})
}
