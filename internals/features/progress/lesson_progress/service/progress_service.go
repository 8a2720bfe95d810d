package service

import (
	"errors"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "aprendia_backend/internals/features/lms/activities/model"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	"aprendia_backend/internals/features/progress/lesson_progress/model"
)

var ErrLessonNotFound = errors.New("lección no encontrada")

// ProgressResult es lo que devuelve UpdateProgress: el porcentaje
// efectivo, si la lección se completó EN esta llamada (el cliente dispara
// su notificación exactamente una vez) y la lección desbloqueada, si hubo.
type ProgressResult struct {
	Percent          int
	CompletedNow     bool
	UnlockedLessonID *uint
}

// LoadCourseStates carga lecciones + filas de progreso del usuario y
// deriva el estado de bloqueo de TODAS las lecciones del curso. Este es
// el recalculo de carga inicial: las mutaciones individuales solo evalúan
// el gate de su propia lección.
func LoadCourseStates(db *gorm.DB, userID uuid.UUID, courseID uint) ([]LessonState, error) {
	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, err
	}

	var lessons []lessonModel.LessonModel
	if err := db.Where("lesson_course_id = ?", courseID).
		Order("lesson_created_at ASC, lesson_id ASC").
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	lessonIDs := make([]uint, 0, len(lessons))
	for i := range lessons {
		lessonIDs = append(lessonIDs, lessons[i].LessonID)
	}

	var rows []model.LessonProgressModel
	if len(lessonIDs) > 0 {
		if err := db.Where("lesson_progress_user_id = ? AND lesson_progress_lesson_id IN ?", userID, lessonIDs).
			Find(&rows).Error; err != nil {
			return nil, err
		}
	}

	return BuildStates(lessons, rows, course.CourseTitle), nil
}

// EnsureProgressRow crea (si no existe) la fila de progreso de la lección
// para el usuario: creación perezosa en la primera vista.
func EnsureProgressRow(db *gorm.DB, userID uuid.UUID, lessonID uint, locked bool) (*model.LessonProgressModel, error) {
	var row model.LessonProgressModel
	err := db.Where("lesson_progress_user_id = ? AND lesson_progress_lesson_id = ?", userID, lessonID).
		First(&row).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row = model.LessonProgressModel{
		LessonProgressLessonID: lessonID,
		LessonProgressUserID:   userID,
		LessonProgressIsLocked: locked,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateProgress es el Progress Tracker del lado servidor.
//   - clamp a [0,100] y redondeo a entero;
//   - idempotente: mismo porcentaje ya guardado → no-op sin CompletedNow;
//   - monotónico: un porcentaje menor al guardado nunca lo pisa (las
//     escrituras tardías fuera de orden no corrompen el estado);
//   - al llegar a 100 marca completada y evalúa el Unlock Gate de ESTA
//     lección, no un recálculo global.
func UpdateProgress(db *gorm.DB, userID uuid.UUID, lessonID uint, percent float64) (*ProgressResult, error) {
	var lesson lessonModel.LessonModel
	if err := db.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	rounded := int(math.Round(percent))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}

	row, err := EnsureProgressRow(db, userID, lessonID, false)
	if err != nil {
		return nil, err
	}

	// guard: redundante o fuera de orden
	if rounded <= row.LessonProgressPercent {
		return &ProgressResult{Percent: row.LessonProgressPercent}, nil
	}

	wasCompleted := row.LessonProgressIsCompleted

	row.LessonProgressPercent = rounded
	row.LessonProgressIsCompleted = rounded == 100
	if rounded > 1 {
		row.LessonProgressIsNew = false
	}
	if err := db.Save(row).Error; err != nil {
		return nil, err
	}

	result := &ProgressResult{
		Percent:      rounded,
		CompletedNow: rounded == 100 && !wasCompleted,
	}

	if rounded == 100 {
		unlocked, err := EvaluateUnlockForLesson(db, userID, lessonID)
		if err != nil {
			// el progreso ya quedó persistido; el desbloqueo se reintenta
			// en la próxima mutación o en la carga del curso
			log.Println("[ERROR] Unlock gate falló tras completar video:", err)
		} else {
			result.UnlockedLessonID = unlocked
		}
	}

	return result, nil
}

// EvaluateUnlockForLesson es el Unlock Gate: si la lección cumple
// percent==100 Y (sin actividades O primera actividad completada),
// desbloquea la SIGUIENTE lección en orden de creación (is_locked=false,
// is_new=true). Devuelve el id desbloqueado o nil.
func EvaluateUnlockForLesson(db *gorm.DB, userID uuid.UUID, lessonID uint) (*uint, error) {
	var lesson lessonModel.LessonModel
	if err := db.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	// Lecciones sin video: el requisito de porcentaje se da por cumplido,
	// la actividad es lo único que condiciona el gate.
	percent := 100
	if lesson.HasVideo() {
		var row model.LessonProgressModel
		if err := db.Where("lesson_progress_user_id = ? AND lesson_progress_lesson_id = ?", userID, lessonID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil // sin progreso, nada que evaluar
			}
			return nil, err
		}
		percent = row.LessonProgressPercent
	}

	hasActivities, firstCompleted, err := firstActivityState(db, userID, lessonID)
	if err != nil {
		return nil, err
	}

	if !UnlockEligible(percent, hasActivities, firstCompleted) {
		return nil, nil
	}

	next, err := nextLesson(db, &lesson)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, nil // última lección del curso
	}

	nextRow, err := EnsureProgressRow(db, userID, next.LessonID, true)
	if err != nil {
		return nil, err
	}
	if !nextRow.LessonProgressIsLocked {
		return nil, nil // ya estaba desbloqueada (re-evaluación idempotente)
	}

	nextRow.LessonProgressIsLocked = false
	nextRow.LessonProgressIsNew = true
	if err := db.Save(nextRow).Error; err != nil {
		return nil, err
	}

	return &next.LessonID, nil
}

// firstActivityState: estado de la PRIMERA actividad de la lección por
// orden de creación; las demás no condicionan el desbloqueo.
func firstActivityState(db *gorm.DB, userID uuid.UUID, lessonID uint) (hasActivities, firstCompleted bool, err error) {
	var first activityModel.ActivityModel
	err = db.Where("activity_lesson_id = ?", lessonID).
		Order("activity_created_at ASC, activity_id ASC").
		First(&first).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	var ua activityModel.UserActivityModel
	err = db.Where("user_activity_user_id = ? AND user_activity_activity_id = ?", userID, first.ActivityID).
		First(&ua).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, false, nil
	}
	if err != nil {
		return true, false, err
	}
	return true, ua.UserActivityIsCompleted, nil
}

func nextLesson(db *gorm.DB, current *lessonModel.LessonModel) (*lessonModel.LessonModel, error) {
	var next lessonModel.LessonModel
	err := db.Where(
		"lesson_course_id = ? AND (lesson_created_at > ? OR (lesson_created_at = ? AND lesson_id > ?))",
		current.LessonCourseID, current.LessonCreatedAt, current.LessonCreatedAt, current.LessonID,
	).
		Order("lesson_created_at ASC, lesson_id ASC").
		First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &next, nil
}
