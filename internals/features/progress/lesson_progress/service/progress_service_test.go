package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	activityModel "aprendia_backend/internals/features/lms/activities/model"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	"aprendia_backend/internals/features/progress/lesson_progress/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&courseModel.CourseModel{},
		&lessonModel.LessonModel{},
		&activityModel.ActivityModel{},
		&activityModel.UserActivityModel{},
		&model.LessonProgressModel{},
	))
	return db
}

// seedCourse crea un curso con lecciones en orden de creación separado por
// minutos, para que el orden sea determinista.
func seedCourse(t *testing.T, db *gorm.DB, title string, lessonTitles ...string) (uint, []uint) {
	t.Helper()

	course := courseModel.CourseModel{CourseTitle: title}
	require.NoError(t, db.Create(&course).Error)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ids := make([]uint, 0, len(lessonTitles))
	for i, lt := range lessonTitles {
		lesson := lessonModel.LessonModel{
			LessonCourseID:      course.CourseID,
			LessonTitle:         lt,
			LessonCoverVideoKey: "video-" + lt,
			LessonCreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&lesson).Error)
		ids = append(ids, lesson.LessonID)
	}
	return course.CourseID, ids
}

func TestBienvenidaScenario(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	courseID, lessons := seedCourse(t, db, "Diplomado", "Bienvenida", "Sesión 1", "Sesión 2")

	// carga inicial: solo la bienvenida accesible
	states, err := LoadCourseStates(db, userID, courseID)
	require.NoError(t, err)
	require.Len(t, states, 3)
	assert.False(t, states[0].IsLocked)
	assert.True(t, states[1].IsLocked)
	assert.True(t, states[2].IsLocked)

	// completar el video de la bienvenida desbloquea SOLO la sesión 1
	result, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percent)
	assert.True(t, result.CompletedNow)
	require.NotNil(t, result.UnlockedLessonID)
	assert.Equal(t, lessons[1], *result.UnlockedLessonID)

	states, err = LoadCourseStates(db, userID, courseID)
	require.NoError(t, err)
	assert.True(t, states[0].IsCompleted)
	assert.False(t, states[1].IsLocked)
	assert.True(t, states[1].IsNew, "la lección recién desbloqueada se marca como nueva")
	assert.True(t, states[2].IsLocked, "solo se desbloquea la siguiente")
}

func TestUpdateProgressIdempotentAt100(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida", "Sesión 1")

	first, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)
	assert.True(t, first.CompletedNow)

	// repetir el 100 no re-dispara completed_now ni el desbloqueo
	second, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)
	assert.Equal(t, 100, second.Percent)
	assert.False(t, second.CompletedNow)
	assert.Nil(t, second.UnlockedLessonID)

	var count int64
	require.NoError(t, db.Model(&model.LessonProgressModel{}).
		Where("lesson_progress_user_id = ? AND lesson_progress_lesson_id = ?", userID, lessons[0]).
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "una sola fila por usuario por lección")
}

func TestUpdateProgressMonotonicGuard(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida")

	_, err := UpdateProgress(db, userID, lessons[0], 80)
	require.NoError(t, err)

	// una escritura tardía con menor porcentaje no pisa el estado
	result, err := UpdateProgress(db, userID, lessons[0], 50)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Percent)
	assert.False(t, result.CompletedNow)
}

func TestUpdateProgressClampsAndRounds(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida")

	result, err := UpdateProgress(db, userID, lessons[0], 87.6)
	require.NoError(t, err)
	assert.Equal(t, 88, result.Percent)

	result, err = UpdateProgress(db, userID, lessons[0], 140)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percent)
	assert.True(t, result.CompletedNow)
}

func TestUpdateProgressUnknownLesson(t *testing.T) {
	db := setupTestDB(t)
	_, err := UpdateProgress(db, uuid.New(), 999, 50)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestUpdateProgressClearsIsNew(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida", "Sesión 1")

	_, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)

	// la sesión 1 quedó is_new; el primer avance real lo limpia
	_, err = UpdateProgress(db, userID, lessons[1], 10)
	require.NoError(t, err)

	var row model.LessonProgressModel
	require.NoError(t, db.Where(
		"lesson_progress_user_id = ? AND lesson_progress_lesson_id = ?", userID, lessons[1],
	).First(&row).Error)
	assert.False(t, row.LessonProgressIsNew)
	assert.Equal(t, 10, row.LessonProgressPercent)
}

func TestActivityGateKeepsNextLocked(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida", "Sesión 1")

	activity := activityModel.ActivityModel{
		ActivityLessonID: lessons[0],
		ActivityName:     "Quiz de bienvenida",
		ActivityTypeID:   activityModel.ActivityTypeInteractive,
	}
	require.NoError(t, db.Create(&activity).Error)

	// video al 100 pero la actividad sigue pendiente: nada se desbloquea
	result, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)
	assert.True(t, result.CompletedNow)
	assert.Nil(t, result.UnlockedLessonID)

	// completar la primera actividad habilita el gate
	require.NoError(t, db.Create(&activityModel.UserActivityModel{
		UserActivityActivityID:  activity.ActivityID,
		UserActivityUserID:      userID,
		UserActivityIsCompleted: true,
	}).Error)

	unlocked, err := EvaluateUnlockForLesson(db, userID, lessons[0])
	require.NoError(t, err)
	require.NotNil(t, unlocked)
	assert.Equal(t, lessons[1], *unlocked)

	// re-evaluación idempotente: ya desbloqueada, no devuelve nada
	unlocked, err = EvaluateUnlockForLesson(db, userID, lessons[0])
	require.NoError(t, err)
	assert.Nil(t, unlocked)
}

func TestUnlockGateOnlyFirstActivityCounts(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Bienvenida", "Sesión 1")

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	first := activityModel.ActivityModel{
		ActivityLessonID:  lessons[0],
		ActivityName:      "Lectura",
		ActivityCreatedAt: base,
	}
	second := activityModel.ActivityModel{
		ActivityLessonID:  lessons[0],
		ActivityName:      "Quiz",
		ActivityCreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	_, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)

	// completar la SEGUNDA actividad no abre el gate
	require.NoError(t, db.Create(&activityModel.UserActivityModel{
		UserActivityActivityID:  second.ActivityID,
		UserActivityUserID:      userID,
		UserActivityIsCompleted: true,
	}).Error)
	unlocked, err := EvaluateUnlockForLesson(db, userID, lessons[0])
	require.NoError(t, err)
	assert.Nil(t, unlocked)

	// la primera sí
	require.NoError(t, db.Create(&activityModel.UserActivityModel{
		UserActivityActivityID:  first.ActivityID,
		UserActivityUserID:      userID,
		UserActivityIsCompleted: true,
	}).Error)
	unlocked, err = EvaluateUnlockForLesson(db, userID, lessons[0])
	require.NoError(t, err)
	require.NotNil(t, unlocked)
	assert.Equal(t, lessons[1], *unlocked)
}

func TestUnlockGateLastLesson(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, lessons := seedCourse(t, db, "Diplomado", "Única")

	result, err := UpdateProgress(db, userID, lessons[0], 100)
	require.NoError(t, err)
	assert.True(t, result.CompletedNow)
	assert.Nil(t, result.UnlockedLessonID, "la última lección no tiene siguiente")
}
