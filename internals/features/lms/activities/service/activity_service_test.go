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

	"aprendia_backend/internals/features/lms/activities/model"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	progressModel "aprendia_backend/internals/features/progress/lesson_progress/model"
	progressService "aprendia_backend/internals/features/progress/lesson_progress/service"
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
		&model.ActivityModel{},
		&model.UserActivityModel{},
		&progressModel.LessonProgressModel{},
	))
	return db
}

func seedLessonWithActivity(t *testing.T, db *gorm.DB, videoKey string) (lessonModel.LessonModel, model.ActivityModel, lessonModel.LessonModel) {
	t.Helper()

	course := courseModel.CourseModel{CourseTitle: "Diplomado"}
	require.NoError(t, db.Create(&course).Error)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lesson := lessonModel.LessonModel{
		LessonCourseID:      course.CourseID,
		LessonTitle:         "Sesión 1",
		LessonCoverVideoKey: videoKey,
		LessonCreatedAt:     base,
	}
	require.NoError(t, db.Create(&lesson).Error)

	next := lessonModel.LessonModel{
		LessonCourseID:      course.CourseID,
		LessonTitle:         "Sesión 2",
		LessonCoverVideoKey: "video-2",
		LessonCreatedAt:     base.Add(time.Minute),
	}
	require.NoError(t, db.Create(&next).Error)

	activity := model.ActivityModel{
		ActivityLessonID: lesson.LessonID,
		ActivityName:     "Quiz",
		ActivityTypeID:   model.ActivityTypeInteractive,
	}
	require.NoError(t, db.Create(&activity).Error)

	return lesson, activity, next
}

func TestCompleteActivityRequiresFinishedVideo(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	lesson, activity, _ := seedLessonWithActivity(t, db, "video-1")

	// sin progreso de video: precondición violada, nada se persiste
	_, err := CompleteActivity(db, userID, activity.ActivityID, nil)
	assert.ErrorIs(t, err, ErrVideoNotFinished)

	var count int64
	require.NoError(t, db.Model(&model.UserActivityModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// video a medias: sigue bloqueado
	_, err = progressService.UpdateProgress(db, userID, lesson.LessonID, 60)
	require.NoError(t, err)
	_, err = CompleteActivity(db, userID, activity.ActivityID, nil)
	assert.ErrorIs(t, err, ErrVideoNotFinished)
}

func TestCompleteActivityUnlocksNextLesson(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	lesson, activity, next := seedLessonWithActivity(t, db, "video-1")

	result, err := progressService.UpdateProgress(db, userID, lesson.LessonID, 100)
	require.NoError(t, err)
	assert.Nil(t, result.UnlockedLessonID, "la actividad pendiente retiene el gate")

	grade := 4.5
	completion, err := CompleteActivity(db, userID, activity.ActivityID, &grade)
	require.NoError(t, err)
	assert.True(t, completion.UserActivity.UserActivityIsCompleted)
	require.NotNil(t, completion.UserActivity.UserActivityGrade)
	assert.Equal(t, 4.5, *completion.UserActivity.UserActivityGrade)
	require.NotNil(t, completion.UnlockedLessonID)
	assert.Equal(t, next.LessonID, *completion.UnlockedLessonID)
}

func TestCompleteActivityNoVideoLesson(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, activity, next := seedLessonWithActivity(t, db, lessonModel.NoVideoKey)

	// sin video no hay precondición de reproducción
	completion, err := CompleteActivity(db, userID, activity.ActivityID, nil)
	require.NoError(t, err)
	assert.True(t, completion.UserActivity.UserActivityIsCompleted)
	require.NotNil(t, completion.UnlockedLessonID)
	assert.Equal(t, next.LessonID, *completion.UnlockedLessonID)
}

func TestCompleteActivityCountsAttempts(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	_, activity, _ := seedLessonWithActivity(t, db, lessonModel.NoVideoKey)

	first, err := CompleteActivity(db, userID, activity.ActivityID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UserActivity.UserActivityAttemptCount)

	grade := 3.8
	second, err := CompleteActivity(db, userID, activity.ActivityID, &grade)
	require.NoError(t, err)
	assert.Equal(t, 2, second.UserActivity.UserActivityAttemptCount)
	require.NotNil(t, second.UserActivity.UserActivityGrade)
	assert.Equal(t, 3.8, *second.UserActivity.UserActivityGrade)

	var count int64
	require.NoError(t, db.Model(&model.UserActivityModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "una sola fila por usuario por actividad")
}

func TestCompleteActivityUnknown(t *testing.T) {
	db := setupTestDB(t)
	_, err := CompleteActivity(db, uuid.New(), 999, nil)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
