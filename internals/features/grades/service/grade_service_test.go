package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	gradeModel "aprendia_backend/internals/features/grades/model"
	activityModel "aprendia_backend/internals/features/lms/activities/model"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
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
		&gradeModel.GradeParameterModel{},
		&activityModel.ActivityModel{},
		&activityModel.UserActivityModel{},
	))
	return db
}

func seedGradedCourse(t *testing.T, db *gorm.DB) (uint, []gradeModel.GradeParameterModel, []activityModel.ActivityModel) {
	t.Helper()

	course := courseModel.CourseModel{CourseTitle: "Diplomado"}
	require.NoError(t, db.Create(&course).Error)

	lesson := lessonModel.LessonModel{LessonCourseID: course.CourseID, LessonTitle: "Sesión 1"}
	require.NoError(t, db.Create(&lesson).Error)

	params := []gradeModel.GradeParameterModel{
		{GradeParameterCourseID: course.CourseID, GradeParameterName: "Quices", GradeParameterWeight: 40},
		{GradeParameterCourseID: course.CourseID, GradeParameterName: "Proyecto", GradeParameterWeight: 60},
	}
	for i := range params {
		require.NoError(t, db.Create(&params[i]).Error)
	}

	activities := []activityModel.ActivityModel{
		{ActivityLessonID: lesson.LessonID, ActivityName: "Quiz 1", ActivityGradeParameterID: &params[0].GradeParameterID},
		{ActivityLessonID: lesson.LessonID, ActivityName: "Quiz 2", ActivityGradeParameterID: &params[0].GradeParameterID},
		{ActivityLessonID: lesson.LessonID, ActivityName: "Entrega final", ActivityGradeParameterID: &params[1].GradeParameterID},
	}
	for i := range activities {
		require.NoError(t, db.Create(&activities[i]).Error)
	}

	return course.CourseID, params, activities
}

func gradePtr(v float64) *float64 { return &v }

func TestCourseSummaryWeighting(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	courseID, _, activities := seedGradedCourse(t, db)

	rows := []activityModel.UserActivityModel{
		{UserActivityActivityID: activities[0].ActivityID, UserActivityUserID: userID, UserActivityIsCompleted: true, UserActivityGrade: gradePtr(4.0)},
		{UserActivityActivityID: activities[1].ActivityID, UserActivityUserID: userID, UserActivityIsCompleted: true, UserActivityGrade: gradePtr(5.0)},
		{UserActivityActivityID: activities[2].ActivityID, UserActivityUserID: userID, UserActivityIsCompleted: true, UserActivityGrade: gradePtr(3.0)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	summary, err := NewGradeService(db).CourseSummary(context.Background(), courseID, userID)
	require.NoError(t, err)
	require.Len(t, summary.Parameters, 2)
	assert.Equal(t, 100, summary.TotalWeight)

	quices := summary.Parameters[0]
	assert.Equal(t, 2, quices.ActivityCount)
	assert.Equal(t, 2, quices.GradedCount)
	require.NotNil(t, quices.AverageGrade)
	assert.Equal(t, 4.5, *quices.AverageGrade)
	assert.True(t, quices.IsCompleted)

	proyecto := summary.Parameters[1]
	require.NotNil(t, proyecto.AverageGrade)
	assert.Equal(t, 3.0, *proyecto.AverageGrade)

	// final = (4.5×40 + 3.0×60) / 100 = 3.6
	require.NotNil(t, summary.FinalGrade)
	assert.Equal(t, 3.6, *summary.FinalGrade)
}

func TestCourseSummaryPartialGrades(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	courseID, _, activities := seedGradedCourse(t, db)

	// solo un quiz calificado: el parámetro queda incompleto y el proyecto
	// sin nota no aporta a la final
	require.NoError(t, db.Create(&activityModel.UserActivityModel{
		UserActivityActivityID: activities[0].ActivityID,
		UserActivityUserID:     userID,
		UserActivityGrade:      gradePtr(4.0),
	}).Error)

	summary, err := NewGradeService(db).CourseSummary(context.Background(), courseID, userID)
	require.NoError(t, err)

	quices := summary.Parameters[0]
	assert.Equal(t, 1, quices.GradedCount)
	assert.False(t, quices.IsCompleted)
	require.NotNil(t, quices.AverageGrade)
	assert.Equal(t, 4.0, *quices.AverageGrade)

	proyecto := summary.Parameters[1]
	assert.Nil(t, proyecto.AverageGrade)
	assert.False(t, proyecto.IsCompleted)

	// final = 4.0×40/100 = 1.6 (los pesos sin nota no se reescalan)
	require.NotNil(t, summary.FinalGrade)
	assert.Equal(t, 1.6, *summary.FinalGrade)
}

func TestCourseSummaryEmptyCourse(t *testing.T) {
	db := setupTestDB(t)

	course := courseModel.CourseModel{CourseTitle: "Sin parámetros"}
	require.NoError(t, db.Create(&course).Error)

	summary, err := NewGradeService(db).CourseSummary(context.Background(), course.CourseID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, summary.Parameters)
	assert.Nil(t, summary.FinalGrade)
	assert.Equal(t, 0, summary.TotalWeight)
}
