package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/grades/dto"
	gradeModel "aprendia_backend/internals/features/grades/model"
	activityModel "aprendia_backend/internals/features/lms/activities/model"
)

type GradeService struct {
	DB *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{DB: db}
}

// CourseSummary calcula la nota de cada parámetro del curso para el usuario
// (promedio de las notas de sus actividades) y la nota final ponderada:
// final = Σ(nota_parámetro × peso) / 100. Los parámetros sin ninguna nota
// quedan con average_grade nulo y no aportan a la nota final.
func (s *GradeService) CourseSummary(ctx context.Context, courseID uint, userID uuid.UUID) (*dto.CourseGradeSummary, error) {
	var params []gradeModel.GradeParameterModel
	if err := s.DB.WithContext(ctx).
		Where("grade_parameter_course_id = ?", courseID).
		Order("grade_parameter_created_at ASC, grade_parameter_id ASC").
		Find(&params).Error; err != nil {
		return nil, err
	}

	summary := &dto.CourseGradeSummary{
		CourseID:   courseID,
		Parameters: make([]dto.ParameterSummary, 0, len(params)),
	}
	if len(params) == 0 {
		return summary, nil
	}

	paramIDs := make([]uint, 0, len(params))
	for _, p := range params {
		paramIDs = append(paramIDs, p.GradeParameterID)
	}

	var activities []activityModel.ActivityModel
	if err := s.DB.WithContext(ctx).
		Where("activity_grade_parameter_id IN ?", paramIDs).
		Find(&activities).Error; err != nil {
		return nil, err
	}

	activityIDs := make([]uint, 0, len(activities))
	for _, a := range activities {
		activityIDs = append(activityIDs, a.ActivityID)
	}

	gradeByActivity := map[uint]*float64{}
	if len(activityIDs) > 0 {
		var rows []activityModel.UserActivityModel
		if err := s.DB.WithContext(ctx).
			Where("user_activity_user_id = ? AND user_activity_activity_id IN ?", userID, activityIDs).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for i := range rows {
			gradeByActivity[rows[i].UserActivityActivityID] = rows[i].UserActivityGrade
		}
	}

	var weightedSum float64
	var gradedWeight int

	for _, p := range params {
		ps := dto.ParameterSummary{
			GradeParameterID:   p.GradeParameterID,
			GradeParameterName: p.GradeParameterName,
			Weight:             p.GradeParameterWeight,
		}

		var sum float64
		for _, a := range activities {
			if a.ActivityGradeParameterID == nil || *a.ActivityGradeParameterID != p.GradeParameterID {
				continue
			}
			ps.ActivityCount++
			if g, ok := gradeByActivity[a.ActivityID]; ok && g != nil {
				ps.GradedCount++
				sum += *g
			}
		}

		if ps.GradedCount > 0 {
			avg := roundTo2(sum / float64(ps.GradedCount))
			ps.AverageGrade = &avg
			weightedSum += avg * float64(p.GradeParameterWeight)
			gradedWeight += p.GradeParameterWeight
		}
		ps.IsCompleted = ps.ActivityCount > 0 && ps.GradedCount == ps.ActivityCount

		summary.TotalWeight += p.GradeParameterWeight
		summary.Parameters = append(summary.Parameters, ps)
	}

	if gradedWeight > 0 {
		final := roundTo2(weightedSum / 100)
		summary.FinalGrade = &final
	}
	return summary, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
