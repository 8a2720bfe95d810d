package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoutes "aprendia_backend/internals/features/enrollments/route"
	gradeRoutes "aprendia_backend/internals/features/grades/route"
	activityRoutes "aprendia_backend/internals/features/lms/activities/route"
	courseRoutes "aprendia_backend/internals/features/lms/courses/route"
	lessonRoutes "aprendia_backend/internals/features/lms/lessons/route"
	programRoutes "aprendia_backend/internals/features/lms/programs/route"
	progressRoutes "aprendia_backend/internals/features/progress/lesson_progress/route"
)

// Catálogo público: programas y cursos, sin sesión.
func LmsPublicRoutes(router fiber.Router, db *gorm.DB) {
	programRoutes.ProgramPublicRoutes(router, db)
	courseRoutes.CoursePublicRoutes(router, db)
}

// Consumo del estudiante: lecciones, progreso, actividades, notas e
// inscripción.
func LmsUserRoutes(router fiber.Router, db *gorm.DB) {
	lessonRoutes.LessonUserRoutes(router, db)
	progressRoutes.LessonProgressRoutes(router, db)
	activityRoutes.ActivityUserRoutes(router, db)
	gradeRoutes.GradeUserRoutes(router, db)
	enrollmentRoutes.EnrollmentUserRoutes(router, db)
}

// Autoría: CRUD de programas, cursos, lecciones, actividades y
// parámetros de evaluación.
func LmsAdminRoutes(router fiber.Router, db *gorm.DB) {
	programRoutes.ProgramAdminRoutes(router, db)
	courseRoutes.CourseAdminRoutes(router, db)
	lessonRoutes.LessonAdminRoutes(router, db)
	activityRoutes.ActivityAdminRoutes(router, db)
	gradeRoutes.GradeAdminRoutes(router, db)
}
