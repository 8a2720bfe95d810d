package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/courses/dto"
	"aprendia_backend/internals/features/lms/courses/model"
	helper "aprendia_backend/internals/helpers"
)

type CoursePublicController struct {
	DB *gorm.DB
}

func NewCoursePublicController(db *gorm.DB) *CoursePublicController {
	return &CoursePublicController{DB: db}
}

var courseSortColumns = map[string]string{
	"created_at": "course_created_at",
	"title":      "course_title",
	"price":      "course_price_cop",
}

// =============================
// 📄 GET /api/public/courses
// =============================
func (ctrl *CoursePublicController) GetAll(c *fiber.Ctx) error {
	params := helper.ParsePagination(c, "created_at", "asc")

	sortCol, ok := courseSortColumns[params.SortBy]
	if !ok {
		sortCol = "course_created_at"
	}

	query := ctrl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_is_active = ?", true)

	if programID := c.Query("program_id"); programID != "" {
		if id, err := strconv.Atoi(programID); err == nil {
			query = query.Where("course_program_id = ?", id)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Println("[ERROR] No se pudieron contar los cursos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los cursos")
	}

	var courses []model.CourseModel
	if err := query.
		Order(sortCol + " " + params.SortOrder).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los cursos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los cursos")
	}

	resp := make([]*dto.CourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, dto.ToCourseResponse(&courses[i]))
	}

	return helper.Success(c, "Cursos obtenidos", fiber.Map{
		"courses":    resp,
		"pagination": helper.PaginationMeta(params, total),
	})
}

// =============================
// 🔍 GET /api/public/courses/:id
// =============================
func (ctrl *CoursePublicController) GetByID(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_is_active = ?", courseID, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	return helper.Success(c, "Curso obtenido", dto.ToCourseResponse(&course))
}

// =============================
// 🔍 GET /api/public/courses/slug/:slug
// =============================
func (ctrl *CoursePublicController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug de curso no es válido")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_slug = ? AND course_is_active = ?", slug, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	return helper.Success(c, "Curso obtenido", dto.ToCourseResponse(&course))
}
