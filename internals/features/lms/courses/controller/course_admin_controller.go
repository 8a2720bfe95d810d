package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/courses/dto"
	"aprendia_backend/internals/features/lms/courses/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

// =============================
// 📄 GET /api/a/courses
// =============================
func (ctrl *CourseAdminController) GetAll(c *fiber.Ctx) error {
	params := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	sortCol, ok := courseSortColumns[params.SortBy]
	if !ok {
		sortCol = "course_created_at"
	}

	query := ctrl.DB.WithContext(c.Context()).Model(&model.CourseModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
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
// ➕ POST /api/a/courses
// =============================
func (ctrl *CourseAdminController) Create(c *fiber.Ctx) error {
	var body dto.CourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := body.ToModel()
	slug, err := helper.EnsureUniqueSlug(ctrl.DB.WithContext(c.Context()),
		helper.GenerateSlug(body.CourseTitle), "courses", "course_slug")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el slug del curso")
	}
	course.CourseSlug = slug

	if err := ctrl.DB.WithContext(c.Context()).Create(course).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el curso:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el curso")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curso creado", dto.ToCourseResponse(course))
}

// =============================
// ✏️ PUT /api/a/courses/:id
// =============================
func (ctrl *CourseAdminController) Update(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var body dto.CourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	updates := map[string]interface{}{
		"course_program_id": body.CourseProgramID,
		"course_title":      body.CourseTitle,
		"course_description": body.CourseDescription,
		"course_instructor": body.CourseInstructor,
		"course_price_cop":  body.CoursePriceCOP,
	}
	if body.CourseIsActive != nil {
		updates["course_is_active"] = *body.CourseIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&course).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el curso:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el curso")
	}

	return helper.Success(c, "Curso actualizado", dto.ToCourseResponse(&course))
}

// =============================
// 🖼️ POST /api/a/courses/:id/cover
// =============================
func (ctrl *CourseAdminController) UploadCover(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Falta el archivo 'cover'")
	}

	key, err := helper.SaveCoverImage("courses", fileHeader)
	if err != nil {
		log.Println("[ERROR] No se pudo procesar la portada:", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&course).
		Update("course_cover_image_key", key).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar la portada")
	}

	return helper.Success(c, "Portada actualizada", fiber.Map{"course_cover_image_key": key})
}

// =============================
// ❌ DELETE /api/a/courses/:id
// =============================
func (ctrl *CourseAdminController) Delete(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.CourseModel{}, "course_id = ?", courseID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el curso")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	return helper.Success(c, "Curso eliminado", nil)
}
