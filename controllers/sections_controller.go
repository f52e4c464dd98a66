package controllers

import (
	"errors"

	"courseadmin/models"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionsController struct {
	DB *gorm.DB
}

func NewSectionsController(db *gorm.DB) *SectionsController {
	return &SectionsController{DB: db}
}

// ListByCourse returns all sections of a course with nested activities,
// both ordered by order_index.
func (sc *SectionsController) ListByCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := sc.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var sections []models.Section
	err := sc.DB.
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Where("course_id = ?", courseID).
		Order("order_index asc").
		Find(&sections).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	if sections == nil {
		sections = []models.Section{}
	}

	return c.JSON(sections)
}

func (sc *SectionsController) CreateSection(c *fiber.Ctx) error {
	var input models.CreateSectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationErr(c, fields)
	}

	var course models.Course
	if err := sc.DB.First(&course, "id = ?", input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	// Orders are a sparse rank: gaps left by deletions stay, the next
	// default slot is always max+1.
	order := input.Order
	if order == 0 {
		var maxOrder int
		sc.DB.Model(&models.Section{}).
			Where("course_id = ?", input.CourseID).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder)
		order = maxOrder + 1
	}

	section := models.Section{
		ID:           input.ID,
		CourseID:     input.CourseID,
		Title:        input.Title,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Duration:     input.Duration,
		Order:        order,
	}

	if err := sc.DB.Create(&section).Error; err != nil {
		return utils.InternalServerError(c, "Could not create section")
	}

	return c.Status(fiber.StatusCreated).JSON(section)
}

// UpdateSection replaces every editable field of the section. Section edits
// are a full replace, not a partial patch.
func (sc *SectionsController) UpdateSection(c *fiber.Ctx) error {
	var input models.CreateSectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationErr(c, fields)
	}

	var section models.Section
	if err := sc.DB.First(&section, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Section not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.CourseID != section.CourseID {
		return utils.BadRequest(c, "Section cannot move between courses")
	}

	section.Title = input.Title
	section.VideoURL = input.VideoURL
	section.ThumbnailURL = input.ThumbnailURL
	section.Duration = input.Duration
	section.Order = input.Order

	if err := sc.DB.Save(&section).Error; err != nil {
		return utils.InternalServerError(c, "Could not update section")
	}

	return c.JSON(section)
}

// DeleteSection removes a section and cascades to its activities.
func (sc *SectionsController) DeleteSection(c *fiber.Ctx) error {
	var section models.Section
	if err := sc.DB.First(&section, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Section not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	tx := sc.DB.Begin()

	if err := tx.Where("section_id = ?", section.ID).Delete(&models.Activity{}).Error; err != nil {
		tx.Rollback()
		return utils.InternalServerError(c, "Could not delete section activities")
	}

	if err := tx.Delete(&section).Error; err != nil {
		tx.Rollback()
		return utils.InternalServerError(c, "Could not delete section")
	}

	tx.Commit()

	return utils.NoContent(c)
}
