package controllers

import (
	"errors"

	"courseadmin/models"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB *gorm.DB
}

func NewCoursesController(db *gorm.DB) *CoursesController {
	return &CoursesController{DB: db}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Keep the payload an array even when the table is empty
	if courses == nil {
		courses = []models.Course{}
	}

	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input models.CreateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationErr(c, fields)
	}

	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	var existing models.Course
	if err := cc.DB.First(&existing, "id = ?", input.ID).Error; err == nil {
		return utils.Conflict(c, "Course ID already exists")
	}

	course := models.Course{
		ID:               input.ID,
		Title:            input.Title,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		ImageURL:         input.ImageURL,
		Category:         input.Category,
		Tags:             input.Tags,
		Difficulty:       input.Difficulty,
		EstimatedTime:    input.EstimatedTime,
		PassingThreshold: input.PassingThreshold,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var input models.UpdateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationErr(c, fields)
	}

	var course models.Course
	if err := cc.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.ShortDescription != nil {
		course.ShortDescription = *input.ShortDescription
	}
	if input.ImageURL != nil {
		course.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		course.Category = *input.Category
	}
	if input.Tags != nil {
		course.Tags = *input.Tags
	}
	if input.Difficulty != nil {
		course.Difficulty = *input.Difficulty
	}
	if input.EstimatedTime != nil {
		course.EstimatedTime = *input.EstimatedTime
	}
	if input.PassingThreshold != nil {
		course.PassingThreshold = *input.PassingThreshold
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(course)
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Deleting a course takes its sections and their activities with it.
	tx := cc.DB.Begin()

	var sectionIDs []string
	if err := tx.Model(&models.Section{}).Where("course_id = ?", course.ID).Pluck("id", &sectionIDs).Error; err != nil {
		tx.Rollback()
		return utils.InternalServerError(c, "Could not delete course")
	}

	if len(sectionIDs) > 0 {
		if err := tx.Where("section_id IN ?", sectionIDs).Delete(&models.Activity{}).Error; err != nil {
			tx.Rollback()
			return utils.InternalServerError(c, "Could not delete course activities")
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Section{}).Error; err != nil {
			tx.Rollback()
			return utils.InternalServerError(c, "Could not delete course sections")
		}
	}

	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return utils.InternalServerError(c, "Could not delete course")
	}

	tx.Commit()

	return utils.NoContent(c)
}
