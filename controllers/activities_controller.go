package controllers

import (
	"errors"

	"courseadmin/models"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivitiesController struct {
	DB *gorm.DB
}

func NewActivitiesController(db *gorm.DB) *ActivitiesController {
	return &ActivitiesController{DB: db}
}

// CreateActivity is the only write path for activities besides deletion;
// there is no activity update.
func (ac *ActivitiesController) CreateActivity(c *fiber.Ctx) error {
	var input models.CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationErr(c, fields)
	}

	var section models.Section
	if err := ac.DB.First(&section, "id = ?", input.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Section not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	order := input.Order
	if order == 0 {
		var maxOrder int
		ac.DB.Model(&models.Activity{}).
			Where("section_id = ?", input.SectionID).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder)
		order = maxOrder + 1
	}

	activity := models.Activity{
		ID:             input.ID,
		SectionID:      input.SectionID,
		Type:           input.Type,
		Order:          order,
		PauseTimestamp: input.PauseTimestamp,
		Question:       input.Question,
		Options:        input.Options,
		CorrectAnswer:  input.CorrectAnswer,
		TextPages:      input.TextPages,
	}

	if err := ac.DB.Create(&activity).Error; err != nil {
		return utils.InternalServerError(c, "Could not create activity")
	}

	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (ac *ActivitiesController) DeleteActivity(c *fiber.Ctx) error {
	var activity models.Activity
	if err := ac.DB.First(&activity, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := ac.DB.Delete(&activity).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete activity")
	}

	return utils.NoContent(c)
}
