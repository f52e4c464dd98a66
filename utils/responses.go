package utils

import "github.com/gofiber/fiber/v2"

// Err sends a JSON error body with the given status.
func Err(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErr sends a 422 with a per-field error map.
func ValidationErr(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": fields,
	})
}

// NotFound sends a 404 Not Found.
func NotFound(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusNotFound, message)
}

// BadRequest sends a 400 Bad Request.
func BadRequest(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusBadRequest, message)
}

// Conflict sends a 409 Conflict.
func Conflict(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusInternalServerError, message)
}

// NoContent sends a 204 No Content.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
