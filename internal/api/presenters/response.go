package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	response := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		response["data"] = data
	}
	return c.Status(code).JSON(response)
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		response["error"] = err.Error()
	}
	return c.Status(code).JSON(response)
}
