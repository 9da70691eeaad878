package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/internal/services"
)

// fail converts a service error into the failure envelope. Known errors
// keep their message and map to 400 or 404; anything else becomes a 500
// with a generic message describing the attempted action, so no storage
// detail ever reaches the caller.
func fail(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrAttachmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrGroupNameTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": action})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": message})
}
