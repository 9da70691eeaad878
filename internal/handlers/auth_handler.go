package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/services"
)

// RegisterHandler creates a user. Whatever role the caller supplies is
// ignored; every registration gets the member role. The response carries
// no user data.
func RegisterHandler(c *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     int    `json:"role"`
	}

	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	if err := services.RegisterUser(request.Username, request.Email, request.Password); err != nil {
		return fail(c, err, "error al registrar el usuario")
	}

	return c.JSON(fiber.Map{"success": true, "message": "usuario registrado correctamente"})
}

// LoginHandler authenticates by username and password and returns the
// stored user record as-is, password hash included.
func LoginHandler(c *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	user, err := services.LoginUser(request.Username, request.Password)
	if err != nil {
		return fail(c, err, "error al iniciar sesión")
	}

	return c.JSON(fiber.Map{"success": true, "message": "sesión iniciada", "user": user})
}

// LogoutHandler is a stateless acknowledgment; there is no server-side
// session to tear down.
func LogoutHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "sesión cerrada"})
}
