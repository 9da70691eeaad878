package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/services"
)

// ListUsers returns every user without password hashes.
func ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers()
	if err != nil {
		return fail(c, err, "error al obtener los usuarios")
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}

// UpdateUserRole sets a user's role to 1 (admin) or 2 (member). Any
// other value is rejected before storage is touched.
func UpdateUserRole(c *fiber.Ctx) error {
	var request struct {
		Role int `json:"role"`
	}

	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	user, err := services.UpdateUserRole(c.Params("userId"), request.Role)
	if err != nil {
		return fail(c, err, "error al actualizar el rol")
	}

	return c.JSON(fiber.Map{"success": true, "message": "rol actualizado", "user": user})
}

// UserTasks lists the tasks visible to a user: everything for an admin,
// group-scoped tasks for a member.
func UserTasks(c *fiber.Ctx) error {
	tasks, err := services.TasksForUser(c.Params("userId"))
	if err != nil {
		return fail(c, err, "error al obtener las tareas del usuario")
	}
	return c.JSON(fiber.Map{"success": true, "tasks": tasks})
}

// UserGroups lists the groups visible to a user under the same rule.
func UserGroups(c *fiber.Ctx) error {
	groups, err := services.GroupsForUser(c.Params("userId"))
	if err != nil {
		return fail(c, err, "error al obtener los grupos del usuario")
	}
	return c.JSON(fiber.Map{"success": true, "groups": groups})
}
