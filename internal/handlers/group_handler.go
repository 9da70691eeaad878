package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/services"
)

// CreateGroup creates a group with the supplied creator and members.
func CreateGroup(c *fiber.Ctx) error {
	var request struct {
		Name    string   `json:"name"`
		Creator string   `json:"creator"`
		Members []string `json:"members"`
	}

	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	group, err := services.CreateGroup(request.Name, request.Creator, request.Members)
	if err != nil {
		return fail(c, err, "error al crear el grupo")
	}

	return c.JSON(fiber.Map{"success": true, "message": "grupo creado", "group": group})
}

// ListGroups returns every group with creator and members resolved to
// display names.
func ListGroups(c *fiber.Ctx) error {
	groups, err := services.ListGroups()
	if err != nil {
		return fail(c, err, "error al obtener los grupos")
	}
	return c.JSON(fiber.Map{"success": true, "groups": groups})
}

// GetGroup fetches one group by id.
func GetGroup(c *fiber.Ctx) error {
	group, err := services.GetGroupByID(c.Params("groupId"))
	if err != nil {
		return fail(c, err, "error al obtener el grupo")
	}
	return c.JSON(fiber.Map{"success": true, "group": group})
}

// GroupTasks lists the tasks belonging to one group.
func GroupTasks(c *fiber.Ctx) error {
	tasks, err := services.ListGroupTasks(c.Params("groupId"))
	if err != nil {
		return fail(c, err, "error al obtener las tareas del grupo")
	}
	return c.JSON(fiber.Map{"success": true, "tasks": tasks})
}
