package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every endpoint. No route checks a credential:
// identity is always a caller-supplied path or body parameter, which is
// the single biggest gap of this API surface.
func RegisterRoutes(app *fiber.App) {
	app.Post("/register", RegisterHandler)

	auth := app.Group("/auth")
	auth.Post("/login", LoginHandler)
	auth.Post("/logout", LogoutHandler)

	app.Get("/users", ListUsers)
	app.Put("/users/:userId/role", UpdateUserRole)
	app.Get("/users/:userId/tasks", UserTasks)
	app.Get("/users/:userId/groups", UserGroups)

	app.Post("/groups", CreateGroup)
	app.Get("/groups", ListGroups)
	app.Get("/groups/:groupId", GetGroup)
	app.Get("/groups/:groupId/tasks", GroupTasks)

	app.Get("/admin/tasks", ListAllTasks)

	app.Post("/tasks", CreateTask)
	app.Put("/tasks/:taskId", UpdateTask)
	app.Delete("/tasks/:taskId", DeleteTask)
	app.Post("/tasks/:taskId/attachments", UploadAttachment)
	app.Get("/tasks/:taskId/attachments/:filename", DownloadAttachment)

	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
}
