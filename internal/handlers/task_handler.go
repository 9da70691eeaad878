package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/internal/services"
)

// CreateTask persists a new task with every field taken verbatim from
// the request body; only lastUpdated is server-controlled.
func CreateTask(c *fiber.Ctx) error {
	var request services.TaskInput
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	task, err := services.CreateTask(request)
	if err != nil {
		return fail(c, err, "error al crear la tarea")
	}

	return c.JSON(fiber.Map{"success": true, "message": "tarea creada", "task": task})
}

// UpdateTask applies a partial update; fields absent from the body keep
// their prior values, lastUpdated is forced to now.
func UpdateTask(c *fiber.Ctx) error {
	var request services.TaskUpdate
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}

	task, err := services.UpdateTask(c.Params("taskId"), request)
	if err != nil {
		return fail(c, err, "error al actualizar la tarea")
	}

	return c.JSON(fiber.Map{"success": true, "message": "tarea actualizada", "task": task})
}

// DeleteTask removes a task by id. The second delete of the same id is
// still a success.
func DeleteTask(c *fiber.Ctx) error {
	if err := services.DeleteTask(c.Params("taskId")); err != nil {
		return fail(c, err, "error al eliminar la tarea")
	}
	return c.JSON(fiber.Map{"success": true, "message": "tarea eliminada"})
}

// ListAllTasks returns every task in the system. No role is verified
// here: the caller's word is all the authentication this surface has.
func ListAllTasks(c *fiber.Ctx) error {
	tasks, err := services.ListAllTasks()
	if err != nil {
		return fail(c, err, "error al obtener las tareas")
	}
	return c.JSON(fiber.Map{"success": true, "tasks": tasks})
}

// UploadAttachment stores a multipart file for a task in object storage.
func UploadAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "no se pudo leer el archivo")
	}

	attachment, err := services.AddAttachment(c.Params("taskId"), fileHeader)
	if err != nil {
		return fail(c, err, "error al subir el archivo adjunto")
	}

	return c.JSON(fiber.Map{"success": true, "message": "archivo adjuntado", "attachment": attachment})
}

// DownloadAttachment returns a short-lived presigned URL for a task
// attachment.
func DownloadAttachment(c *fiber.Ctx) error {
	url, err := services.AttachmentURL(c.Params("taskId"), c.Params("filename"))
	if err != nil {
		return fail(c, err, "error al generar el enlace de descarga")
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}
