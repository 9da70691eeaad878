package services

import "errors"

// Sentinel errors carry the user-facing message; handlers map them to
// HTTP status codes. Anything else becomes a generic 500.
var (
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está en uso")
	ErrEmailTaken         = errors.New("el correo electrónico ya está en uso")
	ErrGroupNameTaken     = errors.New("el nombre del grupo ya está en uso")
	ErrInvalidRole        = errors.New("rol inválido: debe ser 1 (administrador) o 2 (miembro)")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrGroupNotFound      = errors.New("grupo no encontrado")
	ErrTaskNotFound       = errors.New("tarea no encontrada")
	ErrWrongPassword      = errors.New("contraseña incorrecta")
	ErrAttachmentNotFound = errors.New("archivo adjunto no encontrado")
)
