package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Códigos de error expuestos por la API. Estables: los clientes dependen de ellos.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeLastAdmin          = "LAST_ADMIN_CANNOT_BE_REMOVED"
	CodeUnauthenticated    = "USER_NOT_AUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeTeamMemberNotFound = "TEAM_MEMBER_NOT_FOUND"
	CodeLocationNotFound   = "LOCATION_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeSubscriptionActive = "SUBSCRIPTION_ACTIVE"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeEmailExists        = "EMAIL_ALREADY_EXISTS"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError es el resultado tipado de una operación rechazada: status HTTP,
// código estable y mensaje para el cliente. Los casos de uso lo devuelven como
// valor (nunca lo lanzan); solo los fallos realmente inesperados viajan como
// error genérico y se convierten en 500 en el borde HTTP.
type AppError struct {
	Status  int
	Code    string
	Message string
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError construye un AppError arbitrario.
func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// AsAppError extrae el AppError tipado de una cadena de errores.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Constructores para la taxonomía de la API.

func Unauthenticated() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthenticated, "usuario no autenticado")
}

func Forbidden() *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, "acceso denegado")
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message)
}

func LastAdmin() *AppError {
	return NewAppError(http.StatusBadRequest, CodeLastAdmin, "el equipo debe conservar al menos un administrador activo")
}

func NotFound(code, message string) *AppError {
	return NewAppError(http.StatusNotFound, code, message)
}

func TeamNotFound() *AppError {
	return NotFound(CodeTeamNotFound, "equipo no encontrado")
}

func ItemNotFound() *AppError {
	return NotFound(CodeItemNotFound, "artículo no encontrado")
}

func TeamMemberNotFound() *AppError {
	return NotFound(CodeTeamMemberNotFound, "miembro del equipo no encontrado")
}

func LocationNotFound() *AppError {
	return NotFound(CodeLocationNotFound, "ubicación no encontrada")
}

func UserNotFound() *AppError {
	return NotFound(CodeUserNotFound, "usuario no encontrado")
}

func Conflict(code, message string) *AppError {
	return NewAppError(http.StatusConflict, code, message)
}

func InsufficientStock() *AppError {
	return Conflict(CodeInsufficientStock, "stock insuficiente para la salida solicitada")
}

func Internal() *AppError {
	// Mensaje opaco: el detalle queda en el log del servidor
	return NewAppError(http.StatusInternalServerError, CodeInternal, "error interno")
}
