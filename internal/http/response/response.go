// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков в формате, который ожидает мобильный клиент:
// {"success": true, ...} при успехе и {"error": "..."} при ошибке.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Payload — тело JSON-ответа.
type Payload map[string]any

// Success возвращает успешный ответ без дополнительных данных.
func Success() Payload {
	return Payload{"success": true}
}

// SuccessWith возвращает успешный ответ с дополнительными полями.
func SuccessWith(extra map[string]any) Payload {
	p := Payload{"success": true}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

// Error возвращает ответ с текстом ошибки.
func Error(msg string) Payload {
	return Payload{"error": msg}
}

// ServerError возвращает ответ для необработанной ошибки сервера,
// текст причины уходит в поле details.
func ServerError(details string) Payload {
	return Payload{"error": "Error del servidor", "details": details}
}

// MissingField возвращает ошибку отсутствующего обязательного поля.
func MissingField(field string) Payload {
	return Error(fmt.Sprintf("Falta el campo %s", field))
}

// ValidationError формирует ответ на основе ошибок валидации запроса.
// Каждое нарушение required превращается в сообщение об отсутствующем поле.
func ValidationError(errs validator.ValidationErrors) Payload {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("Falta el campo %s", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("Campo %s no valido", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}
