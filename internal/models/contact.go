package models

import "time"

// Contact представляет контакт пользователя для экстренных уведомлений.
// Контакт принадлежит ровно одному пользователю.
type Contact struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Nombre    string    `json:"nombre"`
	Apellidos string    `json:"apellidos"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Relacion  *string   `json:"relacion"`
	CreatedAt time.Time `json:"created_at"`
}
