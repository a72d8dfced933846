// Package models содержит доменные модели приложения: учётную запись
// пользователя и контакт для экстренных уведомлений. Структуры используются
// в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя.
type User struct {
	ID              int     // Уникальный числовой идентификатор
	Nombre          string  // Имя
	Apellidos       string  // Фамилии
	Email           string  // Электронная почта (уникальная, в нижнем регистре)
	PasswordHash    string  // Хэш пароля
	FechaNacimiento string  // Дата рождения в формате YYYY-MM-DD
	AlturaCm        int     // Рост в сантиметрах
	PesoKg          int     // Вес в килограммах
	Genero          string  // "Femenino" или "Masculino"
	Condiciones     *string // Список состояний, JSON-строка в хранилище
	Otro            *string // Свободный текст, опционально
}
