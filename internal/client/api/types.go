package api

import "encoding/json"

// User — краткие сведения об учётной записи, возвращаемые login.
type User struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email"`
}

// StringList — список строк, терпимый к повреждённым данным: значение,
// которое не разбирается как JSON-массив, превращается в пустой список.
type StringList []string

// UnmarshalJSON реализует json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// Profile — полный профиль пользователя, возвращаемый get_user.
type Profile struct {
	ID              int        `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellidos       string     `json:"apellidos"`
	Email           string     `json:"email"`
	FechaNacimiento string     `json:"fecha_nacimiento"`
	AlturaCm        int        `json:"altura_cm"`
	PesoKg          int        `json:"peso_kg"`
	Genero          string     `json:"genero"`
	Condiciones     StringList `json:"condiciones"`
	Otro            *string    `json:"otro"`
}

// RegisterRequest — данные регистрации. Рост и вес уходят строками:
// так их накапливает мастер регистрации.
type RegisterRequest struct {
	Nombre          string   `json:"nombre"`
	Apellidos       string   `json:"apellidos"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	FechaNacimiento string   `json:"fecha_nacimiento"`
	AlturaCm        string   `json:"altura_cm"`
	PesoKg          string   `json:"peso_kg"`
	Genero          string   `json:"genero"`
	Condiciones     []string `json:"condiciones"`
	Otro            *string  `json:"otro"`
}

// UpdateUserRequest — полный набор полей профиля для сохранения.
type UpdateUserRequest struct {
	ID              int      `json:"id"`
	Nombre          string   `json:"nombre"`
	Apellidos       string   `json:"apellidos"`
	Email           string   `json:"email"`
	FechaNacimiento string   `json:"fecha_nacimiento"`
	AlturaCm        int      `json:"altura_cm"`
	PesoKg          int      `json:"peso_kg"`
	Genero          string   `json:"genero"`
	Condiciones     []string `json:"condiciones"`
	Otro            *string  `json:"otro"`
}

// Contact — контакт пользователя.
type Contact struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id"`
	Nombre    string  `json:"nombre"`
	Apellidos string  `json:"apellidos"`
	Email     string  `json:"email"`
	Telefono  string  `json:"telefono"`
	Relacion  *string `json:"relacion"`
}

// ContactRequest — данные контакта для add_contact и update_contact.
// ID заполняется только при обновлении.
type ContactRequest struct {
	ID        int     `json:"id,omitempty"`
	UserID    int     `json:"user_id"`
	Nombre    string  `json:"nombre"`
	Apellidos string  `json:"apellidos"`
	Email     string  `json:"email"`
	Telefono  string  `json:"telefono"`
	Relacion  *string `json:"relacion"`
}
