// Package profile реализует редактор профиля: загрузку полей текущего
// пользователя с сервера и сохранение профиля целиком одной операцией.
package profile

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/session"
)

var (
	// ErrNoSession — операция требует активной сессии.
	ErrNoSession = errors.New("no active session")
	// ErrMissingFields — не заполнены обязательные поля формы.
	ErrMissingFields = errors.New("required profile fields are empty")
	// ErrInvalidNumber — рост или вес не разбираются как целые числа.
	ErrInvalidNumber = errors.New("height and weight must be numbers")
)

// Form — редактируемые поля профиля. Рост и вес хранятся строками,
// как в полях ввода, и разбираются при сохранении.
type Form struct {
	Nombre          string
	Apellidos       string
	Email           string
	FechaNacimiento string
	AlturaCm        string
	PesoKg          string
	Genero          string // "Femenino" | "Masculino"
	Condiciones     []string
	Otro            string
}

// AccountAPI описывает операции API, нужные редактору.
type AccountAPI interface {
	GetUser(ctx context.Context, id int) (*api.Profile, error)
	UpdateUser(ctx context.Context, req api.UpdateUserRequest) error
}

// Editor загружает и сохраняет профиль текущего пользователя.
type Editor struct {
	api     AccountAPI
	session *session.Store
}

// NewEditor создаёт редактор поверх API и хранилища сессии.
func NewEditor(accountAPI AccountAPI, store *session.Store) *Editor {
	return &Editor{
		api:     accountAPI,
		session: store,
	}
}

// Load запрашивает профиль пользователя из сессии и заполняет форму.
// Отсутствующие поля заменяются пустыми строками. Любое значение пола,
// кроме точного "Masculino", отображается как "Femenino".
func (e *Editor) Load(ctx context.Context) (*Form, error) {
	user, ok := e.session.Current()
	if !ok {
		return nil, ErrNoSession
	}

	p, err := e.api.GetUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	genero := "Femenino"
	if p.Genero == "Masculino" {
		genero = "Masculino"
	}
	condiciones := []string(p.Condiciones)
	if condiciones == nil {
		condiciones = []string{}
	}
	otro := ""
	if p.Otro != nil {
		otro = *p.Otro
	}

	return &Form{
		Nombre:          p.Nombre,
		Apellidos:       p.Apellidos,
		Email:           p.Email,
		FechaNacimiento: p.FechaNacimiento,
		AlturaCm:        strconv.Itoa(p.AlturaCm),
		PesoKg:          strconv.Itoa(p.PesoKg),
		Genero:          genero,
		Condiciones:     condiciones,
		Otro:            otro,
	}, nil
}

// Save проверяет заполненность формы и сохраняет профиль целиком,
// никогда частично. При успехе в сессию зеркалируются только имя,
// фамилии и почта; остальные поля сессия не хранит.
func (e *Editor) Save(ctx context.Context, form Form) error {
	user, ok := e.session.Current()
	if !ok {
		return ErrNoSession
	}

	nombre := strings.TrimSpace(form.Nombre)
	apellidos := strings.TrimSpace(form.Apellidos)
	email := strings.TrimSpace(form.Email)
	fecha := strings.TrimSpace(form.FechaNacimiento)
	altura := strings.TrimSpace(form.AlturaCm)
	peso := strings.TrimSpace(form.PesoKg)

	if nombre == "" || apellidos == "" || email == "" || fecha == "" || altura == "" || peso == "" {
		return ErrMissingFields
	}

	alturaCm, err := strconv.Atoi(altura)
	if err != nil {
		return ErrInvalidNumber
	}
	pesoKg, err := strconv.Atoi(peso)
	if err != nil {
		return ErrInvalidNumber
	}

	var otro *string
	if trimmed := strings.TrimSpace(form.Otro); trimmed != "" {
		otro = &trimmed
	}

	err = e.api.UpdateUser(ctx, api.UpdateUserRequest{
		ID:              user.ID,
		Nombre:          nombre,
		Apellidos:       apellidos,
		Email:           email,
		FechaNacimiento: fecha,
		AlturaCm:        alturaCm,
		PesoKg:          pesoKg,
		Genero:          form.Genero,
		Condiciones:     form.Condiciones,
		Otro:            otro,
	})
	if err != nil {
		return err
	}

	user.Nombre = nombre
	user.Apellidos = apellidos
	user.Email = email
	e.session.Set(user)
	return nil
}
