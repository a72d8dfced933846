package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/flexint"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/lib/validate"
	accountservice "github.com/magabrotheeeer/health-companion/internal/services/account"
	"github.com/magabrotheeeer/health-companion/internal/storage/repository"
)

// Request — входные данные для регистрации
type Request struct {
	Nombre          string      `json:"nombre" validate:"required"`
	Apellidos       string      `json:"apellidos" validate:"required"`
	Email           string      `json:"email" validate:"required"`
	Password        string      `json:"password" validate:"required"`
	FechaNacimiento string      `json:"fecha_nacimiento" validate:"required"`
	AlturaCm        flexint.Int `json:"altura_cm" validate:"required"`
	PesoKg          flexint.Int `json:"peso_kg" validate:"required"`
	Genero          string      `json:"genero" validate:"required"`
	Condiciones     []string    `json:"condiciones"`
	Otro            *string     `json:"otro"`
}

// Registration описывает сервис создания учётной записи.
type Registration interface {
	Register(ctx context.Context, entry accountservice.RegisterEntry) (int, error)
}

type Handler struct {
	log      *slog.Logger
	account  Registration
	validate *validator.Validate
}

func New(log *slog.Logger, account Registration) *Handler {
	return &Handler{
		log:      log,
		account:  account,
		validate: validate.New(),
	}
}

// ServeHTTP
// @Summary Регистрация новой учётной записи
// @Tags user
// @Accept  json
// @Produce json
// @Param   request body Request true "Данные учётной записи"
// @Success 200 {object} response.Payload "Учётная запись создана"
// @Failure 400 {object} response.Payload "Отсутствует обязательное поле"
// @Failure 409 {object} response.Payload "Email уже зарегистрирован"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.account.Register(r.Context(), accountservice.RegisterEntry{
		Nombre:          req.Nombre,
		Apellidos:       req.Apellidos,
		Email:           req.Email,
		Password:        req.Password,
		FechaNacimiento: req.FechaNacimiento,
		AlturaCm:        int(req.AlturaCm),
		PesoKg:          int(req.PesoKg),
		Genero:          req.Genero,
		Condiciones:     req.Condiciones,
		Otro:            req.Otro,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Info("email already registered", slog.String("email", req.Email))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("El correo ya esta registrado"))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("created new user", slog.Int("user_id", id))
	render.JSON(w, r, response.SuccessWith(map[string]any{
		"user_id": id,
	}))
}
