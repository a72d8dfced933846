package update

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

// Request — полный набор полей профиля для сохранения
type Request struct {
	ID              flexint.Int `json:"id" validate:"required"`
	Nombre          string      `json:"nombre" validate:"required"`
	Apellidos       string      `json:"apellidos" validate:"required"`
	Email           string      `json:"email" validate:"required"`
	FechaNacimiento string      `json:"fecha_nacimiento" validate:"required"`
	AlturaCm        flexint.Int `json:"altura_cm" validate:"required"`
	PesoKg          flexint.Int `json:"peso_kg" validate:"required"`
	Genero          string      `json:"genero" validate:"required"`
	Condiciones     []string    `json:"condiciones"`
	Otro            *string     `json:"otro"`
}

// ProfileUpdater описывает сервис сохранения профиля.
type ProfileUpdater interface {
	Update(ctx context.Context, entry accountservice.UpdateEntry) error
}

type Handler struct {
	log      *slog.Logger
	account  ProfileUpdater
	validate *validator.Validate
}

func New(log *slog.Logger, account ProfileUpdater) *Handler {
	return &Handler{
		log:      log,
		account:  account,
		validate: validate.New(),
	}
}

// ServeHTTP
// @Summary Сохранение профиля целиком
// @Tags user
// @Accept  json
// @Produce json
// @Param   request body Request true "Все поля профиля"
// @Success 200 {object} response.Payload "Профиль сохранён"
// @Failure 400 {object} response.Payload "Отсутствует обязательное поле"
// @Failure 409 {object} response.Payload "Email уже зарегистрирован"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

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

	err := h.account.Update(r.Context(), accountservice.UpdateEntry{
		ID:              int(req.ID),
		Nombre:          req.Nombre,
		Apellidos:       req.Apellidos,
		Email:           req.Email,
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
		log.Error("failed to update user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("updated user", slog.Int("user_id", int(req.ID)))
	render.JSON(w, r, response.Success())
}
