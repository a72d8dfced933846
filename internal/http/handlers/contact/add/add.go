package add

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/flexint"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/lib/validate"
	"github.com/magabrotheeeer/health-companion/internal/models"
)

// Request — данные нового контакта
type Request struct {
	UserID    flexint.Int `json:"user_id" validate:"required"`
	Nombre    string      `json:"nombre" validate:"required"`
	Apellidos string      `json:"apellidos" validate:"required"`
	Email     string      `json:"email" validate:"required"`
	Telefono  string      `json:"telefono" validate:"required"`
	Relacion  *string     `json:"relacion"`
}

// ContactAdder описывает сервис создания контакта.
type ContactAdder interface {
	Add(ctx context.Context, contact models.Contact) (int, error)
}

type Handler struct {
	log      *slog.Logger
	contacts ContactAdder
	validate *validator.Validate
}

func New(log *slog.Logger, contacts ContactAdder) *Handler {
	return &Handler{
		log:      log,
		contacts: contacts,
		validate: validate.New(),
	}
}

// ServeHTTP
// @Summary Добавление контакта пользователя
// @Tags contact
// @Accept  json
// @Produce json
// @Param   request body Request true "Данные контакта"
// @Success 200 {object} response.Payload "Контакт создан"
// @Failure 400 {object} response.Payload "Отсутствует обязательное поле"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.add"

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

	id, err := h.contacts.Add(r.Context(), models.Contact{
		UserID:    int(req.UserID),
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Relacion:  req.Relacion,
	})
	if err != nil {
		log.Error("failed to add contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("created new contact", slog.Int("contact_id", id))
	render.JSON(w, r, response.SuccessWith(map[string]any{
		"contact_id": id,
	}))
}
