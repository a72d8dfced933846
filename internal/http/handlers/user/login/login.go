package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/models"
	accountservice "github.com/magabrotheeeer/health-companion/internal/services/account"
)

// Request — учётные данные для входа
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticator описывает сервис проверки учётных данных.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type Handler struct {
	log     *slog.Logger
	account Authenticator
}

func New(log *slog.Logger, account Authenticator) *Handler {
	return &Handler{
		log:     log,
		account: account,
	}
}

// ServeHTTP
// @Summary Вход по email и паролю
// @Tags user
// @Accept  json
// @Produce json
// @Param   request body Request true "Email и пароль"
// @Success 200 {object} response.Payload "Успешный вход"
// @Failure 400 {object} response.Payload "Не переданы email или пароль"
// @Failure 401 {object} response.Payload "Неверные учётные данные"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email y password requeridos"))
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Error("missing email or password")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email y password requeridos"))
		return
	}

	user, err := h.account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accountservice.ErrInvalidCredentials) {
			log.Info("login rejected")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Credenciales invalidas"))
			return
		}
		log.Error("failed to login user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("user logged in", slog.Int("user_id", user.ID))
	render.JSON(w, r, response.SuccessWith(map[string]any{
		"user": map[string]any{
			"id":        user.ID,
			"nombre":    user.Nombre,
			"apellidos": user.Apellidos,
			"email":     user.Email,
		},
	}))
}
