package get

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountservice "github.com/magabrotheeeer/health-companion/internal/services/account"
	"github.com/magabrotheeeer/health-companion/internal/storage/repository"
)

type ProfileGetterMock struct {
	mock.Mock
}

func (m *ProfileGetterMock) Get(ctx context.Context, id int) (*accountservice.UserProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*accountservice.UserProfile)
	return profile, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestGetHandler_ServeHTTP(t *testing.T) {
	profile := &accountservice.UserProfile{
		ID:              7,
		Nombre:          "Ana",
		Apellidos:       "Lopez",
		Email:           "ana@example.com",
		FechaNacimiento: "1990-05-01",
		AlturaCm:        165,
		PesoKg:          60,
		Genero:          "Femenino",
		Condiciones:     []string{"Diabetes"},
	}

	tests := []struct {
		name           string
		target         string
		mockProfile    *accountservice.UserProfile
		mockErr        error
		useMock        bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "existing user",
			target:         "/api?action=get_user&id=7",
			mockProfile:    profile,
			useMock:        true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing id",
			target:         "/api?action=get_user",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "id requerido",
		},
		{
			name:           "non-numeric id",
			target:         "/api?action=get_user&id=abc",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "id requerido",
		},
		{
			name:           "unknown user",
			target:         "/api?action=get_user&id=99",
			mockErr:        repository.ErrUserNotFound,
			useMock:        true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "Usuario no encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getterMock := new(ProfileGetterMock)
			if tt.useMock {
				getterMock.On("Get", mock.Anything, mock.Anything).
					Return(tt.mockProfile, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), getterMock)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
				return
			}

			assert.Equal(t, true, got["success"])
			user, ok := got["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "ana@example.com", user["email"])
			assert.Equal(t, []any{"Diabetes"}, user["condiciones"])
			assert.NotContains(t, user, "password")
		})
	}
}
