package update

import (
	"bytes"
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

	"github.com/magabrotheeeer/health-companion/internal/models"
)

type ContactUpdaterMock struct {
	mock.Mock
}

func (m *ContactUpdaterMock) Update(ctx context.Context, contact models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		useMock        bool
		wantStatusCode int
		wantError      string
	}{
		{
			name: "valid update",
			requestBody: `{"id":3,"user_id":7,"nombre":"Luis","apellidos":"Perez",
				"email":"luis@example.com","telefono":"600111222"}`,
			useMock:        true,
			wantStatusCode: http.StatusOK,
		},
		{
			name: "missing email",
			requestBody: `{"id":3,"user_id":7,"nombre":"Luis","apellidos":"Perez",
				"telefono":"600111222"}`,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Falta el campo email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactsMock := new(ContactUpdaterMock)
			if tt.useMock {
				contactsMock.On("Update", mock.Anything, mock.MatchedBy(func(c models.Contact) bool {
					return c.ID == 3 && c.UserID == 7
				})).Return(nil).Once()
			}

			handler := New(newNoopLogger(), contactsMock)

			req := httptest.NewRequest(http.MethodPost, "/api?action=update_contact",
				bytes.NewReader([]byte(tt.requestBody)))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, true, got["success"])
			}

			contactsMock.AssertExpectations(t)
		})
	}
}
