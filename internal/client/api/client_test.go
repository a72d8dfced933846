package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second)
}

func TestClient_Register(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "register", r.URL.Query().Get("action"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)
		assert.Equal(t, "165", req.AlturaCm)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "user_id": 7})
	})

	id, err := client.Register(context.Background(), RegisterRequest{
		Nombre:          "Ana",
		Apellidos:       "Lopez",
		Email:           "ana@example.com",
		Password:        "secreto1",
		FechaNacimiento: "1990-05-01",
		AlturaCm:        "165",
		PesoKg:          "60",
		Genero:          "Femenino",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestClient_Register_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "El correo ya esta registrado"})
	})

	_, err := client.Register(context.Background(), RegisterRequest{})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "login", r.URL.Query().Get("action"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"id":        7,
				"nombre":    "Ana",
				"apellidos": "Lopez",
				"email":     "ana@example.com",
			},
		})
	})

	user, err := client.Login(context.Background(), "ana@example.com", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "Ana", user.Nombre)
}

func TestClient_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{
			name:       "bad request becomes validation error",
			statusCode: http.StatusBadRequest,
			body:       `{"error":"Email y password requeridos"}`,
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":"Credenciales invalidas"}`,
			wantErr:    ErrUnauthorized,
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"error":"Accion no encontrada"}`,
			wantErr:    ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Login(context.Background(), "ana@example.com", "x")
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "Email y password requeridos", vErr.Message)
		})
	}
}

func TestClient_GetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "get_user", r.URL.Query().Get("action"))
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"id":          7,
				"email":       "ana@example.com",
				"condiciones": []string{"Diabetes"},
			},
		})
	})

	profile, err := client.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, StringList{"Diabetes"}, profile.Condiciones)
}

func TestClient_GetUser_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Usuario no encontrado"}`))
	})

	_, err := client.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ListContacts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "list_contacts", r.URL.Query().Get("action"))
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"contacts": []map[string]any{{"id": 3, "user_id": 7, "nombre": "Luis"}},
		})
	})

	contacts, err := client.ListContacts(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Luis", contacts[0].Nombre)
}

func TestClient_DeleteContact(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "delete_contact", r.URL.Query().Get("action"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["id"])
		assert.Equal(t, 7, body["user_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	assert.NoError(t, client.DeleteContact(context.Background(), 3, 7))
}

func TestStringList_TolerantDecoding(t *testing.T) {
	var profile Profile
	err := json.Unmarshal([]byte(`{"id":7,"condiciones":"texto crudo"}`), &profile)
	require.NoError(t, err)
	assert.Nil(t, []string(profile.Condiciones))
}
