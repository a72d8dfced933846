package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-companion/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	user := TestUser()

	id, err := storage.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	got, err := storage.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, "1990-05-01", got.FechaNacimiento)
	require.NotNil(t, got.Condiciones)
	assert.Equal(t, `["Hipertension arterial"]`, *got.Condiciones)
	assert.Nil(t, got.Otro)
}

func TestStorage_RegisterUser_DuplicateEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	first := TestUser()

	_, err := storage.RegisterUser(ctx, first)
	require.NoError(t, err)

	second := TestUser()
	second.Email = first.Email

	_, err = storage.RegisterUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// Уникальность email обеспечивает индекс по lower(email): смена регистра
// не обходит проверку, даже минуя предварительный SELECT.
func TestStorage_RegisterUser_DuplicateEmailDifferentCase(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	first := TestUser()

	_, err := storage.RegisterUser(ctx, first)
	require.NoError(t, err)

	second := TestUser()
	second.Email = strings.ToUpper(first.Email)

	_, err = storage.RegisterUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestStorage_GetUserByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	user := TestUser()
	id := factory.CreateUser(t, user)

	got, err := storage.GetUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = storage.GetUserByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	user := TestUser()
	id := factory.CreateUser(t, user)

	otro := "Migrana"
	user.ID = id
	user.Nombre = "Ana Maria"
	user.AlturaCm = 166
	user.Otro = &otro

	require.NoError(t, storage.UpdateUser(ctx, user))

	got, err := storage.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nombre)
	assert.Equal(t, 166, got.AlturaCm)
	require.NotNil(t, got.Otro)
	assert.Equal(t, "Migrana", *got.Otro)
}

func TestStorage_UpdateUser_UnknownIDIsNotAnError(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	user := TestUser()
	user.ID = 424242

	assert.NoError(t, storage.UpdateUser(context.Background(), user))
}

func TestStorage_Contacts(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	userID := factory.CreateUser(t, TestUser())

	relacion := "Hermano"
	contactID, err := storage.CreateContact(ctx, models.Contact{
		UserID:    userID,
		Nombre:    "Luis",
		Apellidos: "Perez",
		Email:     "luis@example.com",
		Telefono:  "600111222",
		Relacion:  &relacion,
	})
	require.NoError(t, err)
	assert.Greater(t, contactID, 0)

	contacts, err := storage.ListContacts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Luis", contacts[0].Nombre)
	require.NotNil(t, contacts[0].Relacion)
	assert.Equal(t, "Hermano", *contacts[0].Relacion)
}

func TestStorage_ListContacts_EmptyIsNotNil(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, TestUser())

	contacts, err := storage.ListContacts(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Len(t, contacts, 0)
}

func TestStorage_UpdateContact_OwnerFilter(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	ownerID := factory.CreateUser(t, TestUser())
	otherID := factory.CreateUser(t, TestUser())
	contactID := factory.CreateContact(t, ownerID, "Luis", "Perez", "luis@example.com", "600111222")

	rows, err := storage.UpdateContact(ctx, models.Contact{
		ID:        contactID,
		UserID:    otherID,
		Nombre:    "Hacked",
		Apellidos: "Hacked",
		Email:     "hacked@example.com",
		Telefono:  "000",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	contacts, err := storage.ListContacts(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Luis", contacts[0].Nombre)
}

func TestStorage_RemoveContact_OwnerFilter(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	ownerID := factory.CreateUser(t, TestUser())
	otherID := factory.CreateUser(t, TestUser())
	contactID := factory.CreateContact(t, ownerID, "Luis", "Perez", "luis@example.com", "600111222")

	rows, err := storage.RemoveContact(ctx, contactID, otherID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.Equal(t, 1, factory.CountContacts(t, contactID))

	rows, err = storage.RemoveContact(ctx, contactID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, 0, factory.CountContacts(t, contactID))
}
