package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/session"
)

type AccountAPIMock struct {
	mock.Mock
}

func (m *AccountAPIMock) GetUser(ctx context.Context, id int) (*api.Profile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*api.Profile)
	return profile, args.Error(1)
}

func (m *AccountAPIMock) UpdateUser(ctx context.Context, req api.UpdateUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func loggedInStore() *session.Store {
	store := session.NewStore()
	store.Set(session.User{ID: 7, Nombre: "Ana", Apellidos: "Lopez", Email: "ana@example.com"})
	return store
}

func validForm() Form {
	return Form{
		Nombre:          "Ana",
		Apellidos:       "Lopez",
		Email:           "ana@example.com",
		FechaNacimiento: "1990-05-01",
		AlturaCm:        "166",
		PesoKg:          "61",
		Genero:          "Femenino",
		Condiciones:     []string{"Diabetes"},
	}
}

func TestEditor_Load(t *testing.T) {
	apiMock := new(AccountAPIMock)
	apiMock.On("GetUser", mock.Anything, 7).Return(&api.Profile{
		ID:              7,
		Nombre:          "Ana",
		Apellidos:       "Lopez",
		Email:           "ana@example.com",
		FechaNacimiento: "1990-05-01",
		AlturaCm:        165,
		PesoKg:          60,
		Genero:          "Femenino",
		Condiciones:     api.StringList{"Diabetes"},
	}, nil).Once()

	editor := NewEditor(apiMock, loggedInStore())

	form, err := editor.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", form.Nombre)
	assert.Equal(t, "165", form.AlturaCm)
	assert.Equal(t, []string{"Diabetes"}, form.Condiciones)
	apiMock.AssertExpectations(t)
}

func TestEditor_Load_RequiresSession(t *testing.T) {
	editor := NewEditor(new(AccountAPIMock), session.NewStore())

	_, err := editor.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

// Любое значение пола, кроме точного "Masculino", отображается как "Femenino".
func TestEditor_Load_GenderFallback(t *testing.T) {
	tests := []struct {
		name   string
		genero string
		want   string
	}{
		{name: "masculine is kept", genero: "Masculino", want: "Masculino"},
		{name: "feminine is kept", genero: "Femenino", want: "Femenino"},
		{name: "empty falls back", genero: "", want: "Femenino"},
		{name: "unexpected value falls back", genero: "masculino", want: "Femenino"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiMock := new(AccountAPIMock)
			apiMock.On("GetUser", mock.Anything, 7).
				Return(&api.Profile{ID: 7, Genero: tt.genero}, nil).Once()

			editor := NewEditor(apiMock, loggedInStore())

			form, err := editor.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, form.Genero)
		})
	}
}

func TestEditor_Load_NilConditionsBecomeEmptyList(t *testing.T) {
	apiMock := new(AccountAPIMock)
	apiMock.On("GetUser", mock.Anything, 7).
		Return(&api.Profile{ID: 7}, nil).Once()

	editor := NewEditor(apiMock, loggedInStore())

	form, err := editor.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, form.Condiciones)
	assert.Empty(t, form.Condiciones)
}

func TestEditor_Save(t *testing.T) {
	apiMock := new(AccountAPIMock)
	apiMock.On("UpdateUser", mock.Anything, mock.MatchedBy(func(req api.UpdateUserRequest) bool {
		return req.ID == 7 && req.AlturaCm == 166 && req.PesoKg == 61
	})).Return(nil).Once()

	store := loggedInStore()
	editor := NewEditor(apiMock, store)

	form := validForm()
	form.Nombre = "Ana Maria"
	form.Email = "nueva@example.com"

	require.NoError(t, editor.Save(context.Background(), form))

	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "Ana Maria", user.Nombre)
	assert.Equal(t, "nueva@example.com", user.Email)
	apiMock.AssertExpectations(t)
}

func TestEditor_Save_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
	}{
		{
			name:    "empty nombre",
			mutate:  func(f *Form) { f.Nombre = "  " },
			wantErr: ErrMissingFields,
		},
		{
			name:    "empty altura",
			mutate:  func(f *Form) { f.AlturaCm = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "non numeric peso",
			mutate:  func(f *Form) { f.PesoKg = "sesenta" },
			wantErr: ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiMock := new(AccountAPIMock)
			editor := NewEditor(apiMock, loggedInStore())

			form := validForm()
			tt.mutate(&form)

			err := editor.Save(context.Background(), form)
			assert.ErrorIs(t, err, tt.wantErr)
			apiMock.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
		})
	}
}

func TestEditor_Save_FailureKeepsSession(t *testing.T) {
	apiMock := new(AccountAPIMock)
	apiMock.On("UpdateUser", mock.Anything, mock.Anything).
		Return(api.ErrConflict).Once()

	store := loggedInStore()
	editor := NewEditor(apiMock, store)

	form := validForm()
	form.Email = "ocupado@example.com"

	err := editor.Save(context.Background(), form)
	assert.ErrorIs(t, err, api.ErrConflict)

	user, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user.Email)
}
