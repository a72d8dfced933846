package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestDraftStore_Merge(t *testing.T) {
	store := NewDraftStore()

	store.Merge(Partial{
		Nombre: strPtr("Ana"),
		Email:  strPtr("ana@example.com"),
	})

	draft := store.Read()
	assert.Equal(t, "Ana", draft.Nombre)
	assert.Equal(t, "ana@example.com", draft.Email)
	assert.Empty(t, draft.Apellidos)
}

func TestDraftStore_Merge_NilFieldsKeepPrevious(t *testing.T) {
	store := NewDraftStore()
	store.Merge(Partial{Nombre: strPtr("Ana"), Apellidos: strPtr("Lopez")})

	store.Merge(Partial{Nombre: strPtr("Ana Maria")})

	draft := store.Read()
	assert.Equal(t, "Ana Maria", draft.Nombre)
	assert.Equal(t, "Lopez", draft.Apellidos)
}

func TestDraftStore_Merge_IsIdempotent(t *testing.T) {
	store := NewDraftStore()
	p := Partial{Nombre: strPtr("Ana"), Email: strPtr("ana@example.com")}

	store.Merge(p)
	first := store.Read()
	store.Merge(p)

	assert.Equal(t, first, store.Read())
}

func TestDraftStore_Reset(t *testing.T) {
	store := NewDraftStore()
	gender := GenderFemale
	store.Merge(Partial{Nombre: strPtr("Ana"), Genero: &gender})

	store.Reset()

	assert.Equal(t, Draft{}, store.Read())
}

func TestDraft_Complete(t *testing.T) {
	full := Draft{
		Nombre:          "Ana",
		Apellidos:       "Lopez",
		Email:           "ana@example.com",
		Password:        "secreto1",
		FechaNacimiento: "1990-05-01",
		AlturaCm:        "165",
		PesoKg:          "60",
		Genero:          GenderFemale,
	}
	assert.True(t, full.complete())

	missing := full
	missing.PesoKg = ""
	assert.False(t, missing.complete())

	assert.False(t, Draft{}.complete())
}
