package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "digits only", input: "165", want: "165"},
		{name: "letters are dropped", input: "1a6b5", want: "165"},
		{name: "units are dropped", input: "165 cm", want: "165"},
		{name: "no digits", input: "abc", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Digits(tt.input))
		})
	}
}

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "single digit is zero padded", input: "5", want: "05", wantOK: true},
		{name: "two digits stay as-is", input: "28", want: "28", wantOK: true},
		{name: "above range clamps to 31", input: "45", want: "31", wantOK: true},
		{name: "zero clamps to 1", input: "0", want: "01", wantOK: true},
		{name: "empty is rejected", input: "", wantOK: false},
		{name: "letters are rejected", input: "abc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDay(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "single digit is zero padded", input: "5", want: "05", wantOK: true},
		{name: "above range clamps to 12", input: "13", want: "12", wantOK: true},
		{name: "zero clamps to 1", input: "0", want: "01", wantOK: true},
		{name: "empty is rejected", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMonth(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidYear(t *testing.T) {
	assert.True(t, ValidYear("2020"))
	assert.True(t, ValidYear("0001"))
	assert.False(t, ValidYear("20"))
	assert.False(t, ValidYear("20201"))
	assert.False(t, ValidYear("20a0"))
	assert.False(t, ValidYear(""))
}

func TestBirthDate(t *testing.T) {
	tests := []struct {
		name   string
		day    string
		month  string
		year   string
		want   string
		wantOK bool
	}{
		{name: "plain date", day: "28", month: "05", year: "1990", want: "1990-05-28", wantOK: true},
		{name: "padding and clamping", day: "5", month: "13", year: "2020", want: "2020-12-05", wantOK: true},
		{name: "invalid year", day: "5", month: "5", year: "90", wantOK: false},
		{name: "empty day", day: "", month: "5", year: "1990", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BirthDate(tt.day, tt.month, tt.year)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailOK(t *testing.T) {
	assert.True(t, EmailOK("ana@example.com"))
	assert.True(t, EmailOK("a@b"))
	assert.False(t, EmailOK("ana.example.com"))
	assert.False(t, EmailOK(""))
}

func TestPasswordOK(t *testing.T) {
	assert.True(t, PasswordOK("secreto"))
	assert.True(t, PasswordOK("123456"))
	assert.False(t, PasswordOK("12345"))
	assert.False(t, PasswordOK(""))
}
