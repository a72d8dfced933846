package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/profile"
)

// ShowProfile печатает профиль текущего пользователя.
func (a *App) ShowProfile(ctx context.Context) error {
	form, err := a.editor.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "No se pudo cargar el perfil:", err)
		return err
	}

	fmt.Fprintln(a.out, "Nombre:", form.Nombre)
	fmt.Fprintln(a.out, "Apellidos:", form.Apellidos)
	fmt.Fprintln(a.out, "Email:", form.Email)
	fmt.Fprintln(a.out, "Fecha de nacimiento:", form.FechaNacimiento)
	fmt.Fprintln(a.out, "Altura:", form.AlturaCm, "cm")
	fmt.Fprintln(a.out, "Peso:", form.PesoKg, "kg")
	fmt.Fprintln(a.out, "Genero:", form.Genero)
	fmt.Fprintln(a.out, "Condiciones:", strings.Join(form.Condiciones, ", "))
	if form.Otro != "" {
		fmt.Fprintln(a.out, "Otra condicion:", form.Otro)
	}
	return nil
}

// EditProfile загружает форму, даёт изменить поля и сохраняет профиль
// целиком. Пустой ввод оставляет прежнее значение поля.
func (a *App) EditProfile(ctx context.Context) error {
	form, err := a.editor.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "No se pudo cargar el perfil:", err)
		return err
	}

	fmt.Fprintln(a.out, "Deja un campo vacio para conservar el valor actual.")

	fields := []struct {
		prompt string
		target *string
	}{
		{"Nombre", &form.Nombre},
		{"Apellidos", &form.Apellidos},
		{"Email", &form.Email},
		{"Fecha de nacimiento (YYYY-MM-DD)", &form.FechaNacimiento},
		{"Altura en cm", &form.AlturaCm},
		{"Peso en kg", &form.PesoKg},
	}
	for _, f := range fields {
		line, err := promptLine(a.reader, a.out, fmt.Sprintf("%s [%s]", f.prompt, *f.target))
		if err != nil {
			return err
		}
		if line != "" {
			*f.target = line
		}
	}

	genero, err := promptLine(a.reader, a.out, fmt.Sprintf("Genero (f/m) [%s]", form.Genero))
	if err != nil {
		return err
	}
	switch genero {
	case "m":
		form.Genero = "Masculino"
	case "f":
		form.Genero = "Femenino"
	}

	condiciones, err := promptList(a.reader, a.out, "Condiciones medicas (vacio conserva las actuales)")
	if err != nil {
		return err
	}
	if len(condiciones) > 0 {
		form.Condiciones = condiciones
	}

	otro, err := promptLine(a.reader, a.out, fmt.Sprintf("Otra condicion [%s]", form.Otro))
	if err != nil {
		return err
	}
	if otro != "" {
		form.Otro = otro
	}

	if err := a.editor.Save(ctx, *form); err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingFields):
			fmt.Fprintln(a.out, "Todos los campos principales son obligatorios")
		case errors.Is(err, profile.ErrInvalidNumber):
			fmt.Fprintln(a.out, "Altura y peso deben ser numeros")
		case errors.Is(err, api.ErrConflict):
			fmt.Fprintln(a.out, "El correo ya esta registrado")
		default:
			var vErr *api.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintln(a.out, vErr.Message)
			} else {
				fmt.Fprintln(a.out, "No se pudo guardar el perfil:", err)
			}
		}
		return nil
	}

	fmt.Fprintln(a.out, "Perfil actualizado")
	return nil
}
