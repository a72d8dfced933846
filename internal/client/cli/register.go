package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/registration"
)

// backCommand возвращает мастер на предыдущий шаг, cancelCommand
// прерывает регистрацию целиком.
const (
	backCommand   = "atras"
	cancelCommand = "cancelar"
)

// RegisterUser проводит пользователя по шагам мастера регистрации.
// Введённые поля накапливаются в черновике, так что возврат на шаг
// назад ничего не теряет. Запрос на сервер уходит один раз, в конце.
func (a *App) RegisterUser(ctx context.Context) error {
	wizard := registration.NewWizard(registration.NewDraftStore(), a.api)
	fmt.Fprintln(a.out, "Registro. Escribe 'atras' para volver o 'cancelar' para salir.")

	for wizard.Step() != registration.StepSubmitted {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var err error
		switch wizard.Step() {
		case registration.StepPersonalInfo:
			err = a.stepPersonalInfo(wizard)
		case registration.StepBodyMetrics:
			err = a.stepBodyMetrics(wizard)
		case registration.StepGender:
			err = a.stepGender(wizard)
		case registration.StepMedicalHistory:
			err = a.stepSubmit(ctx, wizard)
		}
		if err != nil {
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(a.out, "Registro cancelado")
				return nil
			}
			return err
		}
	}
	return nil
}

var errCancelled = errors.New("registration cancelled")

// stepField читает поле шага и перехватывает навигационные команды.
// Возврат назад обозначается ok=false при nil-ошибке.
func (a *App) stepField(wizard *registration.Wizard, prompt string) (value string, ok bool, err error) {
	line, err := promptLine(a.reader, a.out, prompt)
	if err != nil {
		return "", false, err
	}
	switch line {
	case cancelCommand:
		return "", false, errCancelled
	case backCommand:
		wizard.Back()
		return "", false, nil
	}
	return line, true, nil
}

func (a *App) stepPersonalInfo(wizard *registration.Wizard) error {
	fmt.Fprintln(a.out, "Paso 1 de 4: datos personales")

	var in registration.PersonalInfo
	fields := []struct {
		prompt string
		target *string
	}{
		{"Nombre", &in.Nombre},
		{"Apellidos", &in.Apellidos},
		{"Email", &in.Email},
	}
	for _, f := range fields {
		value, ok, err := a.stepField(wizard, f.prompt)
		if err != nil || !ok {
			return err
		}
		*f.target = value
	}

	password, err := promptPassword(a.out, "Contrasena (minimo 6 caracteres)")
	if err != nil {
		return err
	}
	in.Password = password

	for _, f := range []struct {
		prompt string
		target *string
	}{
		{"Dia de nacimiento", &in.Day},
		{"Mes de nacimiento", &in.Month},
		{"Ano de nacimiento (4 digitos)", &in.Year},
	} {
		value, ok, err := a.stepField(wizard, f.prompt)
		if err != nil || !ok {
			return err
		}
		*f.target = value
	}

	if err := wizard.SubmitPersonalInfo(in); err != nil {
		fmt.Fprintln(a.out, "Datos no validos, revisa los campos")
		return nil
	}
	return nil
}

func (a *App) stepBodyMetrics(wizard *registration.Wizard) error {
	fmt.Fprintln(a.out, "Paso 2 de 4: medidas corporales")

	altura, ok, err := a.stepField(wizard, "Altura en cm")
	if err != nil || !ok {
		return err
	}
	peso, ok, err := a.stepField(wizard, "Peso en kg")
	if err != nil || !ok {
		return err
	}

	if err := wizard.SubmitBodyMetrics(altura, peso); err != nil {
		fmt.Fprintln(a.out, "Altura y peso deben contener digitos")
		return nil
	}
	return nil
}

func (a *App) stepGender(wizard *registration.Wizard) error {
	fmt.Fprintln(a.out, "Paso 3 de 4: genero")

	choice, ok, err := a.stepField(wizard, "Genero (f = Femenino, m = Masculino, vacio = Femenino)")
	if err != nil || !ok {
		return err
	}

	gender := registration.GenderFemale
	if choice == "m" {
		gender = registration.GenderMale
	}
	return wizard.SubmitGender(gender)
}

func (a *App) stepSubmit(ctx context.Context, wizard *registration.Wizard) error {
	fmt.Fprintln(a.out, "Paso 4 de 4: antecedentes medicos")
	fmt.Fprintf(a.out, "Sin seleccion se registra: %s\n", registration.DefaultCondition)

	condiciones, err := promptList(a.reader, a.out, "Condiciones medicas")
	if err != nil {
		return err
	}
	if len(condiciones) == 1 {
		switch condiciones[0] {
		case cancelCommand:
			return errCancelled
		case backCommand:
			wizard.Back()
			return nil
		}
	}

	otro, err := promptLine(a.reader, a.out, "Otra condicion (opcional)")
	if err != nil {
		return err
	}

	id, err := wizard.Submit(ctx, condiciones, otro)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrConflict):
			fmt.Fprintln(a.out, "El correo ya esta registrado, vuelve atras y corrigelo")
		case errors.Is(err, registration.ErrIncompleteDraft):
			fmt.Fprintln(a.out, "Faltan datos de pasos anteriores")
		default:
			var vErr *api.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintln(a.out, vErr.Message)
			} else {
				fmt.Fprintln(a.out, "No se pudo completar el registro:", err)
			}
		}
		return nil
	}

	fmt.Fprintf(a.out, "Registro completado, tu numero de usuario es %d\n", id)
	return nil
}
