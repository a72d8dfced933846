package registration

import (
	"context"
	"errors"
	"strings"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/validation"
)

// Gender — внутренний код пола в черновике.
type Gender string

const (
	// GenderFemale — код женского пола, выбор по умолчанию.
	GenderFemale Gender = "f"
	// GenderMale — код мужского пола.
	GenderMale Gender = "m"
)

// DisplayLabel возвращает отображаемое значение пола для сервера.
func (g Gender) DisplayLabel() string {
	if g == GenderMale {
		return "Masculino"
	}
	return "Femenino"
}

// Step — шаг мастера регистрации.
type Step int

const (
	// StepPersonalInfo — имя, фамилии, почта, пароль, дата рождения.
	StepPersonalInfo Step = iota
	// StepBodyMetrics — рост и вес.
	StepBodyMetrics
	// StepGender — выбор пола.
	StepGender
	// StepMedicalHistory — медицинские состояния и отправка.
	StepMedicalHistory
	// StepSubmitted — регистрация завершена.
	StepSubmitted
)

// DefaultCondition предвыбранное состояние на последнем шаге.
const DefaultCondition = "Hipertension arterial"

var (
	// ErrWrongStep — операция не соответствует текущему шагу мастера.
	ErrWrongStep = errors.New("operation does not match current wizard step")
	// ErrInvalidInput — поля шага не прошли проверку.
	ErrInvalidInput = errors.New("step input is not valid")
	// ErrIncompleteDraft — к финальному шагу накоплены не все поля.
	ErrIncompleteDraft = errors.New("draft is missing required fields")
)

// Registrar описывает единственную нужную мастеру операцию API.
type Registrar interface {
	Register(ctx context.Context, req api.RegisterRequest) (int, error)
}

// PersonalInfo — ввод первого шага.
type PersonalInfo struct {
	Nombre    string
	Apellidos string
	Email     string
	Password  string
	Day       string
	Month     string
	Year      string
}

// Wizard проводит пользователя по шагам регистрации. Поля попадают в
// черновик только после проверки шага; отправка выполняется один раз,
// на финальном шаге, целиком.
type Wizard struct {
	draft     *DraftStore
	registrar Registrar
	step      Step
}

// NewWizard создаёт мастер на первом шаге с пустым черновиком.
func NewWizard(draft *DraftStore, registrar Registrar) *Wizard {
	return &Wizard{
		draft:     draft,
		registrar: registrar,
		step:      StepPersonalInfo,
	}
}

// Step возвращает текущий шаг.
func (w *Wizard) Step() Step {
	return w.step
}

// Back возвращает мастер на предыдущий шаг. Назад можно всегда,
// накопленные поля при этом не очищаются.
func (w *Wizard) Back() {
	if w.step > StepPersonalInfo && w.step < StepSubmitted {
		w.step--
	}
}

// SubmitPersonalInfo проверяет поля первого шага и двигает мастер дальше.
// Дата рождения собирается в строку YYYY-MM-DD с выравниванием нулями.
func (w *Wizard) SubmitPersonalInfo(in PersonalInfo) error {
	if w.step != StepPersonalInfo {
		return ErrWrongStep
	}

	nombre := strings.TrimSpace(in.Nombre)
	apellidos := strings.TrimSpace(in.Apellidos)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if nombre == "" || apellidos == "" {
		return ErrInvalidInput
	}
	if !validation.EmailOK(email) {
		return ErrInvalidInput
	}
	if !validation.PasswordOK(in.Password) {
		return ErrInvalidInput
	}
	fecha, ok := validation.BirthDate(in.Day, in.Month, in.Year)
	if !ok {
		return ErrInvalidInput
	}

	w.draft.Merge(Partial{
		Nombre:          &nombre,
		Apellidos:       &apellidos,
		Email:           &email,
		Password:        &in.Password,
		FechaNacimiento: &fecha,
	})
	w.step = StepBodyMetrics
	return nil
}

// SubmitBodyMetrics проверяет рост и вес. Нецифровые символы
// отбрасываются, пустые после очистки значения отклоняются.
func (w *Wizard) SubmitBodyMetrics(altura, peso string) error {
	if w.step != StepBodyMetrics {
		return ErrWrongStep
	}

	alturaDigits := validation.Digits(altura)
	pesoDigits := validation.Digits(peso)
	if alturaDigits == "" || pesoDigits == "" {
		return ErrInvalidInput
	}

	w.draft.Merge(Partial{
		AlturaCm: &alturaDigits,
		PesoKg:   &pesoDigits,
	})
	w.step = StepGender
	return nil
}

// SubmitGender фиксирует выбор пола. Проверки нет: выбор по умолчанию
// существует всегда.
func (w *Wizard) SubmitGender(g Gender) error {
	if w.step != StepGender {
		return ErrWrongStep
	}

	w.draft.Merge(Partial{Genero: &g})
	w.step = StepMedicalHistory
	return nil
}

// Submit выполняет финальную отправку: проверяет полноту черновика,
// собирает payload и выдаёт ровно один запрос регистрации. При успехе
// черновик сбрасывается; при любой ошибке черновик и шаг сохраняются,
// пользователь может исправить данные и повторить.
func (w *Wizard) Submit(ctx context.Context, condiciones []string, otro string) (int, error) {
	if w.step != StepMedicalHistory {
		return 0, ErrWrongStep
	}

	draft := w.draft.Read()
	if !draft.complete() {
		return 0, ErrIncompleteDraft
	}

	if len(condiciones) == 0 {
		condiciones = []string{DefaultCondition}
	}
	var otroPtr *string
	if trimmed := strings.TrimSpace(otro); trimmed != "" {
		otroPtr = &trimmed
	}

	id, err := w.registrar.Register(ctx, api.RegisterRequest{
		Nombre:          draft.Nombre,
		Apellidos:       draft.Apellidos,
		Email:           draft.Email,
		Password:        draft.Password,
		FechaNacimiento: draft.FechaNacimiento,
		AlturaCm:        draft.AlturaCm,
		PesoKg:          draft.PesoKg,
		Genero:          draft.Genero.DisplayLabel(),
		Condiciones:     condiciones,
		Otro:            otroPtr,
	})
	if err != nil {
		return 0, err
	}

	w.draft.Reset()
	w.step = StepSubmitted
	return id, nil
}
