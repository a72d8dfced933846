// Package validation содержит чистые правила проверки полей мастера
// регистрации. Функции не имеют побочных эффектов и применяются на каждом
// шаге до записи значения в черновик.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Digits оставляет в строке только цифры. Применяется к полям роста и
// веса на каждом вводе, а не при отправке.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeDay разбирает день месяца: цифры, верхняя граница 31, нижняя 1,
// дополнение нулём до двух знаков. Пустой или нечисловой ввод отклоняется.
func NormalizeDay(s string) (string, bool) {
	return normalizeClamped(s, 31)
}

// NormalizeMonth разбирает месяц: цифры, верхняя граница 12, нижняя 1,
// дополнение нулём до двух знаков.
func NormalizeMonth(s string) (string, bool) {
	return normalizeClamped(s, 12)
}

func normalizeClamped(s string, max int) (string, bool) {
	digits := Digits(s)
	if digits == "" {
		return "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}
	if n > max {
		n = max
	}
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%02d", n), true
}

// ValidYear принимает ровно четыре цифры, без проверки диапазона.
func ValidYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	return Digits(s) == s
}

// BirthDate собирает дату рождения в формате YYYY-MM-DD из трёх полей.
func BirthDate(day, month, year string) (string, bool) {
	d, ok := NormalizeDay(day)
	if !ok {
		return "", false
	}
	m, ok := NormalizeMonth(month)
	if !ok {
		return "", false
	}
	if !ValidYear(year) {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%s", year, m, d), true
}

// EmailOK — входная проверка почты: наличие символа @. Авторитетную
// проверку формата и уникальности выполняет сервер.
func EmailOK(s string) bool {
	return strings.Contains(s, "@")
}

// PasswordOK — минимальная длина пароля при регистрации.
func PasswordOK(s string) bool {
	return len(s) >= 6
}
