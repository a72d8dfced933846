// Package validate настраивает общий экземпляр validator для HTTP-обработчиков.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// New возвращает validator, который в сообщениях об ошибках использует
// имена полей из json-тегов, а не имена полей Go-структур.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
