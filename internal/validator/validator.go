package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// report JSON field names so messages match the request body
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the struct's validate tags. Failures are joined into one
// error of the form "field 'campaignId' is required".
func Validate(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		if e.Tag() == "required" {
			messages = append(messages, fmt.Sprintf("field '%s' is required", e.Field()))
			continue
		}
		messages = append(messages, fmt.Sprintf("field '%s' failed validation '%s'", e.Field(), e.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
