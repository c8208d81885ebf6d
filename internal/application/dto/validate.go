package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los errores usan el nombre del campo del formulario, no el del struct.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("name"); name != "" {
				return name
			}
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// checker chequeos ad hoc que no se expresan con tags.
type checker interface {
	Check() error
}

// Validate aplica los tags validate del formulario y luego su Check, si lo tiene.
// Devuelve *domain.ValidationError con el primer campo inválido.
func Validate(form any) error {
	if err := validatorInstance().Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.NewValidationError(fe.Field(), fieldMessage(fe))
		}
		return err
	}
	if c, ok := form.(checker); ok {
		return c.Check()
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	label := entity.HumanizeEnum(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "eqfield":
		return "Passwords do not match"
	case "numeric", "number":
		return label + " must be a number"
	case "email":
		return label + " must be a valid email"
	case "oneof":
		return label + " has an invalid value"
	}
	return label + " is invalid"
}

// FlattenMulti convierte los valores de un multi-select en un único valor plano "a,b,c".
func FlattenMulti(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return strings.Join(out, ",")
}

// SplitMulti inverso de FlattenMulti.
func SplitMulti(flat string) []string {
	if strings.TrimSpace(flat) == "" {
		return []string{}
	}
	return strings.Split(FlattenMulti([]string{flat}), ",")
}

// Blank el texto está vacío o solo tiene espacios.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
