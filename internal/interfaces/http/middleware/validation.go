package middleware

import (
	"reflect"
	"strings"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures gin's validator with JSON tag field names and
// the custom "company" tag. Must run once before the first request binds.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON (or form) tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// company validates an entity name against the closed company enum
	_ = v.RegisterValidation("company", func(fl validator.FieldLevel) bool {
		return job.Company(fl.Field().String()).IsValid()
	})
}
