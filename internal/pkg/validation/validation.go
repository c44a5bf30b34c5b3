package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

// RegisterCustomValidators installs the custom binding rules on Gin's
// validator engine. Request DTOs can then use the `slug` tag to reject
// malformed slugs during binding, before a handler runs.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return helpers.IsValidSlug(fl.Field().String())
	})
}
