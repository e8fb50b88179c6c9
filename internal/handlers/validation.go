package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// nominalPattern is the shape of a nominal account name: lower case snake
// case starting with a letter.
var nominalPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// RegisterCustomValidators installs the binding validators the DTOs use.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nominal", func(fl validator.FieldLevel) bool {
			return nominalPattern.MatchString(fl.Field().String())
		})
	}
}
