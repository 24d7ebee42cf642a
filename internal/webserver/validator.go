package webserver

import (
	"github.com/go-playground/validator/v10"
)

// Validator wires go-playground/validator into echo so payload structs can
// declare validate tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
