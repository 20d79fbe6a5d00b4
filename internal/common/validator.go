package common

import "fmt"

// ValidationError carries a field to message map so that handlers can
// render every failed check in a single response.
type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records the first message for a field; later checks on the
// same field do not overwrite it.
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) CheckMinLength(s string, min int) bool {
	return len(s) >= min
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
