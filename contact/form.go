// Package contact validates the contact form and simulates its submission.
// Nothing is ever sent anywhere.
package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldMessage}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the raw form input.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Value returns the trimmed value of a field.
func (f *Form) Value(field string) string {
	switch field {
	case FieldName:
		return strings.TrimSpace(f.Name)
	case FieldEmail:
		return strings.TrimSpace(f.Email)
	case FieldMessage:
		return strings.TrimSpace(f.Message)
	}
	return ""
}

// Reset clears every field.
func (f *Form) Reset() {
	*f = Form{}
}

// FieldError is a validation failure on one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors collects the field errors of one validation pass, in field order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// Get returns the message for a field, or "" when it is valid.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Validator checks form fields.
type Validator struct {
	v          *validator.Validate
	messageMin int
	rules      map[string]string
}

// NewValidator creates a validator requiring messages of at least
// messageMin characters.
func NewValidator(messageMin int) *Validator {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return &Validator{
		v:          v,
		messageMin: messageMin,
		rules: map[string]string{
			FieldName:    "required",
			FieldEmail:   "required,contact_email",
			FieldMessage: fmt.Sprintf("required,min=%d", messageMin),
		},
	}
}

// ValidateField checks one field and returns its error message, or "" when
// the trimmed value is valid.
func (v *Validator) ValidateField(f *Form, field string) string {
	rule, ok := v.rules[field]
	if !ok {
		return ""
	}
	err := v.v.Var(f.Value(field), rule)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	return v.message(verrs[0].Tag())
}

// Validate checks every field and returns nil when the form is valid.
func (v *Validator) Validate(f *Form) error {
	var errs Errors
	for _, field := range Fields {
		if msg := v.ValidateField(f, field); msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) message(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "contact_email":
		return "Please enter a valid email"
	case "min":
		return fmt.Sprintf("Message must be at least %d characters", v.messageMin)
	}
	return "Invalid value"
}
