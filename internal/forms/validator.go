// Package forms holds the login, signup and offer-letter schemas and the
// per-field error maps they produce.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its human-readable message.
type Errors map[string]string

// Clear drops the message for field only.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// ValidationError is returned when any field of a form fails its rules.
type ValidationError struct {
	Fields Errors
	// First is the first invalid field in form order.
	First string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their json names so error maps line up with the wire/form keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("min16", minUTF16)
	return v
}

// minUTF16 measures strings in UTF-16 code units, the unit the browser build counts in,
// so a character outside the BMP counts as two.
func minUTF16(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf16Len(fl.Field().String()) >= n
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// messages holds field -> rule -> message. A rule missing here falls back to a generic text.
type messages map[string]map[string]string

// check runs the struct rules and converts failures to an Errors map.
// validator stops at the first failing rule of each field, so each field carries one message.
func check(s any, msgs messages) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	out := &ValidationError{Fields: make(Errors, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = messageFor(msgs, field, fe.Tag())
		if out.First == "" {
			out.First = field
		}
	}
	return out
}

func messageFor(msgs messages, field, tag string) string {
	if byTag, ok := msgs[field]; ok {
		if m, ok := byTag[tag]; ok {
			return m
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}
