// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer and for configuration, never in
// storage. Checksum rules (ISBN) delegate to go-playground/validator.
package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// rules runs single-value checks (isbn10, isbn13). validator.Validate is safe for concurrent use.
var rules = validator.New()

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// ISBN10 fails if a non-empty value is not a valid ISBN-10.
//
// Hyphens and spaces are tolerated; callers storing the value strip them first.
func (v *Validator) ISBN10(field, value string) *Validator {
	if value != "" && rules.Var(value, "isbn10") != nil {
		v.add(field, "Must be a valid ISBN-10")
	}
	return v
}

// ISBN13 fails if a non-empty value is not a valid ISBN-13.
//
// Hyphens and spaces are tolerated; callers storing the value strip them first.
func (v *Validator) ISBN13(field, value string) *Validator {
	if value != "" && rules.Var(value, "isbn13") != nil {
		v.add(field, "Must be a valid ISBN-13")
	}
	return v
}

// Date fails if the value is not a YYYY-MM-DD calendar date.
func (v *Validator) Date(field, value string) *Validator {
	if _, err := time.Parse(DateLayout, value); err != nil {
		v.add(field, "Enter a valid date (YYYY-MM-DD)")
	}
	return v
}

// OneOf fails if a non-empty value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, "Select a valid choice")
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("date_to", to.Before(from), "Must not precede date_from")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// Fields indexes the field errors of err by field name.
//
// The first message per field wins. A nil map is returned when err is not a
// validation error.
func Fields(err error) map[string]string {
	ae := apperr.As(err)
	if ae == nil || len(ae.Details) == 0 {
		return nil
	}

	fields := make(map[string]string, len(ae.Details))
	for _, detail := range ae.Details {
		if _, seen := fields[detail.Field]; !seen {
			fields[detail.Field] = detail.Message
		}
	}
	return fields
}
