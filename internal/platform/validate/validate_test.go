// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookmanager/internal/platform/apperr"
	"github.com/taibuivan/bookmanager/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Oczy Skóry", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_ISBN checks the checksum rules and the empty-value exemption.
*/
func TestValidator_ISBN(t *testing.T) {
	tests := []struct {
		name    string
		isbn10  string
		isbn13  string
		isValid bool
	}{
		{"both_empty", "", "", true},
		{"valid_pair", "8365970392", "9788365970398", true},
		{"hyphenated_13", "", "978-83-65970-39-8", true},
		{"bad_checksum_10", "8365970393", "", false},
		{"bad_checksum_13", "", "9788365970399", false},
		{"too_short", "12345", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.ISBN10("isbn_10", tt.isbn10).ISBN13("isbn_13", tt.isbn13)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf allows the empty value and rejects unknown codes.
*/
func TestValidator_OneOf(t *testing.T) {
	assert.False(t, (&validate.Validator{}).OneOf("language", "", "en", "pl").HasErrors())
	assert.False(t, (&validate.Validator{}).OneOf("language", "pl", "en", "pl").HasErrors())
	assert.True(t, (&validate.Validator{}).OneOf("language", "xx", "en", "pl").HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").                  // Fails
		MaxLen("author", "abcdef", 5).          // Fails
		Date("published_date", "2021-13-01").   // Fails
		Range("page_size", 41, 1, 40).          // Fails
		ISBN13("isbn_13", "978-0-441-01359-3"). // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 4)
}

/*
TestFields indexes the first message per field.
*/
func TestFields(t *testing.T) {
	err := (&validate.Validator{}).
		Required("title", "").
		MaxLen("title", "", -1).
		Err()

	fields := validate.Fields(err)
	assert.Equal(t, map[string]string{"title": "This field is required"}, fields)

	assert.Nil(t, validate.Fields(nil))
	assert.Nil(t, validate.Fields(apperr.NotFound("Book")))
}
