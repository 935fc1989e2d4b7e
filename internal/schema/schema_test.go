package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"full", `{"name":"Jordan","gpa":"3.5","achievements":[{"id":1,"text":"MVP"}]}`},
		{"empty object", `{}`},
		{"null achievements", `{"achievements":null}`},
		{"extra fields", `{"name":"Jordan","nickname":"J"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateProfile(tt.raw))
		})
	}
}

func TestValidateProfile_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"array root", `[1,2,3]`},
		{"string root", `"profile"`},
		{"numeric gpa", `{"gpa":3.5}`},
		{"achievement without text", `{"achievements":[{"id":1}]}`},
		{"achievement string id", `{"achievements":[{"id":"a","text":"MVP"}]}`},
		{"achievement zero id", `{"achievements":[{"id":0,"text":"MVP"}]}`},
		{"achievement id past max", `{"achievements":[{"id":9223372036854775807,"text":"MVP"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.raw)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %T", err)
			assert.NotEmpty(t, ve.Errors)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateProfile_Malformed(t *testing.T) {
	err := ValidateProfile(`{ invalid json }`)
	require.Error(t, err)

	var se *SyntaxError
	assert.True(t, errors.As(err, &se), "want SyntaxError, got %T", err)
}
