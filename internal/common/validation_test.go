package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAadhaar(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"123412341234", true},
		{"12341234123", false},   // 11 digits
		{"1234123412345", false}, // 13 digits
		{"12341234123a", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Aadhaar("aadhaar", tt.in)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestGSTINRule(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"27AAPFU0939F1ZV", true},
		{"27aapfu0939f1zv", true}, // case-insensitive
		{"27AAPFU0939F1XV", false},
		{"AAPFU0939F1ZV", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := GSTIN("gstin", tt.in)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("email", "nope", Email).
		Field("aadhaar", "123412341234", Aadhaar)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "name")
	assert.Contains(t, v.ErrorMessage(), "email")
	assert.NotContains(t, v.ErrorMessage(), "aadhaar")
}

func TestValidatorClean(t *testing.T) {
	v := NewValidator().
		Field("email", "a@b.co", Required, Email)
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
}
