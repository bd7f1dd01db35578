package errors

import (
	"math"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical", 800, false},
		{"fractional", 0.5, false},
		{"max", MaxDimension, false},

		{"zero", 0, true},
		{"negative", -10, true},
		{"too large", MaxDimension + 1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		input   float64
		wantErr bool
	}{
		{1, false},
		{2, false},
		{8, false},
		{0, true},
		{-1, true},
		{9, true},
		{math.NaN(), true},
	}

	for _, tt := range tests {
		err := ValidateScale(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateScale(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"dashed", "dense-mono", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"path", "foo/bar", true},
		{"backslash", `foo\bar`, true},
		{"extension", "mono.toml", true},
		{"control char", "foo\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
