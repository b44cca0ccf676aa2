package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/mws/errors"
)

type sample struct {
	Region   string `mapstructure:"region" validate:"required,oneof=na eu"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
	Secret   string `validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(sample{Region: "na", Secret: "s"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantField string
		wantMsg   string
	}{
		{"missing region", sample{Secret: "s"}, "region", "is required"},
		{"unknown region", sample{Region: "xx", Secret: "s"}, "region", "must be one of: na eu"},
		{"bad endpoint", sample{Region: "na", Endpoint: "::", Secret: "s"}, "endpoint", "must be a valid URL"},
		{"missing secret", sample{Region: "eu"}, "Secret", "is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if !errors.IsConfiguration(err) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			appErr, _ := errors.AsAppError(err)
			if appErr.Details[errors.DetailField] != tc.wantField {
				t.Errorf("field = %v, want %s", appErr.Details[errors.DetailField], tc.wantField)
			}
			if !strings.Contains(appErr.Message, tc.wantMsg) {
				t.Errorf("message %q should contain %q", appErr.Message, tc.wantMsg)
			}
		})
	}
}
