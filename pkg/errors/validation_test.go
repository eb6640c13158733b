package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"cycle", 6, false},
		{"max", MaxVertexCount, false},

		{"negative", -1, true},
		{"too large", MaxVertexCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	if err := ValidateWorkers(0); err != nil {
		t.Errorf("ValidateWorkers(0) = %v, want nil", err)
	}
	if err := ValidateWorkers(8); err != nil {
		t.Errorf("ValidateWorkers(8) = %v, want nil", err)
	}
	if err := ValidateWorkers(-2); err == nil {
		t.Error("ValidateWorkers(-2) = nil, want error")
	}
}

func TestValidateTSetIndex(t *testing.T) {
	tests := []struct {
		name     string
		k, count int
		wantCode Code
	}{
		{"first", 0, 3, ""},
		{"last", 2, 3, ""},
		{"negative", -1, 3, ErrCodeInvalidInput},
		{"past end", 3, 3, ErrCodeInvalidInput},
		{"empty", 0, 0, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTSetIndex(tt.k, tt.count)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateTSetIndex(%d, %d) code = %q, want %q", tt.k, tt.count, got, tt.wantCode)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/graph.svg", false},
		{"absolute", "/tmp/graph.json", false},
		{"dash", "-", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	choices := []string{"text", "json"}

	if err := ValidateChoice(ErrCodeInvalidFormat, "format", "json", choices); err != nil {
		t.Errorf("ValidateChoice(json) = %v, want nil", err)
	}

	err := ValidateChoice(ErrCodeInvalidFormat, "format", "yaml", choices)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateChoice(yaml) code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "text, json") {
		t.Errorf("error %q does not list choices", err.Error())
	}
}
