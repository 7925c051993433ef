package validate

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Email  string `json:"email" validate:"omitempty,email"`
	Color  string `json:"color" validate:"omitempty,hexcolor6"`
	Font   string `json:"font" validate:"omitempty,fontfamily"`
	Logo   string `json:"logo" validate:"omitempty,logo"`
	Count  int    `json:"count" validate:"gte=0,lte=10"`
	Hidden string `json:"-"`
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", appErr.Code)
	}
	return appErr.Message
}

func TestStruct_Valid(t *testing.T) {
	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n"))
	s := sample{Name: "Ada", Email: "ada@example.com", Color: "#A1B2C3", Font: "'Inter', sans-serif", Logo: png, Count: 3}

	if err := Struct(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{"required", sample{}, "name is required"},
		{"text max", sample{Name: "toolong"}, "name must be at most 5 characters"},
		{"email", sample{Name: "a", Email: "nope"}, "email must be a valid email address"},
		{"color", sample{Name: "a", Color: "red"}, "color must be a #RRGGBB color"},
		{"font", sample{Name: "a", Font: "x;y"}, "font contains unsupported characters"},
		{"logo", sample{Name: "a", Logo: "data:image/svg+xml;base64,PHN2Zz4="}, "logo must be"},
		{"number max", sample{Name: "a", Count: 11}, "count must be at most 10"},
		{"number min", sample{Name: "a", Count: -1}, "count must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validationMessage(t, Struct(tt.in))
			if !strings.HasPrefix(msg, tt.want) {
				t.Errorf("expected message starting %q, got %q", tt.want, msg)
			}
		})
	}
}

func TestStruct_NilIsInternalError(t *testing.T) {
	err := Struct(nil)
	if apperror.SafeCode(err) != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %v", err)
	}
}
