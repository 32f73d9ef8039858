package params

import (
	"errors"
	"testing"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
)

func validationField(t *testing.T, err error) string {
	t.Helper()
	var v *errdefs.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return v.Field
}

func TestString(t *testing.T) {
	args := map[string]any{"city": "Austin", "empty": "  ", "number": 3}

	if got, err := String(args, "city"); err != nil || got != "Austin" {
		t.Errorf("String(city) = %q, %v", got, err)
	}
	if _, err := String(args, "missing"); validationField(t, err) != "missing" {
		t.Error("missing field not reported")
	}
	if _, err := String(args, "empty"); err == nil {
		t.Error("blank string accepted")
	}
	if _, err := String(args, "number"); err == nil {
		t.Error("non-string accepted")
	}
}

func TestIntCoercion(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"int", 3, 3, false},
		{"float whole", float64(4), 4, false},
		{"float fractional", 2.5, 0, true},
		{"string", "3", 0, true},
		{"bool", true, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Int(map[string]any{"n": tc.value}, "n")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Int(%v) accepted", tc.value)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("Int(%v) = %d, %v", tc.value, got, err)
			}
		})
	}
}

func TestIntOrDefaults(t *testing.T) {
	if got, err := IntOr(map[string]any{}, "adults", 1); err != nil || got != 1 {
		t.Errorf("IntOr default = %d, %v", got, err)
	}
	if got, err := PositiveIntOr(map[string]any{"guests": float64(4)}, "guests", 2); err != nil || got != 4 {
		t.Errorf("PositiveIntOr = %d, %v", got, err)
	}
	if _, err := PositiveIntOr(map[string]any{"guests": float64(0)}, "guests", 2); err == nil {
		t.Error("zero accepted as positive")
	}
	if _, err := NonNegativeIntOr(map[string]any{"children": float64(-1)}, "children", 0); err == nil {
		t.Error("negative accepted as non-negative")
	}
}

func TestDate(t *testing.T) {
	got, err := Date(map[string]any{"check_in": "2025-10-01"}, "check_in")
	if err != nil {
		t.Fatalf("Date failed: %v", err)
	}
	want := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Date = %v, want %v", got, want)
	}

	if _, err := Date(map[string]any{"check_in": "10/01/2025"}, "check_in"); validationField(t, err) != "check_in" {
		t.Error("bad format not reported on check_in")
	}
}

func TestDateOr(t *testing.T) {
	if _, ok, err := DateOr(map[string]any{}, "return_date"); err != nil || ok {
		t.Errorf("absent DateOr = ok=%v, %v", ok, err)
	}
	if _, ok, err := DateOr(map[string]any{"return_date": ""}, "return_date"); err != nil || ok {
		t.Errorf("blank DateOr = ok=%v, %v", ok, err)
	}
	if _, _, err := DateOr(map[string]any{"return_date": "not-a-date"}, "return_date"); err == nil {
		t.Error("malformed optional date accepted")
	}
}

func TestEnum(t *testing.T) {
	if got, err := Enum(map[string]any{}, "stops", "none", "none", "one", "any"); err != nil || got != "none" {
		t.Errorf("Enum default = %q, %v", got, err)
	}
	if got, err := Enum(map[string]any{"stops": "one"}, "stops", "none", "none", "one", "any"); err != nil || got != "one" {
		t.Errorf("Enum = %q, %v", got, err)
	}
	if _, err := Enum(map[string]any{"stops": "three"}, "stops", "none", "none", "one", "any"); err == nil {
		t.Error("out-of-set value accepted")
	}
}

func TestStringList(t *testing.T) {
	got, err := StringList(map[string]any{"interests": []any{"food", "culture"}}, "interests")
	if err != nil || len(got) != 2 || got[0] != "food" {
		t.Errorf("StringList = %v, %v", got, err)
	}
	if got, err := StringList(map[string]any{}, "interests"); err != nil || got != nil {
		t.Errorf("absent StringList = %v, %v", got, err)
	}
	if _, err := StringList(map[string]any{"interests": []any{"food", 3}}, "interests"); err == nil {
		t.Error("mixed-type list accepted")
	}
}
