package validation

import (
	"errors"
	"strings"
	"testing"
)

type sampleInput struct {
	Name    string `validate:"required,min=5,max=50"`
	GenreID string `validate:"required,mongodb"`
	Stock   int    `validate:"gte=0,lte=255"`
}

func TestStruct(t *testing.T) {
	v := New()

	t.Run("accepts a valid struct", func(t *testing.T) {
		err := v.Struct(sampleInput{
			Name:    "Terminator",
			GenreID: "64a1f0aabbccddeeff007788",
			Stock:   6,
		})
		if err != nil {
			t.Fatalf("Struct returned error: %v", err)
		}
	})

	t.Run("translates tag failures into field errors", func(t *testing.T) {
		err := v.Struct(sampleInput{
			Name:    "Up",
			GenreID: "not-hex",
			Stock:   300,
		})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}

		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %T: %v", err, err)
		}
		if len(fieldErrs) != 3 {
			t.Fatalf("got %d field errors, want 3: %v", len(fieldErrs), fieldErrs)
		}
		if fieldErrs.First() != "Name must be at least 5" {
			t.Errorf("first message = %q", fieldErrs.First())
		}
		if !strings.Contains(fieldErrs[1].Message, "valid MongoDB ObjectID") {
			t.Errorf("objectid message = %q", fieldErrs[1].Message)
		}
		if !strings.Contains(fieldErrs[2].Message, "at most 255") {
			t.Errorf("range message = %q", fieldErrs[2].Message)
		}
	})

	t.Run("reports missing required fields", func(t *testing.T) {
		err := v.Struct(sampleInput{})
		if err == nil {
			t.Fatal("expected an error, got nil")
		}

		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %T: %v", err, err)
		}
		if fieldErrs.First() != "Name is required" {
			t.Errorf("first message = %q", fieldErrs.First())
		}
	})
}
