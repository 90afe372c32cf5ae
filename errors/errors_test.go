/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("proband", "PROBAND#123")

	expected := `proband with key "PROBAND#123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("family_member", "FAMILY#abc")

	expected := `family_member with key "FAMILY#abc" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "diagnosis",
			message:  "field required",
			expected: `validation failed for field "diagnosis": field required`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "body must be a JSON object",
			expected: "validation failed: body must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	list := ValidationErrors{
		{Field: "name", Message: "field required", Type: "missing"},
		{Field: "age", Message: "value is not a valid integer", Type: "type_error.integer"},
	}
	wrapped := fmt.Errorf("create proband: %w", list)

	if !IsValidationError(wrapped) {
		t.Fatal("wrapped ValidationErrors should match ErrInvalidInput")
	}

	got := AsValidationErrors(wrapped)
	if len(got) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(got))
	}
	if fields := got.Fields(); fields[0] != "name" || fields[1] != "age" {
		t.Errorf("unexpected field order: %v", fields)
	}

	single := AsValidationErrors(NewValidationError("body", "malformed JSON"))
	if len(single) != 1 || single[0].Field != "body" {
		t.Errorf("single ValidationError should flatten to one entry, got %v", single)
	}

	if AsValidationErrors(errors.New("boom")) != nil {
		t.Error("non-validation errors should flatten to nil")
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("update", "attribute_exists(pk)")

	expected := "condition check failed for update operation: attribute_exists(pk)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestConditionFailedWrapsCause(t *testing.T) {
	missing := WrapConditionFailed("put", "attribute_exists(pk)", NewNotFoundError("family_member", "FAMILY#1"))
	if !IsConditionFailed(missing) || !IsNotFound(missing) {
		t.Errorf("expected both condition failed and not found, got %v", missing)
	}
	if KindOf(missing) != KindNotFound {
		t.Errorf("KindOf() = %v, want %v", KindOf(missing), KindNotFound)
	}

	taken := WrapConditionFailed("put", "attribute_not_exists(pk)", NewAlreadyExistsError("proband", "PROBAND#1"))
	if !IsAlreadyExists(taken) || KindOf(taken) != KindConflict {
		t.Errorf("expected conflict, got %v (%v)", taken, KindOf(taken))
	}

	expected := `condition check failed for put operation: attribute_not_exists(pk): proband with key "PROBAND#1" already exists`
	if taken.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, taken.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindInternal},
		{name: "validation", err: NewValidationError("sex", "field required"), want: KindInvalidInput},
		{name: "validation list", err: ValidationErrors{{Field: "name"}}, want: KindInvalidInput},
		{name: "not found", err: NewNotFoundError("proband", "x"), want: KindNotFound},
		{name: "wrapped not found", err: fmt.Errorf("get: %w", ErrNotFound), want: KindNotFound},
		{name: "already exists", err: NewAlreadyExistsError("proband", "x"), want: KindConflict},
		{name: "condition failed", err: NewConditionFailedError("put", "c"), want: KindConflict},
		{name: "storage fault", err: errors.New("ProvisionedThroughputExceeded"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("family_member", "123")
	wrapped := fmt.Errorf("database operation failed: %w", original)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrNoIndexMap,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
