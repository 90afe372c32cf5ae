/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pedigree

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	storeerrors "github.com/suparena/pedigreestore/errors"
)

// Validation error codes reported in the type field.
const (
	codeMissing   = "value_error.missing"
	codeNone      = "type_error.none.not_allowed"
	codeString    = "type_error.str"
	codeInteger   = "type_error.integer"
	codeMinLength = "value_error.any_str.min_length"
	codeMalformed = "value_error.jsondecode"
)

// object is a request body decoded one level deep so that absent, null and
// mistyped fields can be told apart.
type object map[string]json.RawMessage

func decodeObject(body []byte) (object, error) {
	var obj object
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, storeerrors.ValidationErrors{{
			Field:   "body",
			Message: "body must be a JSON object",
			Type:    codeMalformed,
		}}
	}
	return obj, nil
}

// validator accumulates field errors so that one response reports all of them.
type validator struct {
	errs storeerrors.ValidationErrors
}

func (v *validator) fail(field, message, code string) {
	v.errs = append(v.errs, &storeerrors.ValidationError{Field: field, Message: message, Type: code})
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (v *validator) requireString(obj object, field string) string {
	raw, ok := obj[field]
	if !ok {
		v.fail(field, "field required", codeMissing)
		return ""
	}
	return v.stringValue(field, raw)
}

// requireKeyString is requireString for values that become part of a row key
// and so cannot be empty.
func (v *validator) requireKeyString(obj object, field string) string {
	before := len(v.errs)
	s := v.requireString(obj, field)
	if len(v.errs) == before && s == "" {
		v.fail(field, "ensure this value has at least 1 characters", codeMinLength)
	}
	return s
}

func (v *validator) stringValue(field string, raw json.RawMessage) string {
	if isNull(raw) {
		v.fail(field, "none is not an allowed value", codeNone)
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		v.fail(field, "str type expected", codeString)
		return ""
	}
	return s
}

func (v *validator) requireInt(obj object, field string) int {
	raw, ok := obj[field]
	if !ok {
		v.fail(field, "field required", codeMissing)
		return 0
	}
	if isNull(raw) {
		v.fail(field, "none is not an allowed value", codeNone)
		return 0
	}
	n, ok := parseInt(raw)
	if !ok {
		v.fail(field, "value is not a valid integer", codeInteger)
	}
	return n
}

// optionalInt returns nil for an absent or null field.
func (v *validator) optionalInt(obj object, field string) *int {
	raw, ok := obj[field]
	if !ok {
		return nil
	}
	return v.nullableInt(field, raw)
}

func (v *validator) nullableInt(field string, raw json.RawMessage) *int {
	if isNull(raw) {
		return nil
	}
	n, ok := parseInt(raw)
	if !ok {
		v.fail(field, "value is not a valid integer", codeInteger)
		return nil
	}
	return &n
}

// parseInt accepts JSON integers and integral floats such as 42.0, both
// within the 32-bit range. Numeric strings are rejected.
func parseInt(raw json.RawMessage) (int, bool) {
	text := string(bytes.TrimSpace(raw))
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return int(n), true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
