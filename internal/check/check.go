// Package check holds the response-validation helpers shared by the catalog
// suites. Every helper is a pure predicate over a value already in memory: it
// returns nil on success, or a zerror.ZError naming the field, the value and
// the expectation of the first violation it finds. Helpers never retry and
// never mutate their input, so checking the same response twice yields the
// same verdict.
package check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// Object is a JSON object with its values left undecoded, so presence and
// JSON type of every key can be inspected.
type Object map[string]json.RawMessage

// Has reports whether key is present, including when its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Keys returns the sorted key set.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// StringValue returns the value of key when it is a JSON string.
func (o Object) StringValue(key string) (string, bool) {
	raw, ok := o[key]
	if !ok || kindOf(raw) != jsonString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// NumberValue returns the value of key when it is a JSON number.
func (o Object) NumberValue(key string) (float64, bool) {
	raw, ok := o[key]
	if !ok || kindOf(raw) != jsonNumber {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// Page is a listing envelope whose products are kept as raw objects, which is
// what projection and shape checks need.
type Page struct {
	Products []Object `json:"products"`
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
}

// DecodeBody decodes the response body into T. Decoding failures are
// reported as StructuralMismatch.
func DecodeBody[T any](resp model.Response) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return v, apperr.BodyNotJSONErr.
			WithMsgf("decode %T from body %s", v, abbreviate(resp.Body)).
			WrapParent(err)
	}
	return v, nil
}

// DecodeObject decodes one JSON object.
func DecodeObject(raw []byte) (Object, error) {
	if kindOf(raw) != jsonObject {
		return nil, apperr.WrongTypeErr.WithMsgf("expected a JSON object, got %s", kindOf(raw))
	}
	var o Object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, apperr.BodyNotJSONErr.WithMsgf("decode object").WrapParent(err)
	}
	return o, nil
}

// ToProduct decodes a raw product object into the typed model.
func ToProduct(o Object) (model.Product, error) {
	var p model.Product
	b, err := json.Marshal(o)
	if err != nil {
		return p, apperr.BodyNotJSONErr.WithMsgf("re-encode product").WrapParent(err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, apperr.WrongTypeErr.WithMsgf("product %s does not fit the product model", abbreviate(b)).WrapParent(err)
	}
	return p, nil
}

type jsonKind string

const (
	jsonString  jsonKind = "string"
	jsonNumber  jsonKind = "number"
	jsonBool    jsonKind = "boolean"
	jsonNull    jsonKind = "null"
	jsonArray   jsonKind = "array"
	jsonObject  jsonKind = "object"
	jsonInvalid jsonKind = "invalid"
)

func kindOf(raw []byte) jsonKind {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return jsonInvalid
	}
	switch raw[0] {
	case '"':
		return jsonString
	case '{':
		return jsonObject
	case '[':
		return jsonArray
	case 't', 'f':
		return jsonBool
	case 'n':
		return jsonNull
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return jsonNumber
	default:
		return jsonInvalid
	}
}

// requireKind fails with MissingField or WrongType unless o[key] has kind.
func requireKind(o Object, key string, kind jsonKind) error {
	raw, ok := o[key]
	if !ok {
		return apperr.MissingFieldErr.WithMsgf("%q is missing (have %v)", key, o.Keys())
	}
	if got := kindOf(raw); got != kind {
		return apperr.WrongTypeErr.WithMsgf("%q is %s %s, want %s", key, got, abbreviate(raw), kind)
	}
	return nil
}

func requireInteger(o Object, key string) error {
	if err := requireKind(o, key, jsonNumber); err != nil {
		return err
	}
	n, _ := o.NumberValue(key)
	if n != math.Trunc(n) {
		return apperr.WrongTypeErr.WithMsgf("%q is %v, want an integer", key, n)
	}
	return nil
}

func abbreviate(b []byte) string {
	const maxLen = 120
	if len(b) <= maxLen {
		return string(b)
	}
	return fmt.Sprintf("%s...(%d bytes)", b[:maxLen], len(b))
}
