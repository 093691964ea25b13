package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// decoder reads typed fields out of a wire map. The first failure sticks;
// later reads become no-ops so FromMap bodies stay linear.
type decoder struct {
	entity string
	m      map[string]any
	err    error
}

func newDecoder(entity string, m map[string]any) *decoder {
	return &decoder{entity: entity, m: m}
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) fail(key, message string, cause error) {
	if d.err == nil {
		d.err = NewDecodeError(d.entity, key, message, cause)
	}
}

// setErr records an error raised by a nested decode, keeping validation
// messages intact and prefixing the field path.
func (d *decoder) setErr(key string, err error) {
	if d.err != nil || err == nil {
		return
	}
	var derr *DecodeError
	if errors.As(err, &derr) {
		d.err = NewDecodeError(d.entity, key+"."+derr.Field, derr.Message, derr.Cause)
		return
	}
	d.err = validation.Nested(key, err)
}

func (d *decoder) lookup(key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String reads an optional string
func (d *decoder) String(key string) *string {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key, fmt.Sprintf("expected string, got %T", v), nil)
		return nil
	}
	return &s
}

// RequiredString reads a string, leaving "" for validation when absent
func (d *decoder) RequiredString(key string) string {
	if s := d.String(key); s != nil {
		return *s
	}
	return ""
}

// Int reads an optional integral number
func (d *decoder) Int(key string) *int {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		d.fail(key, "expected integer", err)
		return nil
	}
	return &n
}

// Bool reads an optional boolean
func (d *decoder) Bool(key string) *bool {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(key, fmt.Sprintf("expected boolean, got %T", v), nil)
		return nil
	}
	return &b
}

// Decimal reads an optional amount
func (d *decoder) Decimal(key string) *decimal.Decimal {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	n, err := money.FromAny(v)
	if err != nil {
		d.fail(key, "expected number", err)
		return nil
	}
	return &n
}

// RequiredDecimal reads an amount, leaving zero for validation when absent
func (d *decoder) RequiredDecimal(key string) decimal.Decimal {
	if n := d.Decimal(key); n != nil {
		return *n
	}
	return decimal.Zero
}

// Object reads a nested object
func (d *decoder) Object(key string) map[string]any {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		d.fail(key, fmt.Sprintf("expected object, got %T", v), nil)
		return nil
	}
	return obj
}

// Objects reads a list of nested objects
func (d *decoder) Objects(key string) []map[string]any {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for i, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				d.fail(fmt.Sprintf("%s[%d]", key, i), fmt.Sprintf("expected object, got %T", item), nil)
				return nil
			}
			out = append(out, obj)
		}
		return out
	}
	d.fail(key, fmt.Sprintf("expected list, got %T", v), nil)
	return nil
}

// Strings reads a list of strings
func (d *decoder) Strings(key string) []string {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	out, err := toStrings(v)
	if err != nil {
		d.fail(key, "expected list of strings", err)
		return nil
	}
	return out
}

// Ints reads a list of integers
func (d *decoder) Ints(key string) []int {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []int:
		return list
	case []any:
		out := make([]int, 0, len(list))
		for _, item := range list {
			n, err := toInt(item)
			if err != nil {
				d.fail(key, "expected list of integers", err)
				return nil
			}
			out = append(out, n)
		}
		return out
	}
	d.fail(key, fmt.Sprintf("expected list, got %T", v), nil)
	return nil
}

// Raw returns the untyped value for fields decoded by a validator
func (d *decoder) Raw(key string) any {
	v, _ := d.lookup(key)
	return v
}

func enumValue[T ~string](d *decoder, key string, parse func(string) (T, error)) *T {
	s := d.String(key)
	if s == nil {
		return nil
	}
	v, err := parse(*s)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return nil
	}
	return &v
}

func enumList[T ~string](d *decoder, key string, parse func(string) (T, error)) []T {
	raw := d.Strings(key)
	if raw == nil {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			if d.err == nil {
				d.err = err
			}
			return nil
		}
		out = append(out, v)
	}
	return out
}

// rawEnum reads an enum without parsing it, leaving membership to the
// validator so its message reaches the caller
func rawEnum[T ~string](d *decoder, key string) *T {
	s := d.String(key)
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func rawEnumList[T ~string](d *decoder, key string) []T {
	raw := d.Strings(key)
	if raw == nil {
		return nil
	}
	out := make([]T, len(raw))
	for i, s := range raw {
		out[i] = T(s)
	}
	return out
}

func nested[T any](d *decoder, key string, from func(map[string]any) (T, error)) *T {
	obj := d.Object(key)
	if obj == nil {
		return nil
	}
	v, err := from(obj)
	if err != nil {
		d.setErr(key, err)
		return nil
	}
	return &v
}

func nestedList[T any](d *decoder, key string, from func(map[string]any) (T, error)) []T {
	objs := d.Objects(key)
	if objs == nil {
		return nil
	}
	out := make([]T, 0, len(objs))
	for i, obj := range objs {
		v, err := from(obj)
		if err != nil {
			d.setErr(fmt.Sprintf("%s[%d]", key, i), err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not integral", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, err
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("unexpected %T", v)
}

func toStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected %T in list", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unexpected %T", v)
}

// wire builds a ToMap result, skipping absent optional fields
type wire map[string]any

func put[T any](w wire, key string, v *T) {
	if v != nil {
		w[key] = *v
	}
}

func putEnum[T ~string](w wire, key string, v *T) {
	if v != nil {
		w[key] = string(*v)
	}
}

func putEnums[T ~string](w wire, key string, v []T) {
	if v == nil {
		return
	}
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = string(e)
	}
	w[key] = out
}

func putAmount(w wire, key string, v *decimal.Decimal) {
	if v != nil {
		w[key] = money.ToWire(*v)
	}
}

type mapper interface {
	ToMap() map[string]any
}

func putList[T mapper](w wire, key string, v []T) {
	if v == nil {
		return
	}
	out := make([]map[string]any, len(v))
	for i, item := range v {
		out[i] = item.ToMap()
	}
	w[key] = out
}

// DecodeJSONList decodes a JSON array of objects keeping numbers exact
func DecodeJSONList(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var list []map[string]any
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// DecodeJSON decodes a JSON object keeping numbers exact
func DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
