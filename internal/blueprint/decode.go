package blueprint

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeRecord decodes one generic record (a map read from YAML or JSON) into B.
//
// The record must be total: a non-null value for every field of B (ErrPartial)
// and no key B does not declare (ErrUnknownField). Keys are matched
// case-insensitively against the `mapstructure` tags of B. Integer fields only
// accept whole numbers; JSON tables deliver them as float64.
func DecodeRecord[B any](record any) (B, error) {
	var (
		bp B
		md mapstructure.Metadata
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &bp,
		Metadata:   &md,
		TagName:    "mapstructure",
		DecodeHook: wholeNumberHook,
	})
	if err != nil {
		return bp, ErrDecode.WithCause(err)
	}

	name := recordName(record)
	if _, ok := record.(map[string]any); !ok {
		if _, ok := record.(map[any]any); !ok {
			return bp, ErrDecode.WithData("name", name).WithData("type", fmt.Sprintf("%T", record))
		}
	}
	if nulls := nullKeys(record); len(nulls) != 0 {
		return bp, ErrPartial.WithData("name", name).WithData("fields", nulls)
	}
	if err := dec.Decode(record); err != nil {
		return bp, ErrDecode.WithData("name", name).WithCause(err)
	}
	if len(md.Unused) != 0 {
		sort.Strings(md.Unused)
		return bp, ErrUnknownField.WithData("name", name).WithData("fields", md.Unused)
	}
	if len(md.Unset) != 0 {
		sort.Strings(md.Unset)
		return bp, ErrPartial.WithData("name", name).WithData("fields", md.Unset)
	}
	return bp, nil
}

// DecodeRecords decodes records in order and stops at the first invalid one.
func DecodeRecords[B any](records []any) ([]B, error) {
	out := make([]B, 0, len(records))
	for i, rec := range records {
		bp, err := DecodeRecord[B](rec)
		if err != nil {
			if e, ok := err.(*Error); ok {
				return nil, e.WithData("index", i)
			}
			return nil, err
		}
		out = append(out, bp)
	}
	return out, nil
}

func recordName(record any) string {
	switch m := record.(type) {
	case map[string]any:
		if s, ok := m["name"].(string); ok {
			return s
		}
	case map[any]any:
		if s, ok := m["name"].(string); ok {
			return s
		}
	}
	return ""
}

// nullKeys returns the sorted keys of record whose value is null. mapstructure
// counts such keys as set and zero-fills the field.
func nullKeys(record any) []string {
	var out []string
	switch m := record.(type) {
	case map[string]any:
		for k, v := range m {
			if v == nil {
				out = append(out, k)
			}
		}
	case map[any]any:
		for k, v := range m {
			if v == nil {
				out = append(out, fmt.Sprint(k))
			}
		}
	}
	sort.Strings(out)
	return out
}

// wholeNumberHook stops mapstructure from truncating 32.9 into an int field.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return data, nil
}
