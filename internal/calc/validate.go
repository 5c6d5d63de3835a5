package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all field-level failures for one submission.
// No computation proceeds while this is non-nil.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}

// Validate checks a raw submission against the schema and returns a typed
// Input. All violations are collected so the caller can surface every field
// message at once. Unknown keys are rejected to catch typos in clients.
func (s Schema) Validate(raw map[string]any) (Input, error) {
	verr := &ValidationError{}
	in := make(Input, len(s.Fields))

	known := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		known[f.Name] = true
	}
	for key := range raw {
		if !known[key] {
			verr.add(key, "unknown field")
		}
	}

	for _, f := range s.Fields {
		rv, present := raw[f.Name]
		if !present || rv == nil || rv == "" {
			if f.Default != nil {
				in[f.Name] = f.Default
				continue
			}
			if f.Required {
				verr.add(f.Name, "required")
			}
			continue
		}

		switch f.Type {
		case TypeNumber:
			n, ok := coerceNumber(rv)
			if !ok {
				verr.add(f.Name, "must be a number")
				continue
			}
			if math.IsNaN(n) || math.IsInf(n, 0) {
				verr.add(f.Name, "must be a finite number")
				continue
			}
			if f.Min != nil && n < *f.Min {
				verr.add(f.Name, "must be at least %v", *f.Min)
				continue
			}
			if f.Max != nil && n > *f.Max {
				verr.add(f.Name, "must be at most %v", *f.Max)
				continue
			}
			in[f.Name] = n

		case TypeInteger:
			n, ok := coerceNumber(rv)
			if !ok || n != math.Trunc(n) {
				verr.add(f.Name, "must be a whole number")
				continue
			}
			if f.Min != nil && n < *f.Min {
				verr.add(f.Name, "must be at least %v", *f.Min)
				continue
			}
			if f.Max != nil && n > *f.Max {
				verr.add(f.Name, "must be at most %v", *f.Max)
				continue
			}
			in[f.Name] = int(n)

		case TypeEnum:
			sv, ok := rv.(string)
			if !ok {
				verr.add(f.Name, "must be one of: %s", strings.Join(f.Enum, ", "))
				continue
			}
			if !contains(f.Enum, sv) {
				verr.add(f.Name, "must be one of: %s", strings.Join(f.Enum, ", "))
				continue
			}
			in[f.Name] = sv

		case TypeBool:
			switch bv := rv.(type) {
			case bool:
				in[f.Name] = bv
			case string:
				b, err := strconv.ParseBool(bv)
				if err != nil {
					verr.add(f.Name, "must be true or false")
					continue
				}
				in[f.Name] = b
			default:
				verr.add(f.Name, "must be true or false")
			}

		default:
			verr.add(f.Name, "unsupported field type %q", f.Type)
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return in, nil
}

// coerceNumber accepts the numeric representations JSON decoding and CLI
// flag parsing produce.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to v. Used for Min/Max bounds in schema literals.
func Ptr(v float64) *float64 { return &v }
