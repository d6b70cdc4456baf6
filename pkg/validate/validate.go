// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required        field must not be zero/empty
//	nullable        if empty, skip all remaining rules for this field
//	email           valid email address
//	url             valid URL (http/https)
//	min=N           string: min char length | number: min value
//	max=N           string: max char length | number: max value
//	gt=N            number > N
//	gte=N           number >= N
//	in=a|b|c        value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    Email string  `json:"email" validate:"required,email"`
//	    Price float64 `json:"price" validate:"required,gt=0"`
//	}
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if _, err := mail.ParseAddress(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "url":
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("The %s field must be a valid URL.", field)
		}

	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isNum := sizeOf(v); isNum {
			if size < n {
				return fmt.Sprintf("The %s field must be at least %s.", field, param)
			}
		} else if float64(len(raw)) < n {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, param)
		}

	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isNum := sizeOf(v); isNum {
			if size > n {
				return fmt.Sprintf("The %s field must not be greater than %s.", field, param)
			}
		} else if float64(len(raw)) > n {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, param)
		}

	case "gt":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isNum := sizeOf(v); !isNum || size <= n {
			return fmt.Sprintf("The %s field must be greater than %s.", field, param)
		}

	case "gte":
		n, _ := strconv.ParseFloat(param, 64)
		if size, isNum := sizeOf(v); !isNum || size < n {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "in":
		for _, item := range strings.Split(param, "|") {
			if raw == item {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// sizeOf returns the numeric value of v when v is a number.
func sizeOf(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

// jsonFieldName prefers the json tag name so error keys match the payload.
func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
