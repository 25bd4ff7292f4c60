package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct fills the tagged fields of the struct v points to.
// Fields without the tag, or with an empty lookup result, keep their value.
func bindToStruct(v any, tagName string, lookup func(string) string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, ok := fieldName(sf, tagName)
		if !ok {
			continue
		}

		value := lookup(name)
		if value == "" {
			continue
		}

		if err := setFieldValue(field, value); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}

	return nil
}

// fieldName returns the parameter name from the struct tag, ignoring options after a comma.
func fieldName(sf reflect.StructField, tagName string) (string, bool) {
	tag, _, _ := strings.Cut(sf.Tag.Get(tagName), ",")
	if tag == "" || tag == "-" {
		return "", false
	}
	return tag, true
}

func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setFieldValue(field.Elem(), value)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "on", "yes":
			field.SetBool(true)
		case "0", "f", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}

	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}

	return nil
}
