package schema

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// ApplyDefaults fills unset input attributes that declare a default tag.
// Defaults apply before validation so a defaulted value is still subject to
// the attribute's rules. The definition must be a pointer to a struct.
func ApplyDefaults(def interface{}) error {
	v := reflect.ValueOf(def)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic(fmt.Sprintf("schema: definition must be a non-nil pointer, got %T", def))
	}
	v = v.Elem()
	ff := Fields(v.Type()).Inputs()
	for _, name := range ff.Names() {
		f := ff[name]
		if f.Default == "" {
			continue
		}
		fv := v.Field(f.Index)
		if !IsZero(fv) {
			continue
		}
		if err := setDefault(fv, f.Default); err != nil {
			return errors.Wrapf(err, "default for %s", name)
		}
	}
	return nil
}

func setDefault(v reflect.Value, literal string) error {
	if v.Kind() == reflect.Ptr {
		v.Set(reflect.New(v.Type().Elem()))
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(literal)
	case reflect.Bool:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return errors.Errorf("cannot default %s", v.Kind())
	}
	return nil
}
