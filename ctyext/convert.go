package ctyext

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// ToCtyValue converts a Go value to a cty.Value conforming to the given type.
// Nil pointers become null values. Struct fields are matched to object
// attributes using fieldName.
func ToCtyValue(val interface{}, ty cty.Type, fieldName FieldNameFunc) (cty.Value, error) {
	return toCty(reflect.ValueOf(val), ty, nil, fieldName)
}

func toCty(val reflect.Value, ty cty.Type, path cty.Path, fieldName FieldNameFunc) (cty.Value, error) {
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		val = val.Elem()
	}
	if !val.IsValid() {
		return cty.NullVal(ty), nil
	}

	switch ty {
	case cty.Bool:
		if val.Kind() != reflect.Bool {
			return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not bool", val.Kind())}
		}
		return cty.BoolVal(val.Bool()), nil
	case cty.String:
		if val.Kind() != reflect.String {
			return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not string", val.Kind())}
		}
		return cty.StringVal(val.String()), nil
	case cty.Number:
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cty.NumberIntVal(val.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return cty.NumberUIntVal(val.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return cty.NumberFloatVal(val.Float()), nil
		}
		return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not a number", val.Kind())}
	}

	switch {
	case ty.IsListType():
		return listToCty(val, ty.ElementType(), path, fieldName)
	case ty.IsMapType():
		return mapToCty(val, ty.ElementType(), path, fieldName)
	case ty.IsObjectType():
		return objectToCty(val, ty.AttributeTypes(), path, fieldName)
	}
	return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("unsupported target type %s", ty.FriendlyName())}
}

func listToCty(val reflect.Value, ety cty.Type, path cty.Path, fieldName FieldNameFunc) (cty.Value, error) {
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not slice", val.Kind())}
	}
	if val.Kind() == reflect.Slice && val.IsNil() {
		return cty.NullVal(cty.List(ety)), nil
	}
	n := val.Len()
	if n == 0 {
		return cty.ListValEmpty(ety), nil
	}
	vals := make([]cty.Value, n)
	path = append(path, nil)
	for i := 0; i < n; i++ {
		path[len(path)-1] = cty.IndexStep{Key: cty.NumberIntVal(int64(i))}
		ev, err := toCty(val.Index(i), ety, path, fieldName)
		if err != nil {
			return cty.NilVal, err
		}
		vals[i] = ev
	}
	return cty.ListVal(vals), nil
}

func mapToCty(val reflect.Value, ety cty.Type, path cty.Path, fieldName FieldNameFunc) (cty.Value, error) {
	if val.Kind() != reflect.Map {
		return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not map", val.Kind())}
	}
	if val.IsNil() {
		return cty.NullVal(cty.Map(ety)), nil
	}
	if val.Len() == 0 {
		return cty.MapValEmpty(ety), nil
	}
	vals := make(map[string]cty.Value, val.Len())
	path = append(path, nil)
	for _, key := range val.MapKeys() {
		k := key.String()
		path[len(path)-1] = cty.IndexStep{Key: cty.StringVal(k)}
		ev, err := toCty(val.MapIndex(key), ety, path, fieldName)
		if err != nil {
			return cty.NilVal, err
		}
		vals[k] = ev
	}
	return cty.MapVal(vals), nil
}

func objectToCty(val reflect.Value, attrTypes map[string]cty.Type, path cty.Path, fieldName FieldNameFunc) (cty.Value, error) {
	if val.Kind() != reflect.Struct {
		return cty.NilVal, PathError{Path: path, Err: fmt.Errorf("value is %s, not struct", val.Kind())}
	}

	fields := make(map[string]int, val.NumField())
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		if name := fieldName(t.Field(i)); name != "" {
			fields[name] = i
		}
	}

	if len(attrTypes) == 0 {
		return cty.EmptyObjectVal, nil
	}

	vals := make(map[string]cty.Value, len(attrTypes))
	path = append(path, nil)
	for k, at := range attrTypes {
		path[len(path)-1] = cty.GetAttrStep{Name: k}
		i, ok := fields[k]
		if !ok {
			vals[k] = cty.NullVal(at)
			continue
		}
		ev, err := toCty(val.Field(i), at, path, fieldName)
		if err != nil {
			return cty.NilVal, err
		}
		vals[k] = ev
	}
	return cty.ObjectVal(vals), nil
}

// FromCtyValue assigns a cty.Value to target, which must be a non-nil
// pointer. Null values leave the target at its zero value so optional
// attributes surface as nil pointers or empty collections.
func FromCtyValue(val cty.Value, target interface{}, fieldName FieldNameFunc) error {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Ptr || tv.IsNil() {
		panic("ctyext: target must be a non-nil pointer")
	}
	return fromCty(val, tv, nil, fieldName)
}

func fromCty(val cty.Value, target reflect.Value, path cty.Path, fieldName FieldNameFunc) error {
	if val.IsNull() {
		return nil
	}
	for target.Kind() == reflect.Ptr {
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		target = target.Elem()
	}

	ty := val.Type()
	switch ty {
	case cty.Bool:
		if target.Kind() != reflect.Bool {
			return PathError{Path: path, Err: fmt.Errorf("target is %s, not bool", target.Kind())}
		}
		target.SetBool(val.True())
		return nil
	case cty.String:
		if target.Kind() != reflect.String {
			return PathError{Path: path, Err: fmt.Errorf("target is %s, not string", target.Kind())}
		}
		target.SetString(val.AsString())
		return nil
	case cty.Number:
		bf := val.AsBigFloat()
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, _ := bf.Int64()
			target.SetInt(i)
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, _ := bf.Uint64()
			target.SetUint(u)
			return nil
		case reflect.Float32, reflect.Float64:
			f, _ := bf.Float64()
			target.SetFloat(f)
			return nil
		}
		return PathError{Path: path, Err: fmt.Errorf("number cannot be assigned to %s", target.Type())}
	}

	switch {
	case ty.IsListType(), ty.IsSetType(), ty.IsTupleType():
		return listFromCty(val, target, path, fieldName)
	case ty.IsMapType():
		return mapFromCty(val, target, path, fieldName)
	case ty.IsObjectType():
		return objectFromCty(val, target, path, fieldName)
	}
	return PathError{Path: path, Err: fmt.Errorf("unsupported source type %s", ty.FriendlyName())}
}

func listFromCty(val cty.Value, target reflect.Value, path cty.Path, fieldName FieldNameFunc) error {
	if target.Kind() != reflect.Slice {
		return PathError{Path: path, Err: fmt.Errorf("target is %s, not slice", target.Kind())}
	}
	n := val.LengthInt()
	out := reflect.MakeSlice(target.Type(), n, n)
	path = append(path, nil)
	i := 0
	var err error
	val.ForEachElement(func(_, ev cty.Value) bool {
		path[len(path)-1] = cty.IndexStep{Key: cty.NumberIntVal(int64(i))}
		if err = fromCty(ev, out.Index(i).Addr(), path, fieldName); err != nil {
			return true
		}
		i++
		return false
	})
	if err != nil {
		return err
	}
	target.Set(out)
	return nil
}

func mapFromCty(val cty.Value, target reflect.Value, path cty.Path, fieldName FieldNameFunc) error {
	if target.Kind() != reflect.Map {
		return PathError{Path: path, Err: fmt.Errorf("target is %s, not map", target.Kind())}
	}
	out := reflect.MakeMap(target.Type())
	et := target.Type().Elem()
	path = append(path, nil)
	var err error
	val.ForEachElement(func(k, ev cty.Value) bool {
		path[len(path)-1] = cty.IndexStep{Key: k}
		elem := reflect.New(et)
		if err = fromCty(ev, elem, path, fieldName); err != nil {
			return true
		}
		out.SetMapIndex(reflect.ValueOf(k.AsString()), elem.Elem())
		return false
	})
	if err != nil {
		return err
	}
	target.Set(out)
	return nil
}

func objectFromCty(val cty.Value, target reflect.Value, path cty.Path, fieldName FieldNameFunc) error {
	if target.Kind() != reflect.Struct {
		return PathError{Path: path, Err: fmt.Errorf("target is %s, not struct", target.Kind())}
	}
	t := target.Type()
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := fieldName(t.Field(i)); name != "" {
			fields[name] = i
		}
	}
	path = append(path, nil)
	for k := range val.Type().AttributeTypes() {
		path[len(path)-1] = cty.GetAttrStep{Name: k}
		i, ok := fields[k]
		if !ok {
			return PathError{Path: path, Err: fmt.Errorf("unsupported attribute %q", k)}
		}
		if err := fromCty(val.GetAttr(k), target.Field(i).Addr(), path, fieldName); err != nil {
			return err
		}
	}
	return nil
}
