package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// ObjectValFromBody collapses a block body into a cty object; nested
// blocks become nested objects keyed by block type.
func ObjectValFromBody(body *hclsyntax.Body, evalCtx *hcl.EvalContext) (cty.Value, error) {
	rt := make(map[string]cty.Value)
	for _, attr := range body.Attributes {
		value, diag := attr.Expr.Value(evalCtx)
		if diag.HasErrors() {
			return cty.NilVal, errors.New(diag.Error())
		}
		rt[attr.Name] = value
	}
	for _, block := range body.Blocks {
		bval, err := ObjectValFromBody(block.Body, evalCtx)
		if err != nil {
			return cty.NilVal, err
		}
		rt[block.Type] = bval
	}
	return cty.ObjectVal(rt), nil
}

// EvalObject assigns the object's values onto obj's fields, matching
// keys to exported field names.
func EvalObject(objName string, obj any, value cty.Value) error {
	ref := reflect.ValueOf(obj)
	return EvalReflectValue(objName, ref, value)
}

func EvalReflectValue(refName string, ref reflect.Value, value cty.Value) error {
	if ref.Kind() == reflect.Pointer {
		ref = reflect.Indirect(ref)
	}
	switch ref.Kind() {
	case reflect.Struct:
		if !value.Type().IsObjectType() {
			return fmt.Errorf("%s should be object as %s", refName, ref.Type().Name())
		}
		valmap := value.AsValueMap()
		for k, v := range valmap {
			field := ref.FieldByName(k)
			if !field.IsValid() {
				return fmt.Errorf("%s field not found in %s", k, refName)
			}
			err := EvalReflectValue(fmt.Sprintf("%s.%s", refName, k), field, v)
			if err != nil {
				return err
			}
		}
	case reflect.String:
		if value.Type() == cty.String {
			ref.SetString(value.AsString())
		} else {
			return fmt.Errorf("%s should be string", refName)
		}
	case reflect.Bool:
		if value.Type() == cty.Bool || value.Type() == cty.String {
			if v, err := BoolFromCty(value); err != nil {
				return err
			} else {
				ref.SetBool(v)
			}
		} else {
			return fmt.Errorf("%s should be bool", refName)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value.Type() == cty.Number || value.Type() == cty.String {
			if v, err := Int64FromCty(value); err != nil {
				return err
			} else {
				ref.SetInt(v)
			}
		} else {
			return fmt.Errorf("%s should be int", refName)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value.Type() == cty.Number || value.Type() == cty.String {
			if v, err := Uint64FromCty(value); err != nil {
				return err
			} else {
				ref.SetUint(v)
			}
		} else {
			return fmt.Errorf("%s should be uint", refName)
		}
	case reflect.Float32, reflect.Float64:
		if value.Type() == cty.Number || value.Type() == cty.String {
			if v, err := Float64FromCty(value); err != nil {
				return err
			} else {
				ref.SetFloat(v)
			}
		} else {
			return fmt.Errorf("%s should be float", refName)
		}
	case reflect.Slice:
		if !value.CanIterateElements() {
			return fmt.Errorf("%s should be list", refName)
		}
		vs := value.AsValueSlice()
		slice := reflect.MakeSlice(ref.Type(), len(vs), len(vs))
		for i, elm := range vs {
			elmName := fmt.Sprintf("%s[%d]", refName, i)
			err := EvalReflectValue(elmName, slice.Index(i), elm)
			if err != nil {
				return err
			}
		}
		ref.Set(slice)
	case reflect.Map:
		if !value.CanIterateElements() {
			return fmt.Errorf("%s should be map", refName)
		}
		vm := value.AsValueMap()
		maps := reflect.MakeMap(ref.Type())
		keyType := ref.Type().Key()
		if keyType.Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type: %v", keyType)
		}
		valType := ref.Type().Elem()
		for k, v := range vm {
			val := reflect.Indirect(reflect.New(valType))
			elmName := fmt.Sprintf("%s[%q]", refName, k)
			if err := EvalReflectValue(elmName, val, v); err != nil {
				return err
			}
			maps.SetMapIndex(reflect.ValueOf(k), val)
		}
		ref.Set(maps)
	default:
		return fmt.Errorf("unsupported reflection %s type: %s", refName, ref.Kind())
	}
	return nil
}

func Int64FromCty(value cty.Value) (int64, error) {
	switch value.Type() {
	case cty.Number:
		f := value.AsBigFloat()
		l, _ := f.Int64()
		return l, nil
	case cty.String:
		l, err := strconv.ParseInt(value.AsString(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a number-compatible, %s", value.AsString())
		}
		return l, nil
	default:
		return 0, fmt.Errorf("value is not a number, %s", value.Type())
	}
}

func Uint64FromCty(value cty.Value) (uint64, error) {
	switch value.Type() {
	case cty.Number:
		f := value.AsBigFloat()
		l, _ := f.Uint64()
		return l, nil
	case cty.String:
		l, err := strconv.ParseUint(value.AsString(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a number-compatible, %s", value.AsString())
		}
		return l, nil
	default:
		return 0, fmt.Errorf("value is not a number, %s", value.Type())
	}
}

func Float64FromCty(value cty.Value) (float64, error) {
	switch value.Type() {
	case cty.Number:
		f := value.AsBigFloat()
		v, _ := f.Float64()
		return v, nil
	case cty.String:
		v, err := strconv.ParseFloat(value.AsString(), 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a number-compatible, %s", value.AsString())
		}
		return v, nil
	default:
		return 0, fmt.Errorf("value is not a number, %s", value.Type())
	}
}

func BoolFromCty(value cty.Value) (bool, error) {
	switch value.Type() {
	case cty.Bool:
		return value.True(), nil
	case cty.String:
		s := value.AsString()
		switch strings.ToLower(s) {
		case "true", "t", "yes", "y":
			return true, nil
		case "false", "f", "no", "n":
			return false, nil
		default:
			return false, fmt.Errorf("%s is not bool compatible", s)
		}
	default:
		return false, fmt.Errorf("value is not a bool, %s", value.Type())
	}
}

func StringFromCty(value cty.Value) string {
	return value.AsString()
}
