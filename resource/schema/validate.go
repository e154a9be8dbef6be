package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/terrasynth/terrasynth/ctyext"
	"go.uber.org/multierr"
	validator "gopkg.in/go-playground/validator.v9"
)

var check = validator.New()

// messages override the cryptic default errors from the validator for rules
// where the parameter makes a good human readable message.
var messages = map[string]string{
	"min":   "must be %v or more",
	"max":   "must be %v or less",
	"gte":   "must be %v or more",
	"gt":    "must be more than %v",
	"lte":   "must be %v or less",
	"lt":    "must be less than %v",
	"oneof": "must be one of: [%v]",
	"div":   "must be divisible by %v",
}

func mustRegister(err error) {
	if err != nil {
		panic(fmt.Sprintf("schema: register validation rule: %v", err))
	}
}

func init() {
	mustRegister(check.RegisterValidation("div", func(fl validator.FieldLevel) bool {
		mod, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("schema: div rule requires an integer param (div=64): %v", err))
		}
		return fl.Field().Int()%int64(mod) == 0
	}))
}

// RegisterRule adds a custom validation rule. Providers register their
// domain specific rules (arn, region, cidr) on startup. The message, if not
// empty, replaces the default error text; a %v verb receives the rule
// parameter.
//
// Panics if the rule name is invalid. Not safe for concurrent use; rules are
// registered before any validation runs.
func RegisterRule(name string, rule func(value string) bool, message string) {
	mustRegister(check.RegisterValidation(name, func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	}))
	if message != "" {
		messages[name] = message
	}
}

// Validate validates all input attributes of a resource definition against
// the declared rules. All failures are aggregated into the returned error,
// each prefixed with its attribute path.
//
// Validation checks, in order per attribute: required presence, mutually
// exclusive attributes (conflicts tag), then the validate rules. Rules only
// run for attributes that are set, so optional attributes may be nil.
func Validate(def interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(def))
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: definition must be a struct, not %s", v.Kind()))
	}
	ff := Fields(v.Type()).Inputs()

	var errs error
	var reported map[[2]string]bool
	for _, name := range ff.Names() {
		f := ff[name]
		fv := v.Field(f.Index)
		if IsZero(fv) {
			if f.Required {
				errs = multierr.Append(errs, errors.Errorf("%s: required attribute not set", name))
			}
			continue
		}
		for _, other := range f.Conflicts {
			of, ok := ff[other]
			if !ok {
				panic(fmt.Sprintf("schema: conflicts tag on %s names unknown attribute %q", name, other))
			}
			if !IsZero(v.Field(of.Index)) {
				// Conflicts may be declared on one side only. Report each
				// pair once, whichever side declared it.
				pair := [2]string{name, other}
				if other < name {
					pair = [2]string{other, name}
				}
				if !reported[pair] {
					if reported == nil {
						reported = make(map[[2]string]bool)
					}
					reported[pair] = true
					errs = multierr.Append(errs, errors.Errorf("%s: conflicts with %s", pair[0], pair[1]))
				}
			}
		}
		errs = multierr.Append(errs, validateValue(fv, name, f.Validate))
	}
	return errs
}

// validateValue validates a single value, recursing into nested structs and
// lists of structs so block attributes are checked too.
func validateValue(v reflect.Value, path, rules string) error {
	v = reflect.Indirect(v)
	if !v.IsValid() {
		return nil
	}

	// Interpolation placeholders resolve on the Terraform side, after
	// synthesis; their final value cannot be checked here.
	if v.Kind() == reflect.String && strings.Contains(v.String(), "${") {
		rules = ""
	}

	var errs error
	if rules != "" {
		if err := checkVar(v.Interface(), rules); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, path))
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			name := fieldPath(path, f)
			frules := f.Tag.Get("validate")
			fv := v.Field(i)
			if IsZero(fv) {
				if hasRequired(frules) {
					errs = multierr.Append(errs, errors.Errorf("%s: required attribute not set", name))
				}
				continue
			}
			errs = multierr.Append(errs, validateValue(fv, name, frules))
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Struct ||
			(v.Type().Elem().Kind() == reflect.Ptr && v.Type().Elem().Elem().Kind() == reflect.Struct) {
			for i := 0; i < v.Len(); i++ {
				errs = multierr.Append(errs, validateValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i), ""))
			}
		}
	}
	return errs
}

// hasRequired reports whether a rule list contains the required rule.
// Required is meaningful on nested block fields, which have no func tag to
// mark them on.
func hasRequired(rules string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == "required" {
			return true
		}
	}
	return false
}

func fieldPath(parent string, f reflect.StructField) string {
	name := ctyext.SnakeCase(f)
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// checkVar runs validator rules on a single value and rewrites the first
// failure into a human readable message.
func checkVar(value interface{}, rules string) error {
	err := check.Var(value, rules)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	format, ok := messages[fe.Tag()]
	if !ok {
		return errors.Errorf("invalid value (%s)", fe.Tag())
	}
	if !strings.Contains(format, "%") {
		return errors.New(format)
	}
	return errors.Errorf(format, fe.Param())
}
