package generator

import (
	"errors"
	"fmt"
	"go/token"

	"omibyte.io/ctucanfd/regmap"
)

// checkIdentifiers reports names that cannot be rendered as Go. Register
// offsets, word types, enum types and enum values share the package scope of
// the generated file together with Register and Map.
func checkIdentifiers(m *regmap.Map) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrDescription}, args...)...))
	}

	scope := map[string]string{
		"Register": "the offset type",
		"Map":      "the map variable",
		"regmap":   "the regmap import",
	}
	declare := func(name, what string) {
		if !token.IsIdentifier(name) {
			fail("%s %q is not a Go identifier", what, name)
			return
		}
		if other, ok := scope[name]; ok {
			fail("%s %s collides with %s", what, name, other)
			return
		}
		scope[name] = what + " " + name
	}

	for _, r := range m.Registers {
		declare(r.Name, "register")
	}
	for _, w := range m.Words {
		declare(w.Name+"_REG", "word type")

		methods := map[string]bool{}
		for _, f := range w.Fields {
			if f.Reserved {
				continue
			}
			if !token.IsIdentifier("Get" + f.Name) {
				fail("field %s.%s is not a Go identifier", w.Name, f.Name)
				continue
			}
			if methods[f.Name] {
				fail("word %s has two fields called %s", w.Name, f.Name)
			}
			methods[f.Name] = true
		}
	}
	for _, e := range m.Enums {
		declare(e.Name, "enum")
		for _, v := range e.Values {
			declare(v.Name, "value of "+e.Name)
		}
	}

	return errors.Join(errs...)
}
