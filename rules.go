package detectionformats

import "slices"

// checker accumulates the violations of one record in rule order. Every rule
// is independent; a failing rule never stops the ones after it.
type checker struct {
	class  string
	issues Issues
}

func newChecker(class string) *checker { return &checker{class: class} }

func (c *checker) add(field, code string, kv ...any) {
	kv = append([]any{"field", field, "class", c.class}, kv...)
	c.issues = AppendIssues(c.issues, Root().Field(field).Issue(code, kv...))
}

// requiredString distinguishes a missing value from an empty one.
func (c *checker) requiredString(field string, v *string) {
	switch {
	case v == nil:
		c.add(field, CodeRequired)
	case *v == "":
		c.add(field, CodeEmpty)
	}
}

// requiredText is requiredString for fields where "" means absent.
func (c *checker) requiredText(field, v string) {
	if v == "" {
		c.add(field, CodeRequired)
	}
}

func (c *checker) required(field string, present bool) {
	if !present {
		c.add(field, CodeRequired)
	}
}

// entity checks a nested record: missing, or present but invalid.
func (c *checker) entity(field string, present, valid bool) {
	switch {
	case !present:
		c.add(field, CodeRequired)
	case !valid:
		c.add(field, CodeInvalidNested)
	}
}

// optionalEntity checks a nested record only when it is present.
func (c *checker) optionalEntity(field string, present, valid bool) {
	if present && !valid {
		c.add(field, CodeInvalidNested)
	}
}

// oneOf checks an optional enumerated value; "" counts as absent.
func (c *checker) oneOf(field, v string, allowed ...string) {
	if v != "" {
		c.enum(field, &v, allowed...)
	}
}

// enum checks an optional enumerated value, case-sensitively.
func (c *checker) enum(field string, v *string, allowed ...string) {
	if v == nil || slices.Contains(allowed, *v) {
		return
	}
	c.add(field, CodeInvalidEnum, "allowed", allowed)
}

// atLeast checks an optional lower bound, inclusive.
func (c *checker) atLeast(field string, v *float64, min float64) {
	if v != nil && *v < min {
		c.add(field, CodeTooSmall, "min", min)
	}
}

// between checks an optional closed interval.
func (c *checker) between(field string, v *float64, min, max float64) {
	if v != nil && (*v < min || *v > max) {
		c.add(field, CodeOutOfRange, "min", min, "max", max)
	}
}

// requiredBetween is between for a value that must be present.
func (c *checker) requiredBetween(field string, v *float64, min, max float64) {
	if v == nil {
		c.add(field, CodeRequired)
		return
	}
	c.between(field, v, min, max)
}

// element reports an invalid Data element. The path points at its position
// in the serialized Data array.
func (c *checker) element(field, variant string, index int) {
	c.issues = AppendIssues(c.issues, Root().Field("Data").Index(index).Issue(CodeInvalidElement,
		"field", field, "class", c.class, "variant", variant, "index", index))
}

func (c *checker) result() Issues { return c.issues }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
