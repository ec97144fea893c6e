package checker

import (
	"encoding/json"
	"reflect"
)

// Checker validates a single value. On success it returns a result: a
// sanitized replacement for the value, or nil when the field is absent and
// there is nothing to write back. On violation it returns a *Error.
//
// Checkers close over options validated at construction time, carry no
// mutable state, and are safe to share across goroutines.
type Checker func(value any, ctx *Context) (any, error)

// Context carries per-invocation state through a validation pass. It is
// passed by value between recursion levels, so a level never observes
// mutations made deeper in the tree.
type Context struct {
	// Path is the dotted location of the value under check, relative to the
	// root of the validation pass. Empty at the root.
	Path string

	// Partial skips mandatory-field enforcement, for partial updates.
	Partial bool

	// Sanitize lets checkers rewrite field values in place.
	Sanitize bool
}

// Child returns a copy of the context whose path descends into key.
func (c Context) Child(key string) Context {
	child := c
	if c.Path == "" {
		child.Path = key
	} else {
		child.Path = c.Path + "." + key
	}
	return child
}

// Build constructs a checker by kind name. It accepts the primitive kinds
// (boolean, number, string, array) and the derived string formats (mac,
// ipv4, ipv6, objectId, email, siret, uuid). An unknown kind is an
// assertion error.
func Build(kind string, opts Options) (Checker, error) {
	switch kind {
	case "boolean":
		return Boolean(opts)
	case "number":
		return Number(opts)
	case "string":
		return String(opts)
	case "array":
		return Array(opts)
	case "mac":
		return MAC(opts)
	case "ipv4":
		return IPv4(opts)
	case "ipv6":
		return IPv6(opts)
	case "objectId":
		return ObjectID(opts)
	case "email":
		return Email(opts)
	case "siret":
		return SIRET(opts)
	case "uuid":
		return UUID(opts)
	default:
		return nil, NewAssertion("unknown checker kind %q", kind)
	}
}

// Kinds lists the kind names accepted by Build.
func Kinds() []string {
	return []string{
		"boolean", "number", "string", "array",
		"mac", "ipv4", "ipv6", "objectId", "email", "siret", "uuid",
	}
}

// Must panics if err is non-nil. It simplifies schema literals built from
// checker factories:
//
//	schema.New(map[string]any{
//		"name": checker.Must(checker.String(checker.Options{Mandatory: true})),
//	})
func Must(c Checker, err error) Checker {
	if err != nil {
		panic(err)
	}
	return c
}

// absent handles nil values ahead of any type check. done reports that the
// checker should return (nil, err) immediately: a nil value is either a
// missing-error or an accepted absent field, never inspected further.
func absent(value any, opts Options, ctx *Context) (done bool, err error) {
	if value != nil {
		return false, nil
	}
	if opts.Mandatory && !ctx.Partial {
		return true, NewMissing(ctx.Path)
	}
	return true, nil
}

// toFloat64 widens the numeric types a decoded value may carry.
func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// scalarEqual compares two interface values without panicking on
// uncomparable dynamic types such as maps or slices.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
