package checker

// CustomCheck is the hook signature accepted by Extend. It receives the
// value after the base checker accepted it. A return of exactly false
// rejects the value with an invalid error at the current path; any other
// return becomes the checker's result — a replacement value to write back
// in sanitize mode, or nil to leave the value untouched.
type CustomCheck func(value any, ctx *Context) any

// Extension pairs a base checker kind with a custom check hook.
type Extension struct {
	// Type names the primitive the custom check decorates: "boolean",
	// "number", "string" or "array".
	Type string

	// Check runs after the base checker passes.
	Check CustomCheck
}

// Extend builds the base checker for ext.Type from opts, then decorates it
// with ext.Check. Base-checker failures propagate unchanged; the hook only
// ever runs on values the base checker accepted. It is the mechanism behind
// the built-in siret and uuid checkers and is open to callers for their own
// formats.
func Extend(opts Options, ext Extension) (Checker, error) {
	if ext.Check == nil {
		return nil, NewAssertion("extend: check hook is required")
	}
	base, err := buildPrimitive(ext.Type, opts)
	if err != nil {
		return nil, err
	}
	return wrap(base, ext.Check), nil
}

func buildPrimitive(kind string, opts Options) (Checker, error) {
	switch kind {
	case "boolean":
		return Boolean(opts)
	case "number":
		return Number(opts)
	case "string":
		return String(opts)
	case "array":
		return Array(opts)
	default:
		return nil, NewAssertion("extend: unknown base type %q", kind)
	}
}

// wrap decorates base with a custom check. The hook is skipped for absent
// values: a nil value the base checker accepted stays accepted.
func wrap(base Checker, check CustomCheck) Checker {
	return func(value any, ctx *Context) (any, error) {
		result, err := base(value, ctx)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return result, nil
		}

		out := check(value, ctx)
		if rejected, ok := out.(bool); ok && !rejected {
			return nil, NewInvalid(ctx.Path)
		}
		return out, nil
	}
}
