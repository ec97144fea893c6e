package checker

import "math"

// Number builds a checker for numeric fields. Decoded values may arrive as
// any Go numeric type (float64 from encoding/json, int from literals, ...);
// all constraints are evaluated after widening to float64.
func Number(opts Options) (Checker, error) {
	if opts.Value != nil {
		if _, ok := toFloat64(opts.Value); !ok {
			return nil, NewAssertion("number checker: exact value must be numeric, got %T", opts.Value)
		}
	}

	return func(value any, ctx *Context) (any, error) {
		if done, err := absent(value, opts, ctx); done {
			return nil, err
		}

		num, isNumber := toFloat64(value)

		if opts.Value != nil {
			want, _ := toFloat64(opts.Value)
			if isNumber && num == want {
				return opts.Value, nil
			}
			return nil, NewInvalid(ctx.Path)
		}

		ok := isNumber
		if ok {
			_, frac := math.Modf(num)
			if opts.IsFloat {
				ok = ok && frac != 0
			}
			if opts.IsInteger {
				ok = ok && frac == 0
			}
			if opts.IsPositive {
				ok = ok && num >= 0
			}
			if opts.IsNegative {
				ok = ok && num <= 0
			}
			if opts.IsNotNull {
				ok = ok && num != 0
			}
			if opts.Minimum != nil {
				ok = ok && num >= *opts.Minimum
			}
			if opts.Maximum != nil {
				ok = ok && num <= *opts.Maximum
			}
		}
		if !ok {
			return nil, NewInvalid(ctx.Path)
		}
		return value, nil
	}, nil
}
