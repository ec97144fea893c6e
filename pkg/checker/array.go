package checker

// Array builds a checker for array fields. Values are expected as []any,
// the shape produced by encoding/json for JSON arrays.
func Array(opts Options) (Checker, error) {
	if opts.Value != nil {
		if _, ok := opts.Value.([]any); !ok {
			return nil, NewAssertion("array checker: exact value must be a []any, got %T", opts.Value)
		}
	}

	return func(value any, ctx *Context) (any, error) {
		if done, err := absent(value, opts, ctx); done {
			return nil, err
		}

		arr, isArray := value.([]any)

		if opts.Value != nil {
			want := opts.Value.([]any)
			if isArray && arrayEqual(arr, want) {
				return opts.Value, nil
			}
			return nil, NewInvalid(ctx.Path)
		}

		ok := isArray
		if ok {
			if opts.Length != nil {
				ok = ok && len(arr) == *opts.Length
			}
			if opts.MinLength != nil {
				ok = ok && len(arr) >= *opts.MinLength
			}
			if opts.MaxLength != nil {
				ok = ok && len(arr) <= *opts.MaxLength
			}
		}
		if !ok {
			return nil, NewInvalid(ctx.Path)
		}
		return value, nil
	}, nil
}

// arrayEqual reports whether two arrays have the same length and pairwise
// equal elements. Elements are compared by value identity, not structurally.
func arrayEqual(got, want []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if !scalarEqual(got[i], want[i]) {
			return false
		}
	}
	return true
}
