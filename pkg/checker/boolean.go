package checker

// Boolean builds a checker for boolean fields.
func Boolean(opts Options) (Checker, error) {
	if opts.Value != nil {
		if _, ok := opts.Value.(bool); !ok {
			return nil, NewAssertion("boolean checker: exact value must be a bool, got %T", opts.Value)
		}
	}

	return func(value any, ctx *Context) (any, error) {
		if done, err := absent(value, opts, ctx); done {
			return nil, err
		}

		if opts.Value != nil {
			if value == opts.Value {
				return opts.Value, nil
			}
			return nil, NewInvalid(ctx.Path)
		}

		if _, ok := value.(bool); !ok {
			return nil, NewInvalid(ctx.Path)
		}
		return value, nil
	}, nil
}
