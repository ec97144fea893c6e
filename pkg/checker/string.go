package checker

import "regexp"

// String builds a checker for string fields.
func String(opts Options) (Checker, error) {
	var format *regexp.Regexp
	if pat := opts.pattern(); pat != "" {
		compiled, err := regexp.Compile(`\A(?:` + pat + `)\z`)
		if err != nil {
			return nil, NewAssertion("string checker: bad pattern %q: %v", pat, err)
		}
		format = compiled
	}
	return buildString(opts, format)
}

// buildString is the shared core of String and the derived format checkers,
// which pass a pre-compiled pattern that takes precedence over the ones in
// the options.
func buildString(opts Options, format *regexp.Regexp) (Checker, error) {
	if opts.Value != nil {
		if _, ok := opts.Value.(string); !ok {
			return nil, NewAssertion("string checker: exact value must be a string, got %T", opts.Value)
		}
	}

	return func(value any, ctx *Context) (any, error) {
		if done, err := absent(value, opts, ctx); done {
			return nil, err
		}

		str, isString := value.(string)

		if opts.Value != nil {
			if isString && str == opts.Value.(string) {
				return opts.Value, nil
			}
			return nil, NewInvalid(ctx.Path)
		}

		ok := isString
		if ok {
			if opts.Length != nil {
				ok = ok && len(str) == *opts.Length
			}
			if opts.MinLength != nil {
				ok = ok && len(str) >= *opts.MinLength
			}
			if opts.MaxLength != nil {
				ok = ok && len(str) <= *opts.MaxLength
			}
			if format != nil {
				ok = ok && format.MatchString(str)
			}
		}
		if !ok {
			return nil, NewInvalid(ctx.Path)
		}
		return value, nil
	}, nil
}
