package checker

import "github.com/google/uuid"

// UUID builds a checker for RFC 4122 UUID strings. Like SIRET it is a
// consumer of the extension mechanism: a plain string check followed by a
// parse with github.com/google/uuid.
func UUID(opts Options) (Checker, error) {
	return Extend(opts, Extension{
		Type: "string",
		Check: func(value any, ctx *Context) any {
			str, ok := value.(string)
			if !ok {
				return false
			}
			if _, err := uuid.Parse(str); err != nil {
				return false
			}
			return nil
		},
	})
}
