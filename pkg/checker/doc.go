// Package checker provides the field-level validation building blocks of
// the fieldcheck SDK.
//
// A Checker is a pure function built once from an Options struct and reused
// across validation passes. Factories exist for the primitive kinds:
//
//	c, err := checker.Number(checker.Options{Minimum: &min, Maximum: &max})
//
// and for derived string formats (mac, ipv4, ipv6, objectId, email, siret,
// uuid), which inject a fixed pattern into the string checker:
//
//	c, err := checker.Email(checker.Options{Mandatory: true})
//
// Build dispatches on a kind name for callers that configure checkers from
// data:
//
//	c, err := checker.Build("ipv4", checker.Options{})
//
// # Extension
//
// Extend decorates a primitive checker with a custom hook, which can reject
// values the base checker accepted or rewrite them in sanitize mode:
//
//	c, err := checker.Extend(checker.Options{}, checker.Extension{
//		Type: "string",
//		Check: func(value any, ctx *checker.Context) any {
//			if !knownCurrency(value.(string)) {
//				return false
//			}
//			return nil
//		},
//	})
//
// The built-in siret and uuid checkers are implemented this way.
//
// # Failures
//
// Checkers report violations as *Error values carrying a Kind and the
// dotted path of the offending field. The first violation aborts the whole
// pass; nothing is aggregated. missing and invalid are data errors;
// invalidSchema and assertion are programmer errors raised when schemas and
// checkers are built, never during a check.
package checker
