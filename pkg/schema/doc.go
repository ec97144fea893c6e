// Package schema assembles checkers into validation trees and walks input
// values against them.
//
// A definition maps field names to checkers or nested definitions:
//
//	s, err := schema.New(map[string]any{
//		"name":  checker.Must(checker.String(checker.Options{Mandatory: true})),
//		"email": checker.Must(checker.Email(checker.Options{})),
//		"address": map[string]any{
//			"city": checker.Must(checker.String(checker.Options{})),
//		},
//	})
//
// Check walks a value against the tree, pruning undeclared fields and
// reporting the first violation with its dotted path:
//
//	if _, err := s.Check(payload, schema.CheckOptions{}); err != nil {
//		var cerr *checker.Error
//		if errors.As(err, &cerr) {
//			log.Printf("%s at %q", cerr.Kind, cerr.Path)
//		}
//	}
//
// With CheckOptions.Sanitize, checker results (a formatted SIRET, a value
// rewritten by a custom extension) are written back into the value in place.
// With CheckOptions.Partial, mandatory fields may be absent.
package schema
