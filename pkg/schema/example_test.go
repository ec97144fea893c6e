package schema_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/fieldcheck/go-sdk/pkg/checker"
	"github.com/fieldcheck/go-sdk/pkg/schema"
)

// Example validates a payload against a nested schema, sanitizing the
// SIRET field and reporting the first violation with its dotted path.
func Example() {
	s, err := schema.New(map[string]any{
		"name":  checker.Must(checker.String(checker.Options{Mandatory: true})),
		"email": checker.Must(checker.Email(checker.Options{Mandatory: true})),
		"company": map[string]any{
			"siret": checker.Must(checker.SIRET(checker.Options{})),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	payload := map[string]any{
		"name":  "Jane",
		"email": "main@jokester.fr",
		"company": map[string]any{
			"siret": "53268510400012",
		},
		"role": "admin", // not declared: pruned
	}

	if _, err := s.Check(payload, schema.CheckOptions{Sanitize: true}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(payload["company"].(map[string]any)["siret"])
	_, pruned := payload["role"]
	fmt.Println(pruned)

	// A violation aborts the pass and names the offending field.
	_, err = s.Check(map[string]any{
		"email":   "main@jokester.fr",
		"company": map[string]any{},
	}, schema.CheckOptions{})
	var cerr *checker.Error
	if errors.As(err, &cerr) {
		fmt.Printf("%s: %s\n", cerr.Kind, cerr.Message)
	}

	// Output:
	// 532 685 104 00012
	// false
	// missing: name is missing
}
