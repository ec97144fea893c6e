package checker

// Options configures a checker built by one of the factories. Constraints
// use pointer fields so a zero value stays expressible: Minimum of 0 or
// Length of 0 are legitimate bounds, distinct from "no bound".
//
// Options are copied into the checker at construction time; mutating an
// Options struct after building a checker has no effect on it.
type Options struct {
	// Mandatory rejects nil values with a missing error, unless the check
	// runs in partial mode.
	Mandatory bool

	// Value pins the field to an exact value. When set, every other
	// constraint is ignored: the field is valid iff it equals Value
	// (arrays: same length and pairwise equal elements). The factory it is
	// passed to rejects a Value of the wrong type at construction time.
	Value any

	// Exact and bounded lengths for string and array checkers.
	Length    *int
	MinLength *int
	MaxLength *int

	// Re, Reg and Regex each hold a pattern for string checkers; the first
	// non-empty one wins. The pattern must match the whole value.
	Re    string
	Reg   string
	Regex string

	// Number constraints.
	IsFloat    bool // non-zero fractional part
	IsInteger  bool // zero fractional part
	IsPositive bool // value >= 0
	IsNegative bool // value <= 0
	IsNotNull  bool // value != 0
	Minimum    *float64
	Maximum    *float64
}

// pattern returns the configured string pattern, if any.
func (o Options) pattern() string {
	switch {
	case o.Re != "":
		return o.Re
	case o.Reg != "":
		return o.Reg
	default:
		return o.Regex
	}
}
