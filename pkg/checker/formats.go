package checker

import "regexp"

// Fixed patterns for the derived string checkers. Each one is anchored so
// it must cover the whole value.
var (
	macPattern = regexp.MustCompile(`\A([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}\z`)

	ipv4Pattern = regexp.MustCompile(`\A((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\z`)

	// Full and ::-compressed forms. Zone indices and embedded IPv4 tails
	// are not accepted.
	ipv6Pattern = regexp.MustCompile(`\A(` +
		`([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}` +
		`|([0-9a-fA-F]{1,4}:){1,7}:` +
		`|([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}` +
		`|([0-9a-fA-F]{1,4}:){1,5}(:[0-9a-fA-F]{1,4}){1,2}` +
		`|([0-9a-fA-F]{1,4}:){1,4}(:[0-9a-fA-F]{1,4}){1,3}` +
		`|([0-9a-fA-F]{1,4}:){1,3}(:[0-9a-fA-F]{1,4}){1,4}` +
		`|([0-9a-fA-F]{1,4}:){1,2}(:[0-9a-fA-F]{1,4}){1,5}` +
		`|[0-9a-fA-F]{1,4}:(:[0-9a-fA-F]{1,4}){1,6}` +
		`|:((:[0-9a-fA-F]{1,4}){1,7}|:)` +
		`)\z`)

	objectIDPattern = regexp.MustCompile(`\A[0-9a-fA-F]{24}\z`)

	emailPattern = regexp.MustCompile(`\A[^@\s]+@[^@\s]+\.[^@\s]+\z`)
)

// MAC builds a checker for colon-separated MAC addresses
// (e.g. "a0:b1:c2:d3:e4:f5").
func MAC(opts Options) (Checker, error) {
	return buildString(opts, macPattern)
}

// IPv4 builds a checker for dotted-quad IPv4 addresses.
func IPv4(opts Options) (Checker, error) {
	return buildString(opts, ipv4Pattern)
}

// IPv6 builds a checker for IPv6 addresses, in full or ::-compressed form.
func IPv6(opts Options) (Checker, error) {
	return buildString(opts, ipv6Pattern)
}

// ObjectID builds a checker for 24-character hexadecimal object identifiers.
func ObjectID(opts Options) (Checker, error) {
	return buildString(opts, objectIDPattern)
}

// Email builds a checker for email addresses.
func Email(opts Options) (Checker, error) {
	return buildString(opts, emailPattern)
}
