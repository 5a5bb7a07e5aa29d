package detectionformats

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate object keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // Maximum container nesting; 0 disables the check.
	MaxBytes   int64 // Maximum input size; 0 disables the check.

	// IssueSink receives non-fatal notices: duplicate keys under Warn and
	// dropped Data elements. It is never called for violations.
	IssueSink func(Issue)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
