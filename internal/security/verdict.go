// Package security implements the bash-command allowlisting checkpoint.
// Every shell command the agent proposes is classified against an immutable
// per-session Policy before it is allowed to execute.
package security

// Decision represents the classification outcome for a command.
type Decision int

const (
	// DecisionDeny is the zero value, so an uninitialized Verdict never
	// permits execution.
	DecisionDeny Decision = iota

	// DecisionAllow indicates the command passed every check.
	DecisionAllow
)

// String returns the string representation of a Decision.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Rule identifiers reported on Verdicts for checks that are not named
// denied patterns.
const (
	RuleInput     = "input"
	RuleAllowlist = "allowlist"
	RulePathScope = "path-scope"
)

// Verdict is the result of classifying a single command. Verdicts are
// produced fresh per call, carry no identity, and are never cached.
type Verdict struct {
	// Decision is the allow/deny outcome.
	Decision Decision

	// Reason is a human-readable explanation, set when Decision is deny.
	Reason string

	// Rule identifies which check produced the verdict: a denied pattern
	// name, or one of the Rule* constants.
	Rule string
}

// Allowed reports whether the verdict permits execution.
func (v Verdict) Allowed() bool {
	return v.Decision == DecisionAllow
}

func allowVerdict() Verdict {
	return Verdict{Decision: DecisionAllow}
}

func denyVerdict(rule, reason string) Verdict {
	return Verdict{Decision: DecisionDeny, Rule: rule, Reason: reason}
}
