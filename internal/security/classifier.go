package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// segmentSplitter splits a command line at shell-chaining operators. The
// alternation order matters: || and && before their single-character
// prefixes.
var segmentSplitter = regexp.MustCompile(`\|\||&&|;|\|`)

// Classify evaluates a proposed shell command against the policy and
// returns a Verdict. It is a pure function of (command, policy): no I/O,
// no shared mutable state, and bounded time in the command length and rule
// count, so it is safe to call concurrently.
//
// Evaluation is deny-first and fail-closed, in fixed order:
//
//  1. input guard: empty or oversized input is denied, never an error
//  2. denied-pattern scan over the raw string, before any tokenization
//  3. segmentation at chaining operators (;, &&, ||, |)
//  4. quote-aware tokenization of each segment, so quoted arguments are
//     checked by their effective value, not their literal spelling
//  5. per-segment program allowlist check on the basename of the first token
//  6. per-segment path-scope check on path-like arguments
//
// The first failing check short-circuits and its reason is reported.
func Classify(command string, policy *Policy) Verdict {
	if policy == nil {
		return denyVerdict(RuleInput, "no policy configured")
	}
	if len(command) > policy.maxLength() {
		return denyVerdict(RuleInput, "malformed: command exceeds maximum length")
	}
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return denyVerdict(RuleInput, "empty command")
	}

	// Raw-string scan first: dangerous constructs can hide a disallowed
	// program inside a segment that tokenization would misread.
	for _, pat := range policy.DeniedPatterns {
		if pat.Regex.MatchString(command) {
			return denyVerdict(pat.Name, pat.Description)
		}
	}

	segments := segmentSplitter.Split(trimmed, -1)
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			// A trailing separator ("ls;") leaves a harmless empty tail.
			// An empty segment anywhere else means an operator with no
			// command, which is rejected rather than guessed at.
			if i == len(segments)-1 {
				continue
			}
			return denyVerdict(RuleInput, "empty command segment")
		}

		tokens := tokenize(segment)
		if len(tokens) == 0 {
			return denyVerdict(RuleInput, "empty command segment")
		}
		program := filepath.Base(tokens[0])
		if !slices.Contains(policy.AllowedPrograms, program) {
			return denyVerdict(RuleAllowlist, fmt.Sprintf("program %q not in allowlist", program))
		}

		for _, arg := range tokens[1:] {
			if verdict, ok := checkPathScope(arg, policy.ProjectRoot); !ok {
				return verdict
			}
		}
	}

	return allowVerdict()
}

// checkPathScope validates a single argument against the project root.
// Non-path-like arguments pass implicitly. The check is purely lexical
// (no filesystem access): absolute paths and dot-dot traversal are
// resolved against the root with filepath.Clean semantics.
func checkPathScope(arg, projectRoot string) (Verdict, bool) {
	value := flagValue(arg)
	if !isPathLike(value) {
		return Verdict{}, true
	}

	// Tilde expansion would need the home directory; without resolving it
	// the target cannot be proven inside the root, so it is denied.
	if strings.HasPrefix(value, "~") {
		return denyVerdict(RulePathScope, fmt.Sprintf("path %q outside project root", value)), false
	}

	resolved := value
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(projectRoot, resolved)
	}
	resolved = filepath.Clean(resolved)

	root := filepath.Clean(projectRoot)
	if resolved != root && !strings.HasPrefix(resolved, root+string(filepath.Separator)) {
		return denyVerdict(RulePathScope, fmt.Sprintf("path %q outside project root", value)), false
	}
	return Verdict{}, true
}

// tokenize splits a segment on whitespace while honoring single and
// double quotes, returning tokens with one layer of quoting removed.
// `cat "../../etc/passwd"` must yield the same argument the shell would
// hand to cat, or the path-scope check inspects the wrong value. An
// unterminated quote runs to the end of the segment; escapes and nested
// quoting are not modeled.
func tokenize(segment string) []string {
	var tokens []string
	var b strings.Builder
	var quote byte
	inToken := false

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				b.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inToken = true
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if inToken {
				tokens = append(tokens, b.String())
				b.Reset()
				inToken = false
			}
		default:
			b.WriteByte(c)
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// flagValue strips a --flag= prefix so the value part is what gets
// path-checked (e.g. --output=../x).
func flagValue(arg string) string {
	if strings.HasPrefix(arg, "-") {
		if idx := strings.LastIndex(arg, "="); idx >= 0 {
			return arg[idx+1:]
		}
	}
	return arg
}

// isPathLike reports whether an argument should be treated as a filesystem
// path: absolute, tilde-prefixed, containing a separator, or containing a
// dot-dot component.
func isPathLike(arg string) bool {
	if arg == "" {
		return false
	}
	if filepath.IsAbs(arg) || strings.HasPrefix(arg, "~") {
		return true
	}
	if strings.Contains(arg, "..") {
		return true
	}
	return strings.Contains(arg, "/")
}
