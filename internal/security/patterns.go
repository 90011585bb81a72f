package security

import "regexp"

// Pattern is a single denied-construct rule. Patterns are matched against
// the raw command string before any tokenization, so a dangerous construct
// hidden inside an otherwise-innocuous segment is still caught.
type Pattern struct {
	// Name is a short, unique identifier for this rule (e.g. "pipe-to-shell").
	Name string

	// Regex is the compiled expression tested against the whole command.
	Regex *regexp.Regexp

	// Description is the human-readable deny reason reported on match.
	Description string
}

// corePatterns flag constructs that are dangerous under every policy:
// privilege escalation, fetch-and-execute, destructive deletes, disk-level
// operations. Order matters: the first match wins and supplies the reason,
// so the more specific rules come first.
var corePatterns = []Pattern{
	{
		Name:        "fetch-and-execute",
		Regex:       regexp.MustCompile(`\b(curl|wget)\b[^|;&]*\|\s*(sh|bash|zsh|dash|ksh|python[0-9.]*|perl|ruby|node)\b`),
		Description: "network fetch piped into an interpreter",
	},
	{
		Name:        "pipe-to-shell",
		Regex:       regexp.MustCompile(`\|\s*(sh|bash|zsh|dash|ksh|python[0-9.]*|perl|ruby|node)\b`),
		Description: "pipe into a shell or interpreter",
	},
	{
		Name:        "privilege-escalation",
		Regex:       regexp.MustCompile(`(^|[\s;&|])(sudo|su|doas)\b`),
		Description: "privilege escalation",
	},
	{
		Name:        "recursive-delete",
		Regex:       regexp.MustCompile(`\brm\b[^|;&]*\s-[a-zA-Z]*[rR]`),
		Description: "destructive recursive delete",
	},
	{
		Name:        "fork-bomb",
		Regex:       regexp.MustCompile(`:\s*\(\s*\)\s*\{`),
		Description: "fork bomb definition",
	},
	{
		Name:        "disk-operation",
		Regex:       regexp.MustCompile(`\b(mkfs(\.[a-z0-9]+)?|fdisk|dd)\b`),
		Description: "disk-level operation",
	},
	{
		Name:        "device-write",
		Regex:       regexp.MustCompile(`/dev/(sd[a-z]|hd[a-z]|nvme|disk)`),
		Description: "write to a raw device",
	},
}

// strictPatterns additionally reject shell plumbing that can smuggle reads
// or writes past the allowlist: redirection, substitution, backgrounding.
// Only the restricted preset carries these.
var strictPatterns = []Pattern{
	{
		Name:        "command-substitution",
		Regex:       regexp.MustCompile("`|\\$\\("),
		Description: "command substitution",
	},
	{
		Name:        "output-redirect",
		Regex:       regexp.MustCompile(`>`),
		Description: "output redirection",
	},
	{
		Name:        "input-redirect",
		Regex:       regexp.MustCompile(`<`),
		Description: "input redirection",
	},
	{
		// A lone & backgrounds a command; && is segment chaining and is
		// handled by segmentation instead.
		Name:        "background-execution",
		Regex:       regexp.MustCompile(`(^|[^&])&([^&]|$)`),
		Description: "background execution",
	},
}

// DefaultDeniedPatterns is the full ordered rule set used by the
// restricted preset. It is exported so the effective policy can be
// reviewed as a flat list.
var DefaultDeniedPatterns = concatPatterns(corePatterns, strictPatterns)

// CoreDeniedPatterns is the reduced rule set used by the permissive
// preset: plumbing is tolerated, destructive constructs are not.
var CoreDeniedPatterns = concatPatterns(corePatterns, nil)

func concatPatterns(lists ...[]Pattern) []Pattern {
	var out []Pattern
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
