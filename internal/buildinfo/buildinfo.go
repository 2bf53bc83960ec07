package buildinfo

import "strings"

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags, e.g.:
//
//	-ldflags "-X 'github.com/fuzzland/tintin/internal/buildinfo.Version=1.2.3'"

var (
	// Version is the semantic version or custom string. Defaults to "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
