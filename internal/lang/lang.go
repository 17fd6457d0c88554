// Package lang defines the closed set of target languages the code-generation
// tools accept.
package lang

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is a supported code-generation target language.
type Language string

const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
	Python     Language = "python"
	Go         Language = "go"
	Rust       Language = "rust"
	CPP        Language = "cpp"
)

// extensions maps each supported language to its source file extension.
var extensions = map[Language]string{
	TypeScript: ".ts",
	JavaScript: ".js",
	Python:     ".py",
	Go:         ".go",
	Rust:       ".rs",
	CPP:        ".cpp",
}

// displayOverrides holds display names that plain title casing gets wrong.
var displayOverrides = map[Language]string{
	TypeScript: "TypeScript",
	JavaScript: "JavaScript",
	CPP:        "C++",
}

// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated).
var titleCaser = cases.Title(language.English)

// Parse validates a raw language argument against the supported set.
// Matching is case-insensitive; any value outside the set is an error.
func Parse(raw string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := extensions[l]; !ok {
		return "", fmt.Errorf("unsupported language %q; supported languages: %s", raw, strings.Join(Names(), ", "))
	}
	return l, nil
}

// Display returns the human-readable name of the language, e.g. "TypeScript"
// for typescript and "Python" for python.
func (l Language) Display() string {
	if name, ok := displayOverrides[l]; ok {
		return name
	}
	return titleCaser.String(string(l))
}

// FileExt returns the source file extension for the language, including the
// leading dot.
func (l Language) FileExt() string {
	return extensions[l]
}

// Names returns the supported language identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(extensions))
	for l := range extensions {
		names = append(names, string(l))
	}
	sort.Strings(names)
	return names
}
