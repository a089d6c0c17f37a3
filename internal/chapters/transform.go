package chapters

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reSeparators   = regexp.MustCompile(`[_.\-]+`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reLeadingIndex = regexp.MustCompile(`^\d+\s*[.)\-:]?\s+`)
)

// Transform rewrites a chapter name; index is its zero-based position.
type Transform func(index int, name string) string

// Options selects the transforms Apply runs.
type Options struct {
	Clean      bool
	Capitalize bool
	Number     bool
}

// Transforms returns the enabled transforms in their fixed order:
// clean, capitalize, number.
func (o Options) Transforms() []Transform {
	var ts []Transform
	if o.Clean {
		ts = append(ts, Clean)
	}
	if o.Capitalize {
		ts = append(ts, Capitalize)
	}
	if o.Number {
		ts = append(ts, Number)
	}
	return ts
}

// Apply runs transforms over names and returns a new slice.
func Apply(names []string, transforms ...Transform) []string {
	out := make([]string, len(names))
	for i, name := range names {
		for _, t := range transforms {
			name = t(i, name)
		}
		out[i] = name
	}
	return out
}

// Clean turns runs of underscores, dots and dashes into single spaces and
// collapses whitespace.
func Clean(_ int, name string) string {
	name = reSeparators.ReplaceAllString(name, " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(name, " "))
}

// Capitalize title-cases every word.
func Capitalize(_ int, name string) string {
	return cases.Title(language.Und).String(name)
}

// Number prefixes the one-based position, replacing an existing leading
// track number such as "03 - " or "3. ".
func Number(index int, name string) string {
	name = reLeadingIndex.ReplaceAllString(name, "")
	return fmt.Sprintf("%d. %s", index+1, name)
}
