package entities

import "strings"

// LineKind classifies one physical line of a requirements manifest.
type LineKind int

const (
	// LineRequirement is a dependency declaration ("django==1.6.1").
	LineRequirement LineKind = iota
	// LineComment is a full-line comment ("# ...").
	LineComment
	// LineBlank is an empty or whitespace-only line.
	LineBlank
	// LineInclude is an include directive ("-r base.txt" / "-c constraints.txt").
	LineInclude
)

// transitiveMarker is the conventional pip comment placed on requirement
// lines that were pinned for a transitive dependency rather than declared
// directly by the project.
const transitiveMarker = "not directly required"

// RequirementLine is one parsed line of a requirements manifest. Raw always
// holds the original text byte-for-byte; the typed fields are only populated
// for the matching kind.
type RequirementLine struct {
	Kind LineKind
	Raw  string

	// Requirement fields.
	Name       string
	Extras     string
	Comparator string
	Version    string
	Comment    string // trailing comment including the leading "#"

	// Include fields.
	IncludePath string
}

// Key returns the normalized package-identity composite for this line,
// in the "name@declaredVersion" form used by remediation maps.
func (it RequirementLine) Key() string {
	return NormalizeKey(it.Name + "@" + it.Version)
}

// IsTransitive reports whether the line carries the pip "not directly
// required" marker, meaning the dependency is not a direct one.
func (it RequirementLine) IsTransitive() bool {
	return strings.Contains(strings.ToLower(it.Comment), transitiveMarker)
}

// ParsedRequirements holds the ordered line records of one physical
// manifest file. Order is significant and preserved on render.
type ParsedRequirements struct {
	FileName string
	Lines    []RequirementLine
}

// Render rebuilds the manifest text from the line records. Lines that were
// never rewritten reproduce the original content byte-for-byte.
func (it *ParsedRequirements) Render() string {
	raw := make([]string, 0, len(it.Lines))
	for _, line := range it.Lines {
		raw = append(raw, line.Raw)
	}
	return strings.Join(raw, "\n")
}

// Includes returns the include directives of this file in order.
func (it *ParsedRequirements) Includes() []RequirementLine {
	var includes []RequirementLine
	for _, line := range it.Lines {
		if line.Kind == LineInclude {
			includes = append(includes, line)
		}
	}
	return includes
}
