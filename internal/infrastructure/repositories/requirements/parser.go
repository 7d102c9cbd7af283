package requirements

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// requirementPattern matches "name[extras] comparator version [# comment]".
// Only the version token group is ever rewritten; everything else is kept
// byte-for-byte through the Raw field.
var requirementPattern = regexp.MustCompile(
	`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)\s*(\[[^\]]*\])?\s*` +
		`(===|==|>=|<=|~=|!=|>|<)\s*([A-Za-z0-9][A-Za-z0-9.*+!_-]*)\s*(#.*)?$`,
)

// includePattern matches "-r <path>" and "-c <path>" directives, including
// their long forms.
var includePattern = regexp.MustCompile(
	`^\s*(?:-r|-c|--requirement|--constraint)\s+(\S+)\s*$`,
)

// Parse converts raw manifest text into ordered line records. Lines that
// match none of the known shapes are recorded as comments so they round-trip
// untouched.
func (it *ManifestRepository) Parse(fileName, content string) *entities.ParsedRequirements {
	rawLines := strings.Split(content, "\n")
	lines := make([]entities.RequirementLine, 0, len(rawLines))

	for _, raw := range rawLines {
		lines = append(lines, classifyLine(raw))
	}

	return &entities.ParsedRequirements{FileName: fileName, Lines: lines}
}

func classifyLine(raw string) entities.RequirementLine {
	trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))

	if trimmed == "" {
		return entities.RequirementLine{Kind: entities.LineBlank, Raw: raw}
	}

	if strings.HasPrefix(trimmed, "#") {
		return entities.RequirementLine{Kind: entities.LineComment, Raw: raw}
	}

	if m := includePattern.FindStringSubmatch(trimmed); m != nil {
		return entities.RequirementLine{
			Kind:        entities.LineInclude,
			Raw:         raw,
			IncludePath: m[1],
		}
	}

	if m := requirementPattern.FindStringSubmatch(trimmed); m != nil {
		return entities.RequirementLine{
			Kind:       entities.LineRequirement,
			Raw:        raw,
			Name:       m[1],
			Extras:     strings.Trim(m[2], "[]"),
			Comparator: m[3],
			Version:    m[4],
			Comment:    m[5],
		}
	}

	// Anything else (editable installs, URLs, hashes, env markers) is
	// preserved verbatim and never rewritten.
	return entities.RequirementLine{Kind: entities.LineComment, Raw: raw}
}
