package plan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// Document is a remediation-plan file: the set of entities to fix and the
// pin/upgrade mappings computed upstream for each of them.
type Document struct {
	Entities []Entry `yaml:"entities"`
}

// Entry binds one manifest to its remediation plan.
type Entry struct {
	Manifest    string                       `yaml:"manifest"`
	Remediation *entities.RemediationChanges `yaml:"remediation"`
}

// Load reads and parses a remediation-plan file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %q: %w", path, err)
	}

	var doc Document
	if unmarshalErr := yaml.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse plan file %q: %w", path, unmarshalErr)
	}

	if len(doc.Entities) == 0 {
		return nil, errors.New("plan file declares no entities")
	}

	return &doc, nil
}

// ToEntities binds every plan entry to the given workspace, producing the
// ordered batch input of a fix run.
func (it *Document) ToEntities(workspace repositories.WorkspaceRepository) []entities.EntityToFix {
	toFix := make([]entities.EntityToFix, 0, len(it.Entities))
	for _, entry := range it.Entities {
		toFix = append(toFix, entities.EntityToFix{
			ManifestPath: entry.Manifest,
			Remediation:  entry.Remediation,
			Workspace:    workspace,
		})
	}
	return toFix
}
