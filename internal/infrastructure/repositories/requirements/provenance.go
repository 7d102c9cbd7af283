package requirements

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// ResolveProvenance computes the closure of physical files reachable from
// the entry manifest via include directives, entry file first. Include
// paths are resolved relative to the directory of the file that declares
// them; cycles are broken by the visited set.
func (it *ManifestRepository) ResolveProvenance(
	ctx context.Context,
	workspace repositories.WorkspaceRepository,
	dir, entryName string,
) (*entities.ProvenanceMap, error) {
	prov := entities.NewProvenanceMap()
	visited := make(map[string]struct{})
	queue := []string{filepath.Clean(entryName)}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if _, ok := visited[name]; ok {
			continue
		}
		visited[name] = struct{}{}

		content, err := workspace.ReadFile(ctx, filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %q: %w", name, err)
		}

		parsed := it.Parse(name, content)
		prov.Add(name, parsed)

		for _, include := range parsed.Includes() {
			referenced := filepath.Clean(
				filepath.Join(filepath.Dir(name), include.IncludePath),
			)
			queue = append(queue, referenced)
		}
	}

	return prov, nil
}
