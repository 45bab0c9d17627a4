package driver

import (
	"context"
	"fmt"
	"os"

	"go.scnd.dev/open/prism/command/prism/procedure/shader"
)

// Clean removes compiled artifacts from the directory. With dryRun it only
// reports what would be removed.
func (r *Driver) Clean(ctx context.Context, dryRun bool) ([]*shader.Artifact, error) {
	s, _ := r.Layer.With(ctx)
	defer s.End()
	s.Variable("dry_run", dryRun)

	artifacts, err := shader.ScanArtifacts(r.Directory)
	if err != nil {
		return nil, s.Error("unable to scan artifacts", err)
	}

	for _, artifact := range artifacts {
		if dryRun {
			fmt.Fprintf(r.Out, "would remove: %s\n", artifact.Name)
			continue
		}

		if err := os.Remove(artifact.Path); err != nil {
			return nil, s.Error(fmt.Sprintf("unable to remove %s", artifact.Name), err)
		}
		fmt.Fprintf(r.Out, "removed: %s\n", artifact.Name)
	}

	return artifacts, nil
}
