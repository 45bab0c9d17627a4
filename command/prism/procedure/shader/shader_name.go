package shader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputName derives the artifact name for a shader source: the final
// extension is replaced by the stage tag and ".spv", so "basic.frag"
// becomes "basic_frag.spv".
func OutputName(name string) (string, error) {
	stage, ok := StageOf(name)
	if !ok {
		return "", fmt.Errorf("%q is not a shader source", name)
	}

	// * strip extension
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	return stem + stage.Tag() + ArtifactExtension, nil
}
