package shader

import (
	"strings"
)

type Stage string

const (
	StageVertex   Stage = "vert"
	StageFragment Stage = "frag"
)

const ArtifactExtension = ".spv"

var Stages = []Stage{
	StageFragment,
	StageVertex,
}

func (r Stage) Extension() string {
	return "." + string(r)
}

func (r Stage) Tag() string {
	return "_" + string(r)
}

// StageOf matches the exact, case-sensitive stage extension of name.
func StageOf(name string) (Stage, bool) {
	for _, stage := range Stages {
		if strings.HasSuffix(name, stage.Extension()) {
			return stage, true
		}
	}
	return "", false
}
