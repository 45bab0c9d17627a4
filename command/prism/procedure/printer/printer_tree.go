package printer

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/prism/command/prism/procedure/shader"
	"go.scnd.dev/open/prism/command/prism/procedure/spirv"
)

func PrintTree(w io.Writer, directory string, sources []*shader.Source, artifacts []*shader.Artifact) error {
	root := gtree.NewRoot(directory)

	// * sources with their derived outputs
	sourceNode := root.Add(fmt.Sprintf("sources (%d)", len(sources)))
	for _, source := range sources {
		node := sourceNode.Add(fmt.Sprintf("%s [%s]", source.Name, source.Stage))
		node.Add("-> " + source.Output)
	}

	// * compiled artifacts
	artifactNode := root.Add(fmt.Sprintf("artifacts (%d)", len(artifacts)))
	for _, artifact := range artifacts {
		artifactNode.Add(ArtifactLabel(artifact))
	}

	return gtree.OutputFromRoot(w, root)
}

func ArtifactLabel(artifact *shader.Artifact) string {
	header, err := spirv.Inspect(artifact.Path)
	if err != nil {
		return fmt.Sprintf("%s [invalid, %d bytes]", artifact.Name, artifact.Size)
	}
	return fmt.Sprintf("%s [spir-v %s, %d words]", artifact.Name, header.VersionString(), header.Words)
}
