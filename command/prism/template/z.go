package template

import (
	_ "embed"
)

//go:embed structure/prism.yml
var StructurePrismConfig []byte
