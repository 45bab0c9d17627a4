package compiler

import (
	"time"
)

const (
	DefaultEnvironment = "VULKAN_SDK"
	DefaultExecutable  = "bin/glslangValidator"
	DefaultFlag        = "-V"
	OutputFlag         = "-o"
)

// Config locates the toolchain. Root wins over Environment; when neither
// yields a path the compiler cannot be constructed.
type Config struct {
	Root        *string        `yaml:"root"`
	Environment *string        `yaml:"environment"`
	Executable  *string        `yaml:"executable"`
	Flags       []*string      `yaml:"flags" validate:"omitempty,dive,required"`
	Timeout     *time.Duration `yaml:"timeout"`
}
