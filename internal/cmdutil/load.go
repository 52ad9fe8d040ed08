package cmdutil

import (
	"strings"

	"github.com/alycrisco/Core/internal/core"
	"github.com/alycrisco/Core/internal/loader"
)

// LoadSpec loads the manifest at path and returns the node named subspec,
// or the root when subspec is empty. A subspec name without the root prefix
// is resolved below the root.
func LoadSpec(path, subspec string) (*core.Specification, error) {
	spec, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if subspec == "" {
		return spec, nil
	}
	return spec.SubspecByName(qualify(spec.Name(), subspec))
}

func qualify(root, name string) string {
	if name == root || strings.HasPrefix(name, root+core.Separator) {
		return name
	}
	if strings.EqualFold(name, root) || strings.HasPrefix(strings.ToLower(name), strings.ToLower(root+core.Separator)) {
		return name
	}
	return root + core.Separator + name
}
