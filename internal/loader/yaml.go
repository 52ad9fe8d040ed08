package loader

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alycrisco/Core/internal/core"
)

// yamlEvaluator reads YAML and JSON manifests. JSON is parsed as YAML.
type yamlEvaluator struct {
	format string
}

func (e yamlEvaluator) Format() string { return e.format }

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func (e yamlEvaluator) Evaluate(filename string, src []byte) (core.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		evalErr := &ManifestEvaluationError{Path: filename, Cause: err}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			evalErr.Location = filename + ":" + m[1]
		}
		return core.Value{}, evalErr
	}
	v, err := yamlToValue(&doc)
	if err != nil {
		return core.Value{}, &ManifestEvaluationError{Path: filename, Cause: err}
	}
	return v, nil
}

// yamlToValue walks a node tree keeping mapping order. Float scalars keep
// their literal text, so unquoted versions such as 1.0 survive as "1.0".
func yamlToValue(n *yaml.Node) (core.Value, error) {
	switch n.Kind {
	case 0:
		return core.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return core.Null(), nil
		}
		return yamlToValue(n.Content[0])
	case yaml.AliasNode:
		return yamlToValue(n.Alias)
	case yaml.SequenceNode:
		items := make([]core.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := yamlToValue(c)
			if err != nil {
				return core.Value{}, err
			}
			items[i] = v
		}
		return core.ListValue(items...), nil
	case yaml.MappingNode:
		out := core.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Tag == "!!merge" {
				return core.Value{}, fmt.Errorf("line %d: merge keys are not supported", k.Line)
			}
			v, err := yamlToValue(vn)
			if err != nil {
				return core.Value{}, err
			}
			out.Set(k.Value, v)
		}
		return out, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!float" {
			return core.StringValue(n.Value), nil
		}
		var scalar any
		if err := n.Decode(&scalar); err != nil {
			return core.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return core.FromAny(scalar), nil
	}
	return core.Value{}, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}
