package loader

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/alycrisco/Core/internal/core"
)

// Evaluator turns manifest source into a document: an ordered map holding the
// root's attributes, with nested documents under the "subspecs" key.
// Failures are reported as *ManifestEvaluationError.
type Evaluator interface {
	// Format names the manifest language, e.g. "yaml".
	Format() string

	Evaluate(filename string, src []byte) (core.Value, error)
}

var evaluators = map[string]func() Evaluator{
	".yaml": func() Evaluator { return yamlEvaluator{format: "yaml"} },
	".yml":  func() Evaluator { return yamlEvaluator{format: "yaml"} },
	".json": func() Evaluator { return yamlEvaluator{format: "json"} },
	".cue":  func() Evaluator { return newCUEEvaluator() },
	".hcl":  func() Evaluator { return hclEvaluator{} },
}

// EvaluatorFor picks the evaluator for path by its extension.
func EvaluatorFor(path string) (Evaluator, bool) {
	mk, ok := evaluators[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false
	}
	return mk(), true
}

// Extensions returns the supported manifest extensions without the dot,
// sorted.
func Extensions() []string {
	out := make([]string, 0, len(evaluators))
	for ext := range evaluators {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(out)
	return out
}
