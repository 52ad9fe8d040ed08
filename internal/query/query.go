// Package query evaluates JSONPath expressions against a specification's
// serialized attribute tree.
package query

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/alycrisco/Core/internal/core"
	oerrors "github.com/alycrisco/Core/internal/errors"
)

// Run evaluates expr against spec.ToValue() and returns the matches in
// document order. Maps in the results carry sorted keys.
func Run(spec *core.Specification, expr string) ([]core.Value, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, oerrors.NewParseError(
			fmt.Sprintf("invalid jsonpath %q: %v", expr, err),
			`Queries use JSONPath, e.g. "$.subspecs[*].name".`,
		)
	}

	results := x.Get(spec.ToValue().Interface())

	out := make([]core.Value, len(results))
	for i, r := range results {
		out[i] = core.FromAny(r)
	}
	return out, nil
}
