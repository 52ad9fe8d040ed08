package loader

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/alycrisco/Core/internal/core"
)

// cueEvaluator compiles a single CUE file and exports its concrete value.
type cueEvaluator struct {
	ctx *cue.Context
}

func newCUEEvaluator() cueEvaluator {
	return cueEvaluator{ctx: cuecontext.New()}
}

func (cueEvaluator) Format() string { return "cue" }

func (e cueEvaluator) Evaluate(filename string, src []byte) (core.Value, error) {
	v := e.ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return core.Value{}, cueEvaluationError(filename, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return core.Value{}, cueEvaluationError(filename, err)
	}
	out, err := cueToValue(v)
	if err != nil {
		return core.Value{}, &ManifestEvaluationError{Path: filename, Cause: err}
	}
	return out, nil
}

func cueEvaluationError(filename string, err error) *ManifestEvaluationError {
	evalErr := &ManifestEvaluationError{Path: filename, Cause: err}
	if positions := cueerrors.Positions(err); len(positions) > 0 {
		evalErr.Location = positions[0].String()
	}
	return evalErr
}

// cueToValue converts a concrete value. Struct fields keep declaration order;
// definitions and hidden fields are skipped. Float literals keep their source
// text when it is available.
func cueToValue(v cue.Value) (core.Value, error) {
	switch v.Kind() {
	case cue.NullKind:
		return core.Null(), nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return core.Value{}, err
		}
		return core.BoolValue(b), nil
	case cue.IntKind:
		i, err := v.Int64()
		if err != nil {
			return core.Value{}, err
		}
		return core.IntValue(i), nil
	case cue.FloatKind:
		if lit, ok := v.Source().(*ast.BasicLit); ok {
			return core.StringValue(lit.Value), nil
		}
		f, err := v.Float64()
		if err != nil {
			return core.Value{}, err
		}
		return core.FloatValue(f), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return core.Value{}, err
		}
		return core.StringValue(s), nil
	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return core.Value{}, err
		}
		return core.StringValue(string(b)), nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return core.Value{}, err
		}
		var items []core.Value
		for iter.Next() {
			item, err := cueToValue(iter.Value())
			if err != nil {
				return core.Value{}, err
			}
			items = append(items, item)
		}
		return core.ListValue(items...), nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return core.Value{}, err
		}
		out := core.NewMap()
		for iter.Next() {
			field, err := cueToValue(iter.Value())
			if err != nil {
				return core.Value{}, err
			}
			out.Set(iter.Selector().Unquoted(), field)
		}
		return out, nil
	}
	return core.Value{}, fmt.Errorf("%s: unsupported value of kind %s", v.Path(), v.Kind())
}
