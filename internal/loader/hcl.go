package loader

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/alycrisco/Core/internal/core"
)

// subspecBlock is the block type declaring a nested subspec:
//
//	subspec "Core" {
//	  source_files = ["Core/*.m"]
//	}
//
// Blocks named after a known platform ("ios { ... }") hold platform-scoped
// attributes.
const subspecBlock = "subspec"

// hclEvaluator reads native-syntax HCL manifests. Expressions are evaluated
// without variables or functions; object and tuple literals are walked
// directly so their entries keep source order.
type hclEvaluator struct{}

func (hclEvaluator) Format() string { return "hcl" }

func (hclEvaluator) Evaluate(filename string, src []byte) (core.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return core.Value{}, hclEvaluationError(filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return core.Value{}, &ManifestEvaluationError{Path: filename, Cause: fmt.Errorf("unexpected HCL body %T", file.Body)}
	}
	d := hclDecoder{src: src}
	out, diags := d.specBody(body, true)
	if diags.HasErrors() {
		return core.Value{}, hclEvaluationError(filename, diags)
	}
	return out, nil
}

func hclEvaluationError(filename string, diags hcl.Diagnostics) *ManifestEvaluationError {
	evalErr := &ManifestEvaluationError{Path: filename, Cause: diags}
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			evalErr.Location = fmt.Sprintf("%s:%d:%d", d.Subject.Filename, d.Subject.Start.Line, d.Subject.Start.Column)
			break
		}
	}
	return evalErr
}

type hclDecoder struct {
	src []byte
}

type hclEntry struct {
	offset int
	key    string
	value  core.Value
}

// specBody decodes a spec or platform body. Only spec bodies may contain
// blocks.
func (d hclDecoder) specBody(body *hclsyntax.Body, allowBlocks bool) (core.Value, hcl.Diagnostics) {
	var (
		diags    hcl.Diagnostics
		entries  []hclEntry
		subspecs []core.Value
	)
	seen := make(map[string]bool)

	for name, attr := range body.Attributes {
		v, valDiags := d.expr(attr.Expr)
		diags = append(diags, valDiags...)
		entries = append(entries, hclEntry{offset: attr.SrcRange.Start.Byte, key: name, value: v})
		seen[name] = true
	}

	subspecsAt := -1
	for _, block := range body.Blocks {
		switch {
		case allowBlocks && block.Type == subspecBlock:
			if len(block.Labels) != 1 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid subspec block",
					Detail:   "A subspec block takes exactly one label: its name.",
					Subject:  block.TypeRange.Ptr(),
				})
				continue
			}
			child, childDiags := d.specBody(block.Body, true)
			diags = append(diags, childDiags...)
			named := core.MapOf(core.AttrName, block.Labels[0])
			child.Range(func(key string, v core.Value) bool {
				if key != core.AttrName {
					named.Set(key, v)
				}
				return true
			})
			if subspecsAt < 0 {
				subspecsAt = block.TypeRange.Start.Byte
			}
			subspecs = append(subspecs, named)
		case allowBlocks && core.IsKnownPlatform(block.Type) && len(block.Labels) == 0:
			if seen[block.Type] {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate platform",
					Detail:   fmt.Sprintf("Platform %q is declared more than once.", block.Type),
					Subject:  block.TypeRange.Ptr(),
				})
				continue
			}
			scoped, scopedDiags := d.specBody(block.Body, false)
			diags = append(diags, scopedDiags...)
			entries = append(entries, hclEntry{offset: block.TypeRange.Start.Byte, key: block.Type, value: scoped})
			seen[block.Type] = true
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", block.Type),
				Subject:  block.TypeRange.Ptr(),
			})
		}
	}

	if subspecsAt >= 0 {
		if seen[core.AttrSubspecs] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Conflicting subspecs",
				Detail:   "Use either a subspecs attribute or subspec blocks, not both.",
				Subject:  body.Attributes[core.AttrSubspecs].SrcRange.Ptr(),
			})
		} else {
			entries = append(entries, hclEntry{offset: subspecsAt, key: core.AttrSubspecs, value: core.ListValue(subspecs...)})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })
	out := core.NewMap()
	for _, e := range entries {
		out.Set(e.key, e.value)
	}
	return out, diags
}

func (d hclDecoder) expr(e hclsyntax.Expression) (core.Value, hcl.Diagnostics) {
	switch t := e.(type) {
	case *hclsyntax.ObjectConsExpr:
		var diags hcl.Diagnostics
		out := core.NewMap()
		for _, item := range t.Items {
			kv, keyDiags := item.KeyExpr.Value(nil)
			diags = append(diags, keyDiags...)
			if keyDiags.HasErrors() {
				continue
			}
			if kv.IsNull() || !kv.IsKnown() || kv.Type() != cty.String {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid object key",
					Detail:   "Object keys must be strings.",
					Subject:  item.KeyExpr.Range().Ptr(),
				})
				continue
			}
			v, valDiags := d.expr(item.ValueExpr)
			diags = append(diags, valDiags...)
			out.Set(kv.AsString(), v)
		}
		return out, diags
	case *hclsyntax.TupleConsExpr:
		var diags hcl.Diagnostics
		items := make([]core.Value, 0, len(t.Exprs))
		for _, item := range t.Exprs {
			v, itemDiags := d.expr(item)
			diags = append(diags, itemDiags...)
			items = append(items, v)
		}
		return core.ListValue(items...), diags
	case *hclsyntax.LiteralValueExpr:
		if t.Val.Type() == cty.Number {
			if text := string(t.SrcRange.SliceBytes(d.src)); strings.ContainsAny(text, ".eE") {
				return core.StringValue(text), nil
			}
		}
	}

	v, diags := e.Value(nil)
	if diags.HasErrors() {
		return core.Value{}, diags
	}
	out, err := ctyToValue(v)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported value",
			Detail:   err.Error(),
			Subject:  e.Range().Ptr(),
		})
	}
	return out, diags
}

// ctyToValue converts an evaluated value. Object and map keys come back in
// lexical order, which is the only order cty keeps.
func ctyToValue(v cty.Value) (core.Value, error) {
	if !v.IsKnown() {
		return core.Value{}, fmt.Errorf("value is not known")
	}
	if v.IsNull() {
		return core.Null(), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return core.StringValue(v.AsString()), nil
	case ty == cty.Bool:
		return core.BoolValue(v.True()), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return core.IntValue(i), nil
			}
		}
		f, _ := bf.Float64()
		return core.FloatValue(f), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		var items []core.Value
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			item, err := ctyToValue(elem)
			if err != nil {
				return core.Value{}, err
			}
			items = append(items, item)
		}
		return core.ListValue(items...), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := core.NewMap()
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			item, err := ctyToValue(elem)
			if err != nil {
				return core.Value{}, fmt.Errorf("in %q: %w", key.AsString(), err)
			}
			out.Set(key.AsString(), item)
		}
		return out, nil
	}
	return core.Value{}, fmt.Errorf("unsupported type %s", ty.FriendlyName())
}
