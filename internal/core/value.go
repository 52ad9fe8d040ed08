package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Symbol is a symbolic key. Maps keyed by symbols are stored with string keys.
type Symbol string

// Value is a manifest attribute value: null, bool, number, string, list, or an
// ordered map with string keys. The zero Value is null.
//
// Map and list values share their backing storage when copied. Values handed out
// by a Specification must be treated as read-only; use Clone before mutating.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    *orderedmap.OrderedMap[string, Value]
}

// Null returns the null value.
func Null() Value { return Value{} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue wraps a floating point number.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ListValue wraps the given items in a list value.
func ListValue(items ...Value) Value {
	list := make([]Value, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// StringList builds a list value of strings.
func StringList(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = StringValue(s)
	}
	return Value{kind: KindList, list: list}
}

// NewMap returns an empty ordered map value.
func NewMap() Value {
	return Value{kind: KindMap, m: orderedmap.New[string, Value]()}
}

// MapOf builds an ordered map value from alternating key, value pairs.
// Values are converted with FromAny. It panics on an odd argument count.
func MapOf(kv ...any) Value {
	if len(kv)%2 != 0 {
		panic("core.MapOf: odd number of arguments")
	}
	out := NewMap()
	for i := 0; i < len(kv); i += 2 {
		out.m.Set(keyString(kv[i]), FromAny(kv[i+1]))
	}
	return out
}

// FromAny converts a Go value into a Value. Map keys are converted to strings
// at every nesting depth: Symbols and fmt.Stringers use their string form, other
// keys are formatted with fmt.Sprint. Plain Go maps have no order, so their keys
// are inserted sorted; ordered maps keep their order.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Value:
		if t == nil {
			return Null()
		}
		return *t
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	case Symbol:
		return StringValue(string(t))
	case int:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case float64:
		return FloatValue(t)
	case []Value:
		return ListValue(t...)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Value{kind: KindList, list: items}
	case []string:
		return StringList(t...)
	case *orderedmap.OrderedMap[string, Value]:
		out := NewMap()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.m.Set(pair.Key, pair.Value.Clone())
		}
		return out
	case *orderedmap.OrderedMap[string, any]:
		out := NewMap()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.m.Set(pair.Key, FromAny(pair.Value))
		}
		return out
	case *orderedmap.OrderedMap[any, any]:
		out := NewMap()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.m.Set(keyString(pair.Key), FromAny(pair.Value))
		}
		return out
	case fmt.Stringer:
		return StringValue(t.String())
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntValue(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float())
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = FromAny(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: items}
	case reflect.Map:
		type entry struct {
			key   string
			value reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{key: keyString(iter.Key().Interface()), value: iter.Value()})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		out := NewMap()
		for _, e := range entries {
			out.m.Set(e.key, FromAny(e.value.Interface()))
		}
		return out
	}
	return StringValue(fmt.Sprint(rv.Interface()))
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case Symbol:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(k)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the bool held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the number held by v. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsList returns the items of a list value.
func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Len returns the number of entries of a list or map, and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return v.m.Len()
	}
	return 0
}

// Get returns the entry stored under key when v is a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	return v.m.Get(key)
}

// Keys returns the keys of a map value in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, v.m.Len())
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each map entry in insertion order until fn returns false.
func (v Value) Range(fn func(key string, value Value) bool) {
	if v.kind != KindMap {
		return
	}
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Set stores an entry in a map value, converting value with FromAny.
// It panics if v is not a map.
func (v Value) Set(key string, value any) {
	if v.kind != KindMap {
		panic("core.Value.Set on " + v.kind.String())
	}
	v.m.Set(key, FromAny(value))
}

// Strings flattens v into a list of strings: a string yields itself, a list
// yields its string items, null yields nothing.
func (v Value) Strings() []string {
	switch v.kind {
	case KindString:
		return []string{v.s}
	case KindList:
		out := make([]string, 0, len(v.list))
		for _, item := range v.list {
			if s, ok := item.AsString(); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.Clone()
		}
		return Value{kind: KindList, list: items}
	case KindMap:
		out := NewMap()
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			out.m.Set(pair.Key, pair.Value.Clone())
		}
		return out
	}
	return v
}

// Equal reports whether v and other hold the same data. Map equality ignores
// entry order; list equality does not.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if v.m.Len() != other.m.Len() {
			return false
		}
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			o, ok := other.m.Get(pair.Key)
			if !ok || !pair.Value.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v into plain Go values: map[string]any, []any, string,
// bool, int64, float64, or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, v.m.Len())
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = pair.Value.Interface()
		}
		return out
	}
	return nil
}

// String renders v for humans. Strings are returned unquoted.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(b)
}

// MarshalJSON encodes v, keeping map entries in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return marshalJSONString(v.s)
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		first := true
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			k, err := marshalJSONString(pair.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			b, err := pair.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("cannot marshal value of kind %s", v.kind)
}

// marshalJSONString encodes s without HTML escaping.
func marshalJSONString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML encodes v as a yaml.Node, keeping map entries in insertion order.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode()
}

func (v Value) yamlNode() (*yaml.Node, error) {
	switch v.kind {
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			child, err := pair.Value.yamlNode()
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v.Interface()); err != nil {
		return nil, fmt.Errorf("encoding %s value: %w", v.kind, err)
	}
	return node, nil
}
