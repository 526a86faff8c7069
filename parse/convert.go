package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/goccy/go-yaml"
)

// Format names an interchange format understood by the bridges.
type Format string

var formats = struct {
	Acon Format
	JSON Format
	YAML Format
}{
	Acon: "acon",
	JSON: "json",
	YAML: "yaml",
}

var (
	FormatAcon = formats.Acon
	FormatJSON = formats.JSON
	FormatYAML = formats.YAML
)

// ParseFormat accepts the usual spellings of a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "acon":
		return formats.Acon, nil
	case "json":
		return formats.JSON, nil
	case "yaml", "yml":
		return formats.YAML, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// =========================
// ACON -> Go
// =========================

// ToUntyped converts n into string, []any and map[string]any values.
func ToUntyped(n acon.Node) any {
	switch v := n.(type) {
	case *acon.String:
		return v.V
	case *acon.Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *acon.Table:
		m := make(map[string]any, len(v.Items))
		for k, child := range v.Items {
			m[k] = ToUntyped(child)
		}
		return m
	default:
		return nil
	}
}

// toOrdered is ToUntyped with tables as yaml.MapSlice in key order.
func toOrdered(n acon.Node) any {
	switch v := n.(type) {
	case *acon.Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = toOrdered(v.Elems[i])
		}
		return out
	case *acon.Table:
		out := make(yaml.MapSlice, 0, v.Len())
		for _, k := range v.Keys() {
			out = append(out, yaml.MapItem{Key: k, Value: toOrdered(v.Items[k])})
		}
		return out
	default:
		return ToUntyped(n)
	}
}

// ToJSON renders n as indented JSON. encoding/json sorts map keys, which
// matches table order.
func ToJSON(n acon.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToUntyped(n)); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAML renders n as YAML.
func ToYAML(n acon.Node) ([]byte, error) {
	out, err := yaml.Marshal(toOrdered(n))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// Encode renders a document in the requested format.
func Encode(root *acon.Table, f Format) ([]byte, error) {
	switch f {
	case formats.Acon:
		return acon.Marshal(root)
	case formats.JSON:
		return ToJSON(root)
	case formats.YAML:
		return ToYAML(root)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// =========================
// Go -> ACON
// =========================

// FromUntyped converts decoded JSON or YAML values into ACON nodes. Scalars
// become strings; null becomes the empty string.
func FromUntyped(v any) (acon.Node, error) {
	switch x := v.(type) {
	case nil:
		return acon.NewString(""), nil
	case string:
		return acon.NewString(normalize(x)), nil
	case bool:
		return acon.NewString(strconv.FormatBool(x)), nil
	case float64:
		return acon.NewString(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case []byte:
		return acon.NewString(normalize(string(x))), nil
	case json.Number:
		return acon.NewString(x.String()), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		return acon.NewString(fmt.Sprint(x)), nil
	case []any:
		arr := acon.NewArray()
		for i, e := range x {
			n, err := FromUntyped(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.Append(n)
		}
		return arr, nil
	case map[string]any:
		t := acon.NewTable()
		for k, e := range x {
			if err := setEntry(t, k, e); err != nil {
				return nil, err
			}
		}
		return t, nil
	case map[any]any:
		t := acon.NewTable()
		for k, e := range x {
			if err := setEntry(t, fmt.Sprint(k), e); err != nil {
				return nil, err
			}
		}
		return t, nil
	case yaml.MapSlice:
		t := acon.NewTable()
		for _, item := range x {
			if err := setEntry(t, fmt.Sprint(item.Key), item.Value); err != nil {
				return nil, err
			}
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

func setEntry(t *acon.Table, key string, v any) error {
	if t.Has(key) {
		return fmt.Errorf("duplicate key %q", key)
	}
	n, err := FromUntyped(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	t.Set(key, n)
	return nil
}

// Decode reads a document in the given format. Non-ACON documents must have
// a mapping at the top level.
func Decode(data []byte, f Format) (*acon.Table, error) {
	var v any
	switch f {
	case formats.Acon:
		return acon.ParseBytes(data)
	case formats.JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case formats.YAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}

	n, err := FromUntyped(v)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*acon.Table)
	if !ok {
		return nil, fmt.Errorf("top level %s value is %s, want a mapping", f, n.Kind())
	}
	return root, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
