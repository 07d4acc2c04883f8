package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	"gopkg.in/yaml.v3"
)

type field struct {
	key   string
	value any
}

// object is a mapping that keeps its keys in document order.
type object []field

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o object) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range o {
		var value yaml.Node
		if err := value.Encode(f.value); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			&value,
		)
	}
	return n, nil
}

// integer is a decimal integer written as a bare number in both JSON and
// YAML.
type integer string

func (i integer) MarshalJSON() ([]byte, error) {
	return []byte(i), nil
}

func (i integer) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(i)}, nil
}

var (
	integerType = reflect.TypeOf((*ejbjar.Integer)(nil))
	boolType   = reflect.TypeOf(ejbjar.Bool(false))
	emptyType  = reflect.TypeOf(ejbjar.Empty{})
)

// tree converts a model value into nested objects keyed by element and
// attribute names. Choice fields become an object whose kind key names the
// element that was chosen.
func tree(v any) any {
	out, _ := convert(reflect.ValueOf(v))
	return out
}

func convert(v reflect.Value) (any, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if v.Type() == integerType {
		if v.IsNil() {
			return nil, false
		}
		return integer(v.Interface().(*ejbjar.Integer).String()), true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
		return convert(v.Elem())
	}

	switch v.Type() {
	case boolType:
		return v.Bool(), true
	case emptyType:
		return true, true
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Slice:
		if v.Len() == 0 {
			return nil, false
		}
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if item, ok := convert(v.Index(i)); ok {
				items = append(items, item)
			}
		}
		return items, true
	case reflect.Struct:
		return convertStruct(v), true
	}
	return v.Interface(), true
}

func convertStruct(v reflect.Value) object {
	t := v.Type()
	var o object
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Name == "XMLName" || !f.IsExported() {
			continue
		}

		if f.Type.Kind() == reflect.Interface {
			if fv.IsNil() {
				continue
			}
			kind, _ := ejbjar.ElementName(fv.Interface())
			inner, _ := convert(fv)
			variant := object{{key: "kind", value: kind}}
			if body, ok := inner.(object); ok {
				variant = append(variant, body...)
			}
			o = append(o, field{key: strings.ToLower(f.Name), value: variant})
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("xml"), ",")
		if name == "" || name == "-" {
			continue
		}
		value, ok := convert(fv)
		if !ok {
			continue
		}
		if strings.Contains(opts, "omitempty") && fv.Kind() == reflect.String && fv.Len() == 0 {
			continue
		}
		o = append(o, field{key: name, value: value})
	}
	return o
}
