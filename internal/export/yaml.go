package export

import (
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/numlang/internal/symbols"
)

// MarshalYAML writes an entry as {name, value}. Doubles always carry a
// fractional part or exponent so they read back as floats.
func (e Entry) MarshalYAML() (interface{}, error) {
	value := &yaml.Node{Kind: yaml.ScalarNode}
	if e.Value.Kind == symbols.Float {
		value.Tag = "!!float"
		value.Value = yamlFloat(e.Value.Float)
	} else {
		value.Tag = "!!int"
		value.Value = strconv.FormatInt(e.Value.Int, 10)
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "value"},
			value,
		},
	}, nil
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return symbols.FormatFloat(f)
}

// WriteYAML encodes s as a single YAML document.
func WriteYAML(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
