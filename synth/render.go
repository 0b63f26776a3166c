package synth

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	streamwire "github.com/lex00/streamwire-aws-go"
)

// ToJSON serializes the template to indented JSON.
func ToJSON(t *streamwire.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *streamwire.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
