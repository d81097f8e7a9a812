package yamlanswers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlAnswersFile struct {
	Answers []yamlAnswer `yaml:"answers"`
}

type yamlAnswer struct {
	Year    int             `yaml:"year"`
	Day     int             `yaml:"day"`
	Input   string          `yaml:"input"`
	PartOne yamlAnswerValue `yaml:"part_one"`
	PartTwo yamlAnswerValue `yaml:"part_two"`
}

// yamlAnswerValue accepts any scalar so that `part_one: 24000` and
// `part_one: "CMZ"` both decode to text.
type yamlAnswerValue struct {
	Value *string
}

func (v *yamlAnswerValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: answer must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		v.Value = nil
		return nil
	}
	s := node.Value
	v.Value = &s
	return nil
}
