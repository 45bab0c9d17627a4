package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

var validate = newValidator()

// newValidator names fields by their yaml key so errors point at the file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// New reads, templates, parses and validates a yaml file into T. A missing
// file is reported with an error wrapping os.ErrNotExist.
func New[T any](path string) (*T, error) {
	// * read config file
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return nil, fmt.Errorf("error processing templates: %w", err)
	}

	// * create new config instance
	config := new(T)

	// * parse config
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	// * validate config
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", Describe(err))
	}

	return config, nil
}

// Template expands "{{ env.NAME || fallback }}" expressions. Alternatives
// are tried in order; a set variable or any literal ends the search.
func Template(bytes []byte) ([]byte, error) {
	var failure error
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		groups := templateRegex.FindSubmatch(match)
		value, err := expand(string(groups[1]))
		if err != nil && failure == nil {
			failure = err
		}
		return []byte(value)
	})
	if failure != nil {
		return nil, failure
	}

	return processed, nil
}

func expand(expression string) (string, error) {
	for _, alternative := range strings.Split(expression, "||") {
		alternative = strings.TrimSpace(alternative)
		key, variable := strings.CutPrefix(alternative, "env.")
		switch {
		case variable && key == "":
			return "", fmt.Errorf("empty variable name in %q", strings.TrimSpace(expression))
		case variable:
			if value := os.Getenv(key); value != "" {
				return value, nil
			}
		case alternative != "":
			// json literals become inline yaml
			if value, err := Nested(alternative); err == nil {
				return value, nil
			}
			return alternative, nil
		}
	}

	return "", nil
}

// Describe flattens validation errors into "field: tag" pairs keyed by yaml
// path. Other errors are returned unchanged.
func Describe(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		// * drop the root type name
		_, path, _ := strings.Cut(e.Namespace(), ".")
		part := fmt.Sprintf("%s: %s", path, e.Tag())
		if e.Param() != "" {
			part += "=" + e.Param()
		}
		parts = append(parts, part)
	}

	return fmt.Errorf("%w: %s", err, strings.Join(parts, ", "))
}

// Nested renders a json literal as inline yaml.
func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	node := new(yaml.Node)
	if err := node.Encode(result); err != nil {
		return "", err
	}
	setFlow(node)

	bytes, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}

	// * remove trailing newline
	return strings.TrimSuffix(string(bytes), "\n"), nil
}

func setFlow(node *yaml.Node) {
	if node.Kind == yaml.SequenceNode || node.Kind == yaml.MappingNode {
		node.Style = yaml.FlowStyle
	}
	for _, child := range node.Content {
		setFlow(child)
	}
}
