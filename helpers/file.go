package helpers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

var ErrReadYaml = errors.New("failed to read config file")

// LoadYamlFile decodes filepath into conf, rejecting unknown keys. An empty path leaves conf untouched.
func LoadYamlFile[T any](filepath string, conf *T) error {
	if filepath == "" {
		return nil
	}
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadYaml, err)
	}
	defer func() { _ = file.Close() }()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrReadYaml, err)
	}
	return nil
}
