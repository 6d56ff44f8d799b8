package gamedata

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// readEmbedded returns the raw bytes of an embedded data file.
func readEmbedded(name string) ([]byte, error) {
	content, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return content, nil
}

// Load decodes an embedded JSON file into T. Fields T does not declare
// are rejected so a typo in the data file fails loudly.
func Load[T any](name string) (T, error) {
	var result T
	content, err := readEmbedded(name)
	if err != nil {
		return result, err
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", name, err)
	}
	return result, nil
}
