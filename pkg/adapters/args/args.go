// Package args decodes loosely typed request arguments shared by the HTTP and MCP adapters.
package args

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Evaluate carries the arguments of an evaluation request.
type Evaluate struct {
	Name          string   `mapstructure:"name"`
	Words         []string `mapstructure:"words"`
	Deterministic bool     `mapstructure:"deterministic"`
}

// Automaton carries the arguments of a request naming a single automaton.
type Automaton struct {
	Name          string `mapstructure:"name"`
	Deterministic bool   `mapstructure:"deterministic"`
}

// Decode fills out from raw.
// Strings are accepted where lists are expected, either as a JSON array or as a comma separated list.
// Booleans may be given as strings ("true", "1").
func Decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToList,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func stringToList(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil, fmt.Errorf("malformed JSON list: %w", err)
		}
		return list, nil
	}
	if s == "" {
		return []string{}, nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
