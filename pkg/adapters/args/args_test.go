package args_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/adapters/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want args.Evaluate
	}{
		{
			name: "native types",
			raw:  map[string]any{"name": "sample", "words": []any{"ab", "&"}, "deterministic": true},
			want: args.Evaluate{Name: "sample", Words: []string{"ab", "&"}, Deterministic: true},
		},
		{
			name: "JSON array string",
			raw:  map[string]any{"name": "sample", "words": `["ab", ""]`},
			want: args.Evaluate{Name: "sample", Words: []string{"ab", ""}},
		},
		{
			name: "comma list",
			raw:  map[string]any{"name": "sample", "words": "ab, b ,ac", "deterministic": "true"},
			want: args.Evaluate{Name: "sample", Words: []string{"ab", "b", "ac"}, Deterministic: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got args.Evaluate
			require.NoError(t, args.Decode(tt.raw, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_EmptyWords(t *testing.T) {
	var got args.Evaluate
	require.NoError(t, args.Decode(map[string]any{"name": "sample", "words": ""}, &got))
	assert.Empty(t, got.Words)
}

func TestDecode_Errors(t *testing.T) {
	var got args.Evaluate
	assert.Error(t, args.Decode(map[string]any{"words": "[not json"}, &got))
	assert.Error(t, args.Decode(map[string]any{"deterministic": "maybe"}, &got))
}

func TestDecode_Automaton(t *testing.T) {
	var got args.Automaton
	require.NoError(t, args.Decode(map[string]any{"name": "sample", "deterministic": 1}, &got))
	assert.Equal(t, args.Automaton{Name: "sample", Deterministic: true}, got)
}
