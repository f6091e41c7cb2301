package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Evaluate(t *testing.T) {
	record := map[string]any{
		"score":  0.75,
		"tenant": "1",
		"object": "blog.post:1:42",
	}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{name: "empty", expr: "", want: true},
		{name: "score match", expr: "record.score >= 0.5", want: true},
		{name: "score miss", expr: "record.score > 0.8", want: false},
		{name: "string", expr: `record.tenant == "1" && record.object.startsWith("blog.post:")`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, e.String())

			got, err := e.Evaluate(record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	_, err := Compile("record.score >")
	assert.Error(t, err)

	_, err = Compile(`"not a bool"`)
	assert.Error(t, err)

	e, err := Compile("record.missing > 1")
	require.NoError(t, err)
	_, err = e.Evaluate(map[string]any{"score": 1.0})
	assert.Error(t, err)
}
