package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numkit/internal/config"
)

func TestRenderer_ListText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, config.OutputText).List("hex", []string{"ff", "0a"}))
	assert.Equal(t, "ff\n0a\n", buf.String())
}

func TestRenderer_ListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, config.OutputJSON).List("hex", nil))
	assert.JSONEq(t, `[]`, buf.String())

	buf.Reset()
	require.NoError(t, NewRenderer(&buf, config.OutputJSON).List("hex", []string{"ff"}))
	assert.JSONEq(t, `["ff"]`, buf.String())
}

func TestRenderer_ListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, config.OutputTable).List("chunk", []string{"abcd", "ef"}))

	out := buf.String()
	assert.Contains(t, out, "CHUNK")
	assert.Contains(t, out, "abcd")
	assert.Contains(t, out, "ef")
}

func TestRenderer_Table(t *testing.T) {
	cols := []string{"a", "b"}
	rows := [][]string{{"1", "x"}, {"2", "y"}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, config.OutputText).Table(cols, rows))
		assert.Equal(t, "1\tx\n2\ty\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, config.OutputJSON).Table(cols, rows))

		var got []map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []map[string]string{{"a": "1", "b": "x"}, {"a": "2", "b": "y"}}, got)
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, config.OutputTable).Table(cols, nil))
		assert.Equal(t, "(0 rows)\n", buf.String())
	})

	t.Run("unknown mode is text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, "yaml").Table(cols, rows[:1]))
		assert.Equal(t, "1\tx\n", buf.String())
	})
}
