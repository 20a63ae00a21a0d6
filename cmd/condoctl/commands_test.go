package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestDecodeFromStdin(t *testing.T) {
	raw := `{"data":[{"@res":"{\"status\":\"success\",\"body\":[{\"id\":1}]}"}]}`
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(run(t, raw, "decode")), &got))
	assert.Equal(t, []map[string]any{{"id": float64(1)}}, got)
}

func TestDecodePayload(t *testing.T) {
	raw := `{"response":"Proveedores","status":"success","body":[]}`
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(run(t, raw, "decode", "--payload")), &got))
	assert.Equal(t, "Proveedores", got["response"])
	assert.Equal(t, "success", got["status"])
}

func TestEncodeThenDecode(t *testing.T) {
	encoded := run(t, `[{"referencia":"A-1"}]`, "encode")
	assert.Contains(t, encoded, `"@res"`)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(run(t, encoded, "decode")), &got))
	assert.Equal(t, "A-1", got[0]["referencia"])
}

func TestEncodeRejectsObject(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"encode"})
	cmd.SetIn(strings.NewReader(`{"id":1}`))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
