package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule(t *testing.T) {
	var buf bytes.Buffer
	Rule(&buf, 5)
	assert.Equal(t, "-----\n", buf.String())
}

func TestBool(t *testing.T) {
	assert.Equal(t, "Y", Bool(true))
	assert.Equal(t, "N", Bool(false))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []byte(`{"a":1}`)))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestJSONNonJSONFallsBackToRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []byte("not json")))
	assert.Equal(t, "not json\n", buf.String())
}
