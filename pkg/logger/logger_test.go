package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup("production", &buf)
	defer Setup(os.Getenv("ENVIRONMENT"), os.Stdout)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	Info("listed %d products", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listed 3 products", entry["message"])
}

func TestRequestLevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	Setup("production", &buf)
	defer Setup(os.Getenv("ENVIRONMENT"), os.Stdout)

	Request("GET", "/api/products", 500, 3*time.Millisecond, "req-1", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/api/products", entry["uri"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
}
