package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(map[System]string{
		SystemABM: "abm-token",
	})

	token, err := p.GetToken(context.Background(), SystemABM)
	assert.NoError(t, err)
	assert.Equal(t, "abm-token", token)

	// Unconfigured system is an error
	_, err = p.GetToken(context.Background(), SystemJamf)
	assert.Error(t, err)
}

func TestScriptProvider(t *testing.T) {
	dir := t.TempDir()

	writeScript := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
		return path
	}

	t.Run("returns trimmed stdout", func(t *testing.T) {
		script := writeScript("ok.sh", `echo "  secret-token  "`)
		p := NewScriptProvider(map[System]string{SystemJamf: script})

		token, err := p.GetToken(context.Background(), SystemJamf)
		assert.NoError(t, err)
		assert.Equal(t, "secret-token", token)
	})

	t.Run("empty output is an error", func(t *testing.T) {
		script := writeScript("empty.sh", `true`)
		p := NewScriptProvider(map[System]string{SystemJamf: script})

		_, err := p.GetToken(context.Background(), SystemJamf)
		assert.ErrorContains(t, err, "empty token")
	})

	t.Run("script failure is an error", func(t *testing.T) {
		script := writeScript("fail.sh", `echo "boom" >&2; exit 1`)
		p := NewScriptProvider(map[System]string{SystemJamf: script})

		_, err := p.GetToken(context.Background(), SystemJamf)
		assert.ErrorContains(t, err, "failed")
	})

	t.Run("unconfigured system", func(t *testing.T) {
		p := NewScriptProvider(nil)
		_, err := p.GetToken(context.Background(), SystemABM)
		assert.Error(t, err)
	})
}

func TestAuthErrorMessage(t *testing.T) {
	err := &Error{System: SystemJamf, StatusCode: 401}
	assert.Contains(t, err.Error(), "jamf")
	assert.Contains(t, err.Error(), "401")
}
