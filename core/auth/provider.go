package auth

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// System identifies which external API a token belongs to.
type System string

const (
	// SystemABM is the Apple Business Manager API.
	SystemABM System = "abm"
	// SystemJamf is the Jamf Pro API.
	SystemJamf System = "jamf"
)

// TokenProvider supplies a bearer token for an external system. The core
// treats tokens as opaque strings; how they are obtained (static config,
// helper script, secret store) is the provider's concern.
type TokenProvider interface {
	GetToken(ctx context.Context, system System) (string, error)
}

// StaticProvider returns pre-configured tokens, one per system.
type StaticProvider struct {
	tokens map[System]string
}

// NewStaticProvider builds a provider from a fixed system to token map.
func NewStaticProvider(tokens map[System]string) *StaticProvider {
	return &StaticProvider{tokens: tokens}
}

// GetToken returns the configured token for the system.
func (p *StaticProvider) GetToken(_ context.Context, system System) (string, error) {
	token, ok := p.tokens[system]
	if !ok || token == "" {
		return "", fmt.Errorf("no token configured for system %q", system)
	}
	return token, nil
}

// ScriptProvider obtains tokens by executing an external helper script per
// system. The script must print the token to stdout and nothing else.
type ScriptProvider struct {
	scripts map[System]string
}

// NewScriptProvider builds a provider from a system to script path map.
func NewScriptProvider(scripts map[System]string) *ScriptProvider {
	return &ScriptProvider{scripts: scripts}
}

// GetToken runs the helper script for the system and returns its trimmed
// stdout as the token.
func (p *ScriptProvider) GetToken(ctx context.Context, system System) (string, error) {
	script, ok := p.scripts[system]
	if !ok || script == "" {
		return "", fmt.Errorf("no token script configured for system %q", system)
	}

	out, err := exec.CommandContext(ctx, script).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("token script %s failed: %w (stderr: %s)", script, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("token script %s failed: %w", script, err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("token script %s returned an empty token", script)
	}
	return token, nil
}
