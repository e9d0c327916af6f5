// ABOUTME: Deterministic generator that never touches the network.
// ABOUTME: Used for dry runs and tests; output depends only on the prompt.
package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Offline returns a structured draft derived from the prompt.
type Offline struct{}

// NewOffline creates an offline generator.
func NewOffline() *Offline {
	return &Offline{}
}

// Name returns the provider name.
func (o *Offline) Name() string {
	return ProviderOffline
}

// Generate echoes the first line of each prompt part with a short digest of the whole prompt.
func (o *Offline) Generate(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(p.System + "\x00" + p.User))

	var b strings.Builder
	b.WriteString("## Offline draft\n\n")
	fmt.Fprintf(&b, "- Persona: %s\n", firstLine(p.System))
	fmt.Fprintf(&b, "- Request: %s\n", firstLine(p.User))
	fmt.Fprintf(&b, "- Prompt size: %d characters\n", len(p.System)+len(p.User))
	fmt.Fprintf(&b, "- Digest: %s\n", hex.EncodeToString(sum[:6]))
	return b.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "(empty)"
	}
	return strings.TrimSpace(s)
}
