// Package text implements the namespaced identifier and rich-text model used
// for the status MOTD, player-facing disconnect reasons, and the worlds and
// dimension types named in play-login.
package text

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/TheLukeGuy/minestodon/wire"
)

// DefaultNamespace is implied by a bare "path" identifier with no colon.
const DefaultNamespace = "minecraft"

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9._-]+$`)
	pathPattern      = regexp.MustCompile(`^[a-z0-9._/-]+$`)
)

// Identifier is an immutable namespace:path pair, e.g. "minecraft:overworld".
type Identifier struct {
	namespace string
	path      string
}

// NewIdentifier validates namespace and path against their character classes
// and constructs an Identifier.
func NewIdentifier(namespace, path string) (Identifier, error) {
	if !namespacePattern.MatchString(namespace) {
		return Identifier{}, fmt.Errorf("invalid identifier: namespace %q contains characters outside [a-z0-9._-]", namespace)
	}
	if !pathPattern.MatchString(path) {
		return Identifier{}, fmt.Errorf("invalid identifier: path %q contains characters outside [a-z0-9._/-]", path)
	}
	return Identifier{namespace: namespace, path: path}, nil
}

// ParseIdentifier parses "namespace:path", or "path" implying the default
// namespace "minecraft".
func ParseIdentifier(s string) (Identifier, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return NewIdentifier(s[:i], s[i+1:])
		}
	}
	return NewIdentifier(DefaultNamespace, s)
}

// MustIdentifier is ParseIdentifier but panics on failure, for identifiers
// that are compile-time constants known to be valid.
func MustIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) Namespace() string { return id.namespace }
func (id Identifier) Path() string      { return id.path }

func (id Identifier) String() string {
	return id.namespace + ":" + id.path
}

func (id Identifier) WriteTo(w io.Writer) (int64, error) {
	return wire.String(id.String()).WriteTo(w)
}

func ReadIdentifier(r io.Reader) (Identifier, error) {
	s, err := wire.ReadString(r)
	if err != nil {
		return Identifier{}, fmt.Errorf("failed to read the identifier: %w", err)
	}
	id, err := ParseIdentifier(string(s))
	if err != nil {
		return Identifier{}, err
	}
	return id, nil
}

func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIdentifier(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
