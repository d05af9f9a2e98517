package codec

import (
	"strings"
)

// MaxIdentifierLen bounds an encoded identifier, namespace and path included.
const MaxIdentifierLen = 2048

// An Identifier is a namespaced resource location, e.g. "minecraft:ambient.cave".
type Identifier struct {
	Namespace string
	Path      string
}

// Vanilla builds an identifier in the default "minecraft" namespace.
func Vanilla(path string) Identifier {
	return Identifier{Namespace: "minecraft", Path: path}
}

// ParseIdentifier splits and validates a "namespace:path" string.
// A missing namespace defaults to "minecraft".
func ParseIdentifier(s string) (Identifier, error) {
	if len(s) > MaxIdentifierLen {
		return Identifier{}, ErrInvalidIdentifier
	}

	namespace, path, found := strings.Cut(s, ":")
	if !found {
		return Identifier{Namespace: "minecraft", Path: s}, validIdentifier(Identifier{Namespace: "minecraft", Path: s})
	}

	id := Identifier{Namespace: namespace, Path: path}

	return id, validIdentifier(id)
}

func validIdentifier(id Identifier) error {
	if len(id.Namespace) == 0 || len(id.Path) == 0 {
		return ErrInvalidIdentifier
	}

	for _, c := range id.Namespace {
		if !namespaceChar(c) {
			return ErrInvalidIdentifier
		}
	}

	for _, c := range id.Path {
		if !pathChar(c) {
			return ErrInvalidIdentifier
		}
	}

	return nil
}

func namespaceChar(c rune) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '.'
}

func pathChar(c rune) bool {
	return namespaceChar(c) || c == '/'
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}
