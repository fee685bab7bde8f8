package words

import (
	_ "embed"
)

//go:embed defaults/words.yaml
var defaultPackYAML []byte

// DefaultPack returns the built-in categories.
func DefaultPack() (Pack, error) {
	return ParseYAML(defaultPackYAML)
}
