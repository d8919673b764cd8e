package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and validates union definition from the file. The kind of the file is chosen by its extension:
// .go, .yaml, .yml or .json. prefix is only used for Go sources.
func Load(fileName string, prefix string) (*Union, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".go":
		return FromGo(fileName, data, prefix)
	case ".yaml", ".yml":
		return FromYAML(fileName, data)
	case ".json":
		return FromJSON(fileName, data)
	default:
		return nil, fmt.Errorf("%s: unsupported definition file kind %q, must be one of .go, .yaml, .yml, .json", fileName, ext)
	}
}
