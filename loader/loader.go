package loader

import (
	"fmt"
	"os"
	"strings"
)

// LoadSources reads one or more source files and concatenates them in
// argument order into a single source string, as if they had been written
// one after another. No includes, no preprocessor directives.
func LoadSources(paths []string) (string, error) {
	var b strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", p, err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
