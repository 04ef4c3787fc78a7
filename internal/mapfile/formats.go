package mapfile

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/icemaze/internal/grid"
)

// Parsed is the result of decoding one map file.
type Parsed struct {
	ID       string
	Name     string
	Rows     []string
	Alphabet grid.Alphabet
	Metadata map[string]string
}

// Parser decodes raw file contents. alpha is the alphabet configured by the
// caller; formats that can carry their own alphabet may override it.
type Parser func(data []byte, alpha grid.Alphabet) (Parsed, error)

var (
	parsers = make(map[string]Parser)
	mu      sync.RWMutex
)

// Register adds a parser for a file extension (including the dot).
// Typically called from an init() function.
// Panics if the extension is already registered.
func Register(ext string, p Parser) {
	mu.Lock()
	defer mu.Unlock()

	ext = strings.ToLower(ext)
	if _, exists := parsers[ext]; exists {
		panic(fmt.Sprintf("mapfile: format %q already registered", ext))
	}
	parsers[ext] = p
}

// Lookup returns the parser for an extension.
func Lookup(ext string) (Parser, bool) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := parsers[strings.ToLower(ext)]
	return p, ok
}

// Extensions returns all registered extensions, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func init() {
	Register(".txt", ParseText)
	Register(".map", ParseText)
	Register(".yaml", ParseYAML)
	Register(".yml", ParseYAML)
}
