// Package mapfile loads ice-maze maps from disk. Plain text and YAML formats
// are supported; any of them may be zstd-compressed with an extra ".zst"
// suffix.
package mapfile

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/icemaze/internal/grid"
)

// zstdExt marks a compressed map file.
const zstdExt = ".zst"

// Map is a loaded, validated map.
type Map struct {
	ID       string
	Name     string
	Grid     *grid.Grid
	Alphabet grid.Alphabet
	Metadata map[string]string
	FilePath string
}

// Title returns the name if set, otherwise the ID.
func (m Map) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Hash returns a stable fingerprint of the map layout, independent of the
// alphabet and file format it was loaded from.
func (m Map) Hash() string {
	h := sha256.New()
	for _, line := range m.Grid.Lines(grid.DefaultAlphabet()) {
		io.WriteString(h, line)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root     string
	Alphabet grid.Alphabet
	Logger   *log.Logger
}

// NewLoader creates a new map loader. A nil logger discards messages.
func NewLoader(root string, alpha grid.Alphabet, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Alphabet: alpha, Logger: logger}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are logged and skipped. Maps are sorted by ID.
func (l *Loader) LoadAll() ([]Map, error) {
	maps, failed, err := l.scan()
	if err != nil {
		return nil, err
	}
	for _, f := range failed {
		l.Logger.Warn("skipping map", "path", f.path, "error", f.err)
	}
	l.Logger.Debug("maps loaded", "root", l.Root, "count", len(maps))
	return maps, nil
}

// LoadByID loads a specific map by ID. When no valid map has the ID but a
// file named after it failed to load, that file's error is returned.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, failed, err := l.scan()
	if err != nil {
		return Map{}, err
	}

	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	for _, f := range failed {
		if baseID(f.path) == id {
			return Map{}, f.err
		}
	}
	return Map{}, fmt.Errorf("mapfile: map not found: %s", id)
}

type loadFailure struct {
	path string
	err  error
}

// scan walks Root and loads every supported file, sorting maps by ID.
func (l *Loader) scan() ([]Map, []loadFailure, error) {
	var (
		maps   []Map
		failed []loadFailure
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}

		m, err := LoadFile(path, l.Alphabet)
		if err != nil {
			failed = append(failed, loadFailure{path: path, err: err})
			return nil
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
	return maps, failed, nil
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.ID
	}
	return ids, nil
}

// LoadFile reads, decodes and validates a single map file.
// Grid errors keep matching grid.ErrMalformedGrid through the wrapping.
func LoadFile(path string, alpha grid.Alphabet) (Map, error) {
	data, err := readFile(path)
	if err != nil {
		return Map{}, err
	}

	ext := formatExt(path)
	parse, ok := Lookup(ext)
	if !ok {
		return Map{}, fmt.Errorf("mapfile: unsupported extension: %s", ext)
	}

	parsed, err := parse(data, alpha)
	if err != nil {
		return Map{}, fmt.Errorf("mapfile: parsing %s: %w", path, err)
	}

	g, err := grid.Build(parsed.Rows, parsed.Alphabet)
	if err != nil {
		return Map{}, fmt.Errorf("mapfile: %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = baseID(path)
	}

	return Map{
		ID:       id,
		Name:     parsed.Name,
		Grid:     g,
		Alphabet: parsed.Alphabet,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// Save writes a map in the format given by the path's extension. Only YAML
// and plain text are writable; a trailing ".zst" compresses the output.
//
// YAML files carry the map's own alphabet. Text files cannot, so their rows
// are written in textAlpha, the alphabet they will be loaded with.
func Save(path string, m Map, textAlpha grid.Alphabet) error {
	var data []byte
	switch ext := formatExt(path); ext {
	case ".yaml", ".yml":
		out, err := MarshalYAML(m)
		if err != nil {
			return fmt.Errorf("mapfile: encoding %s: %w", path, err)
		}
		data = out
	case ".txt", ".map":
		if err := textAlpha.Validate(); err != nil {
			return fmt.Errorf("mapfile: encoding %s: %w", path, err)
		}
		var buf bytes.Buffer
		if prefix, ok := commentPrefix(textAlpha); ok && m.Name != "" {
			fmt.Fprintf(&buf, "%s name: %s\n", prefix, m.Name)
		}
		for _, line := range m.Grid.Lines(textAlpha) {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("mapfile: unsupported extension: %s", ext)
	}

	if strings.HasSuffix(strings.ToLower(path), zstdExt) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("mapfile: zstd writer: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("mapfile: writing %s: %w", path, err)
	}
	return nil
}

// IsSupported reports whether the path has a registered map extension,
// optionally followed by ".zst".
func IsSupported(path string) bool {
	_, ok := Lookup(formatExt(path))
	return ok
}

// readFile reads a file, transparently decompressing ".zst" files.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: reading file %s: %w", path, err)
	}
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(path), zstdExt) {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("mapfile: reading file %s: %w", path, err)
		}
		return data, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("mapfile: zstd reader %s: %w", path, err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mapfile: decompressing %s: %w", path, err)
	}
	return data, nil
}

// formatExt returns the lower-case format extension, looking past ".zst".
func formatExt(path string) string {
	p := strings.ToLower(path)
	p = strings.TrimSuffix(p, zstdExt)
	return filepath.Ext(p)
}

// baseID derives a map ID from its file name: "maps/frozen.txt.zst" -> "frozen".
func baseID(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), zstdExt) {
		name = name[:len(name)-len(zstdExt)]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
