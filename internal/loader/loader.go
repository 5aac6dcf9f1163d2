// Package loader turns program files into normalized codel grids for
// the engine. It owns everything the engine deliberately does not:
// image format decoding, codel-size normalization with majority-color
// voting, and the text grid format. Formats register themselves by
// extension, so new ones plug in without touching the load path.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/pietvm/internal/piet"
)

// Options controls how a program file becomes a codel grid.
type Options struct {
	// CodelSize is the edge length in pixels of one codel.
	// 0 auto-detects from the image; text formats ignore it.
	CodelSize int

	// MissingBlack maps unrecognized colors to black instead of the
	// default white.
	MissingBlack bool
}

// Decoder parses raw file contents into a codel grid.
type Decoder func(data []byte, opts Options) (*piet.Grid, error)

var (
	decoders = make(map[string]Decoder)
	mu       sync.RWMutex
)

// RegisterFormat adds a decoder for a file extension (with leading
// dot). The extension is lowercased, so lookups are case-insensitive.
// Typically called from a format file's init(). Panics if the
// extension is already registered.
func RegisterFormat(ext string, d Decoder) {
	ext = strings.ToLower(ext)
	mu.Lock()
	defer mu.Unlock()
	if _, dup := decoders[ext]; dup {
		panic(fmt.Sprintf("loader: format %q already registered", ext))
	}
	decoders[ext] = d
}

// Extensions returns the registered extensions in sorted order.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether a file extension has a decoder.
func Supported(ext string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := decoders[strings.ToLower(ext)]
	return ok
}

// Load reads and decodes a program file, routing by extension.
func Load(path string, opts Options) (*piet.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return Decode(data, filepath.Ext(path), opts)
}

// Decode parses raw contents using the decoder registered for ext.
func Decode(data []byte, ext string, opts Options) (*piet.Grid, error) {
	ext = strings.ToLower(ext)
	mu.RLock()
	d, ok := decoders[ext]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("loader: unsupported format %q (supported: %s)",
			ext, strings.Join(Extensions(), ", "))
	}
	return d(data, opts)
}
