package loader_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pietvm/internal/loader"
	"github.com/vovakirdan/pietvm/internal/piet"
)

func TestSupportedExtensions(t *testing.T) {
	for _, ext := range []string{".png", ".gif", ".jpg", ".jpeg", ".yaml", ".yml"} {
		if !loader.Supported(ext) {
			t.Errorf("expected %s to be supported", ext)
		}
	}
	if loader.Supported(".bmp") {
		t.Error(".bmp should not be supported")
	}
	if loader.Supported(".PNG") != true {
		t.Error("extension matching should be case-insensitive")
	}
}

func TestRegisterFormatNormalizesExtension(t *testing.T) {
	// Registration is process-global, so use an extension no other
	// test registers.
	loader.RegisterFormat(".XYZ", func(data []byte, opts loader.Options) (*piet.Grid, error) {
		return piet.NewGrid(1, 1, []piet.Color{piet.White})
	})

	if !loader.Supported(".xyz") {
		t.Error("mixed-case registration should be found lowercase")
	}
	if _, err := loader.Decode(nil, ".XyZ", loader.Options{}); err != nil {
		t.Errorf("mixed-case lookup should decode: %v", err)
	}
}

func TestDecodeUnknownExtension(t *testing.T) {
	if _, err := loader.Decode([]byte("x"), ".txt", loader.Options{}); err == nil {
		t.Error("unknown extension should fail")
	}
}

func TestDecodeYAMLGrid(t *testing.T) {
	data := []byte(`name: sample
rows:
  - "nr ny ww"
  - "kk dark-blue lc"
`)
	g, err := loader.Decode(data, ".yaml", loader.Options{})
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}

	if g.W() != 3 || g.H() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.W(), g.H())
	}
	want := []struct {
		at    piet.Coord
		color piet.Color
	}{
		{piet.C(0, 0), piet.Red},
		{piet.C(1, 0), piet.Yellow},
		{piet.C(2, 0), piet.White},
		{piet.C(0, 1), piet.Black},
		{piet.C(1, 1), piet.DarkBlue},
		{piet.C(2, 1), piet.LightCyan},
	}
	for _, tc := range want {
		if got := g.At(tc.at); got != tc.color {
			t.Errorf("at %v: expected %v, got %v", tc.at, tc.color, got)
		}
	}
}

func TestDecodeYAMLRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"no rows", "name: empty\n"},
		{"ragged rows", "rows:\n  - \"nr ny\"\n  - \"nr\"\n"},
		{"unknown code", "rows:\n  - \"nr zz\"\n"},
		{"not yaml", "rows: [unclosed"},
	}

	for _, tc := range testCases {
		if _, err := loader.Decode([]byte(tc.data), ".yaml", loader.Options{}); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

// encodePNG draws a codel grid at the given pixel scale.
func encodePNG(t *testing.T, cells [][]piet.Color, scale int) []byte {
	t.Helper()
	h := len(cells) * scale
	w := len(cells[0]) * scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := cells[y/scale][x/scale].RGB()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNGAtCodelResolution(t *testing.T) {
	cells := [][]piet.Color{
		{piet.Red, piet.Yellow},
		{piet.White, piet.Black},
	}
	g, err := loader.Decode(encodePNG(t, cells, 1), ".png", loader.Options{CodelSize: 1})
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if g.W() != 2 || g.H() != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", g.W(), g.H())
	}
	if g.At(piet.C(1, 0)) != piet.Yellow || g.At(piet.C(1, 1)) != piet.Black {
		t.Error("decoded colors do not match the source image")
	}
}

func TestDecodePNGNormalizesScaledImage(t *testing.T) {
	cells := [][]piet.Color{
		{piet.Red, piet.Green, piet.Blue},
		{piet.DarkCyan, piet.White, piet.LightMagenta},
	}
	data := encodePNG(t, cells, 5)

	// Explicit codel size.
	g, err := loader.Decode(data, ".png", loader.Options{CodelSize: 5})
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if g.W() != 3 || g.H() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.W(), g.H())
	}
	for y, row := range cells {
		for x, want := range row {
			if got := g.At(piet.C(x, y)); got != want {
				t.Errorf("at (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}

	// Auto-detected codel size gives the same grid.
	g, err = loader.Decode(data, ".png", loader.Options{})
	if err != nil {
		t.Fatalf("decoding with auto-detect: %v", err)
	}
	if g.W() != 3 || g.H() != 2 {
		t.Errorf("auto-detect: expected 3x2 grid, got %dx%d", g.W(), g.H())
	}
}

func TestMissingColorPolicy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}

	g, err := loader.Decode(buf.Bytes(), ".png", loader.Options{CodelSize: 1})
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if g.At(piet.C(0, 0)) != piet.White {
		t.Errorf("default fallback should be white, got %v", g.At(piet.C(0, 0)))
	}

	g, err = loader.Decode(buf.Bytes(), ".png", loader.Options{CodelSize: 1, MissingBlack: true})
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if g.At(piet.C(0, 0)) != piet.Black {
		t.Errorf("missing-black fallback should be black, got %v", g.At(piet.C(0, 0)))
	}
}

func TestDetectCodelSize(t *testing.T) {
	testCases := []struct {
		name   string
		cells  [][]piet.Color
		scale  int
		expect int
	}{
		{
			"plain checkerboard at 4x",
			[][]piet.Color{
				{piet.Red, piet.Blue},
				{piet.Blue, piet.Red},
			},
			4, 4,
		},
		{
			"already at codel resolution",
			[][]piet.Color{
				{piet.Red, piet.Blue, piet.Red},
				{piet.Blue, piet.Red, piet.Blue},
			},
			1, 1,
		},
	}

	for _, tc := range testCases {
		h := len(tc.cells) * tc.scale
		w := len(tc.cells[0]) * tc.scale
		pixels := make([]piet.Color, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pixels[y*w+x] = tc.cells[y/tc.scale][x/tc.scale]
			}
		}
		if got := loader.DetectCodelSize(pixels, w, h); got != tc.expect {
			t.Errorf("%s: expected size %d, got %d", tc.name, tc.expect, got)
		}
	}
}

func TestLoadRoutesByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.yml")
	data := []byte("rows:\n  - \"nr ny\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp program: %v", err)
	}

	g, err := loader.Load(path, loader.Options{})
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if g.W() != 2 || g.H() != 1 {
		t.Errorf("expected 2x1 grid, got %dx%d", g.W(), g.H())
	}

	if _, err := loader.Load(filepath.Join(dir, "missing.yml"), loader.Options{}); err == nil {
		t.Error("missing file should fail")
	}
}
