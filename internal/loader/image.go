package loader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pietvm/internal/piet"
)

func init() {
	for _, ext := range []string{".png", ".gif", ".jpg", ".jpeg"} {
		RegisterFormat(ext, decodeImage)
	}
}

// decodeImage maps every pixel to the nearest palette policy (exact
// match or the missing-color fallback), then condenses pixel blocks
// into codels by majority vote.
func decodeImage(data []byte, opts Options) (*piet.Grid, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loader: decoding image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("loader: empty image")
	}

	missing := piet.White
	if opts.MissingBlack {
		missing = piet.Black
	}

	pixels := make([]piet.Color, w*h)
	warned := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := piet.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				if warned < 8 {
					r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					log.Warn("unrecognized color, using fallback",
						"x", x, "y", y,
						"rgb", fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8)),
						"fallback", missing)
				}
				warned++
				c = missing
			}
			pixels[y*w+x] = c
		}
	}
	if warned > 8 {
		log.Warn("more unrecognized colors suppressed", "count", warned-8)
	}

	size := opts.CodelSize
	if size <= 0 {
		size = DetectCodelSize(pixels, w, h)
		log.Debug("auto-detected codel size", "size", size)
	}

	return normalize(pixels, w, h, size)
}

// normalize condenses size x size pixel blocks into single codels.
// Each codel takes the majority color of its pixel block, which
// tolerates stray pixels from lossy compression.
func normalize(pixels []piet.Color, w, h, size int) (*piet.Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("loader: codel size %d is not positive", size)
	}
	if size == 1 {
		return piet.NewGrid(w, h, pixels)
	}

	cols, rows := w/size, h/size
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("loader: codel size %d exceeds image %dx%d", size, w, h)
	}

	cells := make([]piet.Color, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var votes [20]int
			for dy := 0; dy < size; dy++ {
				for dx := 0; dx < size; dx++ {
					votes[pixels[(row*size+dy)*w+col*size+dx]]++
				}
			}
			best := piet.Color(0)
			for c, n := range votes {
				if n > votes[best] {
					best = piet.Color(c)
				}
			}
			cells[row*cols+col] = best
		}
	}

	return piet.NewGrid(cols, rows, cells)
}

// DetectCodelSize guesses the codel size as the greatest common
// divisor of all same-color run lengths along rows and columns, and of
// the image dimensions. An image drawn at N pixels per codel has every
// run a multiple of N.
func DetectCodelSize(pixels []piet.Color, w, h int) int {
	g := gcd(w, h)

	for y := 0; y < h && g > 1; y++ {
		run := 1
		for x := 1; x < w; x++ {
			if pixels[y*w+x] == pixels[y*w+x-1] {
				run++
				continue
			}
			g = gcd(g, run)
			run = 1
		}
		g = gcd(g, run)
	}

	for x := 0; x < w && g > 1; x++ {
		run := 1
		for y := 1; y < h; y++ {
			if pixels[y*w+x] == pixels[(y-1)*w+x] {
				run++
				continue
			}
			g = gcd(g, run)
			run = 1
		}
		g = gcd(g, run)
	}

	if g < 1 {
		return 1
	}
	return g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
