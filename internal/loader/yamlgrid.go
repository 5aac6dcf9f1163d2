package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pietvm/internal/piet"
)

func init() {
	for _, ext := range []string{".yaml", ".yml"} {
		RegisterFormat(ext, decodeYAML)
	}
}

// yamlGrid is the YAML structure of a text program: rows of
// whitespace-separated color codes, already at codel resolution.
//
//	name: hello
//	rows:
//	  - "nr nr dg"
//	  - "ww kk dg"
//
// Codes are the two-letter form from piet.Color.Code ("ww" white,
// "kk" black, lightness l/n/d + hue r/y/g/c/b/m); full color names
// like "dark-blue" work too.
type yamlGrid struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// decodeYAML parses the text grid format.
func decodeYAML(data []byte, _ Options) (*piet.Grid, error) {
	var yg yamlGrid
	if err := yaml.Unmarshal(data, &yg); err != nil {
		return nil, fmt.Errorf("loader: yaml unmarshal: %w", err)
	}
	if len(yg.Rows) == 0 {
		return nil, fmt.Errorf("loader: grid %q has no rows", yg.Name)
	}

	var cells []piet.Color
	width := 0
	for i, row := range yg.Rows {
		codes := strings.Fields(row)
		if len(codes) == 0 {
			return nil, fmt.Errorf("loader: row %d is empty", i)
		}
		if width == 0 {
			width = len(codes)
		} else if len(codes) != width {
			return nil, fmt.Errorf("loader: row %d has %d codels, want %d", i, len(codes), width)
		}
		for j, code := range codes {
			c, ok := piet.ParseColor(code)
			if !ok {
				return nil, fmt.Errorf("loader: row %d codel %d: unknown color %q", i, j, code)
			}
			cells = append(cells, c)
		}
	}

	return piet.NewGrid(width, len(yg.Rows), cells)
}
