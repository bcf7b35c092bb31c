// Package assets provides the sprite library for the game. Sprites are
// rune-art images with an "occupied" sub-rectangle: the part of the visual
// that counts as the physical hitbox. Definitions live in an embedded YAML
// file so game code never performs I/O itself.
package assets

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roadhop/roadhop/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a decoded rune-art image.
type Sprite struct {
	ID   string
	Rows [][]rune // Art rows, all of width W
	W, H int

	// Occupied is the hitbox in sprite-local coordinates. It is always
	// contained in [0,0]–(W,H) and may be smaller than the visual bounds.
	Occupied core.Area

	Color core.Color

	// Transparent sprites skip space runes when drawn, letting the
	// background show through. Cell sprites are opaque.
	Transparent bool
}

// Draw paints the sprite onto the screen with its top-left corner at (x, y).
func (s *Sprite) Draw(dst *core.Screen, x, y int) {
	for dy, row := range s.Rows {
		for dx, r := range row {
			if s.Transparent && r == ' ' {
				continue
			}
			dst.SetCell(x+dx, y+dy, r, s.Color)
		}
	}
}

// Library holds a set of decoded sprites keyed by ID.
type Library struct {
	sprites map[string]*Sprite
}

// Load parses and validates the embedded sprite definitions.
func Load() (*Library, error) {
	return Parse(defaultSpritesYAML)
}

// Get returns the sprite with the given ID.
func (l *Library) Get(id string) (*Sprite, error) {
	s, ok := l.sprites[id]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sprite %q", id)
	}
	return s, nil
}

// Has checks if a sprite with the given ID exists.
func (l *Library) Has(id string) bool {
	_, ok := l.sprites[id]
	return ok
}

// IDs returns all sprite IDs, sorted.
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.sprites))
	for id := range l.sprites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type rectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type spriteSpec struct {
	ID          string   `yaml:"id"`
	Color       string   `yaml:"color"`
	Transparent bool     `yaml:"transparent"`
	Occupied    rectSpec `yaml:"occupied"`
	Art         []string `yaml:"art"`
}

type librarySpec struct {
	Sprites []spriteSpec `yaml:"sprites"`
}

// Parse decodes sprite definitions from YAML and validates them.
func Parse(data []byte) (*Library, error) {
	var spec librarySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite definitions: %w", err)
	}

	lib := &Library{sprites: make(map[string]*Sprite, len(spec.Sprites))}
	for _, ss := range spec.Sprites {
		sprite, err := decodeSprite(ss)
		if err != nil {
			return nil, err
		}
		if lib.Has(sprite.ID) {
			return nil, fmt.Errorf("assets: duplicate sprite %q", sprite.ID)
		}
		lib.sprites[sprite.ID] = sprite
	}
	return lib, nil
}

func decodeSprite(ss spriteSpec) (*Sprite, error) {
	if ss.ID == "" {
		return nil, fmt.Errorf("assets: sprite without id")
	}
	if len(ss.Art) == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no art", ss.ID)
	}

	rows := make([][]rune, len(ss.Art))
	width := -1
	for i, line := range ss.Art {
		rows[i] = []rune(line)
		if width == -1 {
			width = len(rows[i])
		} else if len(rows[i]) != width {
			return nil, fmt.Errorf("assets: sprite %q has ragged art rows", ss.ID)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("assets: sprite %q has empty art rows", ss.ID)
	}

	occ, err := core.NewArea(
		core.Point{X: ss.Occupied.X, Y: ss.Occupied.Y},
		core.Dimensions{W: ss.Occupied.W, H: ss.Occupied.H},
	)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %q: %w", ss.ID, err)
	}
	bounds := core.AreaOf(0, 0, float64(width), float64(len(rows)))
	if !bounds.ContainsArea(occ) {
		return nil, fmt.Errorf("assets: sprite %q occupied area exceeds sprite bounds", ss.ID)
	}

	color, err := parseColor(ss.Color)
	if err != nil {
		return nil, fmt.Errorf("assets: sprite %q: %w", ss.ID, err)
	}

	return &Sprite{
		ID:          ss.ID,
		Rows:        rows,
		W:           width,
		H:           len(rows),
		Occupied:    occ,
		Color:       color,
		Transparent: ss.Transparent,
	}, nil
}

func parseColor(name string) (core.Color, error) {
	switch name {
	case "", "default":
		return core.ColorDefault, nil
	case "red":
		return core.ColorRed, nil
	case "green":
		return core.ColorGreen, nil
	case "yellow":
		return core.ColorYellow, nil
	case "blue":
		return core.ColorBlue, nil
	case "magenta":
		return core.ColorMagenta, nil
	case "cyan":
		return core.ColorCyan, nil
	case "white":
		return core.ColorWhite, nil
	case "bright-red":
		return core.ColorBrightRed, nil
	case "bright-green":
		return core.ColorBrightGreen, nil
	case "bright-yellow":
		return core.ColorBrightYellow, nil
	case "bright-blue":
		return core.ColorBrightBlue, nil
	case "bright-magenta":
		return core.ColorBrightMagenta, nil
	case "bright-cyan":
		return core.ColorBrightCyan, nil
	case "bright-white":
		return core.ColorBrightWhite, nil
	case "orange":
		return core.ColorOrange, nil
	case "gray":
		return core.ColorGray, nil
	default:
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
}
