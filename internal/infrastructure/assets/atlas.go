// Package assets resolves texture sources into images.
//
// A source is one of
//
//	#rgb, #rrggbb, #rrggbbaa   solid colour
//	builtin:<name>             procedural pixel art
//	<path>.gif, <path>.png     image file in the asset filesystem
//	<name>                     named colour (colornames)
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/invaderers/internal/domain/entity"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

const builtinPrefix = "builtin:"

var (
	ErrUnknownTexture = errors.New("unknown texture")
	ErrUnknownBuiltin = errors.New("unknown builtin texture")
	ErrBadColor       = errors.New("bad color")
	ErrEmptySource    = errors.New("empty texture source")
)

// Atlas holds one GPU image per texture id
type Atlas struct {
	images [entity.TextureCount]*ebiten.Image
}

// NewAtlas creates an empty atlas
func NewAtlas() *Atlas {
	return &Atlas{}
}

// Load resolves every configured texture. Names must match entity texture names.
func (a *Atlas) Load(fsys fs.FS, textures map[string]config.TextureConfig) error {
	for _, name := range slices.Sorted(maps.Keys(textures)) {
		id, ok := entity.TextureByName(name)
		if !ok {
			return fmt.Errorf("texture %q: %w", name, ErrUnknownTexture)
		}

		img, err := Resolve(fsys, textures[name])
		if err != nil {
			return fmt.Errorf("texture %s: %w", name, err)
		}
		a.images[id] = ebiten.NewImageFromImage(img)
	}
	return nil
}

// Image returns the image for id, or nil if it was never loaded
func (a *Atlas) Image(id entity.TextureID) *ebiten.Image {
	if id < 0 || id >= entity.TextureCount {
		return nil
	}
	return a.images[id]
}

// Resolve decodes the texture source, using the fallback when the source file does not exist
func Resolve(fsys fs.FS, tex config.TextureConfig) (image.Image, error) {
	img, err := Decode(fsys, tex.Source)
	if err == nil {
		return img, nil
	}
	if tex.Fallback == "" || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return Decode(fsys, tex.Fallback)
}

// Decode turns a single source string into an image
func Decode(fsys fs.FS, source string) (image.Image, error) {
	switch {
	case source == "":
		return nil, ErrEmptySource
	case strings.HasPrefix(source, "#"):
		c, err := parseHex(source)
		if err != nil {
			return nil, err
		}
		return solid(c), nil
	case strings.HasPrefix(source, builtinPrefix):
		return Builtin(strings.TrimPrefix(source, builtinPrefix))
	}

	switch strings.ToLower(path.Ext(source)) {
	case ".gif", ".png":
		return decodeFile(fsys, source)
	}

	if c, ok := colornames.Map[strings.ToLower(source)]; ok {
		return solid(c), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadColor, source)
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, fs.ErrNotExist)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}
