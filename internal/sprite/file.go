package sprite

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zorbgame/zorb/internal/geom"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/resource"
)

// SheetFile is the resource document describing a sprite sheet. It is
// produced offline from an editor export (see FromAseprite).
type SheetFile struct {
	Texture    string                   `json:"texture" yaml:"texture"`
	Cels       []CelFile                `json:"cels" yaml:"cels"`
	Animations map[string]AnimationFile `json:"animations" yaml:"animations"`
	Tilesets   map[string]TilesetFile   `json:"tilesets,omitempty" yaml:"tilesets,omitempty"`
}

type RectFile struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

func (r RectFile) pixels() geom.PixelRect { return geom.PixelRect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

type CelFile struct {
	Tex RectFile `json:"tex_rect" yaml:"tex_rect"`
	Src RectFile `json:"src_rect" yaml:"src_rect"`
}

type AnimationFile struct {
	Layers    []string       `json:"layers" yaml:"layers"`
	Keyframes []KeyframeFile `json:"keyframes" yaml:"keyframes"`
}

type KeyframeFile struct {
	Duration uint16   `json:"duration_ms" yaml:"duration_ms"`
	Cels     []uint16 `json:"cels" yaml:"cels"`
}

type TilesetFile struct {
	GridSize uint16 `json:"grid_size" yaml:"grid_size"`
	Cel      uint16 `json:"cel" yaml:"cel"`
}

// Resource document extensions, in lookup order.
var docExts = []string{".res.yaml", ".res.yml", ".res.json"}

// Decode parses a resource document; the format follows the file name.
func Decode(name string, data []byte) (*SheetFile, error) {
	var f SheetFile
	var err error
	if strings.HasSuffix(name, ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return &f, nil
}

// Loader loads sheets from resource documents under Root. The key
// "tiles/mask" reads Root/tiles/mask.res.yaml (or .res.yml, .res.json); the
// texture path in the document is relative to the document.
type Loader struct {
	Root     string
	Textures render.TextureLoader
	Log      *zap.Logger
}

var _ resource.Loader[*Sheet] = (*Loader)(nil)

func (l *Loader) Load(key string) (*Sheet, error) {
	path, data, err := l.readDoc(key)
	if err != nil {
		return nil, err
	}
	f, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	if f.Texture == "" {
		return nil, errors.Errorf("%s: no texture", path)
	}

	texPath := filepath.Join(filepath.Dir(path), f.Texture)
	tex, err := l.Textures.LoadTexture(texPath)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", texPath)
	}

	s, err := build(f, tex)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if l.Log != nil {
		l.Log.Debug("sprite sheet decoded",
			zap.String("file", path),
			zap.Int("cels", len(s.Cels)),
			zap.Int("animations", s.NumAnimations()),
			zap.Int("tilesets", s.NumTilesets()),
		)
	}
	return s, nil
}

func (l *Loader) readDoc(key string) (string, []byte, error) {
	base := filepath.Join(l.Root, filepath.FromSlash(key))
	for _, ext := range docExts {
		p := base + ext
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, errors.Wrapf(err, "read %s", p)
		}
	}
	return "", nil, errors.Errorf("no resource document for %q under %s", key, l.Root)
}
