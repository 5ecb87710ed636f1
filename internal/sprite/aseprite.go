package sprite

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Cel tags read from layer user data.
const (
	tagNoExport      = "no-export"
	tagTilesetPrefix = "tileset:"
)

// Aseprite JSON export, "array" frames layout with layers split.
type aseExport struct {
	Frames []aseFrame `json:"frames"`
	Meta   aseMeta    `json:"meta"`
}

type aseFrame struct {
	Filename string  `json:"filename"`
	Duration uint16  `json:"duration"`
	Frame    aseRect `json:"frame"`
	Source   aseRect `json:"spriteSourceSize"`
}

type aseRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (r aseRect) file() RectFile { return RectFile(r) }

type aseMeta struct {
	FrameTags []aseTag   `json:"frameTags"`
	Layers    []aseLayer `json:"layers"`
}

type aseTag struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

type aseLayer struct {
	Name string         `json:"name"`
	Cels []aseLayerData `json:"cels"`
}

type aseLayerData struct {
	Frame int    `json:"frame"`
	Data  string `json:"data"`
}

// Animation directions as exported.
const (
	DirForward  = "forward"
	DirBackward = "backward"
	DirPingPong = "pingpong"
)

type celName struct {
	anim  string
	frame int
	layer string
}

func splitCelName(s string) (celName, error) {
	parts := strings.SplitN(s, "#", 3)
	if len(parts) != 3 {
		return celName{}, errors.Errorf("cel %q: name must be anim#frame#layer", s)
	}
	n, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return celName{}, errors.Wrapf(err, "cel %q: frame index", s)
	}
	return celName{anim: parts[0], frame: int(n), layer: parts[2]}, nil
}

// FromAseprite converts an Aseprite sheet export into a resource document.
// Every exported frame becomes a cel, in order. Cels tagged no-export keep
// their slot but are left out of animations; a cel tagged tileset:<grid>
// registers a tileset named after its animation.
func FromAseprite(data []byte, texture string) (*SheetFile, error) {
	var ex aseExport
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, errors.Wrap(err, "decode aseprite export")
	}

	names := make([]celName, len(ex.Frames))
	tags := make([][]string, len(ex.Frames))
	perLayer := make(map[string]int)
	for i, fr := range ex.Frames {
		n, err := splitCelName(fr.Filename)
		if err != nil {
			return nil, err
		}
		names[i] = n

		// user data is keyed by the cel's position within its layer
		idx := perLayer[n.layer]
		perLayer[n.layer] = idx + 1
		for _, l := range ex.Meta.Layers {
			if l.Name != n.layer {
				continue
			}
			for _, c := range l.Cels {
				if c.Frame == idx {
					tags[i] = strings.Fields(c.Data)
				}
			}
		}
	}

	f := &SheetFile{
		Texture:    texture,
		Cels:       make([]CelFile, len(ex.Frames)),
		Animations: make(map[string]AnimationFile, len(ex.Meta.FrameTags)),
		Tilesets:   make(map[string]TilesetFile),
	}
	for i, fr := range ex.Frames {
		f.Cels[i] = CelFile{Tex: fr.Frame.file(), Src: fr.Source.file()}
		for _, t := range tags[i] {
			g, ok := strings.CutPrefix(t, tagTilesetPrefix)
			if !ok {
				continue
			}
			grid, err := strconv.ParseUint(g, 10, 16)
			if err != nil || grid == 0 {
				return nil, errors.Errorf("cel %q: bad tileset grid %q", fr.Filename, g)
			}
			f.Tilesets[names[i].anim] = TilesetFile{GridSize: uint16(grid), Cel: uint16(i)}
		}
	}

	for _, tag := range ex.Meta.FrameTags {
		a, err := convertTag(tag, ex.Frames, names, tags)
		if err != nil {
			return nil, err
		}
		f.Animations[tag.Name] = a
	}
	return f, nil
}

func convertTag(tag aseTag, frames []aseFrame, names []celName, tags [][]string) (AnimationFile, error) {
	var layers []string
	seen := make(map[string]bool)
	byFrame := make(map[int]*KeyframeFile)

	for i, n := range names {
		if n.anim != tag.Name || slices.Contains(tags[i], tagNoExport) {
			continue
		}
		if !seen[n.layer] {
			seen[n.layer] = true
			layers = append(layers, n.layer)
		}
		kf, ok := byFrame[n.frame]
		if !ok {
			kf = &KeyframeFile{}
			byFrame[n.frame] = kf
		}
		kf.Duration = frames[i].Duration
		kf.Cels = append(kf.Cels, uint16(i))
	}
	if len(byFrame) == 0 {
		return AnimationFile{}, errors.Errorf("animation %q has no cels", tag.Name)
	}

	order := make([]int, 0, len(byFrame))
	for i := range byFrame {
		order = append(order, i)
	}
	sort.Ints(order)
	kfs := make([]KeyframeFile, len(order))
	for i, fi := range order {
		kfs[i] = *byFrame[fi]
	}

	switch tag.Direction {
	case DirForward, "":
	case DirBackward:
		slices.Reverse(kfs)
	case DirPingPong:
		for i := len(kfs) - 2; i > 0; i-- {
			kfs = append(kfs, kfs[i])
		}
	default:
		return AnimationFile{}, errors.Errorf("animation %q: unknown direction %q", tag.Name, tag.Direction)
	}
	return AnimationFile{Layers: layers, Keyframes: kfs}, nil
}

// MarshalSheetFile encodes a resource document as indented JSON.
func MarshalSheetFile(f *SheetFile) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}
