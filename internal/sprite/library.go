package sprite

import (
	"go.uber.org/zap"

	"github.com/zorbgame/zorb/internal/core/handle"
	"github.com/zorbgame/zorb/internal/render"
	"github.com/zorbgame/zorb/internal/resource"
)

// Library is the sprite sheet cache. It resolves sheet-scoped animation and
// tileset ids without a global table: the high half of such an id names the
// sheet, the low half the index inside it.
type Library struct {
	*resource.Manager[*Sheet]
}

func NewLibrary(root string, textures render.TextureLoader, log *zap.Logger) *Library {
	return &Library{resource.NewManager[*Sheet](&Loader{Root: root, Textures: textures, Log: log}, log)}
}

// NewLibraryWith builds a Library around any sheet loader.
func NewLibraryWith(loader resource.Loader[*Sheet], log *zap.Logger) *Library {
	return &Library{resource.NewManager[*Sheet](loader, log)}
}

// Animation returns the sheet owning id and the animation it names.
func (l *Library) Animation(id AnimationID) (*Sheet, *Animation) {
	s := l.Get(handle.Parent[*Sheet](id))
	return s, s.Animation(id.Index())
}

// Tileset returns the sheet owning id and the tileset it names.
func (l *Library) Tileset(id TilesetID) (*Sheet, *Tileset) {
	s := l.Get(handle.Parent[*Sheet](id))
	return s, s.Tileset(id.Index())
}
