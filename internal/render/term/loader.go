package term

import (
	"image"
	_ "image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/zorbgame/zorb/internal/render"
)

// Loader decodes texture files into Images.
type Loader struct{}

func (Loader) LoadTexture(path string) (render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", path)
	}
	return NewImage(img), nil
}
