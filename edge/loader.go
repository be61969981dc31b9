package edge

import (
	"context"
	"image"
	"os"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/weave/core"
)

// LoadFunc receives the single outcome of an asynchronous load
type LoadFunc func(img image.Image, err error)

// Source resolves an index to a decoded image
type Source interface {
	Len() int
	// Load decodes entry i off the calling goroutine and invokes done exactly once,
	// unless ctx is cancelled first
	Load(ctx context.Context, i int, done LoadFunc)
}

// Decode reads and decodes one image file
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	core.Logger().Debug("image decoded", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

// FileSource loads images from a fixed list of paths
type FileSource struct {
	Paths []string
}

// NewFileSource creates a source over paths in order
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{Paths: paths}
}

func (s *FileSource) Len() int { return len(s.Paths) }

func (s *FileSource) Load(ctx context.Context, i int, done LoadFunc) {
	if i < 0 || i >= len(s.Paths) {
		done(nil, errors.Errorf("image index %d out of range [0,%d)", i, len(s.Paths)))
		return
	}
	path := s.Paths[i]
	core.Go(func() {
		img, err := Decode(path)
		if ctx.Err() != nil {
			return
		}
		done(img, err)
	})
}

// StaticSource serves in-memory images, a nil entry fails to load
type StaticSource struct {
	Images []image.Image
}

func (s *StaticSource) Len() int { return len(s.Images) }

func (s *StaticSource) Load(ctx context.Context, i int, done LoadFunc) {
	if i < 0 || i >= len(s.Images) || s.Images[i] == nil {
		done(nil, errors.Errorf("image %d unavailable", i))
		return
	}
	img := s.Images[i]
	core.Go(func() {
		if ctx.Err() != nil {
			return
		}
		done(img, nil)
	})
}
