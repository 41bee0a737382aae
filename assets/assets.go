package assets

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ImageCache is the sprite cache shared by every renderer.
type ImageCache = Cache[*ebiten.Image]

// NewImageCache returns a cache that decodes sprites from the embedded
// images directory.
func NewImageCache(ctx context.Context) *ImageCache {
	return NewCache(ctx, ImageLoader(imageFS))
}

// ImageLoader returns a LoadFunc that reads URLs as paths inside fsys.
func ImageLoader(fsys fs.FS) LoadFunc[*ebiten.Image] {
	return func(ctx context.Context, url string) (*ebiten.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		imgBytes, err := fs.ReadFile(fsys, url)
		if err != nil {
			return nil, fmt.Errorf("read image file: %w", err)
		}

		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	}
}

// LevelFS exposes the embedded level directory.
func LevelFS() fs.FS {
	return levelFS
}
