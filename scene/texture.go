package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"opengl-labs/core"
)

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
}

// LoadTexture reads an image file from disk and converts it to RGBA8.
// PNG, JPEG, BMP, TIFF and WebP are recognised.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.AssetLoadError{Kind: "texture", Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &core.AssetLoadError{Kind: "texture", Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return TextureFromImage(path, img), nil
}

// TextureFromImage converts any image to an RGBA8 texture.
func TextureFromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}
}

// MaterialPaths derives the diffuse and specular image paths for a
// material base path, e.g. "gfx/crate" + "png".
func MaterialPaths(base, ext string) (diffuse, specular string) {
	return fmt.Sprintf("%s_diffuse.%s", base, ext), fmt.Sprintf("%s_specular.%s", base, ext)
}

// LoadMaterialTextures decodes both images of a material. Either one
// missing or undecodable is an *core.AssetLoadError.
func LoadMaterialTextures(base, ext string) (diffuse, specular *Texture, err error) {
	dPath, sPath := MaterialPaths(base, ext)
	if diffuse, err = LoadTexture(dPath); err != nil {
		return nil, nil, err
	}
	if specular, err = LoadTexture(sPath); err != nil {
		return nil, nil, err
	}
	return diffuse, specular, nil
}
