package opengl

import (
	"fmt"

	"opengl-labs/renderer"
	"opengl-labs/scene"
)

// Material is a diffuse and specular texture pair sampled by the lit
// program as material.diffuse and material.specular.
type Material struct {
	diffuse  *Texture
	specular *Texture
}

// LoadMaterial decodes <base>_diffuse.<ext> and <base>_specular.<ext> and
// uploads them. Nothing touches the GPU unless both images decode.
func LoadMaterial(base, ext string) (*Material, error) {
	dImg, sImg, err := scene.LoadMaterialTextures(base, ext)
	if err != nil {
		return nil, err
	}
	diffuse, err := UploadTexture(dImg)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", base, err)
	}
	specular, err := UploadTexture(sImg)
	if err != nil {
		diffuse.Destroy()
		return nil, fmt.Errorf("material %q: %w", base, err)
	}
	return &Material{diffuse: diffuse, specular: specular}, nil
}

func (m *Material) Bind() {
	m.diffuse.Bind(renderer.DiffuseUnit)
	m.specular.Bind(renderer.SpecularUnit)
}

func (m *Material) Destroy() {
	m.diffuse.Destroy()
	m.specular.Destroy()
}
