package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// RingShader renders the refractive ring over the scene.
	RingShader *ebiten.Shader
	// FluidShader is the pointer-driven distortion post-process.
	FluidShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	RingShader, err = loadShader("shaders/ring.kage")
	if err != nil {
		return err
	}

	FluidShader, err = loadShader("shaders/fluid.kage")
	if err != nil {
		return err
	}

	return nil
}

func loadShader(path string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewShader(src)
}
