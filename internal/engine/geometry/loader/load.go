// Package loader reads mesh files into geometry.Data.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// Load reads a mesh file, choosing the loader by extension.
// An empty path returns fallback() instead.
func Load(path string, fallback func() geometry.Data) (geometry.Data, error) {
	if path == "" {
		return fallback(), nil
	}

	var (
		d   geometry.Data
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		d, err = LoadOBJ(path)
	case ".gltf", ".glb":
		d, err = LoadGLTF(path)
	default:
		return geometry.Data{}, fmt.Errorf("unsupported mesh format %q", ext)
	}
	if err != nil {
		return geometry.Data{}, err
	}
	if err := d.Validate(); err != nil {
		return geometry.Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
