package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/g3n/engine/loader/obj"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// LoadOBJ reads a Wavefront OBJ file into a triangle list. Materials and
// texture coordinates are ignored.
func LoadOBJ(path string) (geometry.Data, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return geometry.Data{}, fmt.Errorf("obj %q: %w", path, err)
	}
	d, err := fromDecoder(dec)
	if err != nil {
		return geometry.Data{}, fmt.Errorf("obj %q: %w", path, err)
	}
	return d, nil
}

// ParseOBJ decodes OBJ text from r. Polygons are fan-triangulated and faces
// without vertex normals get a flat normal.
func ParseOBJ(r io.Reader) (geometry.Data, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return geometry.Data{}, err
	}
	return fromDecoder(dec)
}

func fromDecoder(dec *obj.Decoder) (geometry.Data, error) {
	positions := []float32(dec.Vertices)
	normals := []float32(dec.Normals)

	var d geometry.Data
	for oi := range dec.Objects {
		for fi, face := range dec.Objects[oi].Faces {
			if len(face.Vertices) < 3 {
				return geometry.Data{}, fmt.Errorf("%w: object %d face %d has %d vertices",
					geometry.ErrInvalid, oi, fi, len(face.Vertices))
			}
			for i := 1; i+1 < len(face.Vertices); i++ {
				if err := appendTriangle(&d, positions, normals, face, 0, i, i+1); err != nil {
					return geometry.Data{}, fmt.Errorf("object %d face %d: %w", oi, fi, err)
				}
			}
		}
	}
	if len(d.Positions) == 0 {
		return geometry.Data{}, fmt.Errorf("%w: no faces", geometry.ErrInvalid)
	}
	return d, nil
}

// appendTriangle adds one triangle of face to d. A missing or out of range
// normal index on any corner makes the whole triangle flat shaded.
func appendTriangle(d *geometry.Data, positions, normals []float32, face obj.Face, corners ...int) error {
	var tri, norms [9]float32
	smooth := len(face.Normals) == len(face.Vertices)
	for i, c := range corners {
		v := face.Vertices[c]
		if v < 0 || 3*v+2 >= len(positions) {
			return fmt.Errorf("%w: vertex index %d out of range", geometry.ErrInvalid, v)
		}
		copy(tri[3*i:], positions[3*v:3*v+3])

		if !smooth {
			continue
		}
		n := face.Normals[c]
		if n < 0 || 3*n+2 >= len(normals) {
			smooth = false
			continue
		}
		copy(norms[3*i:], normals[3*n:3*n+3])
	}

	d.Positions = append(d.Positions, tri[:]...)
	if smooth {
		d.Normals = append(d.Normals, norms[:]...)
	} else {
		d.Normals = append(d.Normals, geometry.FlatNormals(tri[:])...)
	}
	return nil
}
