package loader

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

// LoadGLTF reads every triangle primitive of a .gltf or .glb file into one
// triangle list. Node transforms are not applied; the mesh is used in its
// own model space.
func LoadGLTF(path string) (geometry.Data, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return geometry.Data{}, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var out geometry.Data
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			d, err := readPrimitive(doc, prim)
			if err != nil {
				return geometry.Data{}, fmt.Errorf("gltf %q mesh %d prim %d: %w", path, mi, pi, err)
			}
			out = geometry.Merge(out, d)
		}
	}
	if len(out.Positions) == 0 {
		return geometry.Data{}, fmt.Errorf("%w: no triangle primitives in %q", geometry.ErrInvalid, path)
	}
	return out, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (geometry.Data, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return geometry.Data{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return geometry.Data{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return geometry.Data{}, fmt.Errorf("normals: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return geometry.Data{}, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return geometry.Data{}, fmt.Errorf("%w: %d indices", geometry.ErrInvalid, len(indices))
	}

	var d geometry.Data
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return geometry.Data{}, fmt.Errorf("%w: index %d beyond %d positions", geometry.ErrInvalid, idx, len(positions))
		}
		p := positions[idx]
		d.Positions = append(d.Positions, p[0], p[1], p[2])
		if int(idx) < len(normals) {
			n := normals[idx]
			d.Normals = append(d.Normals, n[0], n[1], n[2])
		}
	}
	if len(d.Normals) != len(d.Positions) {
		d.Normals = geometry.FlatNormals(d.Positions)
	}
	return d, nil
}
