package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/egghunt/internal/engine/geometry"
)

const quadOBJ = `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 0 -1
v 0 0 -1
vn 0 1 0
f 1//1 2//1 3//1 4//1
`

func TestParseOBJQuad(t *testing.T) {
	d, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("invalid result: %v", err)
	}
	if got := d.VertexCount(); got != 6 {
		t.Errorf("VertexCount() = %d, want 6 (two fan triangles)", got)
	}
	for i := 0; i < len(d.Normals); i += 3 {
		if d.Normals[i] != 0 || d.Normals[i+1] != 1 || d.Normals[i+2] != 0 {
			t.Errorf("normal %d = %v, want (0,1,0)", i/3, d.Normals[i:i+3])
		}
	}
	// Second fan triangle is corners 1, 3, 4.
	wantLast := []float32{0, 0, 0, 1, 0, -1, 0, 0, -1}
	for i, v := range wantLast {
		if d.Positions[9+i] != v {
			t.Fatalf("second triangle = %v, want %v", d.Positions[9:], wantLast)
		}
	}
}

func TestParseOBJFlatNormalsWhenMissing(t *testing.T) {
	src := `o tri
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	d, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	want := []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	for i := range want {
		if d.Normals[i] != want[i] {
			t.Fatalf("Normals = %v, want %v", d.Normals, want)
		}
	}
}

func TestParseOBJNormalIndexOutOfRange(t *testing.T) {
	src := `o tri
v 0 0 0
v 1 0 0
v 0 1 0
vn 1 0 0
f 1//1 2//1 3//5
`
	d, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	if d.Normals[0] != 0 || d.Normals[2] != 1 {
		t.Errorf("Normals = %v, want flat +Z for the whole triangle", d.Normals)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"no faces", "o empty\nv 0 0 0\n", true},
		{"index out of range", "o tri\nv 0 0 0\nv 1 0 0\nf 1 2 3\n", true},
		{"bad float", "v 0 x 0\n", false},
		{"two vertex face", "o line\nv 0 0 0\nv 1 0 0\nf 1 2\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.invalid && !errors.Is(err, geometry.ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatalf("failed to write test obj: %v", err)
	}

	d, err := Load(path, geometry.Bunny)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d, want 6", d.VertexCount())
	}
}

func TestLoadOBJMissing(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
