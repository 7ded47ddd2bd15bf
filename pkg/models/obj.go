package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
)

// DefaultFaceColor is assigned to faces from formats that carry no color.
const DefaultFaceColor uint32 = 0xFFFFFFFF

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if mesh.Name == "" {
		mesh.Name = filepath.Base(path)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ geometry from r.
//
// Only "v" and "f" records are interpreted; "o" names the mesh and every
// other record is ignored. Face corners may be written as v, v/vt, v//vn or
// v/vt/vn; negative indices count back from the most recent vertex. Polygons
// with more than three corners are fan-triangulated.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			idx, err := parseFace(fields[1:], len(mesh.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{
					A:     idx[0],
					B:     idx[i],
					C:     idx[i+1],
					Color: DefaultFaceColor,
				})
			}
		case "o":
			if len(fields) > 1 && mesh.Name == "" {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	Logger().Debug("parsed obj", "vertices", len(mesh.Vertices), "faces", len(mesh.Faces), "lines", lineNo)
	return mesh, nil
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseFace resolves the vertex index of each corner to a 1-based index.
// n is the number of vertices read so far.
func parseFace(fields []string, n int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	out := make([]int, len(fields))
	for i, corner := range fields {
		ref, _, _ := strings.Cut(corner, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", corner, err)
		}
		switch {
		case idx == 0:
			return nil, fmt.Errorf("%w: face index 0", ErrInvalidMeshReference)
		case idx < 0:
			idx = n + 1 + idx
			if idx < 1 {
				return nil, fmt.Errorf("%w: relative index %s with %d vertices", ErrInvalidMeshReference, ref, n)
			}
		}
		out[i] = idx
	}
	return out, nil
}
