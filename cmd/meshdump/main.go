package main

import (
	"flag"
	"fmt"
	"os"

	"hypercube-ar/internal/frame"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/mathutil"
	"hypercube-ar/internal/raster"
)

func main() {
	wireframe := flag.Bool("wireframe", false, "Generate the tube wireframe instead of solid cells")
	thickness := flag.Float64("thickness", hypercube.DefaultThickness, "Tube thickness")
	out := flag.String("out", "", "Write the raw little-endian vertex buffer to this file")
	rx := flag.Float64("rx", 0, "Horizontal rotation (radians) for the projected bounds")
	ry := flag.Float64("ry", 0, "Vertical rotation (radians) for the projected bounds")
	hplane := flag.String("hplane", "XW", "Plane rotated by -rx")
	vplane := flag.String("vplane", "ZW", "Plane rotated by -ry")
	flag.Parse()

	h, err := mathutil.ParsePlane(*hplane)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	v, err := mathutil.ParsePlane(*vplane)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := hypercube.Build(hypercube.Options{
		Wireframe: *wireframe,
		Thickness: float32(*thickness),
	}, raster.NewDevice(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mesh %q: primitive=%s wireframe=%v\n", mesh.Label(), mesh.Primitive(), mesh.Wireframe())
	fmt.Printf("  Vertices: %d, Triangles: %d, Bytes: %d (stride %d)\n",
		mesh.VertexCount(), mesh.TriangleCount(), mesh.Buffer().Size(), hypercube.VertexStride)
	lo, hi := mesh.Bounds()
	fmt.Printf("  Bounds 4D: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f] W[%.3f, %.3f]\n",
		lo[0], hi[0], lo[1], hi[1], lo[2], hi[2], lo[3], hi[3])

	degenerate := 0
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		e1 := tri[1].Position.Sub(tri[0].Position)
		e2 := tri[2].Position.Sub(tri[0].Position)
		if d := e1.Dot(e2); e1.Dot(e1)*e2.Dot(e2)-d*d < 1e-12 {
			degenerate++
		}
	}
	fmt.Printf("  Degenerate triangles: %d\n", degenerate)

	// Bounds after the 4D stage, split by cube.
	u := frame.NewUpdater(frame.DefaultSettings(), nil)
	u.SetPlanes(h, v)
	pv := mathutil.Mat5Mul(u.Projection4D(), u.ModelView4D(frame.Rotation{X: float32(*rx), Y: float32(*ry)}))
	for _, cube := range []struct {
		name  string
		color hypercube.Color
	}{{"red (w=-1)", hypercube.Red}, {"green (w=+1)", hypercube.Green}} {
		var pmin, pmax mathutil.Vec3
		n, culled := 0, 0
		for _, vert := range mesh.Vertices() {
			if vert.Color != cube.color {
				continue
			}
			p, ok := mathutil.Project4To3(pv.MulVec5(vert.Position.Homogeneous()))
			if !ok {
				culled++
				continue
			}
			for k := 0; k < 3; k++ {
				if n == 0 || p[k] < pmin[k] {
					pmin[k] = p[k]
				}
				if n == 0 || p[k] > pmax[k] {
					pmax[k] = p[k]
				}
			}
			n++
		}
		fmt.Printf("  Projected %s: %d verts, %d behind eye, X[%.4f, %.4f] Y[%.4f, %.4f] Z[%.4f, %.4f]\n",
			cube.name, n, culled, pmin[0], pmax[0], pmin[1], pmax[1], pmin[2], pmax[2])
	}

	if *out != "" {
		if err := os.WriteFile(*out, mesh.Bytes(), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
}
