// Package backend is the registry of named plot.DrawingBackend factories.
//
// Backend packages register themselves from init(), following the
// database/sql driver pattern, so a program selects its output format by
// name at runtime:
//
//	import (
//		"github.com/gogpu/plot/backend"
//		_ "github.com/gogpu/plot/backends/raster"
//		_ "github.com/gogpu/plot/backends/svg"
//	)
//
//	b, err := backend.New("svg", 800, 600)
//
// # Available Backends
//
//   - "raster": anti-aliased RGBA image via rasterx, PNG output
//   - "draw2d": RGBA image via draw2dimg, PNG output
//   - "svg": SVG document via svgo
//   - "recording": in-memory command list (package recording)
package backend
