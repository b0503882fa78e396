// Package snapshot exports a gate scene to an image file with gonum/plot.
package snapshot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"chosenoffset.com/eventgate/internal/core/gate"
	"chosenoffset.com/eventgate/internal/core/grid"
	"chosenoffset.com/eventgate/internal/core/trail"
)

// pixelsPerInch matches the default vgimg resolution.
const pixelsPerInch = 96

var (
	gridColor   = color.RGBA{60, 120, 220, 255}
	belowColor  = color.RGBA{200, 200, 210, 255}
	trailColor  = color.RGBA{90, 90, 90, 255}
	alertColor  = color.RGBA{220, 50, 50, 255}
	gateColor   = color.Black
	anchorColor = color.RGBA{230, 140, 0, 255}
)

// Scene is everything drawn in one frame of the visualizer.
type Scene struct {
	Width, Height int
	Gate          *gate.Gate
	Trail         *trail.Trail
	GridPoints    int
	DrawGrid      bool
	DrawShadow    bool
}

// Build lays the scene out as a plot. The y axis is inverted so the picture
// matches the screen.
func Build(s Scene) (*plot.Plot, error) {
	if s.Gate == nil {
		return nil, errors.New("scene has no gate")
	}

	p := plot.New()
	p.Title.Text = s.Gate.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	if s.DrawGrid {
		above, below := splitLattice(s)
		for _, layer := range []struct {
			name   string
			points []gate.Point
			clr    color.Color
		}{
			{"below", below, belowColor},
			{"above", above, gridColor},
		} {
			if len(layer.points) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(toXYs(layer.points))
			if err != nil {
				return nil, fmt.Errorf("grid scatter: %w", err)
			}
			sc.GlyphStyle.Color = layer.clr
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
			p.Legend.Add(layer.name, sc)
		}
	}

	if s.DrawShadow && s.Trail != nil && s.Trail.Len() > 0 {
		clr := trailColor
		if s.Trail.CrossedBy(s.Gate) {
			clr = alertColor
		}
		line, points, err := plotter.NewLinePoints(toXYs(s.Trail.Points()))
		if err != nil {
			return nil, fmt.Errorf("trail line: %w", err)
		}
		line.Color = clr
		line.Width = vg.Points(1)
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Radius = vg.Points(3)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add("trail", line, points)
	}

	a, b := s.Gate.EdgePoints()
	seg, err := plotter.NewLine(toXYs([]gate.Point{a, b}))
	if err != nil {
		return nil, fmt.Errorf("gate line: %w", err)
	}
	seg.Color = gateColor
	seg.Width = vg.Points(3)

	anchors, err := plotter.NewScatter(toXYs([]gate.Point{a, s.Gate.Center(), b}))
	if err != nil {
		return nil, fmt.Errorf("gate anchors: %w", err)
	}
	anchors.GlyphStyle.Color = anchorColor
	anchors.GlyphStyle.Radius = vg.Points(4)
	anchors.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(seg, anchors)
	p.Legend.Add("gate", seg)

	// Pin the axes to the canvas after Add widened them to the data.
	p.X.Min, p.X.Max = 0, float64(s.Width)
	p.Y.Min, p.Y.Max = 0, float64(s.Height)

	return p, nil
}

// splitLattice samples the scene's lattice and splits it by side of the gate.
func splitLattice(s Scene) (above, below []gate.Point) {
	lattice := grid.Sample(s.Width, s.Height, s.GridPoints)
	for i, up := range grid.Classify(s.Gate, lattice) {
		if up {
			above = append(above, lattice[i])
		} else {
			below = append(below, lattice[i])
		}
	}
	return above, below
}

// Write encodes the scene as PNG to w.
func Write(w io.Writer, s Scene) error {
	p, err := Build(s)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(pixels(s.Width), pixels(s.Height), "png")
	if err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Save writes the scene as PNG to path, creating parent directories.
func Save(path string, s Scene) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// UniquePath inserts a random id before the extension of path, so repeated
// snapshots do not overwrite each other.
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return strings.TrimSuffix(path, ext) + "-" + id + ext
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pixelsPerInch
}

func toXYs(points []gate.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i] = plotter.XY{X: float64(p.X), Y: float64(p.Y)}
	}
	return xys
}
