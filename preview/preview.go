// SPDX-License-Identifier: MIT
// Package: roadnet/preview

package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/growth"
	"github.com/katalvlaran/roadnet/lattice"
	"github.com/katalvlaran/roadnet/roads"
	"github.com/katalvlaran/roadnet/splatmap"
)

// Glyphs used by Draw.
const (
	GlyphSplat  = '░'
	GlyphNode   = '·'
	GlyphMarker = '♣'
	GlyphPath   = '•'
	GlyphStart  = 'S'
	GlyphGoal   = 'G'
)

// Scene is everything Draw can show. Any layer may be empty.
type Scene struct {
	Width, Depth float64 // world extents mapped onto the screen
	Lattice      *lattice.Lattice
	Network      *roads.Network
	Markers      []growth.Marker
	Splat        *splatmap.Map
	Path         []geom.Vec3 // start to goal
}

// Theme holds one style per layer.
type Theme struct {
	Splat, Node, Road, Marker, Path, Legend tcell.Style
}

// DefaultTheme returns the stock colours.
func DefaultTheme() Theme {
	return Theme{
		Splat:  tcell.StyleDefault.Foreground(tcell.ColorOlive),
		Node:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Road:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Marker: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Path:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Legend: tcell.StyleDefault.Reverse(true),
	}
}

// Draw clears s and renders sc onto it, X to the right and Z downwards.
// The bottom row holds a one-line legend; the rest of the screen shows the
// world. Layers are drawn splat, roads, isolated nodes, markers, path, so
// later layers cover earlier ones.
func Draw(s tcell.Screen, sc Scene, th Theme) {
	s.Clear()
	cols, rows := s.Size()
	rows-- // legend
	if cols < 1 || rows < 1 || !(sc.Width > 0) || !(sc.Depth > 0) {
		return
	}
	v := view{cols: cols, rows: rows, width: sc.Width, depth: sc.Depth}

	// 1) Splat map
	if sc.Splat != nil {
		texW, texH := sc.Splat.Size()
		for r := 0; r < rows; r++ {
			tz := int((float64(r) + 0.5) / float64(rows) * float64(texH))
			for c := 0; c < cols; c++ {
				tx := int((float64(c) + 0.5) / float64(cols) * float64(texW))
				if sc.Splat.Alpha(splatmap.LayerRoad, tx, tz) > 0.5 {
					s.SetContent(c, r, GlyphSplat, nil, th.Splat)
				}
			}
		}
	}

	// 2) Roads
	if sc.Network != nil {
		sc.Network.Walk(func(rd *roads.Road) bool {
			v.line(s, rd.A, rd.B, th.Road)
			return true
		})
	}

	// 3) Active nodes without links
	if l := sc.Lattice; l != nil {
		for _, i := range l.ActiveIndices() {
			n := l.Node(i)
			if n.HasNext() || n.HasPrev() {
				continue
			}
			c, r := v.cell(n.Position)
			s.SetContent(c, r, GlyphNode, nil, th.Node)
		}
	}

	// 4) Markers
	for _, mk := range sc.Markers {
		c, r := v.cell(mk.Position)
		s.SetContent(c, r, GlyphMarker, nil, th.Marker)
	}

	// 5) Path
	for i, p := range sc.Path {
		g := GlyphPath
		switch i {
		case 0:
			g = GlyphStart
		case len(sc.Path) - 1:
			g = GlyphGoal
		}
		c, r := v.cell(p)
		s.SetContent(c, r, g, nil, th.Path)
	}

	legend := sc.legend()
	for i, ch := range []rune(legend) {
		if i >= cols {
			break
		}
		s.SetContent(i, rows, ch, nil, th.Legend)
	}
}

func (sc Scene) legend() string {
	nRoads, nLinks := 0, 0
	if sc.Network != nil {
		nRoads = sc.Network.Len()
	}
	if sc.Lattice != nil {
		nLinks = sc.Lattice.LinkCount()
	}
	return fmt.Sprintf(" links %d  roads %d  markers %d  path %d  [q] quit ",
		nLinks, nRoads, len(sc.Markers), len(sc.Path))
}

// Run draws sc and keeps it on screen, redrawing on resize, until q or
// Esc is pressed or ctx is done. The caller owns s and must have called
// Init; Run does not call Fini.
func Run(ctx context.Context, s tcell.Screen, sc Scene, th Theme) error {
	Draw(s, sc, th)
	s.Show()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return ctx.Err()
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			s.Sync()
			Draw(s, sc, th)
			s.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// view maps world X/Z onto screen cells.
type view struct {
	cols, rows   int
	width, depth float64
}

func (v view) cell(p geom.Vec3) (c, r int) {
	c = clamp(int(p.X/v.width*float64(v.cols)), v.cols-1)
	r = clamp(int(p.Z/v.depth*float64(v.rows)), v.rows-1)
	return c, r
}

// line draws a segment with a box-drawing rune matching its slope.
func (v view) line(s tcell.Screen, a, b geom.Vec3, st tcell.Style) {
	c0, r0 := v.cell(a)
	c1, r1 := v.cell(b)
	dc, dr := c1-c0, r1-r0
	g := '─'
	switch {
	case dc == 0 && dr == 0:
		g = '+'
	case dc == 0:
		g = '│'
	case dr == 0:
	case (dc > 0) == (dr > 0):
		g = '╲'
	default:
		g = '╱'
	}
	n := max(abs(dc), abs(dr))
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		c, r := v.cell(geom.Lerp(a, b, t))
		s.SetContent(c, r, g, nil, st)
	}
}

func clamp(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
