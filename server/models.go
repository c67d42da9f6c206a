package server

import (
	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/pathsearch"
	"github.com/katalvlaran/roadnet/roads"
)

// Vec is a point on the wire: [x, y, z].
type Vec [3]float64

func toVec(v geom.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

func (v Vec) vec3() geom.Vec3 { return geom.V(v[0], v[1], v[2]) }

func toVecs(ps []geom.Vec3) []Vec {
	out := make([]Vec, len(ps))
	for i, p := range ps {
		out[i] = toVec(p)
	}
	return out
}

// GenerateRequest overrides fields of the server's base MapConfig. Absent
// fields keep the base value.
type GenerateRequest struct {
	CellLength    *float64 `json:"cell_length,omitempty"`
	CellWidth     *float64 `json:"cell_width,omitempty"`
	Theme         *string  `json:"theme,omitempty"`
	Density       *float64 `json:"density,omitempty"`
	Uniformity    *float64 `json:"uniformity,omitempty"`
	GravityWeight *float64 `json:"gravity_weight,omitempty"`
	AngleWeight   *float64 `json:"angle_weight,omitempty"`
	SeedPoint     *Vec     `json:"seed_point,omitempty"`
	Strategy      *string  `json:"strategy,omitempty"`
	Seed          *int64   `json:"seed,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
}

func (req GenerateRequest) apply(cfg mapgen.MapConfig) mapgen.MapConfig {
	set(&cfg.CellLength, req.CellLength)
	set(&cfg.CellWidth, req.CellWidth)
	set(&cfg.Theme, req.Theme)
	set(&cfg.Density, req.Density)
	set(&cfg.Uniformity, req.Uniformity)
	set(&cfg.GravityWeight, req.GravityWeight)
	set(&cfg.AngleWeight, req.AngleWeight)
	set(&cfg.Strategy, req.Strategy)
	set(&cfg.Seed, req.Seed)
	set(&cfg.MaxIterations, req.MaxIterations)
	if req.SeedPoint != nil {
		cfg.SeedPoint = req.SeedPoint.vec3()
	}
	return cfg
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// LatticeInfo summarises the lattice of a map.
type LatticeInfo struct {
	Cols       int `json:"cols"`
	Rows       int `json:"rows"`
	ActiveCols int `json:"active_cols"`
	ActiveRows int `json:"active_rows"`
	Links      int `json:"links"`
}

// Road is one accepted road segment.
type Road struct {
	ID        int      `json:"id"`
	A         Vec      `json:"a"`
	B         Vec      `json:"b"`
	Length    float64  `json:"length"`
	Corners   [4]Vec   `json:"corners"`
	Buildings []string `json:"buildings,omitempty"`
}

// Marker is a placed decoration.
type Marker struct {
	Kind     string  `json:"kind"`
	Position Vec     `json:"position"`
	Scale    float64 `json:"scale"`
}

// MapResponse describes a generated map.
type MapResponse struct {
	Seed       int64       `json:"seed"`
	Strategy   string      `json:"strategy"`
	Theme      string      `json:"theme"`
	Iterations int         `json:"iterations"`
	Lattice    LatticeInfo `json:"lattice"`
	Roads      []Road      `json:"roads"`
	Rejected   int         `json:"rejected"`
	Length     float64     `json:"total_length"`
	Markers    []Marker    `json:"markers"`
	Buildings  int         `json:"buildings"`
}

func newMapResponse(m *mapgen.Map) MapResponse {
	resp := MapResponse{
		Seed:       m.Seed,
		Strategy:   m.Growth.Strategy,
		Theme:      m.Config.Theme,
		Iterations: m.Growth.Iterations,
		Lattice: LatticeInfo{
			Cols:       m.Lattice.Cols,
			Rows:       m.Lattice.Rows,
			ActiveCols: m.Lattice.ActiveCols,
			ActiveRows: m.Lattice.ActiveRows,
			Links:      m.Lattice.LinkCount(),
		},
		Roads:     make([]Road, 0, m.Network.Len()),
		Rejected:  m.Network.Rejected,
		Length:    m.Network.TotalLength(),
		Markers:   make([]Marker, 0, len(m.Markers)),
		Buildings: m.Buildings,
	}
	m.Network.Walk(func(r *roads.Road) bool {
		rd := Road{ID: r.ID, A: toVec(r.A), B: toVec(r.B), Length: r.Length}
		for i, c := range r.Corners {
			rd.Corners[i] = toVec(c)
		}
		for _, b := range r.Buildings {
			rd.Buildings = append(rd.Buildings, b.ID)
		}
		resp.Roads = append(resp.Roads, rd)
		return true
	})
	for _, mk := range m.Markers {
		resp.Markers = append(resp.Markers, Marker{Kind: mk.Kind.String(), Position: toVec(mk.Position), Scale: mk.Scale})
	}
	return resp
}

// PathRequest asks for a path between two points. Step and GoalRadius
// override the server defaults when set.
type PathRequest struct {
	Start      Vec      `json:"start"`
	Goal       Vec      `json:"goal"`
	Step       *float64 `json:"step,omitempty"`
	GoalRadius *float64 `json:"goal_radius,omitempty"`
}

// PathResponse is the outcome of a search. Path runs start to goal.
type PathResponse struct {
	Status     string  `json:"status"`
	Found      bool    `json:"found"`
	Path       []Vec   `json:"path,omitempty"`
	Cost       float64 `json:"cost"`
	Iterations int     `json:"iterations"`
	Nodes      int     `json:"nodes"`
}

func newPathResponse(res pathsearch.Result) PathResponse {
	out := PathResponse{
		Status:     res.Status.String(),
		Found:      res.Found(),
		Cost:       res.Cost,
		Iterations: res.Iterations,
		Nodes:      res.Nodes,
	}
	if res.Found() {
		out.Path = toVecs(res.Forward())
	}
	return out
}

// APIError is the body of every non-2xx response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
