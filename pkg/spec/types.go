package spec

// Scenario is the top-level description of an optimization run: the
// terrain, the route to improve, the cost model, solver settings,
// obstacles, and output destinations.
type Scenario struct {
	Name      string         `yaml:"name" json:"name"`
	DEM       DEMSpec        `yaml:"dem" json:"dem"`
	Route     RouteSpec      `yaml:"route" json:"route"`
	Cost      CostSpec       `yaml:"cost" json:"cost"`
	Optimizer OptimizerSpec  `yaml:"optimizer" json:"optimizer"`
	Obstacles []ObstacleSpec `yaml:"obstacles" json:"obstacles"`
	Output    OutputSpec     `yaml:"output" json:"output"`
}

// DEMSpec selects the elevation source: an ESRI ASCII grid file or a
// synthetic terrain. Exactly one must be set.
type DEMSpec struct {
	File      string         `yaml:"file" json:"file"`
	Synthetic *SyntheticSpec `yaml:"synthetic" json:"synthetic"`
}

// SyntheticSpec parameterizes generated terrain.
type SyntheticSpec struct {
	Width  int     `yaml:"width" json:"width"`
	Height int     `yaml:"height" json:"height"`
	Seed   int64   `yaml:"seed" json:"seed"`
	Relief float64 `yaml:"relief" json:"relief"`
}

// RouteSpec is the starting polyline. Locked left unset means locked.
type RouteSpec struct {
	Locked *bool       `yaml:"locked" json:"locked"`
	Points []PointSpec `yaml:"points" json:"points"`
}

// PointSpec is a route vertex. Z is optional; when omitted the elevation
// is sampled from the DEM.
type PointSpec struct {
	X float64  `yaml:"x" json:"x"`
	Y float64  `yaml:"y" json:"y"`
	Z *float64 `yaml:"z" json:"z,omitempty"`
}

// CostSpec names the model and the time allotted for the traverse.
type CostSpec struct {
	Model     string  `yaml:"model" json:"model"`
	TimeHours float64 `yaml:"time_hours" json:"time_hours"`
}

// OptimizerSpec configures the solver and its perturbation strategies.
type OptimizerSpec struct {
	Solver     string         `yaml:"solver" json:"solver"`
	Iterations int            `yaml:"iterations" json:"iterations"`
	Seed       int64          `yaml:"seed" json:"seed"`
	Strategies []StrategySpec `yaml:"strategies" json:"strategies"`
}

// StrategySpec names a perturbation strategy. Samples and RefineRounds are
// optional overrides honored by strategies that sample.
type StrategySpec struct {
	Name         string `yaml:"name" json:"name"`
	Samples      int    `yaml:"samples" json:"samples"`
	RefineRounds int    `yaml:"refine_rounds" json:"refine_rounds"`
}

// ObstacleSpec is an axis-aligned no-go rectangle in raster coordinates.
type ObstacleSpec struct {
	Name string  `yaml:"name" json:"name"`
	MinX float64 `yaml:"min_x" json:"min_x"`
	MinY float64 `yaml:"min_y" json:"min_y"`
	MaxX float64 `yaml:"max_x" json:"max_x"`
	MaxY float64 `yaml:"max_y" json:"max_y"`
}

// OutputSpec lists result destinations. Empty fields write nothing.
type OutputSpec struct {
	GeoJSON string `yaml:"geojson" json:"geojson"`
}

// LockedRoute reports whether the route's endpoints are pinned.
func (s *Scenario) LockedRoute() bool {
	return s.Route.Locked == nil || *s.Route.Locked
}
