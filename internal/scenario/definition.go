// Package scenario defines the test environments the sandbox can load:
// each scenario describes a ground slab and the obstacle layout built
// on top of it. Scenarios are stored as one YAML file per scenario and
// fall back to a built-in catalog when no files are present.
package scenario

// Definition describes one loadable environment.
type Definition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	GroundExtent float32 `yaml:"ground_extent"`

	CrateGridRadius int     `yaml:"crate_grid_radius"`
	CrateSpacing    float32 `yaml:"crate_spacing"`
	CratePatternMod int     `yaml:"crate_pattern_mod"`

	WallCount   int     `yaml:"wall_count"`
	WallSpacing float32 `yaml:"wall_spacing"`
	WallZ       float32 `yaml:"wall_z"`

	TowerZ float32 `yaml:"tower_z"`

	// SunPosition anchors the directional light for renderers.
	SunPosition [3]float32 `yaml:"sun_position"`

	// Stairs adds the graded stair lanes used for step tuning.
	Stairs bool `yaml:"stairs"`
}

// Valid reports whether the definition carries the minimum identity
// needed to show up in the catalog.
func (d *Definition) Valid() bool {
	return d.ID != "" && d.Name != ""
}

// DefaultScenarios returns the built-in catalog.
func DefaultScenarios() []Definition {
	return []Definition{
		{
			ID:              "greenwood",
			Name:            "Greenwood Valley",
			Description:     "Open field with scattered crates and wall segments.",
			GroundExtent:    120.0,
			CrateGridRadius: 8,
			CrateSpacing:    3.0,
			CratePatternMod: 4,
			WallCount:       5,
			WallSpacing:     3.2,
			WallZ:           -20.0,
			TowerZ:          -30.0,
			SunPosition:     [3]float32{18.0, 24.0, 12.0},
			Stairs:          true,
		},
		{
			ID:              "arena",
			Name:            "Iron Arena",
			Description:     "Compact arena with tightly packed obstacles.",
			GroundExtent:    80.0,
			CrateGridRadius: 6,
			CrateSpacing:    2.6,
			CratePatternMod: 3,
			WallCount:       7,
			WallSpacing:     2.6,
			WallZ:           -16.0,
			TowerZ:          -24.0,
			SunPosition:     [3]float32{14.0, 20.0, 10.0},
		},
		{
			ID:              "canyon",
			Name:            "Red Canyon",
			Description:     "Stretched map with pillars and strong depth cues.",
			GroundExtent:    180.0,
			CrateGridRadius: 10,
			CrateSpacing:    3.4,
			CratePatternMod: 5,
			WallCount:       9,
			WallSpacing:     3.5,
			WallZ:           -30.0,
			TowerZ:          -42.0,
			SunPosition:     [3]float32{22.0, 30.0, 14.0},
		},
		{
			ID:              "gauntlet",
			Name:            "Stone Gauntlet",
			Description:     "Narrow route with dense obstacles for short intense runs.",
			GroundExtent:    72.0,
			CrateGridRadius: 5,
			CrateSpacing:    2.2,
			CratePatternMod: 2,
			WallCount:       11,
			WallSpacing:     2.1,
			WallZ:           -14.0,
			TowerZ:          -20.0,
			SunPosition:     [3]float32{12.0, 18.0, 8.0},
		},
		{
			ID:              "highlands",
			Name:            "Frost Highlands",
			Description:     "Large open plain with little cover and long sightlines.",
			GroundExtent:    240.0,
			CrateGridRadius: 12,
			CrateSpacing:    4.2,
			CratePatternMod: 6,
			WallCount:       4,
			WallSpacing:     5.5,
			WallZ:           -40.0,
			TowerZ:          -58.0,
			SunPosition:     [3]float32{28.0, 35.0, 16.0},
		},
	}
}
