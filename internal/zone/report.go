package zone

// Report describes how one generation call went. The pipeline never fails
// on retry exhaustion; degraded output (dropped rooms, unconnected rooms,
// pruned floor) is visible here so callers and tests can detect it.
type Report struct {
	Theme  string `yaml:"theme" json:"theme"`
	Family string `yaml:"family" json:"family"`
	Seed   int64  `yaml:"seed" json:"seed"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`

	RequestedRooms int `yaml:"requested_rooms" json:"requested_rooms"`
	PlacedRooms    int `yaml:"placed_rooms" json:"placed_rooms"`
	MergedRooms    int `yaml:"merged_rooms" json:"merged_rooms"`
	FailedConnects int `yaml:"failed_connects" json:"failed_connects"`
	PrunedCells    int `yaml:"pruned_cells" json:"pruned_cells"`

	CreaturesPlaced int `yaml:"creatures_placed" json:"creatures_placed"`
	ItemsPlaced     int `yaml:"items_placed" json:"items_placed"`
	SkippedSpawns   int `yaml:"skipped_spawns" json:"skipped_spawns"`

	// Fingerprint is a blake2b digest of the finished grids; identical
	// inputs must reproduce it byte for byte.
	Fingerprint string `yaml:"fingerprint" json:"fingerprint"`
}

// Degraded reports whether the layout fell short of the theme's request in
// any way.
func (r *Report) Degraded() bool {
	return r.PlacedRooms < r.RequestedRooms ||
		r.FailedConnects > 0 ||
		r.PrunedCells > 0 ||
		r.SkippedSpawns > 0
}
