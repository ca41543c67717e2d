package polar

// Store is the built-in glider handicap sheet, indexed by the Config's
// GliderIdx. Only a representative subset of the original database is
// carried here (see DESIGN.md); the layout (name, wing area, three polar
// points) is the authoritative shape any future full database must match.
var Store = []BasicGliderData{
	{
		Name:            "LS-3",
		WingArea:        10.5,
		MaxSpeed:        270.0,
		EmptyMass:       280.0,
		MaxBallast:      121.0,
		ReferenceWeight: 396.0,
		Handicap:        107,
		PolarValues:     [3][2]float32{{80.0, -0.604}, {105.0, -0.700}, {180.0, -1.939}},
	},
	{
		Name:            "ASW-20",
		WingArea:        10.5,
		MaxSpeed:        250.0,
		EmptyMass:       296.0,
		MaxBallast:      80.0,
		ReferenceWeight: 386.0,
		Handicap:        105,
		PolarValues:     [3][2]float32{{90.0, -0.62}, {115.0, -0.73}, {185.0, -1.86}},
	},
	{
		Name:            "Discus-2b",
		WingArea:        10.58,
		MaxSpeed:        280.0,
		EmptyMass:       310.0,
		MaxBallast:      190.0,
		ReferenceWeight: 450.0,
		Handicap:        100,
		PolarValues:     [3][2]float32{{95.0, -0.60}, {120.0, -0.68}, {190.0, -1.75}},
	},
}
