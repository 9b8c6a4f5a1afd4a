package config

// Presets are ready-made run configurations per system.
var presets = map[string]map[string]*Config{
	"duffing": {
		"quick": {
			System: "duffing", Descriptor: "arclength", Integrator: "rk4",
			Method: "augmented", Direction: "both",
			Dt: 0.02, T0: 0, T1: 5, Tolerance: 1e-6,
			Grid: GridConfig{XMin: -1.6, XMax: 1.6, NX: 60, YMin: -1, YMax: 1, NY: 40},
		},
		"fine": {
			System: "duffing", Descriptor: "arclength", Integrator: "rk45",
			Method: "augmented", Direction: "both", Adaptive: true,
			Dt: 0.01, T0: 0, T1: 10, Tolerance: 1e-8,
			Grid: GridConfig{XMin: -1.6, XMax: 1.6, NX: 200, YMin: -1, YMax: 1, NY: 150},
		},
	},
	"saddle": {
		"quick": {
			System: "saddle", Descriptor: "arclength", Integrator: "rk4",
			Method: "augmented", Direction: "both",
			Dt: 0.01, T0: 0, T1: 2, Tolerance: 1e-6,
			Grid: GridConfig{XMin: -1, XMax: 1, NX: 60, YMin: -1, YMax: 1, NY: 40},
		},
	},
	"double_well": {
		"quick": {
			System: "double_well", Descriptor: "p2", Integrator: "rk4",
			Method: "augmented", Direction: "both",
			Dt: 0.01, T0: 0, T1: 8, Tolerance: 1e-6,
			Grid: GridConfig{XMin: -1.8, XMax: 1.8, NX: 80, YMin: -1.2, YMax: 1.2, NY: 50},
		},
	},
}

// GetPreset looks up a preset and returns a copy, or nil when unknown.
func GetPreset(system, name string) *Config {
	group, ok := presets[system]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets names the presets available for a system, or nil.
func ListPresets(system string) []string {
	group, ok := presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
