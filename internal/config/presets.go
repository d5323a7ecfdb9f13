package config

import "sort"

var Presets = map[string]func() *Config{
	"isotopes": DefaultConfig,
	"collide":  collide,
	"gas":      gas,
	"heavy":    heavy,
}

func isotopeAtoms() []AtomConfig {
	return []AtomConfig{
		{
			Name: "Hydrogen", Protons: 1, Neutrons: 0, Color: "lightblue", X: -250, Y: 0,
			Electrons: []ElectronConfig{{OrbitRadius: DefaultOrbitRadius, Angle: 45, Speed: 2.2}},
		},
		{
			Name: "Deuterium", Protons: 1, Neutrons: 1, Color: "white", X: 0, Y: 0,
			Electrons: []ElectronConfig{{OrbitRadius: DefaultOrbitRadius, Angle: 0, Speed: 2.0}},
		},
		{
			Name: "Tritium", Protons: 1, Neutrons: 2, Color: "lightgreen", X: 0, Y: -250,
			Electrons: []ElectronConfig{{OrbitRadius: DefaultOrbitRadius, Angle: -45, Speed: 1.8}},
		},
		{
			Name: "Helium", Protons: 2, Neutrons: 2, Color: "yellow", X: 250, Y: 0,
			Electrons: []ElectronConfig{
				{OrbitRadius: DefaultOrbitRadius, Angle: 90, Speed: 2.5},
				{OrbitRadius: DefaultOrbitRadius, Angle: 270, Speed: 2.5},
			},
		},
	}
}

func helium(name string, x, y, vx, vy float64) AtomConfig {
	return AtomConfig{
		Name: name, Protons: 2, Neutrons: 2, Color: "yellow", X: x, Y: y, VX: vx, VY: vy,
		Electrons: []ElectronConfig{
			{OrbitRadius: DefaultOrbitRadius, Angle: 90, Speed: 2.5},
			{OrbitRadius: DefaultOrbitRadius, Angle: 270, Speed: 2.5},
		},
	}
}

func collide() *Config {
	cfg := base()
	cfg.Scenario = "collide"
	cfg.Frames = 300
	cfg.Atoms = []AtomConfig{
		helium("Helium-A", -200, 0, 3, 0),
		helium("Helium-B", 200, 0, -3, 0),
	}
	return cfg
}

func gas() *Config {
	cfg := base()
	cfg.Scenario = "gas"
	cfg.Frames = 1200
	cfg.Atoms = []AtomConfig{
		{Name: "H-1", Protons: 1, Color: "lightblue", X: -300, Y: 200, VX: 4, VY: -2.5,
			Electrons: []ElectronConfig{{OrbitRadius: 60, Angle: 0, Speed: 6}}},
		{Name: "H-2", Protons: 1, Neutrons: 1, Color: "white", X: 300, Y: 200, VX: -3, VY: -3.5,
			Electrons: []ElectronConfig{{OrbitRadius: 60, Angle: 120, Speed: 5}}},
		{Name: "H-3", Protons: 1, Neutrons: 2, Color: "lightgreen", X: -300, Y: -200, VX: 2.5, VY: 4,
			Electrons: []ElectronConfig{{OrbitRadius: 60, Angle: 240, Speed: 4}}},
		helium("He-4", 300, -200, -2, 2),
		{Name: "Li-7", Protons: 3, Neutrons: 4, Color: "orange", X: 0, Y: 150, VX: 1.5, VY: -1,
			Electrons: []ElectronConfig{
				{OrbitRadius: 80, Angle: 0, Speed: 3},
				{OrbitRadius: 80, Angle: 180, Speed: 3},
				{OrbitRadius: 110, Angle: 90, Speed: 2},
			}},
		{Name: "Be-9", Protons: 4, Neutrons: 5, Color: "pink", X: 0, Y: -150, VX: -1, VY: 1.5,
			Electrons: []ElectronConfig{
				{OrbitRadius: 85, Angle: 0, Speed: 3},
				{OrbitRadius: 85, Angle: 180, Speed: 3},
				{OrbitRadius: 115, Angle: 90, Speed: 2},
				{OrbitRadius: 115, Angle: 270, Speed: 2},
			}},
	}
	return cfg
}

func heavy() *Config {
	cfg := base()
	cfg.Scenario = "heavy"
	cfg.Frames = 600
	cfg.Atoms = []AtomConfig{
		{Name: "Carbon", Protons: 6, Neutrons: 6, Color: "gray", X: -220, Y: 10, VX: 2, VY: 0,
			Electrons: []ElectronConfig{
				{OrbitRadius: 110, Angle: 0, Speed: 3},
				{OrbitRadius: 110, Angle: 180, Speed: 3},
			}},
		{Name: "Hydrogen", Protons: 1, Color: "lightblue", X: 220, Y: -10, VX: -4, VY: 0,
			Electrons: []ElectronConfig{{OrbitRadius: 70, Angle: 45, Speed: 5}}},
	}
	return cfg
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
