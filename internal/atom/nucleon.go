package atom

// NucleonRadius is the radius shared by protons and neutrons.
const NucleonRadius = 12.0

// Kind tags a nucleon as a proton or a neutron.
type Kind int

const (
	Proton Kind = iota
	Neutron
)

func (k Kind) String() string {
	switch k {
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	default:
		return "unknown"
	}
}

// Nucleon holds the per-kind constants of a proton or neutron.
type Nucleon struct {
	Kind   Kind
	Charge float64
	Mass   float64
	Radius float64
	Color  string
}

var nucleons = map[Kind]Nucleon{
	Proton:  {Kind: Proton, Charge: 1, Mass: 1.007276, Radius: NucleonRadius, Color: "red"},
	Neutron: {Kind: Neutron, Charge: 0, Mass: 1.008665, Radius: NucleonRadius, Color: "green"},
}

// NucleonOf returns the constants for kind.
func NucleonOf(k Kind) Nucleon {
	return nucleons[k]
}

// Electron constants.
const (
	ElectronCharge = -1.0
	ElectronMass   = 0.00054858
	ElectronRadius = 5.0
	ElectronColor  = "blue"
)

// NucleusColor is the fill of the nucleus background disc.
const NucleusColor = "purple"
