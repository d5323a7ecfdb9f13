// Package atom provides the simulation core for schematic atomic models.
//
// The package covers two pieces with real algorithmic content:
//
//   - [Packer]: rejection-sampled, non-overlapping placement of nucleons
//     inside a nucleus disc
//   - [Body] and [Resolver]: per-frame kinematics, reflective arena walls
//     and pairwise elastic collisions between nuclei
//
// [Nucleus] derives the visual radius and mass of a nucleus from its
// proton and neutron counts, and [Electron] animates a point orbiting the
// current center of its atom.
//
// # Randomness
//
// Every random draw goes through a [Rand], so a seeded *math/rand.Rand
// gives reproducible layouts and collision jitter.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. A single tick
// driver owns every Body and Electron.
package atom
