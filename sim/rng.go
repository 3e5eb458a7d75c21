package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// IntSource is the randomness the simulation consumes.
// Intn returns a uniformly distributed integer in [0, n) and may panic if n <= 0.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type IntSource interface {
	Intn(n int) int
}

// uniformRange draws an integer uniformly from the inclusive range [lo, hi].
func uniformRange(src IntSource, lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("uniformRange: empty range [%d, %d]", lo, hi))
	}
	return lo + src.Intn(hi-lo+1)
}

// SimulationKey identifies a reproducible run: the same key and Config
// always give the same report and event trace.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

const (
	// SubsystemArrivals is the RNG subsystem for per-minute arrivals.
	// Uses master seed directly, so a plain rand.New(rand.NewSource(seed))
	// replays the same arrival stream.
	SubsystemArrivals = "arrivals"

	// SubsystemSeeding is the RNG subsystem for the queue seeding pass that
	// runs before the first minute.
	SubsystemSeeding = "seeding"
)

// PartitionedRNG hands out one *rand.Rand per named subsystem, all derived
// from a single SimulationKey. Arrivals use the key as-is; every other
// subsystem uses key XOR fnv1a64(name), so the seeding pass never shifts
// the arrival stream. Owned by the simulator goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for name, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemArrivals {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
