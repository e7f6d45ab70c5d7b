package coherence

import "math/rand"

// SystemOptions configure NewSystem.
type SystemOptions struct {
	// Seed, when HasSeed is true, makes main-memory initialization
	// deterministic: the same seed always produces the same words. When
	// HasSeed is false, a source seeded from the global math/rand
	// generator is used and words vary across runs.
	Seed    int64
	HasSeed bool

	// WordMax bounds the initial word values to [0, WordMax). Zero means
	// the default of 256.
	WordMax int
}

const defaultWordMax = 256

// NewSystem creates a System with NumBlocks main-memory blocks filled with
// arbitrary non-negative words, and every cache line Invalid with
// FIFOIndex 0.
func NewSystem(opts SystemOptions) *System {
	wordMax := opts.WordMax
	if wordMax <= 0 {
		wordMax = defaultWordMax
	}

	var src rand.Source
	if opts.HasSeed {
		src = rand.NewSource(opts.Seed)
	} else {
		src = rand.NewSource(rand.Int63())
	}

	r := rand.New(src)

	sys := &System{}
	for b := range sys.mm {
		for w := range sys.mm[b] {
			sys.mm[b][w] = r.Intn(wordMax)
		}
	}

	for c := range sys.caches {
		sys.caches[c] = newCache()
	}

	return sys
}

// SystemView is a read-only snapshot of a System, exposing main memory and
// every cache's lines in declaration order. It is a deep copy: mutating it
// has no effect on the System it was taken from.
type SystemView struct {
	MainMemory [NumBlocks]Block
	Caches     [NumCaches]Cache
}

// Snapshot returns a deep-copied view of the system, suitable for rendering
// or for assertions in tests.
func (s *System) Snapshot() SystemView {
	return SystemView{
		MainMemory: s.mm,
		Caches:     s.caches,
	}
}

func validCache(cacheID int) bool {
	return cacheID >= 0 && cacheID < NumCaches
}

func validAddress(address int) bool {
	return address >= 0 && address < NumAddresses
}
