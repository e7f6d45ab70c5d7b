package coherence

import "fmt"

// CheckInvariants walks every line in the system and reports the first
// MOESI invariant violation it finds, or nil if none. It is not used by
// Read/Write themselves — the algorithms are constructed to preserve the
// invariants by design — but test suites use it after arbitrary request
// sequences to catch regressions.
func (s *System) CheckInvariants() error {
	for block := 0; block < NumBlocks; block++ {
		var modifiedOrExclusive, owners, nonInvalid int

		for cacheID := range s.caches {
			i := locate(&s.caches[cacheID], block)
			if i < 0 {
				continue
			}

			nonInvalid++

			switch s.caches[cacheID].Lines[i].State {
			case Modified, Exclusive:
				modifiedOrExclusive++
			case Owned:
				owners++
			}
		}

		if modifiedOrExclusive > 1 {
			return fmt.Errorf("block %d: %d caches hold M/E, want at most 1", block, modifiedOrExclusive)
		}

		if modifiedOrExclusive == 1 && nonInvalid > 1 {
			return fmt.Errorf("block %d: M/E held alongside %d other non-Invalid copies", block, nonInvalid-1)
		}

		if owners > 1 {
			return fmt.Errorf("block %d: %d caches hold O, want at most 1", block, owners)
		}
	}

	for cacheID := range s.caches {
		c := &s.caches[cacheID]

		if c.FIFOIndex < 0 || c.FIFOIndex >= NumLines {
			return fmt.Errorf("cache %d: fifo index %d out of range", cacheID, c.FIFOIndex)
		}

		for i := range c.Lines {
			line := &c.Lines[i]
			if line.State != Invalid && (line.Tag < 0 || line.Tag >= NumBlocks) {
				return fmt.Errorf("cache %d line %d: state %s has invalid tag %d", cacheID, i, line.State, line.Tag)
			}
		}
	}

	return nil
}
