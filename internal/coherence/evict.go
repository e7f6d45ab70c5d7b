package coherence

// evict prepares caches[cacheID].Lines[lineIndex] to be overwritten,
// performing whatever write-back or owner hand-off its current state
// requires. It does not touch Data/Tag/State itself; the caller installs
// the new line contents afterward.
func evict(s *System, cacheID, lineIndex int) {
	line := &s.caches[cacheID].Lines[lineIndex]

	switch line.State {
	case Invalid:
		// Nothing resident; nothing to do.
	case Exclusive, Shared:
		// Clean; main memory is already authoritative for this block.
	case Modified:
		// No peer holds a copy (at-most-one-M/E invariant).
		s.mm[line.Tag] = line.Data
	case Owned:
		if !s.handOffOwner(cacheID, line.Tag) {
			s.mm[line.Tag] = line.Data
		}
	}
}

// handOffOwner scans peers of cacheID, ascending id, for a Shared line
// holding blockID. If found, it is promoted to Owned and handOffOwner
// returns true, leaving main memory untouched. If no such peer exists it
// returns false and the caller must write back instead.
func (s *System) handOffOwner(cacheID, blockID int) bool {
	for peerID := range s.caches {
		if peerID == cacheID {
			continue
		}

		i := locate(&s.caches[peerID], blockID)
		if i < 0 {
			continue
		}

		if s.caches[peerID].Lines[i].State == Shared {
			s.caches[peerID].Lines[i].State = Owned

			return true
		}
	}

	return false
}

// fill evicts whatever currently occupies caches[cacheID].Lines[lineIndex]
// and installs a fresh copy of data as blockID in the given state. data is
// copied by value: the new line and its source never alias.
func fill(s *System, cacheID, lineIndex, blockID int, data Block, state State) {
	evict(s, cacheID, lineIndex)

	line := &s.caches[cacheID].Lines[lineIndex]
	line.Data = data
	line.Tag = blockID
	line.State = state
}

// advanceFIFO advances a cache's replacement counter after a fill.
func advanceFIFO(c *Cache) {
	c.FIFOIndex = (c.FIFOIndex + 1) % NumLines
}
