package coherence

// Write installs newValue at address as observed by cacheID, enforcing the
// single-writer invariant by invalidating every peer copy of the written
// block, and returns newValue as confirmation.
//
// Preconditions: 0 <= cacheID < NumCaches, 0 <= address < NumAddresses,
// newValue >= 0. On a precondition violation no state is mutated.
func (s *System) Write(cacheID, address, newValue int) (int, error) {
	if !validCache(cacheID) {
		return 0, ErrInvalidCache
	}

	if !validAddress(address) {
		return 0, ErrInvalidAddress
	}

	if newValue < 0 {
		return 0, ErrNegativeValue
	}

	block, off := blockID(address), offset(address)
	c := &s.caches[cacheID]

	if i := locate(c, block); i >= 0 {
		s.writeHit(cacheID, i, block, off, newValue)

		return newValue, nil
	}

	s.writeMiss(cacheID, c, block, off, newValue)

	return newValue, nil
}

// writeHit handles a write to a line already resident in cacheID's cache.
func (s *System) writeHit(cacheID, lineIndex, block, off, newValue int) {
	line := &s.caches[cacheID].Lines[lineIndex]

	switch line.State {
	case Modified, Owned, Shared:
		// Pre-update flush: MM reflects this line's data before any
		// peer is invalidated. Redundant once the mutator goes
		// Modified and stales MM again, but harmless under
		// write-back semantics.
		s.mm[block] = line.Data

		if line.State != Modified {
			for peerID := range s.caches {
				if peerID == cacheID {
					continue
				}

				if j := locate(&s.caches[peerID], block); j >= 0 {
					s.caches[peerID].Lines[j].State = Invalid
				}
			}
		}
	case Exclusive:
		// No peer holds the block; no flush, no peer work.
	case Invalid:
		// Unreachable: locate never returns an Invalid line.
	}

	line.Data[off] = newValue
	line.State = Modified
}

// writeMiss handles a write-allocate: the target block is not resident in
// cacheID's cache.
func (s *System) writeMiss(cacheID int, c *Cache, block, off, newValue int) {
	slot := c.FIFOIndex

	evict(s, cacheID, slot)

	for peerID := range s.caches {
		if peerID == cacheID {
			continue
		}

		peer := &s.caches[peerID]

		j := locate(peer, block)
		if j < 0 {
			continue
		}

		peerLine := &peer.Lines[j]
		if peerLine.State.Dirty() {
			s.mm[block] = peerLine.Data
		}

		peerLine.State = Invalid
	}

	data := s.mm[block]
	data[off] = newValue

	line := &c.Lines[slot]
	line.Data = data
	line.Tag = block
	line.State = Modified

	advanceFIFO(c)
}
