package coherence

// Read returns the word at address as observed by cacheID, locating or
// loading the owning block per the MOESI read protocol, and mutates no
// word values.
//
// Preconditions: 0 <= cacheID < NumCaches, 0 <= address < NumAddresses.
// On a precondition violation no state is mutated.
func (s *System) Read(cacheID, address int) (int, error) {
	if !validCache(cacheID) {
		return 0, ErrInvalidCache
	}

	if !validAddress(address) {
		return 0, ErrInvalidAddress
	}

	block, off := blockID(address), offset(address)
	c := &s.caches[cacheID]

	// Local hit: no state change.
	if i := locate(c, block); i >= 0 {
		return c.Lines[i].Data[off], nil
	}

	// Peer hit: first peer ascending by id, skipping cacheID.
	for peerID := range s.caches {
		if peerID == cacheID {
			continue
		}

		j := locate(&s.caches[peerID], block)
		if j < 0 {
			continue
		}

		peerLine := &s.caches[peerID].Lines[j]
		if peerLine.State == Modified || peerLine.State == Exclusive {
			peerLine.State = Owned
		}
		// Owned and Shared peers are left unchanged.

		data := peerLine.Data

		fill(s, cacheID, c.FIFOIndex, block, data, Shared)
		advanceFIFO(c)

		return data[off], nil
	}

	// MM fill: no peer holds the block.
	data := s.mm[block]
	fill(s, cacheID, c.FIFOIndex, block, data, Exclusive)
	advanceFIFO(c)

	return data[off], nil
}
