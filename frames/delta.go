package frames

// computeDelta compares cur against ref and returns the positions whose
// values differ, together with the new value at each position. Positions
// beyond the reference length (when cur is longer) count as changed.
//
// Positions are produced in ascending order; applying values[i] at
// positions[i] on top of ref and trimming to len(cur) reproduces cur.
func computeDelta(ref, cur []byte) (positions []uint32, values []byte) {
	for i, v := range cur {
		if i >= len(ref) || ref[i] != v {
			positions = append(positions, uint32(i))
			values = append(values, v)
		}
	}

	return positions, values
}

// applyDelta overwrites a copy of ref at the given positions and returns it.
// Every position must be within the reference length; the caller validates
// that before calling.
func applyDelta(ref []byte, positions []uint32, values []byte) []byte {
	out := make([]byte, len(ref))
	copy(out, ref)
	for i, p := range positions {
		out[p] = values[i]
	}

	return out
}
