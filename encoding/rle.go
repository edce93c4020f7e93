package encoding

// MaxRunLength is the largest run a single RLE record can carry.
// Longer runs of identical symbols split into multiple records.
const MaxRunLength = 65535

// Run is one RLE record: a symbol index repeated Length times.
type Run struct {
	Index  uint16
	Length uint16
}

// BuildRuns coalesces consecutive equal symbol indices in data into runs,
// splitting any run longer than MaxRunLength.
//
// Every byte of data must be present in the table; BuildRuns is only called
// with the table built from the same buffer.
func BuildRuns(data []byte, t Table) []Run {
	if len(data) == 0 {
		return nil
	}

	runs := make([]Run, 0, 16)

	cur := t.IndexOf(data[0])
	length := 1
	flush := func() {
		for length > MaxRunLength {
			runs = append(runs, Run{Index: uint16(cur), Length: MaxRunLength})
			length -= MaxRunLength
		}
		if length > 0 {
			runs = append(runs, Run{Index: uint16(cur), Length: uint16(length)})
		}
	}

	for _, b := range data[1:] {
		idx := t.IndexOf(b)
		if idx == cur {
			length++
			continue
		}
		flush()
		cur = idx
		length = 1
	}
	flush()

	return runs
}
