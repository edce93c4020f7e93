package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRuns_Coalesces(t *testing.T) {
	data := []byte("AAAAABBBBBCCCCC")
	table := BuildTable(data)

	runs := BuildRuns(data, table)
	require.Len(t, runs, 3)
	require.Equal(t, Run{Index: 0, Length: 5}, runs[0]) // 'A'
	require.Equal(t, Run{Index: 1, Length: 5}, runs[1]) // 'B'
	require.Equal(t, Run{Index: 2, Length: 5}, runs[2]) // 'C'
}

func TestBuildRuns_Empty(t *testing.T) {
	require.Nil(t, BuildRuns(nil, Table{}))
}

func TestBuildRuns_SingleValue(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 100)
	table := BuildTable(data)

	runs := BuildRuns(data, table)
	require.Len(t, runs, 1)
	require.Equal(t, Run{Index: 0, Length: 100}, runs[0])
}

func TestBuildRuns_SplitsLongRuns(t *testing.T) {
	// A run of 65536 identical values must split into two records.
	data := bytes.Repeat([]byte{0x07}, MaxRunLength+1)
	table := BuildTable(data)

	runs := BuildRuns(data, table)
	require.Len(t, runs, 2)
	require.Equal(t, Run{Index: 0, Length: MaxRunLength}, runs[0])
	require.Equal(t, Run{Index: 0, Length: 1}, runs[1])
}

func TestBuildRuns_NoAdjacentRepeats(t *testing.T) {
	data := []byte{1, 2, 3, 1, 2, 3}
	table := BuildTable(data)

	runs := BuildRuns(data, table)
	require.Len(t, runs, 6)
	total := 0
	for _, r := range runs {
		require.Equal(t, uint16(1), r.Length)
		total += int(r.Length)
	}
	require.Equal(t, len(data), total)
}
