package rangedata

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	group, ok := Lookup("978-85")
	require.True(t, ok)
	assert.Equal(t, "Brazil", group.Name)
	assert.NotEmpty(t, group.Ranges)

	_, ok = Lookup("978-")
	assert.False(t, ok)
	_, ok = Lookup("978-999999")
	assert.False(t, ok)
}

func TestTableWellFormed(t *testing.T) {
	require.NotZero(t, Count())

	for key, group := range groups {
		t.Run(key, func(t *testing.T) {
			gs1, rest, found := strings.Cut(key, "-")
			require.True(t, found)
			assert.Contains(t, []string{"978", "979"}, gs1)
			assert.NotEmpty(t, rest)
			assert.NotEmpty(t, group.Name)
			assert.NotEmpty(t, group.Ranges)

			// group digits plus the widest range must leave at least one
			// publication digit in the 9-digit body
			for _, r := range group.Ranges {
				assert.Len(t, r.High, len(r.Low))
				assert.LessOrEqual(t, len(rest)+len(r.Low), 8)

				low, err := strconv.Atoi(r.Low)
				require.NoError(t, err)
				high, err := strconv.Atoi(r.High)
				require.NoError(t, err)
				assert.LessOrEqual(t, low, high)
			}
		})
	}
}
