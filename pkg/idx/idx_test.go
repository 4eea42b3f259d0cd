package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[ID]struct{}, n)
	var prev ID
	for i := 0; i < n; i++ {
		id := New()
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}

		if !prev.IsZero() {
			require.LessOrEqual(t, prev.String(), id.String(),
				"ids should be monotonically ordered")
		}
		prev = id
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.Equal(t, time.UTC, id.Time().Location())
}

func TestParse(t *testing.T) {
	t.Parallel()

	valid := New().String()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid ulid", valid, false},
		{"valid with whitespace", "  " + valid + "  ", false},
		{"empty", "", true},
		{"garbage", "not-a-ulid", true},
		{"too short", "01ARZ3NDEKTSV", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.False(t, id.IsZero())
		})
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustParse("nope") })
	require.NotPanics(t, func() { MustParse(New().String()) })
}
