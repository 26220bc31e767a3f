package urlview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchSchemeFastPath(t *testing.T) {
	t.Run("matches each literal fast-path scheme", func(t *testing.T) {
		for _, tc := range []struct {
			in   string
			want int
		}{
			{"http://example.com", 5},
			{"https://example.com", 6},
			{"ftp://example.com", 4},
			{"ws://example.com", 3},
			{"wss://example.com", 4},
		} {
			end, ok := matchSchemeFastPath([]byte(tc.in))
			require.Truef(t, ok, "expected %q to match", tc.in)
			require.Equal(t, tc.want, end)
			require.Equal(t, byte(':'), tc.in[end-1])
		}
	})

	t.Run("falls back for an unknown scheme", func(t *testing.T) {
		_, ok := matchSchemeFastPath([]byte("gopher://example.com"))
		require.False(t, ok)
	})

	t.Run("falls back when there is no colon within the lookahead window", func(t *testing.T) {
		_, ok := matchSchemeFastPath([]byte("averylongschemewithnocolonanywhereinit"))
		require.False(t, ok)
	})

	t.Run("falls back on a non-alpha byte before the colon", func(t *testing.T) {
		_, ok := matchSchemeFastPath([]byte("ht1p://example.com"))
		require.False(t, ok)
	})

	t.Run("is byte-exact, not just a length+hash coincidence", func(t *testing.T) {
		_, ok := matchSchemeFastPath([]byte("httpx://example.com"))
		require.False(t, ok)
	})

	t.Run("hashBytes is stateless across concurrent-shaped interleaved calls", func(t *testing.T) {
		a := hashBytes([]byte("http"))
		_ = hashBytes([]byte("https"))
		b := hashBytes([]byte("http"))
		require.Equal(t, a, b)
	})
}
