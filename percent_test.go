package urlview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateHostPercentEncoding(t *testing.T) {
	t.Run("no percent is always fine", func(t *testing.T) {
		require.NoError(t, validateHostPercentEncoding([]byte("example.com"), false))
		require.NoError(t, validateHostPercentEncoding([]byte("example.com"), true))
	})

	t.Run("well-formed escape passes", func(t *testing.T) {
		require.NoError(t, validateHostPercentEncoding([]byte("ex%41mple.com"), false))
	})

	t.Run("truncated escape fails", func(t *testing.T) {
		err := validateHostPercentEncoding([]byte("example%4"), false)
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, ErrBadPercentEncodingKind, pe.Kind())
	})

	t.Run("non-hex digit after percent fails", func(t *testing.T) {
		err := validateHostPercentEncoding([]byte("example%4z"), false)
		require.Error(t, err)
	})

	t.Run("zone-id waiver applies when percent and colon coexist, by default", func(t *testing.T) {
		require.NoError(t, validateHostPercentEncoding([]byte("fe80::1%eth0"), false))
	})

	t.Run("strict mode re-enables validation even with a colon present", func(t *testing.T) {
		err := validateHostPercentEncoding([]byte("fe80::1%eth0"), true)
		require.Error(t, err)
	})

	t.Run("strict mode still passes a well-formed escape alongside a colon", func(t *testing.T) {
		require.NoError(t, validateHostPercentEncoding([]byte("fe80::1%41:8080"), true))
	})
}
