package urlview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("no options shares the package-level defaults and allocates nothing new", func(t *testing.T) {
		o, redeem := applyOptions(nil)
		defer redeem(o)

		require.Same(t, &packageLevelDefaults, o)
		require.False(t, o.strictIPv6Zone)
	})

	t.Run("WithStrictIPv6Zone toggles the waiver", func(t *testing.T) {
		o, redeem := applyOptions([]Option{WithStrictIPv6Zone(true)})
		defer redeem(o)

		require.True(t, o.strictIPv6Zone)
		require.NotSame(t, &packageLevelDefaults, o)
	})

	t.Run("redeeming a borrowed options value does not affect subsequent calls", func(t *testing.T) {
		o1, redeem1 := applyOptions([]Option{WithStrictIPv6Zone(true)})
		redeem1(o1)

		o2, redeem2 := applyOptions(nil)
		defer redeem2(o2)
		require.False(t, o2.strictIPv6Zone)
	})
}
