package urlview

import "sync"

// Option allows tuning Parse's single tolerance axis left open by
// spec.md §9: whether the IPv6-zone-id percent-encoding waiver (C5) is
// applied.
//
// Grounded on the teacher's options.go functional-options/pool pattern,
// narrowed to this one axis — see DESIGN.md for the other axes the
// teacher exposes that have no equivalent in this spec.
type Option func(*options)

type options struct {
	strictIPv6Zone bool
}

var packageLevelDefaults = options{
	strictIPv6Zone: false,
}

var poolOfOptions = sync.Pool{
	New: func() any {
		o := packageLevelDefaults
		return &o
	},
}

// applyOptions borrows (or shares) an *options value with opts applied.
// With no opts it returns the shared package-level defaults directly, so
// the common case (no options passed) allocates nothing.
func applyOptions(opts []Option) (*options, func(*options)) {
	if len(opts) == 0 {
		return &packageLevelDefaults, func(*options) {}
	}

	o := poolOfOptions.Get().(*options)
	*o = packageLevelDefaults
	for _, apply := range opts {
		apply(o)
	}

	return o, redeemOptions
}

func redeemOptions(o *options) {
	if o == &packageLevelDefaults {
		return
	}
	poolOfOptions.Put(o)
}

// WithStrictIPv6Zone controls whether a host containing both "%" and ":"
// (spec.md §4.5/§9's IPv6-zone-id heuristic) still gets its percent-
// encoding validated hex-pair-by-hex-pair (enabled=true), instead of the
// default tolerant waiver (enabled=false).
func WithStrictIPv6Zone(enabled bool) Option {
	return func(o *options) {
		o.strictIPv6Zone = enabled
	}
}
