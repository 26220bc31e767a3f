package urlview

import (
	"hash/crc64"
)

// Scheme literal-prefix fast path.
//
// Adapted from the teacher's dns.go hashDNSHostValidation technique: hash
// the candidate bytes and look the digest up in a small precomputed map.
// Unlike the teacher's dns.go, this uses the stateless
// crc64.Checksum(b, table) entry point directly against the candidate
// sub-slice of buf, rather than a shared hash.Hash64 instance fed via
// Reset/Write — Parse is documented (spec.md §5) as safe to call
// concurrently against disjoint buffers, and a package-level Hash64
// mutated on every call would race across goroutines. The table itself
// is read-only after init and safe to share.
//
// Repurposed here from "does this scheme use DNS validation" to "does buf
// start with one of the literal scheme prefixes spec.md §4.6 calls out as
// an optimization" — any scheme not matching one of these five literals
// falls back to the general scheme DFA state, per spec.md §9 ("a pure DFA
// over the scheme state is ... the fallback for any other scheme").
var schemeCRCTable = crc64.MakeTable(crc64.ISO)

type schemeFastPath struct {
	digest  uint64
	length  int    // length of the scheme bytes, excluding the trailing ':'
	literal string // the scheme bytes themselves, for the byte re-check
}

var schemeFastPaths map[uint64]schemeFastPath

func init() {
	schemeFastPaths = make(map[uint64]schemeFastPath, 8)
	for _, scheme := range []string{"http", "https", "ftp", "ws", "wss"} {
		k := hashBytes([]byte(scheme))
		schemeFastPaths[k] = schemeFastPath{digest: k, length: len(scheme), literal: scheme}
	}
}

func hashBytes(b []byte) uint64 {
	return crc64.Checksum(b, schemeCRCTable)
}

// matchSchemeFastPath reports whether buf begins with "<scheme>:" for one
// of the literal fast-path schemes, returning the index just past the
// ':' on success. It only ever returns a match when the bytes before ':'
// are byte-for-byte one of the known literals (the hash is a lookup key,
// not proof — matchSchemeFastPath still compares length and falls back to
// returning false if the map lookup is a digest collision on different
// bytes, which the explicit length+byte re-check below guards against).
func matchSchemeFastPath(buf []byte) (schemeEnd int, ok bool) {
	colon := -1
	limit := len(buf)
	if limit > 6 {
		limit = 6 // "https:" is the longest fast-path literal, 6 bytes
	}
	for i := 0; i < limit; i++ {
		if buf[i] == ':' {
			colon = i
			break
		}
		if !isAlphaByte(buf[i]) {
			return 0, false
		}
	}
	if colon <= 0 {
		return 0, false
	}

	candidate := buf[:colon]
	k := hashBytes(candidate)
	fp, found := schemeFastPaths[k]
	if !found || fp.length != len(candidate) || string(candidate) != fp.literal {
		return 0, false
	}

	return colon + 1, true
}
