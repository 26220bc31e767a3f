// Package urlview implements a high-throughput, zero-copy URL parser.
//
// Parse consumes a byte buffer and produces a UrlView: a structured
// decomposition that records, for each recognized URL component, the byte
// offset and length of that component within the *caller's own* buffer.
// No component bytes are copied, decoded, or normalized; the input is
// never mutated.
//
//	foo://example.com:8042/over/there?name=ferret#nose
//	\_/   \______________/\_________/ \_________/ \__/
//	 |           |            |            |        |
//	scheme     authority      path        query   fragment
//
// The grammar recognized is derived from RFC 3986, with pragmatic
// extensions and restrictions: host characters are slightly more
// permissive than RFC 3986's reg-name, and authority shapes are slightly
// stricter (at most one "@" in the authority, and a "#" is accepted only
// after a path or query, not directly after the authority). An empty host
// is rejected only when "//" (or the start of authority-only input) is
// followed directly by "/", "?", "#" or the end of input; an empty host
// after "@" or before ":port" is accepted. By default a host containing both "%" and ":" is
// taken as an IPv6 literal with a zone id and its percent-encoding is not
// validated; WithStrictIPv6Zone turns that tolerance off.
//
// Parse also supports an authority-only mode used to recognize HTTP
// CONNECT request targets ("host:port", port required, no path/query/
// fragment).
//
// The parser is a pure function of its inputs: it allocates nothing on
// the hot path, holds no mutable package state beyond read-only lookup
// tables initialized once at program load and a sync.Pool that recycles
// option values when options are passed, and is safe to call
// concurrently from any number of goroutines against disjoint buffers.
package urlview
