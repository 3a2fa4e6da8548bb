// Package llurl implements a high-throughput, zero-copy URL parser.
//
// Parse consumes a byte slice and produces a UrlView: a set of
// (offset, length) pairs into the original buffer identifying each URL
// component (scheme, userinfo, host, port, path, query, fragment), plus a
// decoded numeric port. No component is copied, normalized, decoded, or
// otherwise constructed — the caller owns the buffer and the view's
// validity is tied to the buffer's lifetime.
//
// The parser also supports an authority-only mode used for HTTP CONNECT
// targets, where the input is a bare "host[:port]" and a port is required.
//
// Basic usage:
//
//	buf := []byte("https://user@example.com:8080/path?q=1#frag")
//	view, err := llurl.Parse(buf, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	off, n, ok := view.Field(llurl.FieldHost)
//	if ok {
//	    fmt.Println(string(buf[off : off+n])) // "example.com"
//	}
//
// CONNECT-target usage:
//
//	view, err := llurl.Parse([]byte("example.com:443"), llurl.AuthorityOnly)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(view.Port) // 443
//
// Performance characteristics:
//   - The input buffer is never copied. Each call heap-allocates the
//     *UrlView it returns (or the *ParseError it returns on failure).
//   - Running time is linear in input length.
//   - Safe for concurrent use: Parse is a pure function over its inputs,
//     and the only mutable state it touches is the fresh UrlView it
//     allocates and returns.
//
// Limitations (by design, not oversight):
//   - No URL construction, normalization, percent-decoding, or IDN/punycode.
//   - No Unicode hostnames; bytes >= 0x80 are rejected except inside an
//     IPv6 zone-id tail.
//   - Not a full RFC 3986 implementation: host characters are slightly
//     more permissive, and authority shapes are slightly stricter. See
//     the per-function documentation for the exact grammar.
package llurl
