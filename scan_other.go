//go:build !amd64

package llurl

// swarPreferred has no CPU-feature signal to read on non-amd64
// platforms, so the SWAR scan (findByte in scan.go) is used
// unconditionally; it is plain Go and correct everywhere, just not
// gated behind a feature flag here.
var swarPreferred = true
