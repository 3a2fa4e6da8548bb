//go:build amd64

package llurl

import "golang.org/x/sys/cpu"

// swarPreferred mirrors the teacher's hasAVX2-style CPU-feature gate
// (simd/memchr_amd64.go) for deciding whether the 8-bytes-at-a-time SWAR
// scan is worth its setup cost over a scalar byte loop. SSE2 is baseline
// on amd64, so this is true on effectively every real amd64 machine; the
// gate exists so the decision is an explicit, documented one rather than
// an unconditional assumption.
var swarPreferred = cpu.X86.HasSSE2
