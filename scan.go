package llurl

import (
	"encoding/binary"
	"math/bits"
)

// findHash returns the index of the first '#' in haystack, or -1.
//
// This is the memchr-style batch scan spec §4.6 requires for the query
// state ("a fast memchr-style find of '#' within the remaining bytes").
// On small inputs, or when swarPreferred is false, it falls back to a
// scalar loop; otherwise it uses the same SWAR (SIMD Within A Register)
// technique as the teacher's simd.Memchr (simd/memchr_generic_impl.go),
// processing 8 bytes at a time via uint64 zero-byte detection.
func findHash(haystack []byte) int {
	return findByte(haystack, '#')
}

func findByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}
	if n < 8 || !swarPreferred {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101
	const lo8 = uint64(0x0101010101010101)
	const hi8 = uint64(0x8080808080808080)

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ needleMask
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for i < n {
		if haystack[i] == needle {
			return i
		}
		i++
	}
	return -1
}

// firstInvalid returns the index within buf[start:end] (relative to
// start) of the first byte whose DFA class is classInvalid, or -1 if
// every byte in the range is valid. This backs the dense in-place
// validation spec §4.6 requires in the path/query/fragment states,
// grounded on the scalar membership-table scan in
// nfa/charclass_searcher.go's Search/IsMatch (a 256-entry lookup table
// checked byte-by-byte has no batching win beyond what findByte already
// buys for the single-byte delimiter search).
func firstInvalid(buf []byte, start, end int) int {
	for i := start; i < end; i++ {
		if classOf[buf[i]] == classInvalid {
			return i - start
		}
	}
	return -1
}

// scanUserinfoRun advances from i while the bytes at depth 0 are
// USERINFO bytes other than the authority terminators '@ [ : / ? #'.
// It returns the index just past the run. If it encounters a byte that
// is neither a terminator nor a USERINFO byte, it returns -1 (spec
// §4.6: "encountering any non-USERINFO byte during the scan is a
// failure").
func scanUserinfoRun(buf []byte, i int) int {
	n := len(buf)
	for i < n {
		b := buf[i]
		switch b {
		case '@', '[', ':', '/', '?', '#':
			return i
		}
		if !isUserinfoByte(b) {
			return -1
		}
		i++
	}
	return i
}
