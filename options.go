package llurl

// Options controls optional strictness knobs for Parse. The zero value
// (Options{}) reproduces the default, historically-compatible behavior;
// callers only need this type when they want to opt into the stricter
// mode spec §9 calls out as an allowed variation.
//
// Grounded on the teacher's documented-default Config struct
// (meta/config.go): each field documents its own default so a caller
// can read the struct definition instead of a separate table.
type Options struct {
	// StrictHostPercentEncoding disables the IPv6-zone-id waiver in the
	// host percent-encoding validator (C5, spec §4.5): when true, every
	// '%' in the host must be followed by two hex digits even if the
	// host also contains ':'. Default: false, which preserves the
	// historical tolerance for literals like "fe80::1%eth0".
	StrictHostPercentEncoding bool
}
