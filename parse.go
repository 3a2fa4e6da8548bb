package llurl

// pstate enumerates the DFA states of C2 (spec §4.2). server_start is
// not its own loop state here: entering it is an instantaneous check
// (enterServer) performed at the three points control can transition
// into it, so the loop itself only ever sees server onward.
type pstate uint8

const (
	stScheme pstate = iota
	stSchemeSlash
	stSchemeSlashSlash
	stServer
	stServerWithAt
	stPath
	stQueryOrFragment
	stQuery
	stFragment
)

// AuthorityOnly selects Parse's CONNECT-target mode (spec §6): the input
// is a bare "host[:port]" with a required port and no scheme, path,
// query, or fragment.
const AuthorityOnly = true

// Parse decomposes buf into a UrlView. authorityOnly selects the
// HTTP CONNECT authority-only grammar (pass llurl.AuthorityOnly); pass
// false for the ordinary absolute/scheme-relative/path-relative
// grammars.
func Parse(buf []byte, authorityOnly bool) (*UrlView, error) {
	return ParseWithOptions(buf, authorityOnly, Options{})
}

// ParseString is Parse over a string, for callers who don't already
// hold a []byte. It allocates one copy of s, since UrlView's spans are
// only meaningful against the exact buffer Parse is called with.
func ParseString(s string, authorityOnly bool) (*UrlView, error) {
	return Parse([]byte(s), authorityOnly)
}

// ParseWithOptions is Parse with explicit Options; see Options for the
// knobs it exposes.
func ParseWithOptions(buf []byte, authorityOnly bool, opts Options) (*UrlView, error) {
	n := len(buf)
	if n == 0 {
		return nil, parseErr(0, ErrEmptyInput)
	}

	v := &UrlView{}

	var (
		state      pstate
		field      FieldTag
		hasField   bool
		fieldStart int
		auth       authorityInfo
	)

	i := 0

	if authorityOnly {
		if perr := enterServer(buf, 0); perr != nil {
			return nil, perr
		}
		field, hasField, fieldStart, state = FieldHost, true, 0, stServer
	} else {
		switch {
		case buf[0] == '/' && n >= 2 && buf[1] == '/':
			if perr := enterServer(buf, 2); perr != nil {
				return nil, perr
			}
			field, hasField, fieldStart, state = FieldHost, true, 2, stServer
			i = 2
		case buf[0] == '/' || buf[0] == '*':
			field, hasField, fieldStart, state = FieldPath, true, 0, stPath
		case classOf[buf[0]] == classAlpha:
			if litLen, ok := matchSchemeFastPath(buf); ok {
				v.setField(FieldScheme, 0, litLen-1)
				i = litLen
				state = stSchemeSlash
			} else {
				field, hasField, fieldStart, state = FieldScheme, true, 0, stScheme
			}
		default:
			return nil, parseErr(0, ErrBadStart)
		}
	}

	for i < n {
		switch state {

		case stScheme:
			switch classOf[buf[i]] {
			case classAlpha, classDigit, classDot, classDash, classPlus:
				i++
			case classColon:
				v.setField(FieldScheme, fieldStart, i-fieldStart)
				hasField = false
				state = stSchemeSlash
				i++
			default:
				return nil, parseErr(i, ErrBadScheme)
			}

		case stSchemeSlash:
			if buf[i] != '/' {
				return nil, parseErr(i, ErrSchemeWithoutAuthority)
			}
			state = stSchemeSlashSlash
			i++

		case stSchemeSlashSlash:
			if buf[i] != '/' {
				return nil, parseErr(i, ErrSchemeWithoutAuthority)
			}
			if perr := enterServer(buf, i+1); perr != nil {
				return nil, perr
			}
			field, hasField, fieldStart, state = FieldHost, true, i+1, stServer
			i++

		case stServer, stServerWithAt:
			c := buf[i]
			switch {
			case c == '/':
				if perr := finalizeHost(v, buf, fieldStart, i, auth); perr != nil {
					return nil, perr
				}
				field, hasField, fieldStart, state = FieldPath, true, i, stPath

			case c == '?':
				if perr := finalizeHost(v, buf, fieldStart, i, auth); perr != nil {
					return nil, perr
				}
				field, hasField, fieldStart, state = FieldQuery, true, i+1, stQuery
				i++

			case c == '@':
				if state == stServerWithAt {
					return nil, parseErr(i, ErrDoubleAt)
				}
				if hasField && field == FieldHost {
					v.setField(FieldUserinfo, fieldStart, i-fieldStart)
				}
				field, hasField, fieldStart, state = FieldHost, true, i+1, stServerWithAt
				auth = authorityInfo{}
				i++

			case c == '[':
				next, perr := scanIPv6Literal(buf, i)
				if perr != nil {
					return nil, perr
				}
				i = next

			case c == ':':
				if !auth.sawColon {
					auth.sawColon = true
					auth.portStart = i + 1
				}
				i++

			default:
				if !isUserinfoByte(c) {
					return nil, parseErr(i, ErrBadHostChar)
				}
				end := scanUserinfoRun(buf, i)
				if end == -1 {
					return nil, parseErr(i, ErrBadHostChar)
				}
				i = end
			}

		case stPath:
			j := i
			for j < n {
				b := buf[j]
				if b == '?' || b == '#' {
					break
				}
				if classOf[b] == classInvalid {
					return nil, parseErr(j, ErrBadPathChar)
				}
				j++
			}
			v.setField(FieldPath, fieldStart, j-fieldStart)
			hasField = false
			i = j
			if i < n {
				state = stQueryOrFragment
			}

		case stQueryOrFragment:
			switch buf[i] {
			case '?':
				field, hasField, fieldStart, state = FieldQuery, true, i+1, stQuery
			case '#':
				field, hasField, fieldStart, state = FieldFragment, true, i+1, stFragment
			default:
				// Unreachable: this state is only entered with the
				// cursor sitting on the '?' or '#' that stPath just
				// broke on.
				return nil, parseErr(i, ErrBadPathChar)
			}
			i++

		case stQuery:
			rel := findHash(buf[i:])
			end := n
			if rel != -1 {
				end = i + rel
			}
			if bad := firstInvalid(buf, i, end); bad != -1 {
				return nil, parseErr(i+bad, ErrBadQueryChar)
			}
			v.setField(FieldQuery, fieldStart, end-fieldStart)
			hasField = false
			if rel == -1 {
				i = n
			} else {
				field, hasField, fieldStart, state = FieldFragment, true, end+1, stFragment
				i = end + 1
			}

		case stFragment:
			if bad := firstInvalid(buf, i, n); bad != -1 {
				return nil, parseErr(i+bad, ErrBadFragmentChar)
			}
			v.setField(FieldFragment, fieldStart, n-fieldStart)
			hasField = false
			i = n
		}
	}

	if hasField {
		switch field {
		case FieldHost:
			if perr := finalizeHost(v, buf, fieldStart, n, auth); perr != nil {
				return nil, perr
			}
		case FieldPath, FieldQuery, FieldFragment:
			v.setField(field, fieldStart, n-fieldStart)
		case FieldScheme:
			if !v.Present(FieldScheme) {
				v.setField(FieldScheme, fieldStart, n-fieldStart)
			}
		}
	}

	if authorityOnly {
		if state != stServer && state != stServerWithAt {
			return nil, parseErr(n, ErrConnectWithNonAuthority)
		}
		if !v.Present(FieldPort) {
			return nil, parseErr(n, ErrConnectWithoutPort)
		}
	} else if v.Present(FieldScheme) && !v.Present(FieldHost) {
		return nil, parseErr(n, ErrSchemeWithoutAuthority)
	}

	if off, hn, ok := v.Field(FieldHost); ok {
		if perr := validateHostPercentEncoding(buf, off, hn, opts.StrictHostPercentEncoding); perr != nil {
			return nil, perr
		}
	}

	return v, nil
}

// enterServer implements the entry check of the server_start state
// (spec §4.6): the byte at i must exist and must not be an authority
// delimiter, or the authority has an empty host. Every transition into
// server_start calls this directly, rather than relying on the main
// loop to re-visit a dedicated state, so that end-of-input is checked
// even when i == len(buf) already.
func enterServer(buf []byte, i int) *ParseError {
	if i >= len(buf) {
		return parseErr(i, ErrEmptyHost)
	}
	switch buf[i] {
	case '/', '?', '#':
		return parseErr(i, ErrEmptyHost)
	}
	return nil
}

// scanIPv6Literal consumes a bracketed IPv6 literal starting at buf[open]
// (buf[open] == '['), per the '[' transition of spec §4.6's server
// states. It returns the index just past the matching ']', or a
// *ParseError if the literal's bytes are invalid or the bracket is never
// closed. A '%' introduces a zone-id tail whose bytes are not further
// validated here; C5 applies the zone-id waiver to the host as a whole.
func scanIPv6Literal(buf []byte, open int) (next int, perr *ParseError) {
	n := len(buf)
	i := open + 1
	for i < n {
		b := buf[i]
		if b == ']' {
			return i + 1, nil
		}
		if b == '%' {
			for i < n && buf[i] != ']' {
				i++
			}
			if i >= n {
				return 0, parseErr(open, ErrUnclosedIPv6)
			}
			return i + 1, nil
		}
		if isHexByte(b) || b == ':' || b == '.' {
			i++
			continue
		}
		return 0, parseErr(i, ErrBadIPv6Char)
	}
	return 0, parseErr(open, ErrUnclosedIPv6)
}
