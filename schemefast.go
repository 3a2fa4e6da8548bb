package llurl

import "github.com/coregx/ahocorasick"

// schemeLiterals are the literal scheme prefixes spec §4.6/§9 singles
// out for a fast path; any other ALPHA-led scheme falls back to the
// byte-by-byte scheme DFA in parse.go. §9 notes the fast path is
// "strictly an optimization" and the generic DFA "MUST be the fallback"
// for every other scheme — schemeAutomaton.Find never changes the set
// of accepted inputs, only how quickly these five are recognized.
var schemeLiterals = []string{"http:", "https:", "ftp:", "ws:", "wss:"}

// schemeAutomaton recognizes schemeLiterals with a single Aho-Corasick
// pass instead of five hand-written bytes.HasPrefix checks, grounded on
// the teacher's own use of github.com/coregx/ahocorasick for multi-literal
// recognition (meta/compile.go's "large literal alternations" automaton).
var schemeAutomaton *ahocorasick.Automaton

func init() {
	builder := ahocorasick.NewBuilder()
	for _, lit := range schemeLiterals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		// The pattern set is a fixed, small literal list known at
		// compile time; a build failure here would mean the
		// ahocorasick package itself is broken, not that the input
		// is bad. Fall back to the scheme DFA for every input rather
		// than panic at package init.
		schemeAutomaton = nil
		return
	}
	schemeAutomaton = auto
}

// matchSchemeFastPath reports whether buf begins with one of
// schemeLiterals, and if so returns the length of the matched literal
// (including the trailing ':'). ok is false if no fast-path literal
// matches at offset 0, in which case the caller must fall back to the
// generic scheme DFA.
func matchSchemeFastPath(buf []byte) (litLen int, ok bool) {
	if schemeAutomaton == nil {
		return 0, false
	}
	m := schemeAutomaton.Find(buf, 0)
	if m == nil || m.Start != 0 {
		return 0, false
	}
	return m.End, true
}
