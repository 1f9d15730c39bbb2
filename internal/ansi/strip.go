// Package ansi removes terminal escape sequences from byte strings.
//
// The stripper recognizes the common ESC-introduced forms: CSI sequences
// (ESC [ params intermediates final, which covers SGR color/style codes),
// OSC sequences (ESC ] ... terminated by BEL or ST), and two-byte ESC
// sequences. Anything that does not parse as one of those forms is passed
// through unchanged rather than guessed at.
package ansi

const (
	esc = 0x1b
	bel = 0x07
)

// Strip returns in with terminal escape sequences removed. The input is
// never modified; the result is a fresh slice. Bytes that are not part of a
// recognized escape sequence are copied through untouched, including invalid
// UTF-8, so callers that need valid text must validate the result.
func Strip(in []byte) []byte {
	out := make([]byte, 0, len(in))

	for i := 0; i < len(in); {
		if in[i] != esc {
			out = append(out, in[i])
			i++
			continue
		}
		if i+1 >= len(in) {
			// Lone ESC at end of input: treated as an unterminated
			// sequence and dropped.
			break
		}

		switch in[i+1] {
		case '[':
			i = skipCSI(in, i+2)
		case ']':
			i = skipOSC(in, i+2)
		default:
			if in[i+1] >= 0x40 && in[i+1] <= 0x5f {
				// Two-byte ESC sequence (e.g. ESC D, ESC M).
				i += 2
			} else {
				// Not a recognized sequence: keep the ESC and continue.
				out = append(out, in[i])
				i++
			}
		}
	}

	return out
}

// skipCSI consumes a CSI body starting at i (just past "ESC [") and returns
// the index after the final byte. Parameter bytes are 0x30-0x3f,
// intermediate bytes 0x20-0x2f, and the final byte 0x40-0x7e. A byte outside
// those ranges aborts the sequence; the aborting byte is not consumed.
// An unterminated sequence consumes to end of input.
func skipCSI(in []byte, i int) int {
	for i < len(in) && in[i] >= 0x30 && in[i] <= 0x3f {
		i++
	}
	for i < len(in) && in[i] >= 0x20 && in[i] <= 0x2f {
		i++
	}
	if i < len(in) && in[i] >= 0x40 && in[i] <= 0x7e {
		i++
	}
	return i
}

// skipOSC consumes an OSC body starting at i (just past "ESC ]") and returns
// the index after the terminator: BEL, or the two-byte ST (ESC \).
// An unterminated sequence consumes to end of input.
func skipOSC(in []byte, i int) int {
	for i < len(in) {
		switch {
		case in[i] == bel:
			return i + 1
		case in[i] == esc && i+1 < len(in) && in[i+1] == '\\':
			return i + 2
		}
		i++
	}
	return i
}
