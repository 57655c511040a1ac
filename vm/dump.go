package vm

import (
	"fmt"
	"strings"
)

// DumpText renders the text segment as offset-prefixed hex rows, in the
// spirit of the original implementation's hex() diagnostic dump.
func DumpText(text []byte) string {
	return hexDump(text, 0, len(text))
}

// DumpStack renders stack bytes in [from, to) the same way, for inspecting
// the live frame chain around RB/RS in the debugger.
func DumpStack(stack []byte, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(stack) {
		to = len(stack)
	}
	return hexDump(stack, from, to)
}

func hexDump(buf []byte, from, to int) string {
	var b strings.Builder
	const width = 16
	for off := from; off < to; off += width {
		end := off + width
		if end > to {
			end = to
		}
		fmt.Fprintf(&b, "%08x  ", off)
		for i := off; i < off+width; i++ {
			if i < end {
				fmt.Fprintf(&b, "%02x ", buf[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
