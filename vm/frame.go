package vm

import "encoding/binary"

// frame is a typed view over one 128-byte register snapshot living inside
// the stack buffer. It never copies the underlying bytes: Get/Set read and
// write directly through to the stack, so writes through one frame are
// immediately visible to anyone holding the same base offset.
//
// This is the "arena + byte offset" strategy: the stack is one byte buffer,
// and the active register set is just (stack, base) reinterpreting 128
// bytes as sixteen 64-bit slots.
type frame struct {
	stack []byte
	base  int
}

func (f frame) slot(idx int) []byte {
	off := f.base + idx*8
	return f.stack[off : off+8]
}

func (f frame) Get(idx int) int64 {
	return int64(binary.LittleEndian.Uint64(f.slot(idx)))
}

func (f frame) Set(idx int, v int64) {
	binary.LittleEndian.PutUint64(f.slot(idx), uint64(v))
}

// bottomFrame is the frame header occupying the first 128 bytes of the
// stack, the one active at startup and the one whose RP == 0 sentinel
// marks clean termination on RET.
func bottomFrame(stack []byte) frame {
	return frame{stack: stack, base: 0}
}

// frameAt reinterprets the 128 bytes ending with the given RB-style "first
// byte after the snapshot" value as a frame header.
func frameAt(stack []byte, rb int64) frame {
	return frame{stack: stack, base: int(rb) - FrameHeaderSize}
}
