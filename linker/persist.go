package linker

import (
	"encoding/binary"

	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/options"
)

// vasmHeader is the literal ASCII prefix written before the binary
// when a target's Context.VasmHeader is set.
const vasmHeader = "compiled using volt assembler(VASM)"

// Persist serializes buf to its on-disk byte form, honoring endian for
// any element wider than one byte.
func Persist[W codegen.Width](buf []W, endian options.Endian, vasmHeaderEnabled bool) []byte {
	out := make([]byte, 0, len(buf)+len(vasmHeader))
	if vasmHeaderEnabled {
		out = append(out, vasmHeader...)
	}
	for _, elem := range buf {
		out = appendElement(out, elem, endian)
	}
	return out
}

func appendElement[W codegen.Width](out []byte, elem W, endian options.Endian) []byte {
	switch v := any(elem).(type) {
	case int8:
		return append(out, byte(v))
	case uint8:
		return append(out, v)
	case int32:
		return appendUint32(out, uint32(v), endian)
	case uint32:
		return appendUint32(out, v, endian)
	default:
		return out
	}
}

func appendUint32(out []byte, v uint32, endian options.Endian) []byte {
	var b [4]byte
	if endian == options.BigEndian {
		binary.BigEndian.PutUint32(b[:], v)
	} else {
		binary.LittleEndian.PutUint32(b[:], v)
	}
	return append(out, b[:]...)
}
