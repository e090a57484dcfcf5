package interpose

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/arch/x86/x86asm"
)

const (
	opcodeCALLrel = 0xe8 // CALL rel32
	opcodeINT3    = 0xcc
	opcodeJMPrel  = 0xe9 // JMP rel32
	opcodeJMPshrt = 0xeb // JMP rel8
	opcodeIndir   = 0xff

	modRMCallRIP = 0x15 // CALL [RIP+disp32]
	modRMJmpRIP  = 0x25 // JMP [RIP+disp32]

	// Bytes overwritten at the target by an absolute jump.
	jumpSize = 14
	// Size of an absolute call.
	callSize = 16
)

var endbr64 = []byte{0xf3, 0x0f, 0x1e, 0xfa}

// absJump returns the x86-64 machine code equivalent of:
//
//	JMP [RIP+0]
//	.quad <dest>
func absJump(dest uintptr) []byte {
	buf := make([]byte, jumpSize)
	buf[0] = opcodeIndir
	buf[1] = modRMJmpRIP
	binary.LittleEndian.PutUint64(buf[6:], uint64(dest))
	return buf
}

// absCall returns the x86-64 machine code equivalent of:
//
//	CALL [RIP+2]
//	JMP  +8
//	.quad <dest>
func absCall(dest uintptr) []byte {
	buf := make([]byte, callSize)
	buf[0] = opcodeIndir
	buf[1] = modRMCallRIP
	binary.LittleEndian.PutUint32(buf[2:], 2)
	buf[6] = opcodeJMPshrt
	buf[7] = 8
	binary.LittleEndian.PutUint64(buf[8:], uint64(dest))
	return buf
}

// relocate copies whole instructions from the start of code until at least
// need bytes are covered, translating them to run from dest instead of src.
// code is the machine code found at src.
//
// It returns the translated instructions and the number of bytes taken from
// code.
func relocate(code []byte, src, dest uintptr, need int) ([]byte, int, error) {
	out := make([]byte, 0, 4*need)

	i := 0
	for i < need {
		if i >= len(code) {
			return nil, 0, errors.New("function too short to patch")
		}

		if bytes.HasPrefix(code[i:], endbr64) {
			out = append(out, endbr64...)
			i += len(endbr64)
			continue
		}

		inst, err := x86asm.Decode(code[i:], 64)
		if err != nil {
			return nil, 0, fmt.Errorf("decode error at offset %d: %w", i, err)
		}
		raw := code[i : i+inst.Len]

		// Addresses of the next instruction, which relative operands
		// count from.
		srcNext := src + uintptr(i+inst.Len)
		destNext := dest + uintptr(len(out)+inst.Len)

		switch {
		case raw[0] == opcodeINT3, inst.Op == x86asm.RET, inst.Op == x86asm.LRET, inst.Op == x86asm.UD2:
			return nil, 0, fmt.Errorf("unable to move %q at offset %d: function ends too soon", inst, i)
		}

		if rel, ok := relArg(inst); ok {
			absDest := uintptr(int64(srcNext) + int64(rel))
			if inst.Len == 5 {
				switch raw[0] {
				case opcodeCALLrel:
					out = append(out, absCall(absDest)...)
					i += inst.Len
					continue
				case opcodeJMPrel:
					out = append(out, absJump(absDest)...)
					i += inst.Len
					continue
				}
			}
			return nil, 0, fmt.Errorf("unable to move %q at offset %d: relative branch", inst, i)
		}

		if mem, ok := ripArg(inst); ok {
			disp := ripDisp(mem)
			off, err := ripDispOffset(raw, disp)
			if err != nil {
				return nil, 0, fmt.Errorf("unable to move %q at offset %d: %w", inst, i, err)
			}

			newDisp := int64(srcNext) + disp - int64(destNext)
			if newDisp < math.MinInt32 || newDisp > math.MaxInt32 {
				return nil, 0, fmt.Errorf("unable to move %q at offset %d: relative address out of range", inst, i)
			}

			start := len(out)
			out = append(out, raw...)
			binary.LittleEndian.PutUint32(out[start+off:], uint32(int32(newDisp)))
			i += inst.Len
			continue
		}

		out = append(out, raw...)
		i += inst.Len
	}

	return out, i, nil
}

func relArg(inst x86asm.Inst) (x86asm.Rel, bool) {
	for _, arg := range inst.Args {
		if rel, ok := arg.(x86asm.Rel); ok {
			return rel, true
		}
	}
	return 0, false
}

func ripArg(inst x86asm.Inst) (x86asm.Mem, bool) {
	for _, arg := range inst.Args {
		if mem, ok := arg.(x86asm.Mem); ok && mem.Base == x86asm.RIP {
			return mem, true
		}
	}
	return x86asm.Mem{}, false
}

// ripDisp returns the signed displacement of a RIP-relative operand.
// x86asm reports disp32 zero-extended.
func ripDisp(mem x86asm.Mem) int64 {
	return int64(int32(mem.Disp))
}

// ripDispOffset finds the 32-bit displacement of a RIP-relative instruction.
// In that mode the displacement directly follows the ModRM byte.
func ripDispOffset(raw []byte, disp int64) (int, error) {
	i := 0
	for i < len(raw) && isLegacyPrefix(raw[i]) {
		i++
	}
	if i < len(raw) && raw[i]&0xf0 == 0x40 {
		i++ // REX
	}
	if i+1 >= len(raw) {
		return 0, errors.New("truncated instruction")
	}

	switch raw[i] {
	case 0xc5:
		i += 3 // 2-byte VEX, opcode
	case 0xc4:
		i += 4 // 3-byte VEX, opcode
	case 0x0f:
		if raw[i+1] == 0x38 || raw[i+1] == 0x3a {
			i += 3
		} else {
			i += 2
		}
	default:
		i++
	}

	if i+5 > len(raw) || raw[i]&0xc7 != 0x05 {
		return 0, errors.New("unable to locate displacement")
	}

	off := i + 1
	if int64(int32(binary.LittleEndian.Uint32(raw[off:]))) != disp {
		return 0, errors.New("unable to locate displacement")
	}
	return off, nil
}

func isLegacyPrefix(b byte) bool {
	switch b {
	case 0x66, 0x67, 0xf0, 0xf2, 0xf3, 0x2e, 0x36, 0x3e, 0x26, 0x64, 0x65:
		return true
	}
	return false
}

// jumpPatch returns the bytes written over the first n bytes of a hooked
// function: an absolute jump to dest padded with INT3.
func jumpPatch(dest uintptr, n int) []byte {
	buf := absJump(dest)
	for len(buf) < n {
		buf = append(buf, opcodeINT3)
	}
	return buf
}

// movedListing lists the instructions moved out of the prologue at src, one
// per line, marking the ones relocate rewrites.
func movedListing(code []byte, src uintptr) (string, error) {
	var buf bytes.Buffer

	for i := 0; i < len(code); {
		addr := src + uintptr(i)
		if bytes.HasPrefix(code[i:], endbr64) {
			fmt.Fprintf(&buf, "%#x	% x	ENDBR64\n", addr, endbr64)
			i += len(endbr64)
			continue
		}

		inst, err := x86asm.Decode(code[i:], 64)
		if err != nil {
			return "", fmt.Errorf("decode error at offset %d: %w", i, err)
		}

		note := ""
		if _, ok := relArg(inst); ok {
			note = "\t; made absolute"
		} else if _, ok := ripArg(inst); ok {
			note = "\t; displacement adjusted"
		}
		fmt.Fprintf(&buf, "%#x\t% x\t%s%s\n", addr, code[i:i+inst.Len], inst, note)

		i += inst.Len
	}

	return buf.String(), nil
}
