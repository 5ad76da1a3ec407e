// Package code is the embryonic bytecode format mentioned as a future
// direction: a single opcode, OpConstant, encoding a 16-bit big-endian
// index into a constant pool. It is not wired into the interpreter
// pipeline — lexer/parser/eval is the only execution path cmd/monkey
// drives — and exists purely as a documented stub, the same role it plays
// in the system this was modeled on.
//
// Instruction layout, grounded on the opcode/instruction split of a
// stack-based bytecode VM: one byte of opcode followed by the operand.
// OpConstant's operand is a constant-pool index, wide enough for 65536
// entries.
package code

import "encoding/binary"

// Opcode identifies a bytecode instruction.
type Opcode byte

const (
	// OpConstant pushes Constants[operand] onto the (not-yet-implemented)
	// VM stack. Operand: 16-bit big-endian constant pool index.
	OpConstant Opcode = iota
)

func (op Opcode) String() string {
	switch op {
	case OpConstant:
		return "OpConstant"
	default:
		return "OpUnknown"
	}
}

// Instructions is a flat, densely packed byte sequence: [opcode, operand...].
type Instructions []byte

// MaxConstantIndex is the largest constant-pool index a 16-bit operand can
// address.
const MaxConstantIndex = 1<<16 - 1

// MakeConstant encodes an OpConstant instruction addressing constantIndex.
// It returns an error-free nil if the index does not fit in 16 bits —
// there is no VM to report the failure to, so the caller must check the
// index against MaxConstantIndex itself before calling this.
func MakeConstant(constantIndex int) Instructions {
	if constantIndex < 0 || constantIndex > MaxConstantIndex {
		return nil
	}
	ins := make([]byte, 3)
	ins[0] = byte(OpConstant)
	binary.BigEndian.PutUint16(ins[1:3], uint16(constantIndex))
	return ins
}

// ReadConstantIndex decodes the operand of an OpConstant instruction at the
// start of ins.
func ReadConstantIndex(ins Instructions) uint16 {
	return binary.BigEndian.Uint16(ins[1:3])
}
