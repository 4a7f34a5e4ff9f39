package uxn

// OpCode is the 5-bit operation selector packed into the low bits of an
// instruction byte.
type OpCode byte

// The 32 opcodes, in their fixed byte order 0x00..=0x1f. Code 0x00 combined
// with the keep bit is the LIT pseudo-op; the bare byte 0x00 is BRK. Code
// 0x00 with only the return or short bit set is dispatched as LIT as well.
const (
	OpBRK OpCode = iota
	OpINC
	OpPOP
	OpDUP
	OpNIP
	OpSWP
	OpOVR
	OpROT
	OpEQU
	OpNEQ
	OpGTH
	OpLTH
	OpJMP
	OpJCN
	OpJSR
	OpSTH
	OpLDZ
	OpSTZ
	OpLDR
	OpSTR
	OpLDA
	OpSTA
	OpDEI
	OpDEO
	OpADD
	OpSUB
	OpMUL
	OpDIV
	OpAND
	OpORA
	OpEOR
	OpSFT
)

// Mode bits packed into an instruction byte: [keep:1][ret:1][short:1][code:5].
const (
	modeKeep  byte = 0x80
	modeRet   byte = 0x40
	modeShort byte = 0x20
	codeMask  byte = 0x1f
)

type decodedInstruction struct {
	code  OpCode
	keep  bool
	ret   bool
	short bool
}

func decodeOpcode(b byte) decodedInstruction {
	return decodedInstruction{
		code:  OpCode(b & codeMask),
		keep:  b&modeKeep != 0,
		ret:   b&modeRet != 0,
		short: b&modeShort != 0,
	}
}

type opHandler func(cpu *CPU, keep, short, ret bool) error

// opTable dispatches a decoded 5-bit code to its handler. BRK's slot holds
// litHandler: raw byte 0x00 (all mode bits clear) is special-cased as Halt
// in Run before the table is ever consulted, so any handler reached through
// code 0 is really a LIT variant.
var opTable = [32]opHandler{
	OpBRK: litHandler,
	OpINC: incHandler,
	OpPOP: popHandler,
	OpDUP: dupHandler,
	OpNIP: nipHandler,
	OpSWP: swpHandler,
	OpOVR: ovrHandler,
	OpROT: rotHandler,
	OpEQU: equHandler,
	OpNEQ: neqHandler,
	OpGTH: gthHandler,
	OpLTH: lthHandler,
	OpJMP: jmpHandler,
	OpJCN: jcnHandler,
	OpJSR: jsrHandler,
	OpSTH: sthHandler,
	OpLDZ: ldzHandler,
	OpSTZ: stzHandler,
	OpLDR: ldrHandler,
	OpSTR: strHandler,
	OpLDA: ldaHandler,
	OpSTA: staHandler,
	OpDEI: deiHandler,
	OpDEO: deoHandler,
	OpADD: addHandler,
	OpSUB: subHandler,
	OpMUL: mulHandler,
	OpDIV: divHandler,
	OpAND: andHandler,
	OpORA: oraHandler,
	OpEOR: eorHandler,
	OpSFT: sftHandler,
}
