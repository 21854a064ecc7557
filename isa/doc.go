// Package isa decodes and encodes the 8086 register to register `mov`.
//
// An instruction is a two byte Code. Decode extracts the W bit from the
// first byte and the REG and R/M register-select fields from the second,
// and resolves them through the register table into a Move. Decoding is a
// pure function of the byte pair and is safe to call from any goroutine.
//
// DecodeStrict additionally checks the opcode and MOD fields for callers
// reading arbitrary object code, and Encode is the inverse of Decode.
package isa
