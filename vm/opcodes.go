// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strconv"

// Opcode is the numeric operation code held in the two lowest decimal digits
// of an instruction cell.
type Opcode Cell

// Intcode Virtual Machine Opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpHalt Opcode = 99
)

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	Position Mode = iota
	Immediate
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

type opInfo struct {
	name  string
	reads int  // number of moded (read) parameters
	write bool // whether a raw output address follows the read parameters
}

var opcodes = map[Opcode]opInfo{
	OpAdd:         {"add", 2, true},
	OpMul:         {"mul", 2, true},
	OpIn:          {"in", 0, true},
	OpOut:         {"out", 1, false},
	OpJumpIfTrue:  {"jt", 2, false},
	OpJumpIfFalse: {"jf", 2, false},
	OpLessThan:    {"lt", 2, true},
	OpEquals:      {"eq", 2, true},
	OpHalt:        {"hlt", 0, false},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.name] = op
	}
}

// Valid returns true if op is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Len returns the encoded length of an instruction with this opcode, in cells,
// or 0 if op is not a valid opcode.
func (op Opcode) Len() int {
	info, ok := opcodes[op]
	if !ok {
		return 0
	}
	n := 1 + info.reads
	if info.write {
		n++
	}
	return n
}

// Reads returns the number of moded parameters taken by op.
func (op Opcode) Reads() int {
	return opcodes[op].reads
}

// Writes returns true if op stores a result at a raw address operand.
func (op Opcode) Writes() bool {
	return opcodes[op].write
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// LookupOpcode returns the opcode for the given assembler mnemonic.
func LookupOpcode(mnemonic string) (Opcode, bool) {
	op, ok := opcodeIndex[mnemonic]
	return op, ok
}
