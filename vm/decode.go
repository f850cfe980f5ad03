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

import (
	"strconv"
	"strings"
)

// Param is an instruction parameter: a raw operand and the mode it must be
// resolved with.
type Param struct {
	Mode  Mode
	Value Cell
}

// Resolve returns the value of the parameter: the operand itself in immediate
// mode, or the value stored at the operand address in position mode.
func (p Param) Resolve(img Image) (Cell, error) {
	if p.Mode == Immediate {
		return p.Value, nil
	}
	return img.Fetch(p.Value)
}

func (p Param) String() string {
	if p.Mode == Immediate {
		return "#" + strconv.FormatInt(int64(p.Value), 10)
	}
	return strconv.FormatInt(int64(p.Value), 10)
}

// Instruction is a decoded instruction.
//
// Args holds the moded parameters, in order. For instructions that store a
// result (add, mul, in, lt, eq), Out is the raw destination address.
type Instruction struct {
	Op   Opcode
	Args []Param
	Out  Cell
}

// Len returns the encoded length of the instruction in cells.
func (ins *Instruction) Len() int {
	return ins.Op.Len()
}

func (ins *Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for _, a := range ins.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	if ins.Op.Writes() {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(ins.Out), 10))
	}
	return b.String()
}

// Decode decodes the instruction at address pc in img.
//
// The instruction cell, read as a zero padded 5 digit decimal number, holds
// the opcode in its two lowest digits and one mode digit per parameter,
// least significant first. Missing mode digits default to position mode.
//
// Errors are either a *DecodeError for an invalid instruction cell, or an
// *AddressError if the instruction or any of its operands lies outside img.
func Decode(img Image, pc int) (Instruction, error) {
	v, err := img.Fetch(Cell(pc))
	if err != nil {
		return Instruction{}, err
	}
	if v < 0 {
		return Instruction{}, &DecodeError{pc, v, "negative instruction"}
	}
	op := Opcode(v % 100)
	if !op.Valid() {
		return Instruction{}, &DecodeError{pc, v, "unknown opcode " + strconv.Itoa(int(op))}
	}
	ins := Instruction{Op: op}
	modes := v / 100
	n := op.Reads()
	if n > 0 {
		ins.Args = make([]Param, n)
	}
	for k := 0; k < n; k++ {
		m := Mode(modes % 10)
		if m != Position && m != Immediate {
			return Instruction{}, &DecodeError{pc, v, "invalid mode for parameter " + strconv.Itoa(k+1)}
		}
		modes /= 10
		if ins.Args[k].Value, err = img.Fetch(Cell(pc + 1 + k)); err != nil {
			return Instruction{}, err
		}
		ins.Args[k].Mode = m
	}
	if op.Writes() {
		// output addresses are never moded, but the digit must still be
		// well-formed.
		if m := modes % 10; m > 1 {
			return Instruction{}, &DecodeError{pc, v, "invalid mode for parameter " + strconv.Itoa(n+1)}
		}
		modes /= 10
		if ins.Out, err = img.Fetch(Cell(pc + 1 + n)); err != nil {
			return Instruction{}, err
		}
	}
	if modes != 0 {
		return Instruction{}, &DecodeError{pc, v, "extraneous mode digits"}
	}
	return ins, nil
}
