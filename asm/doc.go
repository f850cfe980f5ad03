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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Instructions take their operands in the cells following them. Read
//	operands (r) may be prefixed with '#' to select immediate mode. Write
//	operands (w) are always addresses.
//
//	opcode	asm	operands	description
//	------	---	--------	------------------------------------------------
//	1	add	r r w		store the sum of both read operands at w
//	2	mul	r r w		store the product of both read operands at w
//	3	in	w		store the next input value at w
//	4	out	r		output r
//	5	jt	r r		jump to the second operand if the first is non-zero
//	6	jf	r r		jump to the second operand if the first is zero
//	7	lt	r r w		store 1 at w if the first operand is less than the second, 0 otherwise
//	8	eq	r r w		store 1 at w if both operands are equal, 0 otherwise
//	99	hlt			halt
//
// The assembler computes the mode digits of the instruction cell:
//
//	mul 4 #3 4	( compiles as 1002,4,3,4 )
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	( this is a
//	  rather long
//	  multiline comment )
//
// Comments cannot be nested.
//
// Literals and identifiers:
//
// Input is split at white space into tokens. Operands are resolved as
// follows:
//
//	- a Go integer literal (see strconv.ParseInt) is compiled as is.
//	- a Go character literal between single quotes is compiled as the
//	  corresponding rune value.
//	- the name of a constant defined with .equ is replaced by its value.
//	- anything else is a label reference.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and evaluate to the
// address of the next cell. Forward references are fine:
//
//	:loop	in val
//		out val
//		jt #1 #loop	( jump target in immediate mode )
//	:val	.dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant. The value must be an integer literal, named constant or
// character literal.
//
//	.org <value>
//
// places the next cell at the given address. Gaps are filled with zeros.
//
//	.dat <value>
//
// compiles the given integer, constant, character literal or label address as
// a raw cell.
//
// Disassemble writes instructions in the same syntax, so that its output can be
// assembled back.
package asm
