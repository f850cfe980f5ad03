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

// Package vm implements the Intcode VM.
//
// An Intcode program is a flat sequence of integers, usually stored as comma
// separated decimal values. Code and data share the same memory image and
// programs are free to modify themselves.
//
// Each instruction cell holds the opcode in its two lowest decimal digits.
// The digits above select the addressing mode of each parameter, one digit
// per parameter starting with the hundreds: 0 for position mode (the operand
// is an address), 1 for immediate mode (the operand is the value). Parameters
// that instructions write to are always addresses.
//
//	opcode	asm	cells	description
//	------	---	-----	-----------------------------------------------
//	1	add	4	store a+b at c
//	2	mul	4	store a*b at c
//	3	in	2	pop the next input value and store it at a
//	4	out	2	output a
//	5	jt	3	jump to b if a != 0
//	6	jf	3	jump to b if a == 0
//	7	lt	4	store 1 at c if a < b, 0 otherwise
//	8	eq	4	store 1 at c if a == b, 0 otherwise
//	99	hlt	1	halt
//
// Instances are resumable: Run returns after each output instruction and
// picks up where it left off on the next call. This is what allows a set of
// instances to be chained in a feedback loop without any goroutines (see
// package amp).
//
// Unlike some other implementations, an input instruction reached with an
// empty input queue does not read a default value of 0. Run returns
// ErrInputStarved instead, leaving the instance on the input instruction so
// that it can be resumed once input is available.
package vm
