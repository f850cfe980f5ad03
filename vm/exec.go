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

type dirKind uint8

const (
	dirContinue dirKind = iota
	dirJump
	dirHalt
)

// directive tells the run loop how to update the PC after an instruction.
type directive struct {
	kind dirKind
	n    int // PC increment for dirContinue, target for dirJump
}

func boolCell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// exec applies a decoded instruction to the instance memory, input queue and
// output log. On error, neither memory nor the input queue are modified.
func (i *Instance) exec(ins *Instruction) (directive, error) {
	next := directive{dirContinue, ins.Len()}
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		lhs, err := ins.Args[0].Resolve(i.Image)
		if err != nil {
			return next, err
		}
		rhs, err := ins.Args[1].Resolve(i.Image)
		if err != nil {
			return next, err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = lhs + rhs
		case OpMul:
			v = lhs * rhs
		case OpLessThan:
			v = boolCell(lhs < rhs)
		default:
			v = boolCell(lhs == rhs)
		}
		return next, i.Image.Store(ins.Out, v)
	case OpIn:
		// check the destination first so that a bad address does not eat
		// an input value.
		if _, err := i.Image.Fetch(ins.Out); err != nil {
			return next, err
		}
		v, ok := i.pop()
		if !ok {
			return next, ErrInputStarved
		}
		i.Image[ins.Out] = v
		return next, nil
	case OpOut:
		v, err := ins.Args[0].Resolve(i.Image)
		if err != nil {
			return next, err
		}
		i.output = append(i.output, v)
		return next, nil
	case OpJumpIfTrue, OpJumpIfFalse:
		v, err := ins.Args[0].Resolve(i.Image)
		if err != nil {
			return next, err
		}
		if (v != 0) != (ins.Op == OpJumpIfTrue) {
			return next, nil
		}
		t, err := ins.Args[1].Resolve(i.Image)
		if err != nil {
			return next, err
		}
		return directive{dirJump, int(t)}, nil
	case OpHalt:
		return directive{dirHalt, 0}, nil
	}
	// Decode never returns an invalid opcode.
	panic("unreachable")
}
