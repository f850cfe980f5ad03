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

	"github.com/pkg/errors"
)

// Status is the state of an instance after executing one or more
// instructions.
type Status uint8

// Instance states, as returned by Step and Run.
const (
	StatusRunning Status = iota // more instructions to go
	StatusOutput                // an output instruction was just executed
	StatusHalted                // a halt instruction was executed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOutput:
		return "output"
	case StatusHalted:
		return "halted"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Outcome is the result of a call to Run: either an output value or a halt.
type Outcome struct {
	Status Status
	Value  Cell // the output value if Status is StatusOutput
}

// fault wraps err with the instance name and PC.
func (i *Instance) fault(err error) error {
	return errors.Wrapf(err, "%s @pc=%d", i.Name(), i.PC)
}

func (i *Instance) traceIns(ins *Instruction) {
	i.trace.WriteString(i.Name())
	i.trace.WriteString("\t")
	i.trace.WriteString(strconv.Itoa(i.PC))
	i.trace.WriteString("\t")
	i.trace.WriteString(ins.String())
	i.trace.WriteString("\n")
}

// Step executes a single instruction.
//
// On error, the PC points to the faulting instruction and the instance state
// is left as it was before the call. In particular, a step returning an error
// whose cause is ErrInputStarved can be retried once input is available.
func (i *Instance) Step() (Status, error) {
	if i.halted {
		return StatusHalted, i.fault(ErrHalted)
	}
	if i.maxSteps > 0 && i.insCount >= i.maxSteps {
		return StatusRunning, i.fault(ErrStepLimit)
	}
	ins, err := Decode(i.Image, i.PC)
	if err != nil {
		return StatusRunning, i.fault(err)
	}
	if i.trace != nil {
		i.traceIns(&ins)
	}
	d, err := i.exec(&ins)
	if err != nil {
		return StatusRunning, i.fault(err)
	}
	i.insCount++
	switch d.kind {
	case dirJump:
		i.PC = d.n
	case dirHalt:
		i.halted = true
		return StatusHalted, nil
	default:
		i.PC += d.n
	}
	if ins.Op == OpOut {
		return StatusOutput, nil
	}
	return StatusRunning, nil
}

// Run appends the given values to the input queue and resumes execution of
// the VM from the current PC.
//
// Run returns as soon as an output instruction has been executed, with the
// output value and the PC pointing to the next instruction. A later call to
// Run resumes from there. Values already in the input queue are served
// before the ones given to that later call.
//
// When a halt instruction is executed, Run returns an Outcome with Status set
// to StatusHalted. Any further call to Run will fail with ErrHalted.
//
// Errors are returned wrapped with the instance name and PC. Use errors.Cause
// to get the *DecodeError, *AddressError, ErrInputStarved, ErrStepLimit or
// ErrHalted value.
func (i *Instance) Run(in ...Cell) (Outcome, error) {
	if i.halted {
		return Outcome{Status: StatusHalted}, i.fault(ErrHalted)
	}
	i.input = append(i.input, in...)
	for {
		st, err := i.Step()
		if err != nil {
			return Outcome{Status: st}, err
		}
		switch st {
		case StatusOutput:
			return Outcome{st, i.output[len(i.output)-1]}, nil
		case StatusHalted:
			return Outcome{Status: st}, nil
		}
	}
}

// Drain appends the given values to the input queue and runs the VM until it
// halts. It returns the values output during the call.
func (i *Instance) Drain(in ...Cell) ([]Cell, error) {
	start := len(i.output)
	o, err := i.Run(in...)
	for err == nil && o.Status != StatusHalted {
		o, err = i.Run()
	}
	return i.output[start:], err
}
