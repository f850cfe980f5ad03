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
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Image    Image // Memory image
	id       string
	input    []Cell
	output   []Cell
	phase    Cell
	hasPhase bool // a phase setting is pending
	phased   bool // the phase setting has been consumed
	halted   bool
	insCount int64
	maxSteps int64
	trace    *ici.ErrWriter
}

// Option interface
type Option func(*Instance) error

// ID sets the instance name used in error messages and traces.
func ID(id string) Option {
	return func(i *Instance) error { i.id = id; return nil }
}

// Phase sets the phase setting of the instance. The phase setting is served
// to the first input instruction, before any value queued with Input or Run.
// It can be set only once.
func Phase(p Cell) Option {
	return func(i *Instance) error {
		if i.hasPhase || i.phased {
			return errors.Errorf("phase setting already set for %s", i.Name())
		}
		i.phase, i.hasPhase = p, true
		return nil
	}
}

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error {
		i.input = append(i.input, values...)
		return nil
	}
}

// MaxSteps limits the number of instructions an instance will execute over
// its lifetime. Run returns ErrStepLimit once the limit is reached. A value of
// 0 disables the limit, which is the default.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid instruction limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Trace enables execution tracing: every instruction is disassembled to w
// before being executed.
func Trace(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			i.trace = nil
		} else {
			i.trace = ici.NewErrWriter(w)
		}
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The instance works on a private copy of img, so the same program can be
// used as a template for any number of instances.
//
// Options will be set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		Image: img.Clone(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// ID returns the instance name as set with the ID option.
func (i *Instance) ID() string {
	return i.id
}

// Name returns the instance ID, or "vm" if none was set.
func (i *Instance) Name() string {
	if i.id == "" {
		return "vm"
	}
	return i.id
}

// Halted returns true if the instance has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// PhaseConsumed returns true once the phase setting has been read by an input
// instruction.
func (i *Instance) PhaseConsumed() bool {
	return i.phased
}

// Pending returns the number of values waiting in the input queue, including
// an unconsumed phase setting.
func (i *Instance) Pending() int {
	n := len(i.input)
	if i.hasPhase {
		n++
	}
	return n
}

// Output returns all values output by the instance so far. The returned slice
// must not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// MemorySnapshot returns a copy of the instance memory.
func (i *Instance) MemorySnapshot() Image {
	return i.Image.Clone()
}

// Push appends v to the input queue.
func (i *Instance) Push(v ...Cell) {
	i.input = append(i.input, v...)
}

// pop removes and returns the next input value: the pending phase setting if
// any, then the front of the input queue.
func (i *Instance) pop() (Cell, bool) {
	if i.hasPhase {
		i.hasPhase, i.phased = false, true
		return i.phase, true
	}
	if len(i.input) == 0 {
		return 0, false
	}
	v := i.input[0]
	i.input = i.input[1:]
	return v, true
}
