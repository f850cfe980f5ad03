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
	"io/ioutil"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// State is a snapshot of the complete execution state of an instance. Options
// that only affect how an instance runs (Trace, MaxSteps) are not part of it.
type State struct {
	ID       string `cbor:"1,keyasint"`
	PC       int    `cbor:"2,keyasint"`
	Image    Image  `cbor:"3,keyasint"`
	Input    []Cell `cbor:"4,keyasint,omitempty"`
	Output   []Cell `cbor:"5,keyasint,omitempty"`
	Phase    Cell   `cbor:"6,keyasint,omitempty"`
	HasPhase bool   `cbor:"7,keyasint,omitempty"`
	Phased   bool   `cbor:"8,keyasint,omitempty"`
	Halted   bool   `cbor:"9,keyasint,omitempty"`
	Steps    int64  `cbor:"10,keyasint,omitempty"`
}

// state has the same layout as State without its methods, so that the CBOR
// codec does not call back into MarshalBinary or UnmarshalBinary.
type state State

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "vm: failed to create CBOR enc mode"))
	}
	encMode = em
}

func cloneCells(c []Cell) []Cell {
	if len(c) == 0 {
		return nil
	}
	return append([]Cell(nil), c...)
}

// Snapshot captures the instance state. The returned State shares no memory
// with the instance.
func (i *Instance) Snapshot() *State {
	return &State{
		ID:       i.id,
		PC:       i.PC,
		Image:    i.Image.Clone(),
		Input:    cloneCells(i.input),
		Output:   cloneCells(i.output),
		Phase:    i.phase,
		HasPhase: i.hasPhase,
		Phased:   i.phased,
		Halted:   i.halted,
		Steps:    i.insCount,
	}
}

// Restore creates a new instance from a snapshot. Resuming the new instance
// is indistinguishable from resuming the instance the snapshot was taken
// from. Additional options are applied after the state has been restored.
func Restore(s *State, opts ...Option) (*Instance, error) {
	if s.HasPhase && s.Phased {
		return nil, errors.New("restore: inconsistent phase state")
	}
	i := &Instance{
		PC:       s.PC,
		Image:    s.Image.Clone(),
		id:       s.ID,
		input:    cloneCells(s.Input),
		output:   cloneCells(s.Output),
		phase:    s.Phase,
		hasPhase: s.HasPhase,
		phased:   s.Phased,
		halted:   s.Halted,
		insCount: s.Steps,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// MarshalBinary encodes the state in canonical CBOR.
func (s *State) MarshalBinary() ([]byte, error) {
	b, err := encMode.Marshal((*state)(s))
	return b, errors.Wrap(err, "marshal state")
}

// UnmarshalBinary decodes a CBOR encoded state.
func (s *State) UnmarshalBinary(data []byte) error {
	return errors.Wrap(cbor.Unmarshal(data, (*state)(s)), "unmarshal state")
}

// SaveState writes the instance state to file fileName.
func SaveState(fileName string, i *Instance) error {
	b, err := i.Snapshot().MarshalBinary()
	if err != nil {
		return err
	}
	if err = ioutil.WriteFile(fileName, b, 0644); err != nil {
		os.Remove(fileName)
		return errors.Wrap(err, "save state")
	}
	return nil
}

// LoadState restores an instance from a state file written by SaveState.
func LoadState(fileName string, opts ...Option) (*Instance, error) {
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load state")
	}
	var s State
	if err = s.UnmarshalBinary(b); err != nil {
		return nil, errors.Wrapf(err, "load state %s", fileName)
	}
	return Restore(&s, opts...)
}
