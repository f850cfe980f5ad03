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

package vm_test

import (
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
)

// A core stopped at its first output, saved, restored and resumed must
// produce the same results as the same program run in one go.
func TestSnapshot_resume(t *testing.T) {
	ref := setup(t, progFeedback1, vm.Phase(5), vm.Input(0, 1, 2, 3, 4))
	refOut, err := ref.Drain()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	i := setup(t, progFeedback1, vm.ID("amp"), vm.Phase(5))
	if o, err := i.Run(0); err != nil || o.Value != 1 {
		t.Fatalf("expected 1, got %d, %v", o.Value, err)
	}
	b, err := i.Snapshot().MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	var s vm.State
	if err = s.UnmarshalBinary(b); err != nil {
		t.Fatalf("%+v", err)
	}
	if s.ID != "amp" || s.PC != i.PC || !s.Phased || s.HasPhase {
		t.Fatalf("bad state %+v", s)
	}
	r, err := vm.Restore(&s)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err = r.Drain(1, 2, 3, 4); err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(r.Output(), refOut) {
		t.Fatalf("expected output %v, got %v", refOut, r.Output())
	}
	if !r.MemorySnapshot().Equal(ref.MemorySnapshot()) {
		t.Fatalf("memory mismatch:\n%v\n%v", r.Image, ref.Image)
	}
	if r.InstructionCount() != ref.InstructionCount() {
		t.Fatalf("instruction count mismatch: %d != %d", r.InstructionCount(), ref.InstructionCount())
	}

	// the original instance is independent from the restored one
	if i.Halted() || len(i.Output()) != 1 {
		t.Fatal("original instance modified by restored copy")
	}
	if _, err = i.Drain(1, 2, 3, 4); err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(i.Output(), refOut) {
		t.Fatalf("expected output %v, got %v", refOut, i.Output())
	}
}

func TestSnapshot_pendingPhase(t *testing.T) {
	i := setup(t, "3,9,3,10,4,9,4,10,99,0,0", vm.Phase(3))
	r, err := vm.Restore(i.Snapshot())
	if err != nil {
		t.Fatalf("%+v", err)
	}
	r.Push(4)
	check(t, "pendingPhase", r, nil, C{3, 4})
	if !r.PhaseConsumed() || i.PhaseConsumed() {
		t.Fatal("phase state shared between instances")
	}
}

func TestSnapshot_file(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "state.cbor")
	i := setup(t, "3,5,4,5,99,0")
	if _, err := i.Run(); err == nil {
		t.Fatal("expected starvation")
	}
	if err := vm.SaveState(fn, i); err != nil {
		t.Fatalf("%+v", err)
	}
	r, err := vm.LoadState(fn, vm.ID("restored"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if r.ID() != "restored" {
		t.Fatalf("options not applied: %q", r.ID())
	}
	r.Push(11)
	check(t, "file", r, C{3, 5, 4, 5, 99, 11}, C{11})
}

func TestState_binary(t *testing.T) {
	s := vm.State{
		ID:       "amp3",
		PC:       4,
		Image:    vm.Image{3, 0, 4, 0, 99},
		Input:    C{7, -8},
		Output:   C{42},
		Phase:    9,
		HasPhase: true,
		Steps:    12,
	}
	b, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	var d vm.State
	if err = d.UnmarshalBinary(b); err != nil {
		t.Fatalf("%+v", err)
	}
	if d.ID != s.ID || d.PC != s.PC || !d.Image.Equal(s.Image) || !equal(d.Input, s.Input) ||
		!equal(d.Output, s.Output) || d.Phase != s.Phase || !d.HasPhase || d.Phased || d.Steps != s.Steps {
		t.Fatalf("expected %+v, got %+v", s, d)
	}
	// canonical encoding is stable
	b2, err := d.MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if string(b) != string(b2) {
		t.Fatal("encoding not stable across a round trip")
	}
	if err = d.UnmarshalBinary([]byte{0xff}); err == nil {
		t.Fatal("garbage accepted")
	}
}
