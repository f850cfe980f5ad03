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

// Package probe searches for memory patches that make an Intcode program
// compute a given value.
//
// Gravity-assist style programs take their two inputs in memory cells 1 and 2
// (the noun and the verb) and leave their result in cell 0. NounVerb brute
// forces all pairs of values for these cells.
package probe

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.probe")

// ErrNotFound is returned by NounVerb if no pair of values produces the target.
var ErrNotFound = errors.New("no matching noun and verb")

// Cells patched with the noun and verb, and the cell holding the result.
const (
	NounAddr   = 1
	VerbAddr   = 2
	ResultAddr = 0
)

// Patch runs prog with noun and verb written to cells 1 and 2 of a fresh copy
// and returns the memory image once the program halts.
func Patch(prog vm.Image, noun, verb vm.Cell, opts ...vm.Option) (vm.Image, error) {
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	if err = i.Image.Store(NounAddr, noun); err != nil {
		return nil, errors.Wrap(err, "noun")
	}
	if err = i.Image.Store(VerbAddr, verb); err != nil {
		return nil, errors.Wrap(err, "verb")
	}
	if _, err = i.Drain(); err != nil {
		return nil, err
	}
	return i.MemorySnapshot(), nil
}

// NounVerb tries all nouns and verbs in [0, limit), noun first, and returns the
// first pair for which the program leaves target in cell 0.
//
// Candidates that make the program fail are skipped: patching arbitrary
// values into a program can easily turn it into garbage. Use the MaxSteps
// option to guard against patches that send it into an endless loop.
func NounVerb(prog vm.Image, target vm.Cell, limit int, opts ...vm.Option) (noun, verb int, err error) {
	if len(prog) <= VerbAddr {
		return 0, 0, errors.Errorf("program too short: %d cells", len(prog))
	}
	var failed int
	for noun = 0; noun < limit; noun++ {
		for verb = 0; verb < limit; verb++ {
			mem, err := Patch(prog, vm.Cell(noun), vm.Cell(verb), opts...)
			if err != nil {
				failed++
				log.Debugf("noun %d, verb %d: %v", noun, verb, err)
				continue
			}
			if mem[ResultAddr] == target {
				log.Infof("found noun %d, verb %d (%d failed candidates)", noun, verb, failed)
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "target %d, limit %d", target, limit)
}
