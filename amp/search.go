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

package amp

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Result is the outcome of a Search.
type Result struct {
	Signal vm.Cell
	Phases []vm.Cell
}

// Permutations calls fn with every permutation of the integers [0, n), in
// lexicographic order, starting with the identity. The perm slice is reused
// between calls and must not be retained. Enumeration stops early if fn
// returns false.
func Permutations(n int, fn func(perm []int) bool) {
	if n < 0 {
		return
	}
	p := make([]int, n)
	for k := range p {
		p[k] = k
	}
	for {
		if !fn(p) {
			return
		}
		// next permutation: find the rightmost ascent, swap its head with
		// the smallest larger element on its right, reverse the tail.
		k := n - 2
		for k >= 0 && p[k] >= p[k+1] {
			k--
		}
		if k < 0 {
			return
		}
		l := n - 1
		for p[l] <= p[k] {
			l--
		}
		p[k], p[l] = p[l], p[k]
		for a, b := k+1, n-1; a < b; a, b = a+1, b-1 {
			p[a], p[b] = p[b], p[a]
		}
	}
}

// Search runs a network of len(phases) amplifiers for every permutation of the
// given phase settings and returns the highest signal along with the phase
// settings that produced it.
//
// Permutations are tried in lexicographic order of positions in phases, so
// that phases itself is the first one tried. If several permutations produce
// the highest signal, the first one wins.
//
// Any error from a network aborts the search.
func Search(prog vm.Image, phases []vm.Cell, topo Topology, opts ...vm.Option) (Result, error) {
	if len(phases) == 0 {
		return Result{}, errors.New("no phase settings")
	}
	var (
		best  Result
		err   error
		count int
		cur   = make([]vm.Cell, len(phases))
	)
	Permutations(len(phases), func(perm []int) bool {
		for k, idx := range perm {
			cur[k] = phases[idx]
		}
		var n *Network
		if n, err = New(prog, cur, topo, opts...); err != nil {
			return false
		}
		var s vm.Cell
		if s, err = n.Run(); err != nil {
			err = errors.Wrapf(err, "phases %v", cur)
			return false
		}
		log.Debugf("%v %v: signal %d", topo, cur, s)
		if count == 0 || s > best.Signal {
			best.Signal = s
			best.Phases = append(best.Phases[:0], cur...)
		}
		count++
		return true
	})
	if err != nil {
		return Result{}, err
	}
	log.Infof("%v: %d permutations, max signal %d for %v", topo, count, best.Signal, best.Phases)
	return best, nil
}
