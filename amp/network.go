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
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.amp")

// ErrNoSignal is returned when the last amplifier of a network halts without
// having output any value.
var ErrNoSignal = errors.New("no signal")

// Topology describes how the amplifiers of a network are wired.
type Topology uint8

// Supported topologies.
const (
	Chain Topology = iota // single pass through all amplifiers
	Ring                  // feedback loop from the last amplifier to the first
)

func (t Topology) String() string {
	switch t {
	case Chain:
		return "chain"
	case Ring:
		return "ring"
	}
	return "topology(" + strconv.Itoa(int(t)) + ")"
}

// ParseTopology returns the topology with the given name.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "chain", "linear":
		return Chain, nil
	case "ring", "feedback":
		return Ring, nil
	}
	return 0, errors.Errorf("unknown topology %q", s)
}

// Network is a set of amplifiers wired according to a Topology.
type Network struct {
	amps   []*vm.Instance
	topo   Topology
	signal vm.Cell
	done   bool
}

// New creates a network of len(phases) amplifiers running prog. Amplifier k
// gets phases[k] as its phase setting and "amp<k>" as ID. The options are
// applied to every amplifier.
func New(prog vm.Image, phases []vm.Cell, topo Topology, opts ...vm.Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty network")
	}
	if topo != Chain && topo != Ring {
		return nil, errors.Errorf("unsupported %v", topo)
	}
	n := &Network{
		amps: make([]*vm.Instance, len(phases)),
		topo: topo,
	}
	for k, p := range phases {
		o := append([]vm.Option{vm.ID("amp" + strconv.Itoa(k))}, opts...)
		o = append(o, vm.Phase(p))
		a, err := vm.New(prog, o...)
		if err != nil {
			return nil, errors.Wrapf(err, "amp%d", k)
		}
		n.amps[k] = a
	}
	return n, nil
}

// Amplifiers returns the amplifiers of the network, in order.
func (n *Network) Amplifiers() []*vm.Instance {
	return n.amps
}

// Signal returns the signal currently carried between amplifiers.
func (n *Network) Signal() vm.Cell {
	return n.signal
}

// Run sends a signal of 0 into the first amplifier and returns the signal
// coming out of the last one. A network can only be run once.
//
// In a Ring, the signal keeps cycling through the amplifiers that have not
// halted yet. The run ends when the last amplifier halts and the result is
// the last value it output.
func (n *Network) Run() (vm.Cell, error) {
	if n.done {
		return 0, errors.Wrap(vm.ErrHalted, "network already run")
	}
	n.done = true
	if n.topo == Chain {
		return n.runChain()
	}
	return n.runRing()
}

func (n *Network) runChain() (vm.Cell, error) {
	for _, a := range n.amps {
		o, err := a.Run(n.signal)
		if err != nil {
			return 0, err
		}
		if o.Status == vm.StatusHalted {
			return 0, errors.Wrap(ErrNoSignal, a.Name())
		}
		n.signal = o.Value
	}
	return n.signal, nil
}

func (n *Network) runRing() (vm.Cell, error) {
	last := len(n.amps) - 1
	var (
		out   vm.Cell
		valid bool
	)
	for k := 0; ; k = (k + 1) % len(n.amps) {
		a := n.amps[k]
		if a.Halted() {
			continue
		}
		o, err := a.Run(n.signal)
		if err != nil {
			return 0, err
		}
		if o.Status == vm.StatusHalted {
			if k != last {
				continue
			}
			if !valid {
				return 0, errors.Wrap(ErrNoSignal, a.Name())
			}
			return out, nil
		}
		n.signal = o.Value
		if k == last {
			out, valid = o.Value, true
		}
	}
}
