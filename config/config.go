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

// Package config handles intcode.toml configuration files for the intcode
// command.
//
// A configuration file looks like this:
//
//	program = "day7.txt"
//	max-steps = 1000000
//
//	[log]
//	verbosity = 1
//
//	[run]
//	input = [5]
//
//	[amp]
//	topology = "ring"
//	phases = [5, 6, 7, 8, 9]
//
//	[probe]
//	target = 19690720
//	limit = 100
//
// All keys are optional. Command line flags take precedence over values read
// from the file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// FileName is the name of the file looked up by FindAndLoad.
const FileName = "intcode.toml"

// Config represents an intcode.toml configuration.
type Config struct {
	Program  string `toml:"program"`
	MaxSteps int64  `toml:"max-steps"`
	Log      Log    `toml:"log"`
	Run      Run    `toml:"run"`
	Amp      Amp    `toml:"amp"`
	Probe    Probe  `toml:"probe"`

	// Dir is the directory containing the configuration file (set at load time).
	Dir string `toml:"-"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Run configures the run command.
type Run struct {
	Input []vm.Cell `toml:"input"`
	Trace bool      `toml:"trace"`
}

// Amp configures amplifier networks.
type Amp struct {
	Topology string    `toml:"topology"`
	Phases   []vm.Cell `toml:"phases"`
}

// Probe configures the noun/verb search.
type Probe struct {
	Target vm.Cell `toml:"target"`
	Limit  int     `toml:"limit"`
}

// Default returns a configuration with default values.
func Default() *Config {
	c := new(Config)
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Amp.Topology == "" {
		c.Amp.Topology = amp.Ring.String()
	}
	if c.Probe.Limit == 0 {
		c.Probe.Limit = 100
	}
}

// Load parses the configuration file at path.
func Load(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	c.setDefaults()
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file, then loads
// and returns it. It returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.MaxSteps < 0 {
		return errors.Errorf("invalid max-steps %d", c.MaxSteps)
	}
	if c.Probe.Limit < 0 {
		return errors.Errorf("invalid probe limit %d", c.Probe.Limit)
	}
	if _, err := c.Topology(); err != nil {
		return err
	}
	seen := make(map[vm.Cell]bool, len(c.Amp.Phases))
	for _, p := range c.Amp.Phases {
		if seen[p] {
			return errors.Errorf("duplicate phase setting %d", p)
		}
		seen[p] = true
	}
	return nil
}

// ProgramPath returns the program path. Relative paths are resolved against
// the directory of the configuration file.
func (c *Config) ProgramPath() string {
	if c.Program == "" || filepath.IsAbs(c.Program) || c.Dir == "" {
		return c.Program
	}
	return filepath.Join(c.Dir, c.Program)
}

// Topology returns the configured network topology.
func (c *Config) Topology() (amp.Topology, error) {
	return amp.ParseTopology(c.Amp.Topology)
}

// Phases returns the configured phase settings, or the default set for the
// configured topology: 0 to 4 for a chain, 5 to 9 for a ring.
func (c *Config) Phases() []vm.Cell {
	if len(c.Amp.Phases) > 0 {
		return c.Amp.Phases
	}
	var base vm.Cell
	if t, _ := c.Topology(); t == amp.Ring {
		base = 5
	}
	return []vm.Cell{base, base + 1, base + 2, base + 3, base + 4}
}

// Options returns the vm options implied by the configuration.
func (c *Config) Options() []vm.Option {
	var opts []vm.Option
	if c.MaxSteps > 0 {
		opts = append(opts, vm.MaxSteps(c.MaxSteps))
	}
	return opts
}
