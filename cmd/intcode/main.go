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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/config"
	"github.com/db47h/intcode/probe"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode.cmd")

type cellList []vm.Cell

func (l *cellList) String() string {
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *cellList) Set(s string) error {
	for _, t := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(n))
	}
	return nil
}

func (l *cellList) Get() interface{} { return *l }

var (
	debug       bool
	dump        bool
	noPrompt    bool
	configFile  string
	outFileName string
	saveFile    string
	resumeFile  string
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] command [file]\n\n", os.Args[0])
	fmt.Fprint(flag.CommandLine.Output(), `Commands:
  run     run a program
  amp     find the phase settings giving the highest amplifier signal
  probe   find the noun and verb that make a program output the probe target
  asm     assemble a source file to program text
  disasm  disassemble a program

Flags:
`)
	flag.PrintDefaults()
}

// loadConfig loads the configuration file and applies command line overrides.
func loadConfig(fs *flag.FlagSet, in, phases cellList, topo string, target int64, limit int, maxSteps int64, trace bool, verbosity int, logFile string) (*config.Config, error) {
	var c *config.Config
	var err error
	if configFile != "" {
		c, err = config.Load(configFile)
	} else {
		c, err = config.FindAndLoad(".")
	}
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = config.Default()
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			c.Run.Input = in
		case "phases":
			c.Amp.Phases = phases
		case "topology":
			c.Amp.Topology = topo
		case "target":
			c.Probe.Target = vm.Cell(target)
		case "limit":
			c.Probe.Limit = limit
		case "max-steps":
			c.MaxSteps = maxSteps
		case "trace":
			c.Run.Trace = trace
		case "v":
			c.Log.Verbosity = verbosity
		case "log":
			c.Log.File = logFile
		}
	})
	return c, c.Validate()
}

// loadProgram loads the program named on the command line, or the one from the
// configuration file. "-" reads the program from stdin.
func loadProgram(c *config.Config, args []string) (vm.Image, error) {
	name := c.ProgramPath()
	if len(args) > 0 {
		name = args[0]
	}
	switch name {
	case "":
		return nil, errors.New("no program file specified")
	case "-":
		return vm.Parse(bufio.NewReader(os.Stdin))
	}
	return vm.Load(name)
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		dumpVM(i, os.Stderr)
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if err == nil && dump && i != nil {
			err = dumpVM(i, os.Stderr)
		}
		atExit(i, err)
	}()

	var in, phases cellList
	flag.Usage = usage
	flag.StringVar(&configFile, "config", "", "load configuration from `filename` instead of looking up "+config.FileName)
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump VM state to stderr upon exit (run)")
	flag.Var(&in, "in", "comma separated input `values` (run, can be specified multiple times)")
	flag.Var(&phases, "phases", "comma separated phase `settings` (amp)")
	var topo = flag.String("topology", amp.Ring.String(), "amplifier network `topology`: chain or ring (amp)")
	var target = flag.Int64("target", 0, "probe target `value` (probe)")
	var limit = flag.Int("limit", 100, "try nouns and verbs in [0, `n`) (probe)")
	var maxSteps = flag.Int64("max-steps", 0, "abort after `n` instructions per VM instance (0 = no limit)")
	var trace = flag.Bool("trace", false, "trace execution to stderr (run)")
	var verbosity = flag.Int("v", 0, "log verbosity `level`")
	var logFile = flag.String("log", "", "log to `filename` instead of stderr")
	flag.BoolVar(&noPrompt, "noprompt", false, "do not prompt for input, even if stdin is a terminal (run)")
	flag.StringVar(&outFileName, "o", "", "`filename` to write the final memory image (run) or assembled program (asm) to")
	flag.StringVar(&saveFile, "save", "", "save VM state to `filename` when input runs out (run)")
	flag.StringVar(&resumeFile, "resume", "", "resume VM from state file `filename` (run)")

	flag.Parse()

	c, err := loadConfig(flag.CommandLine, in, phases, *topo, *target, *limit, *maxSteps, *trace, *verbosity, *logFile)
	if err != nil {
		return
	}
	if c.Log.File != "" {
		commonlog.Configure(c.Log.Verbosity, &c.Log.File)
	} else {
		commonlog.Configure(c.Log.Verbosity, nil)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		err = errors.New("no command specified")
		return
	}
	cmd, args := args[0], args[1:]
	log.Debugf("command %s, args %v", cmd, args)

	switch cmd {
	case "run":
		i, err = runCmd(c, args, stdout)
	case "amp":
		err = ampCmd(c, args, stdout)
	case "probe":
		err = probeCmd(c, args, stdout)
	case "asm":
		err = asmCmd(args, stdout)
	case "disasm":
		err = disasmCmd(c, args, stdout)
	default:
		err = errors.Errorf("unknown command %q", cmd)
	}
}

func ampCmd(c *config.Config, args []string, w io.Writer) error {
	img, err := loadProgram(c, args)
	if err != nil {
		return err
	}
	topo, err := c.Topology()
	if err != nil {
		return err
	}
	r, err := amp.Search(img, c.Phases(), topo, c.Options()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\t%v\n", r.Signal, r.Phases)
	return err
}

func probeCmd(c *config.Config, args []string, w io.Writer) error {
	img, err := loadProgram(c, args)
	if err != nil {
		return err
	}
	noun, verb, err := probe.NounVerb(img, c.Probe.Target, c.Probe.Limit, c.Options()...)
	if err != nil {
		return errors.Wrapf(err, "target %d", c.Probe.Target)
	}
	_, err = fmt.Fprintf(w, "noun %d, verb %d: %d\n", noun, verb, 100*noun+verb)
	return err
}

func asmCmd(args []string, w io.Writer) (err error) {
	if len(args) == 0 {
		return errors.New("no source file specified")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := asm.Assemble(args[0], bufio.NewReader(f))
	if err != nil {
		return err
	}
	if outFileName != "" {
		return vm.Save(outFileName, img)
	}
	if _, err = img.WriteTo(w); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func disasmCmd(c *config.Config, args []string, w io.Writer) error {
	img, err := loadProgram(c, args)
	if err != nil {
		return err
	}
	return asm.DisassembleAll(img, 0, w)
}
