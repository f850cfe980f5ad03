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
	"io"
	"os"
	"strconv"

	"github.com/db47h/intcode/config"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// inputReader feeds the VM with values read from r, one per white space
// separated word.
type inputReader struct {
	s      *bufio.Scanner
	prompt func() error
}

func newInputReader(r io.Reader, prompt func() error) *inputReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &inputReader{s, prompt}
}

// next returns the next input value, or io.EOF.
func (r *inputReader) next() (vm.Cell, error) {
	if r.prompt != nil {
		if err := r.prompt(); err != nil {
			return 0, err
		}
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return 0, errors.Wrap(err, "read failed")
		}
		return 0, io.EOF
	}
	n, err := strconv.ParseInt(r.s.Text(), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "bad input value")
	}
	return vm.Cell(n), nil
}

func newInstance(c *config.Config, args []string) (*vm.Instance, error) {
	opts := c.Options()
	if c.Run.Trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	if resumeFile != "" {
		i, err := vm.LoadState(resumeFile, opts...)
		if err != nil {
			return nil, err
		}
		i.Push(c.Run.Input...)
		log.Infof("resumed %s at pc %d, %d instructions executed", resumeFile, i.PC, i.InstructionCount())
		return i, nil
	}
	img, err := loadProgram(c, args)
	if err != nil {
		return nil, err
	}
	return vm.New(img, append(opts, vm.Input(c.Run.Input...))...)
}

// runCmd runs a single VM instance. Output values are written to w, one per
// line. When the VM runs out of input, values are read from stdin, with a
// prompt if stdin is a terminal.
func runCmd(c *config.Config, args []string, w *bufio.Writer) (*vm.Instance, error) {
	i, err := newInstance(c, args)
	if err != nil {
		return nil, err
	}

	var prompt func() error
	if !noPrompt && isTerminal(os.Stdin) {
		prompt = func() error {
			if _, err := w.WriteString("? "); err != nil {
				return err
			}
			return w.Flush()
		}
	}
	stdin := newInputReader(os.Stdin, prompt)

	for {
		o, err := i.Run()
		switch {
		case err == nil:
		case errors.Cause(err) == vm.ErrInputStarved:
			v, err := stdin.next()
			if err == io.EOF {
				if saveFile != "" {
					log.Infof("input exhausted at pc %d, saving state to %s", i.PC, saveFile)
					return i, vm.SaveState(saveFile, i)
				}
				return i, errors.Wrap(vm.ErrInputStarved, "end of input")
			}
			if err != nil {
				return i, err
			}
			i.Push(v)
			continue
		default:
			return i, err
		}

		if o.Status == vm.StatusHalted {
			break
		}
		w.WriteString(strconv.FormatInt(int64(o.Value), 10))
		w.WriteByte('\n')
		if prompt != nil {
			w.Flush()
		}
	}

	log.Infof("halted after %d instructions", i.InstructionCount())
	if outFileName != "" {
		return i, vm.Save(outFileName, i.Image)
	}
	return i, nil
}
