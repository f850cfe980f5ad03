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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	img, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given image to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction are written as a .dat
// directive and skipped one at a time.
func Disassemble(img vm.Image, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	ins, err := vm.Decode(img, pc)
	if err != nil {
		if pc < 0 || pc >= len(img) {
			return pc, ew.Err
		}
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(img[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.String())
	return pc + ins.Len(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img vm.Image, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "%6d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
