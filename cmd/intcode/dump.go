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
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func dumpSlice(w *ici.ErrWriter, a []vm.Cell) {
	for k, v := range a {
		if k > 0 {
			w.Write([]byte{' '})
		}
		io.WriteString(w, strconv.FormatInt(int64(v), 10))
	}
	w.Write([]byte{'\n'})
}

// dumpVM dumps the virtual machine registers, output log and memory image to
// the specified io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc: "+strconv.Itoa(i.PC))
	if ins, err := vm.Decode(i.Image, i.PC); err == nil {
		io.WriteString(ew, " ("+ins.String()+")")
	}
	io.WriteString(ew, "\ninstructions: "+strconv.FormatInt(i.InstructionCount(), 10))
	io.WriteString(ew, "\nhalted: "+strconv.FormatBool(i.Halted()))
	io.WriteString(ew, "\npending input: "+strconv.Itoa(i.Pending()))
	io.WriteString(ew, "\noutput: ")
	dumpSlice(ew, i.Output())
	io.WriteString(ew, "memory: ")
	dumpSlice(ew, i.Image)
	return ew.Err
}
