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
	"fmt"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Shows how to load a program and run it to completion.
func ExampleInstance_Drain() {
	img, err := vm.ParseString("3,9,8,9,10,9,4,9,99,-1,8")
	if err != nil {
		panic(err)
	}
	for _, in := range []vm.Cell{7, 8} {
		i, err := vm.New(img, vm.Input(in))
		if err != nil {
			panic(err)
		}
		out, err := i.Drain()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%d == 8: %v\n", in, out)
	}

	// Output:
	// 7 == 8: [0]
	// 8 == 8: [1]
}

// Shows how to drive an instance step by step: Run returns after each
// output, and reports input starvation as a resumable error.
func ExampleInstance_Run() {
	// read a value, output it times 2, forever.
	img, _ := vm.ParseString("3,11,1002,11,2,11,4,11,1105,1,0,0")
	i, _ := vm.New(img)

	for _, v := range []vm.Cell{1, 21} {
		o, err := i.Run(v)
		if err != nil {
			panic(err)
		}
		fmt.Println(o.Status, o.Value)
	}
	_, err := i.Run()
	fmt.Println(errors.Cause(err) == vm.ErrInputStarved, i.PC)

	// Output:
	// output 2
	// output 42
	// true 0
}

func ExampleInstance_MemorySnapshot() {
	img, _ := vm.ParseString("1,9,10,3,2,3,11,0,99,30,40,50")
	i, _ := vm.New(img)
	if _, err := i.Drain(); err != nil {
		panic(err)
	}
	fmt.Println(i.MemorySnapshot())

	// Output:
	// 3500,9,10,70,2,3,11,0,99,30,40,50
}
