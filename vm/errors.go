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

package vm

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInputStarved is returned by Run when an input instruction is reached
	// with an empty input queue. The instance is left on the input
	// instruction, untouched, and the next call to Run with at least one
	// value will resume from there.
	ErrInputStarved = errors.New("input starved")

	// ErrHalted is returned by Run when called on a halted instance.
	ErrHalted = errors.New("instance halted")

	// ErrStepLimit is returned when an instance exceeds the instruction count
	// set with the MaxSteps option.
	ErrStepLimit = errors.New("instruction limit exceeded")
)

// DecodeError reports an instruction cell that cannot be decoded.
type DecodeError struct {
	PC     int
	Cell   Cell
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode @pc=%d: %s (%d)", e.PC, e.Reason, e.Cell)
}

// AddressError reports an access outside of the memory image.
type AddressError struct {
	Addr Cell
	Size int
}

func (e *AddressError) Error() string {
	return "address " + strconv.FormatInt(int64(e.Addr), 10) + " out of range [0:" + strconv.Itoa(e.Size) + "]"
}

// ParseError reports a malformed token in program text.
type ParseError struct {
	Index int // zero based index of the token in the program
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token #%d %q: %v", e.Index, e.Token, e.Err)
}

// Cause returns the underlying strconv error.
func (e *ParseError) Cause() error { return e.Err }

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error { return e.Err }
