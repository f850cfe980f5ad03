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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func TestAssemble(t *testing.T) {
	data := []struct {
		name string
		code string
		img  string
	}{
		{"modes", "mul 4 #3 4 hlt", "1002,4,3,4,99"},
		{"negative", "add #100 #-1 4 .dat 0", "1101,100,-1,4,0"},
		{"const", ".equ N 8 in 9 eq 9 #N 9 out 9 hlt .org 9 .dat -1", "3,9,1008,9,8,9,4,9,99,-1"},
		{"char", "out #'A' hlt", "104,65,99"},
		{"org", ".org 3 hlt", "0,0,0,99"},
		{"literals", ".dat 0x10 .dat 010", "16,8"},
		{"labels", "jt #1 #end .dat end :end hlt", "1105,1,4,4,99"},
		{"comments", "( echo )\n:loop in 0 ( read )\n\tout 0\n\tjt #1 #loop", "3,0,4,0,1105,1,0"},
		{"empty", "( nothing )", ""},
	}
	for _, d := range data {
		img, err := asm.Assemble(d.name, strings.NewReader(d.code))
		if err != nil {
			t.Errorf("%s: %v", d.name, err)
			continue
		}
		exp, err := vm.ParseString(d.img)
		if err != nil {
			t.Fatal(err)
		}
		if !img.Equal(exp) {
			t.Errorf("%s: expected %v, got %v", d.name, exp, img)
		}
	}
}

func TestAssemble_errors(t *testing.T) {
	data := []struct {
		name string
		code string
		msg  string
	}{
		{"imm_out", "in #5", "immediate output operand for in"},
		{"eof", "add 1 2", "missing operand for add"},
		{"short", "add 1 2 :x hlt", "missing operand for add, got :x"},
		{"undef", "jt #1 #nowhere", "undefined label nowhere"},
		{"redef", ":a hlt :a", "label redefinition: a"},
		{"const_label", ".equ x 1 :x", "previously defined as a constant"},
		{"label_const", ":x hlt .equ x 1", ".equ: redefinition of x"},
		{"directive", ".foo", "unknown directive .foo"},
		{"org", ".org bar", "expected integer or constant, got bar"},
		{"mnemonic", "nop", "unknown mnemonic nop"},
		{"comment", "hlt ( unterminated", "unterminated comment"},
		{"char", `.dat '\x'`, `invalid character literal '\x'`},
		{"operand", "out #:x", "invalid operand :x"},
	}
	for _, d := range data {
		_, err := asm.Assemble(d.name, strings.NewReader(d.code))
		errs, ok := err.(asm.ErrAsm)
		if !ok {
			t.Errorf("%s: expected ErrAsm, got %v", d.name, err)
			continue
		}
		if len(errs) != 1 {
			t.Errorf("%s: expected a single error, got %v", d.name, err)
			continue
		}
		if !strings.Contains(errs[0].Msg, d.msg) {
			t.Errorf("%s: expected %q, got %q", d.name, d.msg, errs[0].Msg)
		}
		if errs[0].Pos.Filename != d.name {
			t.Errorf("%s: bad error position %v", d.name, errs[0].Pos)
		}
	}
}

// error positions must point at the offending token.
func TestAssemble_errorPos(t *testing.T) {
	code := "hlt\n  frob\nin #1"
	_, err := asm.Assemble("pos", strings.NewReader(code))
	errs := err.(asm.ErrAsm)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", err)
	}
	if p := errs[0].Pos; p.Line != 2 || p.Column != 3 {
		t.Errorf("bad position for %v", errs[0])
	}
	if p := errs[1].Pos; p.Line != 3 || p.Column != 4 {
		t.Errorf("bad position for %v", errs[1])
	}
	if !strings.HasPrefix(err.Error(), "pos:2:3: unknown mnemonic frob\npos:3:4: ") {
		t.Errorf("bad error message %q", err.Error())
	}
}

func TestAssemble_maxErrors(t *testing.T) {
	code := strings.Repeat("nop ", 20)
	_, err := asm.Assemble("max", strings.NewReader(code))
	if errs := err.(asm.ErrAsm); len(errs) != 10 {
		t.Fatalf("expected 10 errors, got %d", len(errs))
	}
}

func TestDisassemble(t *testing.T) {
	data := []struct {
		code string
		pc   int
		ins  string
		next int
	}{
		{"1002,4,3,4,33", 0, "mul 4 #3 4", 4},
		{"1002,4,3,4,33", 4, ".dat 33", 5},
		{"3,0,4,0,99", 2, "out 0", 4},
		{"1105,1,9", 0, "jt #1 #9", 3},
		{"108,8,3,4", 0, "eq #8 3 4", 4},
		{"99", 0, "hlt", 1},
		{"-1", 0, ".dat -1", 1},
		{"1,0", 0, ".dat 1", 1},
		{"1,0", 2, "", 2},
	}
	for _, d := range data {
		img, err := vm.ParseString(d.code)
		if err != nil {
			t.Fatal(err)
		}
		var b bytes.Buffer
		next, err := asm.Disassemble(img, d.pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != d.ins || next != d.next {
			t.Errorf("%s @%d: expected %q, %d, got %q, %d", d.code, d.pc, d.ins, d.next, b.String(), next)
		}
	}
}

// disassembled code must assemble back to the same image.
func TestRoundTrip(t *testing.T) {
	const code = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	img, err := vm.ParseString(code)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	for pc := 0; pc < len(img); {
		if pc, err = asm.Disassemble(img, pc, &b); err != nil {
			t.Fatal(err)
		}
		b.WriteByte('\n')
	}
	src := b.String()
	out, err := asm.Assemble("roundtrip", &b)
	if err != nil {
		t.Fatalf("%v\n%s", err, src)
	}
	if !out.Equal(img) {
		t.Fatalf("expected %v, got %v\n%s", img, out, src)
	}
}
