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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// ErrPos is a single assembler error.
type ErrPos struct {
	Pos scanner.Position
	Msg string
}

func (e *ErrPos) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds the list of errors
// encountered while assembling, in order of appearance.
type ErrAsm []ErrPos

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stInstr = iota // accept anything
	stArg          // need an instruction operand
	stOrg          // need integer or const (for .org directive)
	stDat          // need integer, const or label (for .dat directive)
	stEqu          // need integer or const (for .equ value)
)

type parser struct {
	i       vm.Image
	pc      int
	max     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm
	state   int
	// instruction being assembled
	op    vm.Opcode
	insPC int
	argN  int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrPos{pos, msg})
	}
}

func (p *parser) tokError(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.error(pos, msg)
}

func (p *parser) write(v vm.Cell) {
	if p.pc < 0 {
		p.tokError("negative address " + strconv.Itoa(p.pc))
		p.pc++
		return
	}
	for p.pc >= len(p.i) {
		p.i = append(p.i, make(vm.Image, 256)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.max {
		p.max = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// value converts a token to an integer: Go integer literal, character literal
// or constant name.
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.tokError("invalid character literal " + s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

func validName(s string) bool {
	if s == "" || strings.ContainsAny(s[:1], "#:.'(-+0123456789") {
		return false
	}
	return true
}

// operand writes a value or label reference.
func (p *parser) operand(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	if !validName(s) {
		p.tokError("invalid operand " + s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func (p *parser) arg(s string) {
	imm := strings.HasPrefix(s, "#")
	if imm {
		s = s[1:]
	}
	if p.argN == p.op.Reads() && imm {
		p.tokError("immediate output operand for " + p.op.String())
	}
	if imm && p.insPC >= 0 {
		m := vm.Cell(100)
		for k := 0; k < p.argN; k++ {
			m *= 10
		}
		p.i[p.insPC] += m
	}
	p.operand(s)
	p.argN++
	if p.argN == p.op.Len()-1 {
		p.state = stInstr
	}
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		p.state = stOrg
	case ".dat":
		p.state = stDat
	case ".equ":
		t := p.s.Scan()
		if t != scanner.Ident {
			p.tokError(".equ: expected identifier, got " + p.s.TokenText())
			return
		}
		// the value is consumed even if the name is invalid
		p.state = stEqu
		p.cstName = p.s.TokenText()
		p.cstPos = p.s.Position
		if !validName(p.cstName) {
			p.tokError(".equ: invalid constant name " + p.cstName)
			p.cstName = ""
		} else if l, ok := p.labels[p.cstName]; ok {
			p.tokError(".equ: redefinition of " + p.cstName + ", previously defined/used as a label here: " + l.pos.String())
			p.cstName = ""
		}
	default:
		p.tokError("unknown directive " + s)
	}
}

func (p *parser) define(name string) {
	if !validName(name) {
		p.tokError("invalid label name " + strconv.Quote(name))
		return
	}
	if cst, ok := p.consts[name]; ok {
		p.tokError("label redefinition: " + name + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.tokError("label redefinition: " + name + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[name] = &label{labelSite{p.s.Position, p.pc}, nil}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.tokError(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.tokError("unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.tokError("unterminated comment")
				break
			}
			continue
		}

		switch p.state {
		case stArg:
			if s[0] == ':' || s[0] == '.' {
				p.tokError("missing operand for " + p.op.String() + ", got " + s)
				p.state = stInstr
				break
			}
			p.arg(s)
			continue
		case stOrg, stEqu:
			v, ok := p.value(s)
			if !ok {
				p.tokError("expected integer or constant, got " + s)
			} else if p.state == stOrg {
				p.pc = int(v)
			} else if p.cstName != "" {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			p.state = stInstr
			continue
		case stDat:
			p.operand(s)
			p.state = stInstr
			continue
		}

		switch s[0] {
		case ':':
			p.define(s[1:])
		case '.':
			p.directive(s)
		default:
			op, ok := vm.LookupOpcode(s)
			if !ok {
				p.tokError("unknown mnemonic " + s)
				continue
			}
			p.op, p.insPC, p.argN = op, p.pc, 0
			p.write(vm.Cell(op))
			if op.Len() > 1 {
				p.state = stArg
			}
		}
	}
	if p.state == stArg {
		p.tokError("missing operand for " + p.op.String())
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			if u.address >= 0 {
				p.i[u.address] = vm.Cell(l.address)
			}
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.i[:p.max], nil
}
