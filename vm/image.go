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
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Image encapsulates a VM's memory: program and data live in the same flat
// slice of cells. Addresses are plain integers.
type Image []Cell

// Fetch returns the value stored at address addr.
func (i Image) Fetch(addr Cell) (Cell, error) {
	if addr < 0 || addr >= Cell(len(i)) {
		return 0, &AddressError{addr, len(i)}
	}
	return i[addr], nil
}

// Store writes v at address addr.
func (i Image) Store(addr Cell, v Cell) error {
	if addr < 0 || addr >= Cell(len(i)) {
		return &AddressError{addr, len(i)}
	}
	i[addr] = v
	return nil
}

// Clone returns an exclusive copy of the image.
func (i Image) Clone() Image {
	if i == nil {
		return nil
	}
	c := make(Image, len(i))
	copy(c, i)
	return c
}

// Equal returns true if both images have the same length and contents.
func (i Image) Equal(o Image) bool {
	if len(i) != len(o) {
		return false
	}
	for k := range i {
		if i[k] != o[k] {
			return false
		}
	}
	return true
}

// WriteTo writes the image in its canonical text form: comma separated
// decimal values on a single line, without a trailing new line.
func (i Image) WriteTo(w io.Writer) (int64, error) {
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 24)
	for k, v := range i {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		ew.Write(b)
	}
	return ew.N, ew.Err
}

func (i Image) String() string {
	var b strings.Builder
	i.WriteTo(&b)
	return b.String()
}

// Parse reads a program in text form from r. The program must be a single
// line of comma separated decimal integers. Surrounding white space is
// ignored, as is white space around individual values.
//
// If any token is malformed, Parse returns a nil Image and a *ParseError.
func Parse(r io.Reader) (Image, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Image{}, nil
	}
	toks := bytes.Split(data, []byte{','})
	img := make(Image, len(toks))
	for k, t := range toks {
		s := string(bytes.TrimSpace(t))
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &ParseError{k, s, err}
		}
		img[k] = Cell(n)
	}
	return img, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Image, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program in text form from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", fileName)
	}
	return img, nil
}

// Save writes the image in text form to file fileName. The file is removed if
// an error occurs while writing.
func Save(fileName string, img Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = img.WriteTo(w); err != nil {
		return err
	}
	_, err = w.WriteString("\n")
	return errors.Wrap(err, "write failed")
}
