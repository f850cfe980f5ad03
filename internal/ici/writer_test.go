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

package ici_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	if *f <= 0 {
		return 0, io.ErrShortWrite
	}
	*f--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := ici.NewErrWriter(&b)
	w.WriteString("1,2")
	w.Write([]byte(",3"))
	if w.Err != nil || w.N != 5 || b.String() != "1,2,3" {
		t.Fatalf("got %q, n=%d, err=%v", b.String(), w.N, w.Err)
	}
	if ici.NewErrWriter(w) != w {
		t.Fatal("ErrWriter wrapped twice")
	}

	f := failWriter(1)
	w = ici.NewErrWriter(&f)
	w.WriteString("ok")
	w.WriteString("ko")
	if n, err := w.WriteString("again"); n != 0 || errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected sticky io.ErrShortWrite, got %d, %v", n, err)
	}
	if w.N != 2 {
		t.Fatalf("expected 2 bytes written, got %d", w.N)
	}
}
