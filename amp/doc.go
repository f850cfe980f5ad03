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

// Package amp chains Intcode VM instances into amplifier networks and
// searches for the phase settings that produce the strongest signal.
//
// Each amplifier runs its own copy of the same program. It is given its phase
// setting as first input, then the signal output by the previous amplifier.
// In a Chain, the signal goes once through every amplifier. In a Ring, the
// output of the last amplifier is fed back into the first one until the last
// amplifier halts.
//
// All amplifiers run on the caller's goroutine: a Network resumes each
// vm.Instance in turn, passing the signal from one to the next.
package amp
