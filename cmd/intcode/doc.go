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

// The intcode command line tool is a showcase for the packages
// github.com/db47h/intcode/vm, amp, probe and asm.
//
// Usage:
//
//	intcode [flags] command [file]
//
// Commands:
//
//	run	run a program
//	amp	find the phase settings giving the highest amplifier signal
//	probe	find the noun and verb that make a program output the probe target
//	asm	assemble a source file to program text
//	disasm	disassemble a program
//
// The file argument names the program to load, in text form (comma separated
// integers). "-" reads the program from stdin. For the asm command, it is the
// assembler source file.
//
// Flags:
//
//	-config filename
//		  load configuration from filename instead of looking up intcode.toml
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump VM state to stderr upon exit (run)
//	-in values
//		  comma separated input values (run, can be specified multiple times)
//	-limit n
//		  try nouns and verbs in [0, n) (probe) (default 100)
//	-log filename
//		  log to filename instead of stderr
//	-max-steps n
//		  abort after n instructions per VM instance (0 = no limit)
//	-noprompt
//		  do not prompt for input, even if stdin is a terminal (run)
//	-o filename
//		  filename to write the final memory image (run) or assembled program (asm) to
//	-phases settings
//		  comma separated phase settings (amp)
//	-resume filename
//		  resume VM from state file filename (run)
//	-save filename
//		  save VM state to filename when input runs out (run)
//	-target value
//		  probe target value (probe)
//	-topology topology
//		  amplifier network topology: chain or ring (amp) (default "ring")
//	-trace
//		  trace execution to stderr (run)
//	-v level
//		  log verbosity level
//
// -debug: will print a full stacktrace and dump the VM state should the VM
// crash.
//
// Configuration:
//
// Unless -config is given, intcode looks up a file named intcode.toml in the
// current directory and its parents. See package
// github.com/db47h/intcode/config for its format. Flags given on the command
// line override values from the file.
//
// Input:
//
// In run mode, values given with -in are queued before the program starts.
// When the program needs more input, values are read from stdin, separated by
// white space. If stdin is a terminal, a "? " prompt is printed first.
//
// If stdin reaches end of file and -save is set, the VM state is saved to the
// given file and intcode exits normally. The run can be continued later with
// -resume:
//
//	intcode -in 5 -save day7.state run day7.txt < /dev/null
//	intcode -resume day7.state -in 0 run
//
// Without -save, running out of input is an error.
//
// Amplifiers:
//
// If no phase settings are given, amp tries all permutations of 0 to 4 for a
// chain, and 5 to 9 for a ring.
package main
