// +build !debug

//
// Bitboard-Chess-Engine - a bitboard/magic-bitboard move generation core
//
// MIT License
//
// Copyright (c) 2020-2026 Bitboard-Chess-Engine contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert gates cheap correctness checks behind a build tag so
// they cost nothing in a release build. Call sites should still guard
// with "if assert.DEBUG { ... }" around the call, since Go evaluates a
// function's arguments before finding out the body is empty.
package assert

// DEBUG is true only when built with -tags debug.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// A no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
