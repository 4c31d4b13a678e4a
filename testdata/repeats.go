// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates repeats.rtf. This test file heavily favors the dictionary
// compressor since a large bulk of its data is a copy from some distance
// ago. The distances stay well inside the 4096-byte window, so reference
// tokens keep paying off even after the dictionary wraps around.
//
// A fixed linear congruential generator is used instead of math/rand so
// that the output is reproducible across Go releases.
package main

import "io/ioutil"

const (
	name = "repeats.rtf"
	size = 1 << 16
)

func main() {
	seed := uint32(1)
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % n
	}

	words := []string{
		"\\par ", "\\pard", "\\plain", "\\tab ", "\\b bold\\b0 ",
		"\\i italic\\i0 ", "\\fs20 ", "\\fs24 ", "{\\colortbl;}",
		"hello ", "world ", "meeting ", "status ", "update ",
		"schedule ", "storage ", "message ", "the ", "and ", "of ",
	}

	b := []byte("{\\rtf1\\ansi\\ansicpg1252\\pard ")
	for len(b) < size {
		if next(4) > 0 && len(b) > 512 {
			// Copy a chunk from some distance ago. The distance floor
			// keeps the chunk strictly behind the write point.
			dist := 64 + next(384)
			cnt := 8 + next(56)
			off := len(b) - dist
			b = append(b, b[off:off+cnt]...)
		} else {
			b = append(b, words[next(len(words))]...)
		}
	}
	b = append(b, '}')

	if err := ioutil.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
