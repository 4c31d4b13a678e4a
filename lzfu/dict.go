// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzfu

// dictionary is the sliding window shared by the compressor and the
// decompressor. Both sides push every produced byte through it in lock-step,
// wrapping around at dictSize, so a reference token on the wire resolves to
// the same bytes on both ends.
type dictionary struct {
	buf  [dictSize]byte
	wpos int // Next write position, always in [0, dictSize)
}

// Init resets the dictionary to the initial state: the RTF keyword seed
// followed by spaces, with the write position just past the seed.
func (d *dictionary) Init() {
	n := copy(d.buf[:], initDict)
	for i := n; i < dictSize; i++ {
		d.buf[i] = ' '
	}
	d.wpos = n
}

// Push appends c at the write position, wrapping around on overflow.
func (d *dictionary) Push(c byte) {
	d.buf[d.wpos] = c
	d.wpos = (d.wpos + 1) % dictSize
}

// LongestMatch scans the dictionary for the longest prefix of data[pos:]
// that a single reference token can encode and returns its dictionary
// offset and length. A zero length means data[pos] was not found in the
// scanned range, which starts at index 0 and ends at the scan bound described
// below; once the dictionary has wrapped around, the bytes above that bound
// are not examined. The input position is not advanced; that is the caller's
// job.
//
// Every byte of the best match is pushed into the dictionary as the match
// grows, so a match may extend into bytes produced by itself. This is what
// lets a run like "WXYZWXYZWXYZ" collapse into one token. The scan stops at
// the entry write position plus the best length found so far, which keeps it
// from chasing its own pushes forever. The returned offset is the raw scan
// index of the match start and is not reduced modulo dictSize; because a new
// best match always starts below the entry write position, it stays within
// [0, dictSize).
//
// On a mismatch the input cursor must back up by the in-progress match
// length plus one, since the byte that broke the match was consumed too.
// Ties go to the lowest offset.
func (d *dictionary) LongestMatch(data []byte, pos int) (off, n int) {
	if pos >= len(data) {
		return 0, 0
	}
	wstart := d.wpos
	cur := pos
	c := data[cur]
	cur++
	var matchLen int
	for i := 0; ; {
		if d.buf[i%dictSize] == c {
			matchLen++
			if n < matchLen && matchLen <= maxMatchLen {
				off = i - matchLen + 1
				d.Push(c)
				n = matchLen
			}
			if cur >= len(data) {
				return off, n
			}
			c = data[cur]
			cur++
		} else {
			cur -= matchLen + 1
			matchLen = 0
			c = data[cur]
			cur++
		}
		if i++; i >= wstart+n {
			return off, n
		}
	}
}
