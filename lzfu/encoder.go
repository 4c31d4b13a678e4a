// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzfu

import "encoding/binary"

// Compress encodes data as a compressed RTF container and returns the
// container bytes. If compressed is false, the data is stored verbatim
// under the uncompressed magic with a zero checksum, which trades size for
// encoding speed; readers must accept both flavors.
func Compress(data []byte, compressed bool) []byte {
	compType := typeUncompressed
	payload := data
	var crc uint32
	if compressed {
		compType = typeCompressed
		payload = deflate(data)
		crc = updateCRC(0, payload)
	}

	out := make([]byte, hdrSize, hdrSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(payload)+hdrSize-4))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(data)))
	copy(out[8:12], compType)
	binary.LittleEndian.PutUint32(out[12:16], crc)
	return append(out, payload...)
}

// deflate produces the token stream for data. Tokens come in groups of up to
// eight, led by a control byte whose bits are consumed LSB-first: a zero bit
// marks a literal byte, a one bit marks a 16-bit big-endian reference packing
// a 12-bit dictionary offset and a 4-bit length code. The stream always ends
// with a reference whose offset equals the write position, which the
// decompressor recognizes as the end-of-stream marker.
func deflate(data []byte) []byte {
	var dict dictionary
	dict.Init()

	var out []byte
	var group [2 * 8]byte // Worst case: eight references
	var ctrl byte
	var ngroup int
	var nbits uint

	for pos := 0; ; {
		if pos >= len(data) {
			ctrl |= 1 << nbits
			ref := uint16(dict.wpos) << 4
			group[ngroup+0] = byte(ref >> 8)
			group[ngroup+1] = byte(ref >> 0)
			ngroup += 2
			out = append(out, ctrl)
			return append(out, group[:ngroup]...)
		}

		off, n := dict.LongestMatch(data, pos)
		if n > 1 {
			ctrl |= 1 << nbits
			ref := uint16(off&0xfff)<<4 | uint16(n-minMatchLen)
			group[ngroup+0] = byte(ref >> 8)
			group[ngroup+1] = byte(ref >> 0)
			ngroup += 2
			pos += n
		} else {
			// Single-byte matches cost less as literals. The search already
			// pushed the byte if it found one; push here only if it did not.
			if n == 0 {
				dict.Push(data[pos])
			}
			group[ngroup] = data[pos]
			ngroup++
			pos++
		}

		if nbits++; nbits == 8 {
			out = append(out, ctrl)
			out = append(out, group[:ngroup]...)
			ctrl, ngroup, nbits = 0, 0, 0
		}
	}
}
