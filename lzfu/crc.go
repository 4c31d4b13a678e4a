// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzfu

import "hash/crc32"

// updateCRC returns the result of adding the bytes in buf to the crc.
//
// The checksum in a compressed RTF header uses the standard IEEE polynomial,
// but unlike RFC 1952 the register starts at zero and the final inversion is
// skipped. The table from hash/crc32 still applies as is; only the pre- and
// post-conditioning differ. A consequence of the missing conditioning is
// that the checksum of an empty payload is zero.
func updateCRC(crc uint32, buf []byte) uint32 {
	for _, c := range buf {
		crc = crc32.IEEETable[byte(crc)^c] ^ crc>>8
	}
	return crc
}
