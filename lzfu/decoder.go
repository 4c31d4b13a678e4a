// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzfu

import "encoding/binary"

// Decompress parses a compressed RTF container and returns the original
// document bytes.
//
// The checksum is verified before any token is interpreted: a compressed
// container must carry the checksum of its payload, an uncompressed one must
// carry zero. The declared rawSize is advisory; for compressed containers
// the end-of-stream marker governs termination and the produced bytes are
// returned even if their count disagrees with the header.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < hdrSize {
		return nil, ErrShortHeader
	}
	compSize := int64(binary.LittleEndian.Uint32(data[0:4]))
	rawSize := int64(binary.LittleEndian.Uint32(data[4:8]))
	compType := string(data[8:12])
	crc := binary.LittleEndian.Uint32(data[12:16])

	// compSize counts everything after itself, so the payload spans
	// [hdrSize, compSize+4).
	if compSize < hdrSize-4 || compSize+4 > int64(len(data)) {
		return nil, ErrTruncated
	}
	payload := data[hdrSize : compSize+4]

	switch compType {
	case typeUncompressed:
		if crc != 0 {
			return nil, ErrBadCRC
		}
		if rawSize < int64(len(payload)) {
			payload = payload[:rawSize]
		}
		return append([]byte(nil), payload...), nil
	case typeCompressed:
		if updateCRC(0, payload) != crc {
			return nil, ErrBadCRC
		}
		return inflate(payload, rawSize), nil
	default:
		return nil, ErrUnknownType
	}
}

// inflate replays the token stream against a fresh dictionary. Reference
// expansion must write through the dictionary one byte at a time since a
// reference may legitimately read bytes it is itself producing; copying the
// span up front would corrupt such runs.
//
// Termination is primarily by the end-of-stream marker, a reference whose
// offset equals the current write position. Running out of payload, even in
// the middle of a group, also terminates cleanly: some encoders truncate or
// pad the final group rather than emit a marker.
func inflate(payload []byte, sizeHint int64) []byte {
	var dict dictionary
	dict.Init()

	// The header-declared size is untrusted; cap the allocation by the
	// maximum possible expansion of the payload.
	if max := int64(len(payload)) * maxMatchLen / 2; sizeHint > max {
		sizeHint = max
	}
	out := make([]byte, 0, sizeHint)

	for in := 0; in < len(payload); {
		ctrl := payload[in]
		in++
		for bit := uint(0); bit < 8 && in < len(payload); bit++ {
			if ctrl&(1<<bit) == 0 {
				c := payload[in]
				in++
				out = append(out, c)
				dict.Push(c)
				continue
			}
			if in+2 > len(payload) {
				return out // Truncated reference; treat as end of stream
			}
			ref := uint16(payload[in+0])<<8 | uint16(payload[in+1])
			in += 2
			off := int(ref>>4) & 0xfff
			if off == dict.wpos {
				return out // End-of-stream marker
			}
			n := int(ref&0xf) + minMatchLen
			for k := 0; k < n; k++ {
				c := dict.buf[(off+k)%dictSize]
				out = append(out, c)
				dict.Push(c)
			}
		}
	}
	return out
}
