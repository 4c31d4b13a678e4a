// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzfu implements the Compressed RTF data format.
//
// Compressed RTF (named "LZFu" here after its header magic) is the container
// that wraps the Rich Text Format bodies embedded in Outlook message files.
// It stores the document either verbatim or compressed with an LZ77-style
// scheme whose 4096-byte sliding dictionary is pre-seeded with a fixed list
// of common RTF keywords, so that even short documents compress well.
//
// The format is specified in MS-OXRTFCP:
//	https://msdn.microsoft.com/en-us/library/cc463890(v=exchg.80).aspx
//
// This package operates on whole in-memory buffers; the container has no
// meaningful notion of streaming since its header carries the total sizes
// up front.
package lzfu

import (
	"fmt"

	"github.com/dsnet/rtfcomp/internal/errors"
)

// The comp_type magics identifying the two container flavors.
// They appear verbatim at offset 8 of the header.
const (
	typeCompressed   = "LZFu"
	typeUncompressed = "MELA"
)

const (
	hdrSize  = 16   // compSize, rawSize, compType, and crc, 4 bytes each
	dictSize = 4096 // Size of the sliding dictionary

	minMatchLen = 2  // Shortest run a reference token can encode
	maxMatchLen = 17 // Longest run a reference token can encode
)

// initDict is the dictionary seed mandated by MS-OXRTFCP. The bytes are
// normative, including the literal CRLF pair; the remaining dictionary
// positions start out as spaces. The write position starts just past it.
const initDict = "{\\rtf1\\ansi\\mac\\deff0\\deftab720{\\fonttbl;}" +
	"{\\f0\\fnil \\froman \\fswiss \\fmodern \\fscript " +
	"\\fdecor MS Sans SerifSymbolArialTimes New RomanCourier" +
	"{\\colortbl\\red0\\green0\\blue0\r\n" +
	"\\par \\pard\\plain\\f0\\fs20\\b\\i\\u\\tab\\tx"

// Errors returned by Decompress. All of them leave the input unconsumed;
// there are no partial results.
var (
	ErrShortHeader error = errorf(errors.Corrupted, "header is too short")
	ErrTruncated   error = errorf(errors.Corrupted, "declared size exceeds input")
	ErrBadCRC      error = errorf(errors.Corrupted, "mismatching checksum")
	ErrUnknownType error = errorf(errors.Invalid, "unknown compression type")
)

func errorf(c int, f string, a ...interface{}) errors.Error {
	return errors.Error{Code: c, Pkg: "lzfu", Msg: fmt.Sprintf(f, a...)}
}
