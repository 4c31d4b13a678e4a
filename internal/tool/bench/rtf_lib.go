// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/dsnet/rtfcomp/lzfu"
)

// The lzfu codec operates on whole buffers, so the io adapters gather all
// input and convert on Close (encode) or first Read (decode). The level
// argument is ignored; the format has no compression knobs.
func init() {
	RegisterEncoder(FormatRTF, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &rtfWriter{wr: w, compressed: true}
		})
	RegisterEncoder(FormatRTF, "raw",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &rtfWriter{wr: w}
		})
	RegisterDecoder(FormatRTF, "ds",
		func(r io.Reader) io.ReadCloser {
			return &rtfReader{rd: r}
		})
}

type rtfWriter struct {
	buf        bytes.Buffer
	wr         io.Writer
	compressed bool
}

func (zw *rtfWriter) Write(buf []byte) (int, error) {
	return zw.buf.Write(buf)
}

func (zw *rtfWriter) Close() error {
	_, err := zw.wr.Write(lzfu.Compress(zw.buf.Bytes(), zw.compressed))
	return err
}

type rtfReader struct {
	rd  io.Reader
	out *bytes.Reader
}

func (zr *rtfReader) Read(buf []byte) (int, error) {
	if zr.out == nil {
		input, err := ioutil.ReadAll(zr.rd)
		if err != nil {
			return 0, err
		}
		output, err := lzfu.Decompress(input)
		if err != nil {
			return 0, err
		}
		zr.out = bytes.NewReader(output)
	}
	return zr.out.Read(buf)
}

func (zr *rtfReader) Close() error {
	return nil
}
