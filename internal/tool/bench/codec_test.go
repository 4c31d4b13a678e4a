// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/rtfcomp/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid
// input for each registered decoder of the same format.
func TestCodecs(t *testing.T) {
	files := []string{"sample.rtf", "tags.rtf", "repeats.rtf"}
	for _, fl := range files {
		data := testutil.MustLoadFile(getPath(fl), -1)
		t.Run(fmt.Sprintf("File:%v", fl), func(t *testing.T) { testFormats(t, data) })
	}
}

func testFormats(t *testing.T, data []byte) {
	for _, ft := range []Format{FormatRTF, FormatFlate, FormatXZ} {
		ft := ft
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) {
			for encName, enc := range Encoders[ft] {
				output, err := encodeBytes(enc, data, 6)
				if err != nil {
					t.Fatalf("%s: unexpected encode error: %v", encName, err)
				}
				for decName, dec := range Decoders[ft] {
					buf := new(bytes.Buffer)
					rd := dec(bytes.NewReader(output))
					if _, err := io.Copy(buf, rd); err != nil {
						t.Errorf("%s|%s: unexpected decode error: %v", encName, decName, err)
						continue
					}
					if err := rd.Close(); err != nil {
						t.Errorf("%s|%s: unexpected close error: %v", encName, decName, err)
						continue
					}
					if !bytes.Equal(buf.Bytes(), data) {
						t.Errorf("%s|%s: round-trip mismatch", encName, decName)
					}
				}
			}
		})
	}
}
