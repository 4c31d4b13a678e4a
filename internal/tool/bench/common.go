// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the RTF container codec against general-purpose
// compressors with respect to encode speed, decode speed, and ratio.
// Individual implementations are referred to as codecs and register
// themselves in init functions, keyed by format and name.
package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/rtfcomp/internal/testutil"
)

type Format int

const (
	FormatRTF Format = iota // The compressed RTF container itself
	FormatFlate
	FormatXZ
)

func (f Format) String() string {
	switch f {
	case FormatRTF:
		return "rtf"
	case FormatFlate:
		return "fl"
	case FormatXZ:
		return "xz"
	default:
		return "unknown"
	}
}

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[Format]map[string]Encoder
	Decoders map[Format]map[string]Decoder

	// List of search paths for test files.
	Paths = []string{"../../../testdata"}
)

func RegisterEncoder(format Format, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[Format]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format Format, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[Format]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// BenchmarkEncoder benchmarks a single encoder on the given input data using
// the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(ioutil.Discard, lvl)
			_, err := io.Copy(wr, bytes.NewBuffer(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bufio.NewReader(bytes.NewBuffer(input)))
			cnt, err := io.Copy(ioutil.Discard, rd)
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(cnt)
		}
	})
}

// Result is a single benchmark outcome: a rate in MB/s for the rate tests,
// or the uncompressed-to-compressed ratio for the ratio test.
type Result struct {
	R float64
	D float64 // Ratio relative to the first codec in the run
}

// RunSuite runs the given test for every codec across all files, levels, and
// sizes. The first dimension of results is len(files)*len(levels)*len(sizes)
// and the second is len(codecs); names labels the first dimension.
func RunSuite(test int, format Format, codecs, files []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	for _, f := range files {
		for _, l := range levels {
			for _, n := range sizes {
				input, err := testutil.LoadFile(getPath(f), n)
				names = append(names, getName(f, l, len(input)))
				row := make([]Result, len(codecs))
				for j, c := range codecs {
					if tick != nil {
						tick()
					}
					if err == nil {
						row[j] = runOne(test, format, c, input, l)
					}
					row[j].D = row[j].R / row[0].R
				}
				results = append(results, row)
			}
		}
	}
	return results, names
}

func runOne(test int, format Format, codec string, input []byte, lvl int) Result {
	enc, dec := Encoders[format][codec], Decoders[format][codec]
	switch test {
	case TestEncodeRate:
		if enc == nil {
			return Result{}
		}
		return rate(BenchmarkEncoder(input, enc, lvl))
	case TestDecodeRate:
		if enc == nil || dec == nil {
			return Result{}
		}
		output, err := encodeBytes(enc, input, lvl)
		if err != nil {
			return Result{}
		}
		return rate(BenchmarkDecoder(output, dec))
	case TestCompressRatio:
		if enc == nil {
			return Result{}
		}
		output, err := encodeBytes(enc, input, lvl)
		if err != nil {
			return Result{}
		}
		return Result{R: float64(len(input)) / float64(len(output))}
	default:
		return Result{}
	}
}

func encodeBytes(enc Encoder, input []byte, lvl int) ([]byte, error) {
	buf := new(bytes.Buffer)
	wr := enc(buf, lvl)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rate(r testing.BenchmarkResult) Result {
	if r.N == 0 {
		return Result{}
	}
	us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
	return Result{R: float64(r.Bytes) / us}
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, l, n int) string {
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	return fmt.Sprintf("%s:%d:%s", path.Base(f), l, s)
}
