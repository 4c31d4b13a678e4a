// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare the RTF container codec against general-purpose
// compressors. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-formats rtf,fl          \
//		-tests   encRate,ratio   \
//		-files   sample.rtf      \
//		-sizes   1e4,1e5
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/rtfcomp/internal/tool/bench"
)

var (
	formats = flag.String("formats", "rtf", "comma-separated list of formats to benchmark")
	tests   = flag.String("tests", "encRate,decRate,ratio", "comma-separated list of tests to run")
	codecs  = flag.String("codecs", "", "comma-separated list of codecs (default: all registered)")
	files   = flag.String("files", "sample.rtf,tags.rtf,repeats.rtf", "comma-separated list of input files")
	levels  = flag.String("levels", "6", "comma-separated list of compression levels")
	sizes   = flag.String("sizes", "1e4,1e5", "comma-separated list of input sizes")
	paths   = flag.String("paths", "", "colon-separated list of search paths for input files")
)

var testNames = map[string]int{
	"encRate": bench.TestEncodeRate,
	"decRate": bench.TestDecodeRate,
	"ratio":   bench.TestCompressRatio,
}

var formatNames = map[string]bench.Format{
	"rtf": bench.FormatRTF,
	"fl":  bench.FormatFlate,
	"xz":  bench.FormatXZ,
}

func main() {
	flag.Parse()
	if *paths != "" {
		bench.Paths = strings.Split(*paths, ":")
	}
	start := time.Now()

	for _, fs := range strings.Split(*formats, ",") {
		ft, ok := formatNames[fs]
		if !ok {
			fmt.Printf("unknown format: %q\n", fs)
			continue
		}
		cs := codecNames(ft)
		if len(cs) == 0 {
			continue
		}
		for _, ts := range strings.Split(*tests, ",") {
			tt, ok := testNames[ts]
			if !ok {
				fmt.Printf("unknown test: %q\n", ts)
				continue
			}
			fmt.Printf("BENCHMARK: %v:%v\n", ft, ts)
			results, names := bench.RunSuite(tt, ft, cs,
				strings.Split(*files, ","), parseInts(*levels), parseInts(*sizes),
				func() { fmt.Print(".") })
			fmt.Print("\n")
			printTable(ts, cs, names, results)
		}
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(start))
}

func codecNames(ft bench.Format) (cs []string) {
	if *codecs != "" {
		return strings.Split(*codecs, ",")
	}
	for c := range bench.Encoders[ft] {
		cs = append(cs, c)
	}
	sort.Strings(cs)
	return cs
}

func parseInts(s string) (ns []int) {
	for _, t := range strings.Split(s, ",") {
		n, err := strconv.ParsePrefix(t, strconv.AutoParse)
		if err != nil {
			fmt.Printf("invalid number: %q\n", t)
			continue
		}
		ns = append(ns, int(n))
	}
	return ns
}

func printTable(test string, cs, names []string, results [][]bench.Result) {
	unit := "MB/s"
	if test == "ratio" {
		unit = "ratio"
	}
	fmt.Printf("\t%-24s", "benchmark")
	for _, c := range cs {
		fmt.Printf("%10s %s%8s", c, unit, "delta")
	}
	fmt.Print("\n")
	for i, name := range names {
		fmt.Printf("\t%-24s", name)
		for _, r := range results[i] {
			fmt.Printf("%13.2f%7.2fx", r.R, r.D)
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
