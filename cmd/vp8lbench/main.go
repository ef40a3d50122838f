// Command vp8lbench measures the throughput of the lossless DSP hot loops
// on synthetic pixel data.
//
// Usage:
//
//	vp8lbench [-pixels n] [-iters n] [-cachebits n]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/deepteams/vp8ldsp"
)

func main() {
	pixels := flag.Int("pixels", 1<<20, "pixels per buffer")
	iters := flag.Int("iters", 200, "iterations per measurement")
	cacheBits := flag.Int("cachebits", 0, "color cache bits for the histogram run")
	flag.Parse()

	if *pixels <= 0 || *iters <= 0 || *cacheBits < 0 || *cacheBits > 11 {
		fmt.Fprintln(os.Stderr, "vp8lbench: invalid arguments")
		os.Exit(1)
	}

	simd := "scalar"
	if vp8ldsp.HasAVX2() {
		simd = "AVX2"
	}
	fmt.Printf("fast path: %s\n", simd)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	buf := make([]uint32, *pixels)
	for i := range buf {
		buf[i] = rng.Uint32()
	}
	m := &vp8ldsp.Multipliers{GreenToRed: 0x3c, GreenToBlue: 0xd2, RedToBlue: 0x0f}

	report("SubtractGreen", *pixels, *iters, func() {
		vp8ldsp.SubtractGreen(buf, len(buf))
	})
	report("TransformColor", *pixels, *iters, func() {
		vp8ldsp.TransformColor(m, buf, len(buf))
	})

	a := vp8ldsp.NewHistogram(*cacheBits)
	b := vp8ldsp.NewHistogram(*cacheBits)
	out := vp8ldsp.NewHistogram(*cacheBits)
	for _, p := range buf[:min(len(buf), 1<<16)] {
		a.AddSinglePixel(p)
		b.AddSinglePixel(p ^ 0xffffffff)
	}
	report("HistogramAdd", 4*256+40, *iters, func() {
		vp8ldsp.HistogramAdd(a, b, out)
	})
}

// report runs fn iters times and prints the average throughput, counting
// units (pixels or counters) processed per call.
func report(name string, units, iters int, fn func()) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	elapsed := time.Since(start)
	perCall := elapsed / time.Duration(iters)
	mps := float64(units) / perCall.Seconds() / 1e6
	fmt.Printf("%-16s %12v/call  %8.1f Munits/s\n", name, perCall, mps)
}
