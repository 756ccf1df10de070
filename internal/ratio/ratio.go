// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package ratio compares n-ary Huffman code sizes against general purpose
// compressors on the same input.
package ratio

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/intel/naryhuff/compress/huffman"
)

// Result is the size one method needs for the input.
type Result struct {
	Name string
	// Size in bytes. Huffman sizes assume each digit is packed into
	// log2(order) bits.
	Size int
	// Digits is the length of the digit string, zero for byte compressors.
	Digits uint64
}

// Report holds the results for one input.
type Report struct {
	Input   int
	Entropy float64 // bits per byte
	Results []Result
}

var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("ratio: zstd encoder initialization failed: " + err.Error())
	}
}

// Compare builds a codec of every order over the byte frequencies of data
// and measures it next to the optimal binary code, zstd, lz4 and flate.
func Compare(data []byte, orders []int) (*Report, error) {
	pairs := huffman.CountBytes(data)
	r := &Report{Input: len(data)}

	freqs := make([]uint64, len(pairs))
	for i, p := range pairs {
		freqs[i] = p.Frequency
	}
	optimal := huffman.OptimalBinaryCost(freqs)
	r.Results = append(r.Results, Result{Name: "optimal/2", Size: packed(optimal, 2), Digits: optimal})

	for _, order := range orders {
		codec, err := huffman.NewCodec(order, pairs)
		if err != nil {
			return nil, err
		}
		s := codec.Stats()
		r.Entropy = s.Entropy
		r.Results = append(r.Results, Result{
			Name:   fmt.Sprintf("huffman/%d", order),
			Size:   packed(s.WeightedLength, order),
			Digits: s.WeightedLength,
		})
	}

	compressed := zstdEncoder.EncodeAll(data, nil)
	r.Results = append(r.Results, Result{Name: "zstd", Size: len(compressed)})

	n, err := compressLZ4(data)
	if err != nil {
		return nil, err
	}
	r.Results = append(r.Results, Result{Name: "lz4", Size: n})

	for _, level := range []int{flate.BestSpeed, flate.BestCompression} {
		n, err := compressFlate(data, level)
		if err != nil {
			return nil, err
		}
		r.Results = append(r.Results, Result{Name: fmt.Sprintf("flate/%d", level), Size: n})
	}
	return r, nil
}

func packed(digits uint64, order int) int {
	bits := float64(digits) * math.Log2(float64(order))
	return int(math.Ceil(bits / 8))
}

func compressLZ4(data []byte) (int, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}
	// incompressible input is stored as is
	if n == 0 {
		return len(data), nil
	}
	return n, nil
}

func compressFlate(data []byte, level int) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return 0, err
	}
	w.Write(data)
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// Write prints the report as right aligned columns, one row per method.
func (r *Report) Write(out io.Writer) error {
	cw := tabwriter.NewWriter(out, 0, 12, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(cw, "input %d bytes, entropy %.3f bits/byte\t\n", r.Input, r.Entropy)
	fmt.Fprintln(cw, strings.Join([]string{"method", "digits", "bytes", "ratio"}, "\t")+"\t")
	for _, res := range r.Results {
		digits := "-"
		if res.Digits > 0 {
			digits = fmt.Sprint(res.Digits)
		}
		ratio := 0.0
		if r.Input > 0 {
			ratio = float64(res.Size) / float64(r.Input)
		}
		fmt.Fprintf(cw, "%s\t%s\t%d\t%.2f\t\n", res.Name, digits, res.Size, ratio)
	}
	return cw.Flush()
}
