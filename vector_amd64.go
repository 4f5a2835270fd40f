//go:build goexperiment.simd && amd64

package simdcsv

import (
	"simd/archsimd"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// =============================================================================
// AVX/SSE Classification Fast Path
// =============================================================================
//
// NOTE: simd/archsimd is an experimental package gated behind
// GOEXPERIMENT=simd (Go 1.26). Its API surface and instruction
// selection are still in flux; see https://github.com/golang/go/issues/73787
// and https://go.dev/doc/go1.26. As with the teacher's AVX-512 mask
// generator, we gate actual use of the vector instructions on a
// runtime CPU feature check — the build tag only proves the toolchain
// *can* emit them, not that the CPU the binary runs on supports them.
//
// TODO: revisit once archsimd exposes a stable nibble-indexed
// shuffle/table-lookup op name; Int8x16.Shuffle below tracks the
// proposal's working name as of Go 1.26 and may need renaming.
//
// =============================================================================

// useSIMDClassify indicates whether the archsimd-accelerated
// classifier path is used. Computed once at init time.
var useSIMDClassify bool

func init() {
	// PSHUFB (the nibble-table-lookup instruction the classifier
	// needs) requires SSSE3 at minimum; AVX2 lets archsimd fold the
	// nibble-split and lookup into fewer, wider instructions.
	useSIMDClassify = cpu.X86.HasSSSE3
}

// classifyLane16SIMD classifies one 16-byte chunk using archsimd
// vector instructions. It must produce byte-identical output to
// classifyLane16Scalar for every input.
func classifyLane16SIMD(chunk lane16) lane16 {
	hiTable := archsimd.LoadInt8x16((*[laneCount]int8)(unsafe.Pointer(&hiLookup[0])))
	loTable := archsimd.LoadInt8x16((*[laneCount]int8)(unsafe.Pointer(&loLookup[0])))
	nibbleMask := archsimd.BroadcastInt8x16(0x0F)

	data := archsimd.LoadInt8x16((*[laneCount]int8)(unsafe.Pointer(&chunk[0])))
	hiNibbles := data.ShiftAllRight(4).And(nibbleMask)
	loNibbles := data.And(nibbleMask)

	result := hiTable.Shuffle(hiNibbles).And(loTable.Shuffle(loNibbles))

	var out lane16
	result.Store((*[laneCount]int8)(unsafe.Pointer(&out[0])))
	return out
}
