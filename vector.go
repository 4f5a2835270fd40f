// Package simdcsv provides a structural CSV scanner: a two-stage
// vectorized classifier and bitmap row emitter that produce byte-range
// field and row references into the caller's input buffer, without
// copying or unescaping field contents.
package simdcsv

// =============================================================================
// Class Encoding
// =============================================================================
//
// A class byte is a 3-valued tag, not a set of ORable flags: a given
// input byte belongs to at most one of these classes. COMMA and
// QUOTATION happen to share a high-nibble lookup bucket (see
// loLookup/hiLookup below) but the low-nibble table disambiguates them,
// so the AND of the two table lookups always yields a single class or
// zero. Do not reinterpret these as bit flags in the bitmap stage.
//
// =============================================================================

const (
	classComma     byte = 1
	classNewline   byte = 2
	classQuotation byte = 4
)

// laneCount is the width, in bytes, of one classifier vector.
const laneCount = 16

// loLookup and hiLookup are indexed by the low and high nibble of each
// input byte respectively. Their bitwise AND at matching lanes yields
// the byte's class, or zero for ordinary payload. The table layout
// follows the original Rust classifier's LO_LOOKUP/HI_LOOKUP, but the
// three class values are bit-disjoint (1, 2, 4): were QUOTATION 3, its
// bits would overlap NEWLINE's and the AND would classify 0x02, '*'
// and '-' as NEWLINE.
var (
	loLookup = lane16{
		0, 0, classQuotation, 0,
		0, 0, 0, 0,
		0, 0, classNewline, 0,
		classComma, classNewline, 0, 0,
	}
	hiLookup = lane16{
		classNewline, 0, classComma | classQuotation, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
)

// =============================================================================
// Vector Primitive — external SIMD-shim collaborator (spec §6)
// =============================================================================
//
// lane16 is the 16-lane unsigned-byte vector the classifier is built
// on. This file is the portable reference implementation: it always
// compiles and is correct on every platform, processing one byte per
// lane per call rather than one instruction per vector. vector_amd64.go
// adds a faster, compile-time-selected path for the one operation
// worth accelerating (classification of a full 16-byte chunk) when
// built with GOEXPERIMENT=simd on amd64 and the CPU supports it; that
// path produces byte-identical lane16 values to this one.
//
// =============================================================================

// lane16 holds 16 lanes of one byte each.
type lane16 [laneCount]byte

// loadLane16 loads a 16-byte vector from a slice. The slice must be
// exactly laneCount bytes; shorter tails are handled by the caller
// (the classifier) via a zero-padded scratch buffer.
func loadLane16(b []byte) lane16 {
	var v lane16
	copy(v[:], b)
	return v
}

// broadcastLane16 fills every lane with the same byte value.
func broadcastLane16(b byte) lane16 {
	var v lane16
	for i := range v {
		v[i] = b
	}
	return v
}

// nibbles splits each lane into its high and low 4-bit halves.
func (v lane16) nibbles() (hi, lo lane16) {
	for i, b := range v {
		hi[i] = b >> 4
		lo[i] = b & 0x0F
	}
	return hi, lo
}

// lookup treats v as a 16-entry table and indices as a vector of
// lane-index values (only the low 4 bits of each lane are
// significant), returning the gathered table entries. This is the
// nibble-indexed tbl/shuffle instruction from spec §4.1.
func (v lane16) lookup(indices lane16) lane16 {
	var out lane16
	for i, idx := range indices {
		out[i] = v[idx&0x0F]
	}
	return out
}

// and returns the lane-wise bitwise AND of v and other.
func (v lane16) and(other lane16) lane16 {
	var out lane16
	for i := range v {
		out[i] = v[i] & other[i]
	}
	return out
}

// equal returns, per lane, 0xFF if the lanes match and 0 otherwise.
func (v lane16) equal(other lane16) lane16 {
	var out lane16
	for i := range v {
		if v[i] == other[i] {
			out[i] = 0xFF
		}
	}
	return out
}

// toBits extracts a 16-bit mask where bit 15-i is set iff lane i is
// nonzero (the class-bitset convention used throughout this package).
func (v lane16) toBits() uint16 {
	var mask uint16
	for i, b := range v {
		if b != 0 {
			mask |= 1 << uint(laneCount-1-i)
		}
	}
	return mask
}

// classifyLane16Scalar runs the nibble-lookup classification
// (spec §4.1) over exactly one 16-byte chunk using the portable
// lane16 operations above.
func classifyLane16Scalar(chunk lane16) lane16 {
	hi, lo := chunk.nibbles()
	return hiLookup.lookup(hi).and(loLookup.lookup(lo))
}

// classifyChunk classifies one 16-byte chunk, dispatching to the
// archsimd-accelerated path when available (vector_amd64.go) and
// falling back to the portable scalar path otherwise.
func classifyChunk(chunk lane16) lane16 {
	if useSIMDClassify {
		return classifyLane16SIMD(chunk)
	}
	return classifyLane16Scalar(chunk)
}
