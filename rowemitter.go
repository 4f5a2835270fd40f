package simdcsv

import "math/bits"

// =============================================================================
// Row Emitter (spec §4.3)
// =============================================================================

// FieldRef is a half-open byte range [Start, End) into the original
// input buffer identifying one field's boundaries. Content between
// Start and End is never copied, unescaped, or interpreted; callers
// that want decoded text slice the original buffer themselves.
type FieldRef struct {
	Start int
	End   int
}

// RowRef is an ordered, non-empty list of field references sharing one
// row. emitRows never produces an empty field (Start == End); see
// emitRows for how zero-width spans are dropped.
type RowRef []FieldRef

// removeEscapedQuotations neutralizes escaped double-quote pairs
// ("") within a single 64-bit quotation word (spec §4.3.1):
//
//	pair    = q & (q << 1)        // MSB of each adjacent pair
//	escaped = pair | (pair >> 1)  // both bits of each pair
//	valid   = q &^ escaped
//
// Every bit of a run of two or more consecutive quote bits belongs to
// some adjacent pair, so such a run is removed entirely: a run of three
// leaves no isolated opener/closer behind. This is a consequence of
// the shift-and-mask rule rather than a special case.
//
// This does not span word boundaries: an escape pair straddling the
// boundary between word i and word i+1 is not recognized. That is a
// deliberate limitation of this core (spec §9), not a bug — fixing it
// would require carrying a one-bit "previous word ended on a lone
// quote" flag between words, which the row emitter's word-at-a-time
// contract deliberately avoids.
func removeEscapedQuotations(q uint64) uint64 {
	pair := q & (q << 1)
	escaped := pair | (pair >> 1)
	return q &^ escaped
}

// markInsideQuotations computes, via a parallel-prefix XOR, the
// inside-quotes mask of one word of unescaped quote bits (spec
// §4.3.2). x must already have escaped-quote pairs removed by
// removeEscapedQuotations. Each shift moves bits toward the MSB, i.e.
// toward earlier bytes, so after the final left shift bit k is set iff
// an odd number of quote bits lie below it: an odd number of quotes
// follow that byte within the word. For a word holding an even number
// of quotes this marks each quoted region from its opening quote up
// to, but not including, its closing quote. emitRows flips the mask
// for words where that does not hold (an odd quote count, or a word
// that starts inside a quoted region).
func markInsideQuotations(x uint64) uint64 {
	x ^= x << 1
	x ^= x << 2
	x ^= x << 4
	x ^= x << 8
	x ^= x << 16
	x ^= x << 32
	return x << 1
}

// emitRows walks the three per-class bitmap streams word by word and
// emits field and row references into the buffer the streams were
// built from. It never fails: an unterminated quote simply causes the
// remainder of the input to read as inside-quotes, so no further
// fields or rows are produced past that point (spec §4.3, Failure).
//
// commas, newlines, and quotes must have equal length and must have
// been produced by buildBitmaps over a Classifier's output for the
// same input.
//
// A zero-width span between two adjacent structural bytes (start ==
// end when one is reached) never becomes a FieldRef. This is what
// keeps a CRLF pair from closing a row twice, and applies uniformly:
// back-to-back commas collapse the same way a bare \r\n does, so
// "a,,c" reads as two fields ("a", "c"), not three with an empty
// field in between.
func emitRows(commas, newlines, quotes []uint64) []RowRef {
	var rows []RowRef
	var currentRow RowRef

	start, end := 0, 0
	inQuotes := false // whether the current word starts inside a quoted region

	for i := range quotes {
		validQuotes := removeEscapedQuotations(quotes[i])
		inside := markInsideQuotations(validQuotes)
		// inside marks bytes followed by an odd number of quotes in this
		// word; flip it when the word's quote parity and the carried-in
		// state disagree, so it marks bytes preceded (or matched) by an
		// odd number of quotes since the start of the input.
		oddQuotes := bits.OnesCount64(validQuotes)&1 == 1
		if oddQuotes != inQuotes {
			inside = ^inside
		}
		if oddQuotes {
			inQuotes = !inQuotes
		}
		outside := ^inside

		validCommas := commas[i] & outside
		validNewlines := newlines[i] & outside

		if validCommas == 0 && validNewlines == 0 {
			// Fast path: no structural characters in this word.
			end += 64
			continue
		}

		for {
			firstComma := bits.LeadingZeros64(validCommas)
			firstNewline := bits.LeadingZeros64(validNewlines)

			travel := firstComma
			if firstNewline < travel {
				travel = firstNewline
			}

			if travel == 64 {
				// No more structural characters in this word.
				end = (i + 1) * 64
				break
			}

			end += travel

			if start < end {
				currentRow = append(currentRow, FieldRef{Start: start, End: end})

				// Tie-break: with the current class encoding a byte
				// is never both a comma and a newline, so this
				// strict inequality only ever fires on a genuine
				// newline. Ties (were the class encoding ever
				// broadened) resolve as comma, per spec §4.3.3.
				if firstNewline < firstComma {
					rows = append(rows, currentRow)
					currentRow = nil
				}
			}

			// Consume the structural byte itself.
			end++
			validCommas <<= uint(travel + 1)
			validNewlines <<= uint(travel + 1)
			start = end
		}
	}

	return rows
}
