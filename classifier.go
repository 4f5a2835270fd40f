package simdcsv

// =============================================================================
// Classifier (spec §4.1)
// =============================================================================
//
// Classifier walks an input buffer in 16-byte strides and produces one
// lane16 class vector per stride, each lane holding the structural
// class (COMMA, NEWLINE, QUOTATION, or 0) of the corresponding input
// byte. It never mutates or copies the input past the padded tail
// scratch vector, and it never fails: an empty input yields no
// vectors at all.
//
// =============================================================================

// Classifier produces class vectors from an input buffer.
type Classifier struct {
	data []byte
}

// NewClassifier returns a Classifier over data. The Classifier borrows
// data for its entire lifetime and never copies or mutates it.
func NewClassifier(data []byte) *Classifier {
	return &Classifier{data: data}
}

// Classify returns one lane16 per 16-byte stride of the input, in
// order. When the final real byte of the input is not a line
// terminator (0x0A or 0x0D), a synthetic 0x0A is folded into the
// output as an extra class bit so that the final row is always
// terminated — regardless of whether the input length is a multiple
// of 16. The synthetic byte never appears in the input buffer itself;
// it exists only as a NEWLINE class bit in the returned vectors.
func (c *Classifier) Classify() []lane16 {
	n := len(c.data)
	if n == 0 {
		return nil
	}

	fullChunks := n / laneCount
	remainder := n % laneCount

	last := c.data[n-1]
	needsSynthetic := last != 0x0A && last != 0x0D

	vectors := make([]lane16, 0, fullChunks+2)
	for i := 0; i < fullChunks; i++ {
		vectors = append(vectors, classifyChunk(loadLane16(c.data[i*laneCount:(i+1)*laneCount])))
	}

	if remainder > 0 {
		var scratch lane16
		copy(scratch[:], c.data[fullChunks*laneCount:])
		if needsSynthetic {
			// remainder < laneCount is guaranteed here, so there is
			// always a free lane immediately after the real tail.
			scratch[remainder] = 0x0A
		}
		vectors = append(vectors, classifyChunk(scratch))
	} else if needsSynthetic {
		// Input length is an exact multiple of 16 and does not end in
		// a line terminator: unify the synthetic-terminator logic
		// (spec §9, "Trailing field without synthetic newline") by
		// emitting one more vector carrying only the synthetic
		// newline, rather than silently losing the final row.
		var scratch lane16
		scratch[0] = 0x0A
		vectors = append(vectors, classifyChunk(scratch))
	}

	return vectors
}
