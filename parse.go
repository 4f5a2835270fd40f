package simdcsv

// ParseBytes parses data directly (zero-copy) and returns one RowRef
// per row. Field and row boundaries are byte ranges into data itself;
// no content is copied, unescaped, or validated. Empty input returns
// nil.
func ParseBytes(data []byte) []RowRef {
	if len(data) == 0 {
		return nil
	}

	vectors := NewClassifier(data).Classify()
	commas, newlines, quotes := buildBitmaps(vectors)
	return emitRows(commas, newlines, quotes)
}

// ParseBytesStreaming parses data and invokes callback once per row,
// in order. It builds the full []RowRef first (via ParseBytes) and
// then delivers the rows one at a time. If callback returns an error,
// delivery stops and that error is returned.
//
// The structural scan itself is total and only ever classifies bytes;
// it cannot detect a mid-stream callback failure, so the remaining
// rows already computed are simply not delivered once callback errors.
func ParseBytesStreaming(data []byte, callback func(RowRef) error) error {
	if len(data) == 0 {
		return nil
	}

	for _, row := range ParseBytes(data) {
		if err := callback(row); err != nil {
			return err
		}
	}
	return nil
}
