package simdcsv

import (
	"io"
	"sync"
)

// ============================================================================
// Public Types
// ============================================================================

// Reader reads an entire input source once and exposes its structural
// rows as RowRef slices into the buffered input. Unlike encoding/csv,
// Reader does not decode, unescape, or validate field contents — it
// only locates field and row boundaries.
type Reader struct {
	source io.Reader
	opts   extendedOptions

	state readerState
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// SkipBOM removes a leading UTF-8 BOM (EF BB BF) before scanning.
	SkipBOM bool

	// MaxInputSize caps the number of bytes Reader will buffer.
	//   - 0: use DefaultMaxInputSize (2GB)
	//   - -1: unlimited (not recommended for untrusted input)
	//   - >0: custom limit
	MaxInputSize int64
}

type extendedOptions struct {
	skipBOM      bool
	maxInputSize int64
}

// readerState holds the mutable state built up by the one-time scan.
type readerState struct {
	buffer      []byte
	rows        []RowRef
	rowIdx      int
	offset      int64
	initialized bool
}

// ============================================================================
// Constructors
// ============================================================================

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{source: r}
}

// NewReaderWithOptions returns a new Reader configured with opts.
func NewReaderWithOptions(r io.Reader, opts ReaderOptions) *Reader {
	return &Reader{
		source: r,
		opts: extendedOptions{
			skipBOM:      opts.SkipBOM,
			maxInputSize: opts.MaxInputSize,
		},
	}
}

// ============================================================================
// Public API - Reading Rows
// ============================================================================

// Read returns the next RowRef from the input. It returns io.EOF once
// every row has been returned.
func (r *Reader) Read() (RowRef, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}

	if r.state.rowIdx >= len(r.state.rows) {
		return nil, io.EOF
	}

	row := r.state.rows[r.state.rowIdx]
	r.state.rowIdx++
	return row, nil
}

// ReadAll returns every row in the input. A successful call returns
// err == nil, not io.EOF. Empty input returns nil with no error.
func (r *Reader) ReadAll() ([]RowRef, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	rows := r.state.rows[r.state.rowIdx:]
	r.state.rowIdx = len(r.state.rows)
	return rows, nil
}

// Bytes returns the buffered input that every RowRef returned by this
// Reader indexes into. The returned slice must not be modified while
// any RowRef obtained from this Reader is still in use.
func (r *Reader) Bytes() []byte {
	return r.state.buffer
}

// InputOffset returns the total number of bytes read from the source.
func (r *Reader) InputOffset() int64 {
	return r.state.offset
}

// ============================================================================
// Internal - Initialization
// ============================================================================

func (r *Reader) ensureInitialized() error {
	if r.state.initialized {
		return nil
	}
	return r.initialize()
}

// initialize reads the entire source and runs the classify/bitmap/emit
// pipeline once. Subsequent Read/ReadAll calls only walk the resulting
// rows slice.
func (r *Reader) initialize() error {
	r.state.initialized = true

	if err := r.readInput(); err != nil {
		return err
	}
	r.state.offset = int64(len(r.state.buffer))

	r.skipUTF8BOM()

	if len(r.state.buffer) == 0 {
		return nil
	}

	r.state.rows = r.scan(r.state.buffer)
	return nil
}

// scan runs the classify/bitmap/emit pipeline, borrowing a pooled
// bitmapTriple for the intermediate bitmap streams. Neither the
// vectors nor the bitmaps are retained by the resulting rows, which
// reference buffer directly, so the triple is returned to the pool
// before scan returns.
func (r *Reader) scan(buffer []byte) []RowRef {
	vectors := NewClassifier(buffer).Classify()

	triple := bitmapTriplePool.Get().(*bitmapTriple)
	commas, newlines, quotes := buildBitmapsInto(vectors, triple.commas, triple.newlines, triple.quotes)
	rows := emitRows(commas, newlines, quotes)

	triple.commas, triple.newlines, triple.quotes = commas[:0], newlines[:0], quotes[:0]
	bitmapTriplePool.Put(triple)
	return rows
}

// ============================================================================
// Internal - Input Reading
// ============================================================================

// bitmapTriple bundles the three bitmap streams for pooling as a unit.
type bitmapTriple struct {
	commas, newlines, quotes []uint64
}

var bitmapTriplePool = sync.Pool{
	New: func() any { return &bitmapTriple{} },
}

// readInput reads the entire source into state.buffer, enforcing
// MaxInputSize.
func (r *Reader) readInput() error {
	maxSize := r.opts.maxInputSize
	if maxSize == 0 {
		maxSize = DefaultMaxInputSize
	}

	var initialCap int64
	if seeker, ok := r.source.(io.Seeker); ok {
		if size, err := seeker.Seek(0, io.SeekEnd); err == nil {
			initialCap = size
			_, _ = seeker.Seek(0, io.SeekStart)
		}
	}

	var err error
	if maxSize > 0 {
		limited := io.LimitReader(r.source, maxSize+1)
		r.state.buffer, err = readAllSized(limited, initialCap)
		if err != nil {
			return err
		}
		if int64(len(r.state.buffer)) > maxSize {
			return ErrInputTooLarge
		}
		return nil
	}

	r.state.buffer, err = readAllSized(r.source, initialCap)
	return err
}

// readAllSized reads all of r, pre-allocating when the size is known.
func readAllSized(r io.Reader, initialCap int64) ([]byte, error) {
	if initialCap == 0 {
		switch sr := r.(type) {
		case interface{ Len() int }:
			initialCap = int64(sr.Len())
		case interface{ Size() int64 }:
			initialCap = sr.Size()
		}
	}

	if initialCap > 0 {
		buf := make([]byte, initialCap)
		n, err := io.ReadFull(r, buf)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return buf[:n], nil
		}
		return buf[:n], err
	}

	return io.ReadAll(r)
}

// skipUTF8BOM removes a leading UTF-8 BOM from state.buffer if present
// and requested.
func (r *Reader) skipUTF8BOM() {
	if !r.opts.skipBOM || len(r.state.buffer) < 3 {
		return
	}
	if r.state.buffer[0] == 0xEF && r.state.buffer[1] == 0xBB && r.state.buffer[2] == 0xBF {
		r.state.buffer = r.state.buffer[3:]
	}
}
