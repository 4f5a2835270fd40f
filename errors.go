package simdcsv

import "errors"

// ErrInputTooLarge is returned by Reader when the input exceeds the
// configured maximum size. It is the only error this package defines:
// the structural scan itself is total (spec §7) and never fails on
// the contents of the input, however malformed.
var ErrInputTooLarge = errors.New("simdcsv: input exceeds maximum allowed size")

// DefaultMaxInputSize is the default maximum input size Reader will
// buffer (2GB), overridable via ReaderOptions.MaxInputSize.
const DefaultMaxInputSize = 2 * 1024 * 1024 * 1024 // 2GB
