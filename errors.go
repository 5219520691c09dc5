package gulid

import "errors"

var (
	// ErrDataSize indicates that the input has the wrong length for the
	// requested operation (parsing, unmarshaling or setting the entropy).
	ErrDataSize = errors.New("gulid: bad data size")

	// ErrInvalidCharacters indicates that the input contains a symbol
	// outside the Crockford base32 alphabet.
	ErrInvalidCharacters = errors.New("gulid: invalid base32 characters")

	// ErrBufferSize indicates that a caller-supplied destination buffer is
	// not large enough to hold the encoded form.
	ErrBufferSize = errors.New("gulid: bad buffer size")

	// ErrBigTime indicates a timestamp beyond the 48-bit millisecond range
	// a ULID can carry.
	ErrBigTime = errors.New("gulid: time too big")

	// ErrOverflow indicates a value outside the 128-bit range: either a
	// string whose first symbol exceeds 7, or incrementing the maximum ULID.
	ErrOverflow = errors.New("gulid: overflow")

	// ErrMonotonicOverflow indicates that the generator exhausted the
	// 80-bit entropy space within a single millisecond. Callers may retry
	// once the clock has advanced.
	ErrMonotonicOverflow = errors.New("gulid: monotonic entropy overflow")

	// ErrScanValue indicates that a database value could not be scanned
	// into a ULID.
	ErrScanValue = errors.New("gulid: scan source must be a string or byte slice")
)
