package gulid

import (
	"bytes"
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// ULID represents a Universally Unique Lexicographically Sortable Identifier.
// It is a 128-bit (16 byte) value: the first 6 bytes are a big-endian Unix
// timestamp in milliseconds, the remaining 10 bytes are entropy. Byte-wise
// comparison of two ULIDs therefore orders them by (timestamp, entropy).
type ULID [16]byte

// Zero is the zero-value ULID (all zeros), the minimum possible value.
var Zero ULID

// Max is the maximum possible ULID (all bits set).
var Max = ULID{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// FromBytes creates a ULID from a 16-byte slice.
// ErrDataSize is returned if len(b) != 16.
func FromBytes(b []byte) (ULID, error) {
	var id ULID
	if len(b) != len(id) {
		return id, ErrDataSize
	}
	copy(id[:], b)
	return id, nil
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) ULID {
	id, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return id
}

// Bytes returns the raw 16-byte representation of the ULID.
func (id ULID) Bytes() []byte {
	return id[:]
}

// IsZero returns true if the ULID is the zero-value ULID.
func (id ULID) IsZero() bool {
	return id == Zero
}

// Time returns the Unix time in milliseconds encoded in the ULID.
// Use the top level Time function to convert the returned value to
// a time.Time.
func (id ULID) Time() uint64 {
	return uint64(id[5]) | uint64(id[4])<<8 |
		uint64(id[3])<<16 | uint64(id[2])<<24 |
		uint64(id[1])<<32 | uint64(id[0])<<40
}

// Timestamp returns the time encoded in the ULID as a time.Time.
func (id ULID) Timestamp() time.Time {
	return Time(id.Time())
}

// SetTime sets the time component of the ULID to the given Unix time
// in milliseconds. ErrBigTime is returned for values beyond 48 bits.
func (id *ULID) SetTime(ms uint64) error {
	if ms > maxTime {
		return ErrBigTime
	}
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	return nil
}

// Entropy returns a copy of the 10 entropy bytes of the ULID.
func (id ULID) Entropy() []byte {
	e := make([]byte, 10)
	copy(e, id[6:])
	return e
}

// SetEntropy sets the ULID entropy to the passed byte slice.
// ErrDataSize is returned if len(e) != 10.
func (id *ULID) SetEntropy(e []byte) error {
	if len(e) != 10 {
		return ErrDataSize
	}
	copy(id[6:], e)
	return nil
}

// Compare returns an integer comparing id and other lexicographically.
// The result will be 0 if id==other, -1 if id < other, and +1 if id > other.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// Equal returns true if id and other represent the same ULID.
func (id ULID) Equal(other ULID) bool {
	return id == other
}

// Increment returns the ULID one greater than id, carrying from the least
// significant byte upward. ErrOverflow is returned if id is Max, which has
// no successor.
func (id ULID) Increment() (ULID, error) {
	next := id
	if increment(next[:]) {
		return Zero, ErrOverflow
	}
	return next, nil
}

// increment adds one to the big-endian value in b, in place.
// It reports whether the carry propagated out of the most significant byte.
func increment(b []byte) bool {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return false
		}
	}
	return true
}

// UUID returns the ULID reinterpreted as an RFC 4122 UUID. Both types store
// their 16 bytes big-endian, so the conversion is a straight byte copy.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID creates a ULID from the 16 bytes of a UUID.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface by
// returning the ULID as a byte slice.
func (id ULID) MarshalBinary() ([]byte, error) {
	b := make([]byte, len(id))
	return b, id.MarshalBinaryTo(b)
}

// MarshalBinaryTo writes the binary encoding of the ULID to the given buffer.
// ErrBufferSize is returned when len(dst) != 16.
func (id ULID) MarshalBinaryTo(dst []byte) error {
	if len(dst) != len(id) {
		return ErrBufferSize
	}
	copy(dst, id[:])
	return nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface by
// copying the passed data into the ULID. ErrDataSize is returned if the
// data length is not 16.
func (id *ULID) UnmarshalBinary(data []byte) error {
	if len(data) != len(*id) {
		return ErrDataSize
	}
	copy(id[:], data)
	return nil
}

// Scan implements the sql.Scanner interface. It supports scanning a
// 26-character string or a 16-byte slice.
func (id *ULID) Scan(src interface{}) error {
	switch x := src.(type) {
	case nil:
		return nil
	case string:
		return id.UnmarshalText([]byte(x))
	case []byte:
		if len(x) == len(*id) {
			return id.UnmarshalBinary(x)
		}
		return id.UnmarshalText(x)
	}
	return ErrScanValue
}

// Value implements the sql/driver.Valuer interface, returning the ULID as
// its canonical 26-character string.
func (id ULID) Value() (driver.Value, error) {
	return id.String(), nil
}

// maxTime is the maximum Unix time in milliseconds representable in the
// 48-bit timestamp component.
var maxTime = ULID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}.Time()

// MaxTime returns the maximum Unix time in milliseconds that can be
// encoded in a ULID.
func MaxTime() uint64 { return maxTime }

// Now returns the current UTC time in Unix milliseconds.
func Now() uint64 { return Timestamp(time.Now().UTC()) }

// Timestamp converts a time.Time to Unix milliseconds.
//
// Because of the way ULID stores time, times from the year 10889 produce
// undefined results.
func Timestamp(t time.Time) uint64 {
	return uint64(t.Unix())*1000 +
		uint64(t.Nanosecond()/int(time.Millisecond))
}

// Time converts Unix milliseconds in the format returned by the Timestamp
// function to a time.Time.
func Time(ms uint64) time.Time {
	s := int64(ms / 1e3)
	ns := int64((ms % 1e3) * 1e6)
	return time.Unix(s, ns)
}
