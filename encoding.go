package gulid

import "encoding/binary"

// Encoding is the Crockford base32 alphabet used in ULID strings. It omits
// I, L, O and U to avoid visually ambiguous output.
const Encoding = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// EncodedSize is the length of a text encoded ULID.
const EncodedSize = 26

// dec maps an input byte to its 5-bit alphabet value, case-insensitively.
// 0xFF marks bytes outside the alphabet, including I, L, O and U.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = 0xFF
	}
	for i := 0; i < len(Encoding); i++ {
		c := Encoding[i]
		dec[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			dec[c+'a'-'A'] = byte(i)
		}
	}
}

// encode writes the 26-symbol base32 form of the ULID into dst, which must
// hold at least EncodedSize bytes. The 16 bytes are treated as one 128-bit
// big-endian integer, emitted 5 bits at a time from the least significant
// end; the first symbol carries the 2 remaining high bits plus one zero bit.
func (id ULID) encode(dst []byte) {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	for i := EncodedSize - 1; i >= 0; i-- {
		dst[i] = Encoding[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
}

// String returns the canonical lexicographically sortable string form of
// the ULID, e.g. 01ARZ3NDEKTSV4RRFFQ69G5FAV.
func (id ULID) String() string {
	buf := make([]byte, EncodedSize)
	id.encode(buf)
	return string(buf)
}

// MarshalText implements the encoding.TextMarshaler interface by returning
// the string encoded ULID. This is also the representation used for JSON.
func (id ULID) MarshalText() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	return buf, id.MarshalTextTo(buf)
}

// MarshalTextTo writes the ULID as a string to the given buffer.
// ErrBufferSize is returned when len(dst) != 26, and dst is left untouched.
func (id ULID) MarshalTextTo(dst []byte) error {
	if len(dst) != EncodedSize {
		return ErrBufferSize
	}
	id.encode(dst)
	return nil
}

// AppendText appends the string encoded ULID to dst and returns the
// extended slice.
func (id ULID) AppendText(dst []byte) []byte {
	var buf [EncodedSize]byte
	id.encode(buf[:])
	return append(dst, buf[:]...)
}

// EncodeUTF16To writes the ULID as UTF-16 code units to the given buffer.
// Every symbol of the alphabet is ASCII, so each code unit is the
// corresponding byte value widened. ErrBufferSize is returned when
// len(dst) != 26, and dst is left untouched.
func (id ULID) EncodeUTF16To(dst []uint16) error {
	if len(dst) != EncodedSize {
		return ErrBufferSize
	}
	var buf [EncodedSize]byte
	id.encode(buf[:])
	for i, c := range buf {
		dst[i] = uint16(c)
	}
	return nil
}

// AppendUTF16 appends the ULID as UTF-16 code units to dst and returns the
// extended slice.
func (id ULID) AppendUTF16(dst []uint16) []uint16 {
	var buf [EncodedSize]uint16
	_ = id.EncodeUTF16To(buf[:])
	return append(dst, buf[:]...)
}

// parse decodes exactly EncodedSize base32 symbols into id. The symbols are
// accumulated by shift-5-and-OR into a 128-bit (hi, lo) pair, so no
// multiply can overflow; a first symbol above 7 would still push bits past
// 128 and is rejected with ErrOverflow. id is written only on success.
func parse(v []byte, id *ULID) error {
	if len(v) != EncodedSize {
		return ErrDataSize
	}

	// The base32 form carries 130 bits for a 128-bit value, so the first
	// symbol may only use its low 3 bits.
	switch d := dec[v[0]]; {
	case d == 0xFF:
		return ErrInvalidCharacters
	case d > 7:
		return ErrOverflow
	}

	var hi, lo uint64
	for _, c := range v {
		d := dec[c]
		if d == 0xFF {
			return ErrInvalidCharacters
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(d)
	}

	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return nil
}

// Parse parses a ULID from its canonical 26-character string form,
// case-insensitively. ErrDataSize is returned if len(s) != 26,
// ErrInvalidCharacters if s contains a symbol outside the alphabet, and
// ErrOverflow if the first symbol exceeds 7.
func Parse(s string) (ULID, error) {
	var id ULID
	if err := parse([]byte(s), &id); err != nil {
		return Zero, err
	}
	return id, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// TryParse is the permissive, non-throwing form of Parse. It decodes the
// first 26 symbols of s, ignoring any trailing input, and reports success.
// On failure the returned ULID is Zero, never a partially decoded value.
func TryParse(s string) (ULID, bool) {
	if len(s) < EncodedSize {
		return Zero, false
	}
	var id ULID
	if err := parse([]byte(s[:EncodedSize]), &id); err != nil {
		return Zero, false
	}
	return id, true
}

// ParseUTF16 parses a ULID from 26 UTF-16 code units, with the same
// contract as Parse.
func ParseUTF16(v []uint16) (ULID, error) {
	if len(v) != EncodedSize {
		return Zero, ErrDataSize
	}
	var buf [EncodedSize]byte
	for i, c := range v {
		if c > 'z' {
			return Zero, ErrInvalidCharacters
		}
		buf[i] = byte(c)
	}
	var id ULID
	if err := parse(buf[:], &id); err != nil {
		return Zero, err
	}
	return id, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface with the
// same contract as Parse. It also gives strict JSON decoding: a JSON string
// that is not exactly a valid 26-symbol ULID fails to unmarshal.
func (id *ULID) UnmarshalText(v []byte) error {
	return parse(v, id)
}
