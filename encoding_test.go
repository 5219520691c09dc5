package gulid

import (
	"crypto/rand"
	"sort"
	"strings"
	"testing"
)

func TestParse_KnownVector(t *testing.T) {
	const s = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

	id, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}

	if got := id.String(); got != s {
		t.Errorf("String() = %q, want %q", got, s)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	upper, err := Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err != nil {
		t.Fatalf("Parse(upper) error = %v", err)
	}

	lower, err := Parse("01arz3ndektsv4rrffq69g5fav")
	if err != nil {
		t.Fatalf("Parse(lower) error = %v", err)
	}

	if upper != lower {
		t.Errorf("Parse(lower) = %v, want %v", lower, upper)
	}

	if got := lower.String(); got != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("String() = %q, want canonical uppercase", got)
	}
}

func TestParse_Sentinels(t *testing.T) {
	zeros, err := Parse(strings.Repeat("0", EncodedSize))
	if err != nil {
		t.Fatalf("Parse(all zeros) error = %v", err)
	}
	if !zeros.IsZero() {
		t.Errorf("Parse(all zeros) = %v, want Zero", zeros)
	}

	max, err := Parse("7" + strings.Repeat("Z", EncodedSize-1))
	if err != nil {
		t.Fatalf("Parse(max string) error = %v", err)
	}
	if max != Max {
		t.Errorf("Parse(max string) = %v, want Max", max)
	}

	if got := Max.String(); got != "7"+strings.Repeat("Z", EncodedSize-1) {
		t.Errorf("Max.String() = %q, want 7ZZZ...Z", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrDataSize},
		{"too short", "01ARZ3NDEKTSV4RRFFQ69G5FA", ErrDataSize},
		{"too long", "01ARZ3NDEKTSV4RRFFQ69G5FAVX", ErrDataSize},
		{"excluded I", "01ARZ3NDEKTSV4RRFFQ69G5FAI", ErrInvalidCharacters},
		{"excluded L", "01ARZ3NDEKTSV4RRFFQ69G5FAL", ErrInvalidCharacters},
		{"excluded O", "01ARZ3NDEKTSV4RRFFQ69G5FAO", ErrInvalidCharacters},
		{"excluded U", "01ARZ3NDEKTSV4RRFFQ69G5FAU", ErrInvalidCharacters},
		{"excluded lowercase", "01arz3ndektsv4rrffq69g5fau", ErrInvalidCharacters},
		{"punctuation", "01ARZ3NDEKTSV4RRFFQ69G5FA-", ErrInvalidCharacters},
		{"control char", "01ARZ3NDEKTSV4RRFFQ69G5FA\x00", ErrInvalidCharacters},
		{"high byte", "01ARZ3NDEKTSV4RRFFQ69G5FA\xFF", ErrInvalidCharacters},
		{"first symbol 8", "8ZZZZZZZZZZZZZZZZZZZZZZZZZ", ErrOverflow},
		{"all Z overflows", strings.Repeat("Z", EncodedSize), ErrOverflow},
		{"first symbol invalid", "U1ARZ3NDEKTSV4RRFFQ69G5FAV", ErrInvalidCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if err != tt.want {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if !id.IsZero() {
				t.Errorf("Parse(%q) = %v, want Zero on failure", tt.input, id)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		var id ULID
		if _, err := rand.Read(id[:]); err != nil {
			t.Fatalf("rand.Read() error = %v", err)
		}

		s := id.String()
		if len(s) != EncodedSize {
			t.Fatalf("String() length = %d, want %d", len(s), EncodedSize)
		}

		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if back != id {
			t.Fatalf("round-trip failed: got %v, want %v", back, id)
		}
	}
}

func TestString_AlphabetClosure(t *testing.T) {
	for i := 0; i < 100; i++ {
		var id ULID
		if _, err := rand.Read(id[:]); err != nil {
			t.Fatalf("rand.Read() error = %v", err)
		}

		for _, c := range id.String() {
			if !strings.ContainsRune(Encoding, c) {
				t.Fatalf("String() produced %q outside the alphabet", c)
			}
		}
	}
}

func TestString_OrderPreservation(t *testing.T) {
	ids := make([]ULID, 200)
	for i := range ids {
		if _, err := rand.Read(ids[i][:]); err != nil {
			t.Fatalf("rand.Read() error = %v", err)
		}
	}

	byBytes := make([]ULID, len(ids))
	copy(byBytes, ids)
	sort.Slice(byBytes, func(i, j int) bool { return byBytes[i].Compare(byBytes[j]) < 0 })

	byString := make([]ULID, len(ids))
	copy(byString, ids)
	sort.Slice(byString, func(i, j int) bool { return byString[i].String() < byString[j].String() })

	for i := range byBytes {
		if byBytes[i] != byString[i] {
			t.Fatalf("ordering diverges at %d: bytes %v, string %v", i, byBytes[i], byString[i])
		}
	}
}

func TestTryParse(t *testing.T) {
	const s = "01ARZ3NDEKTSV4RRFFQ69G5FAV"
	want := MustParse(s)

	tests := []struct {
		name  string
		input string
		want  ULID
		ok    bool
	}{
		{"exact", s, want, true},
		{"trailing ignored", s + "trailing-garbage", want, true},
		{"too short", s[:EncodedSize-1], Zero, false},
		{"empty", "", Zero, false},
		{"bad symbol", "01ARZ3NDEKTSV4RRFFQ69G5FAL", Zero, false},
		{"overflow", strings.Repeat("Z", EncodedSize), Zero, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := TryParse(tt.input)
			if ok != tt.ok {
				t.Errorf("TryParse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if id != tt.want {
				t.Errorf("TryParse(%q) = %v, want %v", tt.input, id, tt.want)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("not a ulid")
}

func TestMarshalTextTo(t *testing.T) {
	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	buf := make([]byte, EncodedSize)
	if err := id.MarshalTextTo(buf); err != nil {
		t.Fatalf("MarshalTextTo() error = %v", err)
	}
	if got := string(buf); got != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("MarshalTextTo() wrote %q", got)
	}

	small := make([]byte, EncodedSize-1)
	if err := id.MarshalTextTo(small); err != ErrBufferSize {
		t.Errorf("MarshalTextTo(short) error = %v, want %v", err, ErrBufferSize)
	}
	for _, b := range small {
		if b != 0 {
			t.Error("MarshalTextTo(short) wrote a partial result")
			break
		}
	}
}

func TestAppendText(t *testing.T) {
	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	got := id.AppendText([]byte("id="))
	if string(got) != "id=01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("AppendText() = %q", got)
	}
}

func TestEncodeUTF16(t *testing.T) {
	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	buf := make([]uint16, EncodedSize)
	if err := id.EncodeUTF16To(buf); err != nil {
		t.Fatalf("EncodeUTF16To() error = %v", err)
	}
	for i := range buf {
		if buf[i] != uint16(id.String()[i]) {
			t.Fatalf("EncodeUTF16To()[%d] = %d, want %d", i, buf[i], id.String()[i])
		}
	}

	if err := id.EncodeUTF16To(make([]uint16, 10)); err != ErrBufferSize {
		t.Errorf("EncodeUTF16To(short) error = %v, want %v", err, ErrBufferSize)
	}

	appended := id.AppendUTF16(nil)
	if len(appended) != EncodedSize {
		t.Errorf("AppendUTF16() length = %d, want %d", len(appended), EncodedSize)
	}
}

func TestParseUTF16(t *testing.T) {
	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	units := id.AppendUTF16(nil)
	back, err := ParseUTF16(units)
	if err != nil {
		t.Fatalf("ParseUTF16() error = %v", err)
	}
	if back != id {
		t.Errorf("ParseUTF16() = %v, want %v", back, id)
	}

	if _, err := ParseUTF16(units[:EncodedSize-1]); err != ErrDataSize {
		t.Errorf("ParseUTF16(short) error = %v, want %v", err, ErrDataSize)
	}

	wide := append([]uint16(nil), units...)
	wide[3] = 0x4E2D // non-ASCII code unit
	if _, err := ParseUTF16(wide); err != ErrInvalidCharacters {
		t.Errorf("ParseUTF16(non-ASCII) error = %v, want %v", err, ErrInvalidCharacters)
	}
}

func TestUnmarshalText(t *testing.T) {
	var id ULID
	if err := id.UnmarshalText([]byte("01ARZ3NDEKTSV4RRFFQ69G5FAV")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if got := id.String(); got != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("UnmarshalText() decoded to %q", got)
	}

	if err := id.UnmarshalText([]byte("too short")); err != ErrDataSize {
		t.Errorf("UnmarshalText(short) error = %v, want %v", err, ErrDataSize)
	}
}
