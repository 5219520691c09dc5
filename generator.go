package gulid

import (
	"crypto/rand"
	"io"
	mrand "math/rand"
	"sync"
	"time"
)

// Clock supplies the current time as a count of milliseconds since the Unix
// epoch. Implementations must be safe for concurrent use.
type Clock interface {
	Now() int64
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() int64

// Now returns f().
func (f ClockFunc) Now() int64 { return f() }

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() int64 { return time.Now().UnixMilli() }

// Generator is a thread-safe ULID generator. Within the same millisecond it
// increments the previous entropy instead of drawing fresh randomness, so
// the ULIDs returned by one Generator are strictly increasing.
type Generator struct {
	mu      sync.Mutex
	last    uint64
	entropy [10]byte
	primed  bool
	clock   Clock
	rand    io.Reader
}

// NewGenerator creates a ULID generator backed by the system clock and
// crypto/rand as the entropy source.
func NewGenerator() *Generator {
	return NewGeneratorWith(systemClock{}, rand.Reader)
}

// NewGeneratorWithReader creates a ULID generator with a custom entropy
// source. This is primarily useful for testing with deterministic sources,
// or with PseudoEntropy when cryptographic randomness is not required.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGeneratorWith(systemClock{}, r)
}

// NewGeneratorWith creates a ULID generator with a custom clock and entropy
// source. Both collaborators must be safe for concurrent use.
func NewGeneratorWith(clock Clock, r io.Reader) *Generator {
	return &Generator{
		clock: clock,
		rand:  r,
	}
}

// New generates a new ULID with the current timestamp. It is thread-safe
// and ensures monotonic ordering of ULIDs generated within the same
// millisecond. ErrMonotonicOverflow is returned on the (approximately
// 1-in-2^80) exhaustion of the entropy space within one millisecond; the
// generator state is left untouched so the call can be retried after the
// clock ticks. Errors from the entropy source are returned as-is.
func (g *Generator) New() (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next(uint64(g.clock.Now()))
}

// NewWithTime generates a new ULID with the specified timestamp, with the
// same monotonicity contract as New. ErrBigTime is returned if t does not
// fit in 48 bits of milliseconds.
func (g *Generator) NewWithTime(t time.Time) (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next(Timestamp(t))
}

// next holds the comparison and mutation of (last, entropy); the caller
// must hold g.mu.
func (g *Generator) next(now uint64) (ULID, error) {
	var id ULID
	if err := id.SetTime(now); err != nil {
		return Zero, err
	}

	if g.primed && now == g.last {
		// Same millisecond as the previous call: increment a copy of the
		// stored entropy and commit only if the carry stayed inside it.
		tail := g.entropy
		if increment(tail[:]) {
			return Zero, ErrMonotonicOverflow
		}
		g.entropy = tail
	} else {
		var tail [10]byte
		if _, err := io.ReadFull(g.rand, tail[:]); err != nil {
			return Zero, err
		}
		g.entropy = tail
		g.last = now
		g.primed = true
	}

	copy(id[6:], g.entropy[:])
	return id, nil
}

// PseudoEntropy returns a non-cryptographic entropy source seeded with the
// given value, safe for concurrent use. It is faster than the crypto/rand
// default and intended for tests or throughput-sensitive contexts where
// ULIDs carry no security weight. It is never used unless explicitly
// supplied to a generator.
func PseudoEntropy(seed int64) io.Reader {
	return &lockedReader{r: mrand.New(mrand.NewSource(seed))}
}

// lockedReader serializes reads from a math/rand source, which is not safe
// for concurrent use on its own.
type lockedReader struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// Must is a helper that wraps a call to a function returning (ULID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = gulid.Must(generator.New())
func Must(id ULID, err error) ULID {
	if err != nil {
		panic(err)
	}
	return id
}

// defaultGenerator is the package-level generator used by New and Make.
var defaultGenerator = NewGenerator()

// New generates a new ULID using the package-level default generator.
func New() (ULID, error) {
	return defaultGenerator.New()
}

// Make is a convenience form of New that panics on failure, which can only
// be an entropy-source error or the effectively unreachable per-millisecond
// overflow.
func Make() ULID {
	return Must(defaultGenerator.New())
}
