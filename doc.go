// Package gulid provides a lightweight and efficient implementation of
// Universally Unique Lexicographically Sortable Identifiers (ULIDs) in Go.
//
// A ULID is a 128-bit identifier composed of a 48-bit millisecond timestamp
// followed by 80 bits of entropy, rendered as a 26-character Crockford
// base32 string that sorts identically to the binary value. This makes
// ULIDs ideal for:
//   - Database primary keys (improved B-tree performance)
//   - Distributed systems requiring time-ordered identifiers
//   - Event sourcing and audit logs
//   - Any scenario where chronological ordering matters
//
// Basic Usage:
//
//	// Generate a new ULID
//	id, err := gulid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String()) // e.g. 01ARZ3NDEKTSV4RRFFQ69G5FAV
//
//	// Parse a ULID from string (case-insensitive)
//	id, err := gulid.Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Get timestamp from a ULID
//	ms := id.Time()
//	t := id.Timestamp()
//
// Custom Generator:
//
//	// Create a dedicated generator, e.g. one per logical partition
//	gen := gulid.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations are thread-safe. The default generator can be used
// concurrently from multiple goroutines without additional synchronization,
// and every ULID it produces is strictly greater than the previous one:
// within the same millisecond the entropy is incremented with carry rather
// than redrawn. Independent generators share no state and make no ordering
// guarantee relative to each other.
//
// Encoding:
//
// The string form uses the Crockford base32 alphabet
// 0123456789ABCDEFGHJKMNPQRSTVWXYZ, which excludes I, L, O and U. Decoding
// accepts both cases and rejects everything outside the alphabet. The 16
// bytes are layout-compatible with an RFC 4122 UUID, and UUID / FromUUID
// convert between the two by a straight byte copy.
package gulid
