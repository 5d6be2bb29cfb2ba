package codec

import (
	"fmt"
	"math"
)

// Record is one achievement's tracked state within a file: its identifier,
// its unlock marker, and an opaque progress payload.
//
// Records are constructed by the decoder (or package-internal helpers) only.
// The fields stay unexported on purpose: the format can represent a record
// with the unlock marker set, but building one is not part of the editor's
// public surface.
type Record struct {
	id         string
	unlockedAt uint64
	progress   []byte
}

// newRecord builds a record, enforcing the bounds the wire format can
// represent. Lengths read back from a file always fit by construction; this
// guards fixtures and any future internal construction path.
func newRecord(id string, unlockedAt uint64, progress []byte) (Record, error) {
	if len(id) > math.MaxUint16 {
		return Record{}, fmt.Errorf("achievement id too long: %d bytes", len(id))
	}
	if uint64(len(progress)) > math.MaxUint32 {
		return Record{}, fmt.Errorf("progress payload too long: %d bytes", len(progress))
	}
	return Record{id: id, unlockedAt: unlockedAt, progress: progress}, nil
}

// ID returns the achievement identifier.
func (r Record) ID() string {
	return r.id
}

// Unlocked reports whether the achievement has been unlocked.
func (r Record) Unlocked() bool {
	return r.unlockedAt != 0
}

// UnlockedAt returns the raw unlock marker. Zero means locked; the meaning
// of non-zero values (a game tick, most likely) is the client's business.
func (r Record) UnlockedAt() uint64 {
	return r.unlockedAt
}

// Progress returns the opaque progress payload. Callers must not modify it.
func (r Record) Progress() []byte {
	return r.progress
}

// encodedSize returns the number of bytes the record occupies on the wire.
func (r Record) encodedSize() int {
	// IDLen(2) + ID + UnlockedAt(8) + ProgressLen(4) + Progress
	return 2 + len(r.id) + 8 + 4 + len(r.progress)
}
