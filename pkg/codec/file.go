package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
)

// SupportedVersion is the only format revision this codec reads and writes.
const SupportedVersion = 2

const (
	headerSize    = 6  // Version(2) + RecordCount(4)
	minRecordSize = 14 // IDLen(2) + UnlockedAt(8) + ProgressLen(4), empty id and payload
)

// File is a decoded achievements file: a format version and an ordered
// sequence of records. Record order is preserved from the source bytes;
// Delete is the only mutation and it keeps the relative order of the
// surviving records.
type File struct {
	version uint16
	records []Record
}

// Decode parses an achievements file from data. It is pure and
// deterministic: the same bytes always yield the same File or the same
// error, and on error no partially populated File is returned.
func Decode(data []byte) (*File, error) {
	r := sliceReader{data: data}

	version, err := r.uint16("version")
	if err != nil {
		return nil, err
	}
	if version != SupportedVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, SupportedVersion)
	}

	count, err := r.uint32("record count")
	if err != nil {
		return nil, err
	}
	// A record is at least minRecordSize bytes, so a count the remaining
	// input cannot possibly satisfy is reported against the count field
	// rather than as a truncation deep inside some record.
	if uint64(count)*minRecordSize > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: %d records declared but only %d bytes remain",
			ErrMalformedRecordCount, count, r.remaining())
	}

	records := make([]Record, 0, count)
	seen := make(map[string]struct{}, count)
	for i := uint32(0); i < count; i++ {
		rec, err := decodeRecord(&r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[rec.id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, rec.id)
		}
		seen[rec.id] = struct{}{}
		records = append(records, rec)
	}

	if r.remaining() > 0 {
		return nil, fmt.Errorf("%w: %d bytes after record %d", ErrTrailingData, r.remaining(), count)
	}

	return &File{version: version, records: records}, nil
}

func decodeRecord(r *sliceReader) (Record, error) {
	idLen, err := r.uint16("id length")
	if err != nil {
		return Record{}, err
	}
	id, err := r.bytes(int(idLen), "id")
	if err != nil {
		return Record{}, err
	}
	unlockedAt, err := r.uint64("unlock marker")
	if err != nil {
		return Record{}, err
	}
	progressLen, err := r.uint32("progress length")
	if err != nil {
		return Record{}, err
	}
	progress, err := r.bytes(int(progressLen), "progress")
	if err != nil {
		return Record{}, err
	}
	return newRecord(string(id), unlockedAt, progress)
}

// Encode serializes the file using the same widths, byte order, and length
// prefixes the decoder expects. Opaque payloads are re-emitted byte for
// byte, so encoding an unedited File reproduces its source bytes exactly.
func (f *File) Encode() []byte {
	buf := make([]byte, f.EncodedSize())

	binary.LittleEndian.PutUint16(buf[0:], f.version)
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(f.records)))

	off := headerSize
	for _, rec := range f.records {
		binary.LittleEndian.PutUint16(buf[off:], uint16(len(rec.id)))
		off += 2
		off += copy(buf[off:], rec.id)
		binary.LittleEndian.PutUint64(buf[off:], rec.unlockedAt)
		off += 8
		binary.LittleEndian.PutUint32(buf[off:], uint32(len(rec.progress)))
		off += 4
		off += copy(buf[off:], rec.progress)
	}

	return buf
}

// Delete removes the record with the given id. The relative order and
// content of all other records is unchanged. Returns ErrNotFound when no
// record has that id.
func (f *File) Delete(id string) error {
	for i, rec := range f.records {
		if rec.id == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}

// IDs returns the achievement identifiers in file order.
func (f *File) IDs() []string {
	ids := make([]string, len(f.records))
	for i, rec := range f.records {
		ids[i] = rec.id
	}
	return ids
}

// Records returns the records in file order. The slice is shared with the
// File; callers must not modify it.
func (f *File) Records() []Record {
	return f.records
}

// Find returns the record with the given id, or false when absent.
func (f *File) Find(id string) (Record, bool) {
	for _, rec := range f.records {
		if rec.id == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Version returns the file's format version.
func (f *File) Version() uint16 {
	return f.version
}

// Len returns the number of records.
func (f *File) Len() int {
	return len(f.records)
}

// EncodedSize returns the number of bytes Encode will produce.
func (f *File) EncodedSize() int {
	size := headerSize
	for _, rec := range f.records {
		size += rec.encodedSize()
	}
	return size
}

// Dump writes a human-readable rendering of every record to w. Opaque
// progress payloads are rendered as hex.
func (f *File) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "achievements file v%d, %d records\n", f.version, len(f.records)); err != nil {
		return err
	}
	for _, rec := range f.records {
		state := "locked"
		if rec.Unlocked() {
			state = fmt.Sprintf("unlocked at %d", rec.unlockedAt)
		}
		progress := "(none)"
		if len(rec.progress) > 0 {
			progress = fmt.Sprintf("%s (%d bytes)", hex.EncodeToString(rec.progress), len(rec.progress))
		}
		if _, err := fmt.Fprintf(w, "%s\n  state: %s\n  progress: %s\n", rec.id, state, progress); err != nil {
			return err
		}
	}
	return nil
}

// sliceReader walks a byte slice front to back, reporting ErrTruncatedInput
// with positional detail when a field runs past the end of the input.
type sliceReader struct {
	data []byte
	off  int
}

func (r *sliceReader) remaining() int {
	return len(r.data) - r.off
}

func (r *sliceReader) need(n int, field string) error {
	if r.remaining() < n {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, %d remain",
			ErrTruncatedInput, field, n, r.off, r.remaining())
	}
	return nil
}

func (r *sliceReader) uint16(field string) (uint16, error) {
	if err := r.need(2, field); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

func (r *sliceReader) uint32(field string) (uint32, error) {
	if err := r.need(4, field); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *sliceReader) uint64(field string) (uint64, error) {
	if err := r.need(8, field); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v, nil
}

// bytes returns a copy so decoded records do not alias the input buffer.
func (r *sliceReader) bytes(n int, field string) ([]byte, error) {
	if err := r.need(n, field); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:])
	r.off += n
	return out, nil
}
