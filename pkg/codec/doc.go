// Package codec reads and writes the game client's achievements file.
//
// The file is a private, versioned binary format that the game client both
// reads and writes, so the codec must round-trip files byte for byte: any
// divergence in byte order, field widths, or string encoding produces a file
// the client rejects.
//
// # File Format
//
// All multi-byte integers are little-endian. The file is a fixed header
// followed by a run of records:
//
//	[Version(2)][RecordCount(4)]
//	repeated RecordCount times:
//	  [IDLen(2)][ID(IDLen)][UnlockedAt(8)][ProgressLen(4)][Progress(ProgressLen)]
//
// Fields:
//   - Version: format revision; only SupportedVersion is accepted
//   - RecordCount: number of records that follow
//   - ID: achievement identifier, UTF-8 text, unique within a file
//   - UnlockedAt: unlock marker; zero means the achievement is locked
//   - Progress: opaque progress payload, preserved verbatim
//
// There is no checksum or trailer. Bytes remaining after the last record are
// an error, not padding: a longer file means a different client revision
// wrote it, and silently dropping its bytes would corrupt it on re-encode.
//
// # Opaque Progress Payloads
//
// Each achievement type stores progress in its own undocumented layout. The
// codec does not interpret those bytes; it carries them through unchanged so
// that fields this implementation does not understand still round-trip. Dump
// output renders them as hex for inspection.
//
// # Error Handling
//
// Decode failures are terminal and typed as sentinel errors (ErrTruncatedInput,
// ErrUnsupportedVersion, ErrMalformedRecordCount, ErrTrailingData,
// ErrDuplicateID) wrapped with positional detail; match them with errors.Is.
// There is no partial or best-effort parse: the same bytes always yield the
// same File or the same error, and never a partially populated model.
//
// Encoding is total: a File that exists in memory always encodes, because
// the only public mutation is deletion and deletion cannot push any length
// past its prefix width.
package codec
