//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"errors"
	"testing"
)

// FuzzDecode_NeverPanics feeds arbitrary bytes to the decoder. Any outcome is
// acceptable except a panic or a decode that does not re-encode to the exact
// input bytes.
func FuzzDecode_NeverPanics(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x02, 0x00})
	f.Add(buildFileBytes(2, 0, nil))
	f.Add(buildFileBytes(2, 1, []testRecord{{id: "lazy-bastard", unlockedAt: 1, progress: []byte{}}}))
	f.Add(buildFileBytes(2, 2, []testRecord{
		{id: "a", progress: []byte{0xff}},
		{id: "b", unlockedAt: 42, progress: []byte{0x00, 0x01}},
	}))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			t.Skip("input too large for fuzz test")
		}

		file, err := Decode(data)
		if err != nil {
			if file != nil {
				t.Fatal("Decode returned a File alongside an error")
			}
			return
		}

		// Accepted input must round-trip byte for byte.
		out := file.Encode()
		if !bytes.Equal(out, data) {
			t.Fatalf("encode(decode(b)) != b\n got %x\nwant %x", out, data)
		}
	})
}

// FuzzDecode_Truncation cuts a valid file at an arbitrary offset; every cut
// strictly before the end must fail decoding.
func FuzzDecode_Truncation(f *testing.F) {
	f.Add("lazy-bastard", uint64(81234567), []byte{}, uint(3))
	f.Add("steamrolled", uint64(0), []byte{0x0a, 0x00}, uint(10))

	f.Fuzz(func(t *testing.T, id string, unlockedAt uint64, progress []byte, cut uint) {
		if len(id) > 1000 || len(progress) > 10000 {
			t.Skip("input too large for fuzz test")
		}

		data := buildFileBytes(2, 1, []testRecord{{id: id, unlockedAt: unlockedAt, progress: progress}})
		if int(cut) >= len(data) {
			t.Skip("cut beyond input")
		}

		_, err := Decode(data[:cut])
		if err == nil {
			t.Fatalf("Decode succeeded on %d of %d bytes", cut, len(data))
		}
		if !errors.Is(err, ErrTruncatedInput) && !errors.Is(err, ErrMalformedRecordCount) {
			t.Fatalf("unexpected truncation error: %v", err)
		}
	})
}
