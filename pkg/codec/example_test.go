package codec_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"

	"github.com/saveforge/achv/pkg/codec"
)

// ExampleDecode demonstrates decoding a file, deleting one achievement, and
// re-encoding the rest.
func ExampleDecode() {
	// A version-2 file with two records, assembled by hand here in place of
	// one written by the game client.
	var buf bytes.Buffer
	le := binary.LittleEndian
	binary.Write(&buf, le, uint16(2))                   // version
	binary.Write(&buf, le, uint32(2))                   // record count
	binary.Write(&buf, le, uint16(len("lazy-bastard"))) // record 1
	buf.WriteString("lazy-bastard")
	binary.Write(&buf, le, uint64(81234567))
	binary.Write(&buf, le, uint32(0))
	binary.Write(&buf, le, uint16(len("steamrolled"))) // record 2
	buf.WriteString("steamrolled")
	binary.Write(&buf, le, uint64(0))
	binary.Write(&buf, le, uint32(0))

	file, err := codec.Decode(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range file.IDs() {
		fmt.Println(id)
	}

	if err := file.Delete("lazy-bastard"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d record left, %d bytes\n", file.Len(), len(file.Encode()))

	// Output:
	// lazy-bastard
	// steamrolled
	// 1 record left, 31 bytes
}
