package term

import (
	"time"
	"unicode/utf8"
)

type byteReaderWithTimeout interface {
	// ReadByteWithTimeout reads a single byte with a timeout. A negative
	// timeout means no timeout.
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

const badRune = '�'

var utf8SeqTimeout = 10 * time.Millisecond

// Reads a rune from the reader, with the given timeout for the first byte. The
// timeout for subsequent bytes of a multi-byte UTF-8 sequence is fixed at
// utf8SeqTimeout. A negative timeout means no timeout.
func readRune(rd byteReaderWithTimeout, timeout time.Duration) (rune, error) {
	leader, err := rd.ReadByteWithTimeout(timeout)
	if err != nil {
		return badRune, err
	}
	var buf [4]byte
	buf[0] = leader
	pending := 0
	switch {
	case leader>>7 == 0:
		// Nothing to do
	case leader>>5 == 0x6:
		pending = 1
	case leader>>4 == 0xe:
		pending = 2
	case leader>>3 == 0x1e:
		pending = 3
	}
	for i := 1; i <= pending; i++ {
		b, err := rd.ReadByteWithTimeout(utf8SeqTimeout)
		if err != nil {
			return badRune, err
		}
		buf[i] = b
	}
	r, _ := utf8.DecodeRune(buf[:1+pending])
	return r, nil
}
