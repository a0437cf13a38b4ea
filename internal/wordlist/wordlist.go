// Package wordlist streams candidate passwords from a dictionary file such as
// rockyou.txt.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownEncoding is returned for an encoding name other than latin-1 or utf-8.
var ErrUnknownEncoding = errors.New("unknown wordlist encoding")

// decoder wraps r so that it yields UTF-8 text.
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "utf-8", "utf8", "":
		return r, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, encoding)
	}
}

// Scan calls fn with every line of r, decoded from encoding and stripped of
// surrounding whitespace. Lines end at "\n", "\r\n" or a lone "\r" and may be
// of any length. Blank lines are passed through as "". Scanning stops at the
// first error returned by fn.
func Scan(r io.Reader, encoding string, fn func(word string) error) error {
	dec, err := decoder(r, encoding)
	if err != nil {
		return err
	}
	br := bufio.NewReaderSize(dec, 64*1024)
	for {
		chunk, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if chunk != "" {
			chunk = strings.TrimSuffix(chunk, "\n")
			chunk = strings.TrimSuffix(chunk, "\r")
			for _, line := range strings.Split(chunk, "\r") {
				if ferr := fn(strings.TrimFunc(line, isSpace)); ferr != nil {
					return ferr
				}
			}
		}
		if err != nil {
			return nil
		}
	}
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// ScanFile opens path and scans it with Scan.
func ScanFile(path, encoding string, fn func(word string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	if err := Scan(f, encoding, fn); err != nil {
		return fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return nil
}
