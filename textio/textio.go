package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedToken indicates a token that is not a base-10 uint64.
var ErrMalformedToken = errors.New("textio: malformed token")

// ReadUints reads every whitespace-separated token of r as a base-10
// uint64, in order. The first malformed or out-of-range token aborts the
// read with ErrMalformedToken; no partial result is returned.
func ReadUints(r io.Reader) ([]uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var vals []uint64
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", len(vals)+1, tok, ErrMalformedToken)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}

	return vals, nil
}

// WriteUints writes vals to w, one per line.
func WriteUints(w io.Writer, vals []uint64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range vals {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("textio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write: %w", err)
	}

	return nil
}
