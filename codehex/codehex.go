// Package codehex parses and formats the plain-text hex-pair form CodeBreaker
// code lists are exchanged in: one "AAAAAAAA BBBBBBBB" pair per line.
package codehex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fengxuway/codebreaker-go"
)

// ErrMalformed is returned by Parse when a line isn't two 8-hex-digit groups
// separated by whitespace.
var ErrMalformed = errors.New("codehex: malformed code line")

// Parse reads a single "AAAAAAAA BBBBBBBB" line into a Code. Hex digits are
// case-insensitive, and the groups may be separated and surrounded by any
// whitespace; anything else about the line is an error.
func Parse(line string) (codebreaker.Code, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return codebreaker.Code{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	addr, err := parseWord(fields[0])
	if err != nil {
		return codebreaker.Code{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	val, err := parseWord(fields[1])
	if err != nil {
		return codebreaker.Code{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}

	return codebreaker.Code{Addr: addr, Val: val}, nil
}

func parseWord(field string) (uint32, error) {
	if len(field) != 8 {
		return 0, ErrMalformed
	}
	n, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// Format renders c as "AAAAAAAA BBBBBBBB", uppercase.
func Format(c codebreaker.Code) string {
	return fmt.Sprintf("%08X %08X", c.Addr, c.Val)
}

// ParseList parses one code per non-empty line of r, in order. A malformed
// line aborts with ErrMalformed identifying the offending text; lines that
// are empty or all whitespace are skipped.
func ParseList(r io.Reader) ([]codebreaker.Code, error) {
	var codes []codebreaker.Code
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// FormatList writes one "AAAAAAAA BBBBBBBB" line per code to w.
func FormatList(w io.Writer, codes []codebreaker.Code) error {
	for _, c := range codes {
		if _, err := fmt.Fprintln(w, Format(c)); err != nil {
			return err
		}
	}
	return nil
}
