package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errHexLiteral = errors.New("hexadecimal literals are not accepted")

// Parse reads r until EOF and returns one record per line. Lines may be
// of any length. Any token that is not a valid decimal float aborts the
// whole parse.
func Parse(r io.Reader) (Dataset, error) {
	br := bufio.NewReader(r)

	var (
		data Dataset
		line int
	)

	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read input: %w", readErr)
		}

		if text != "" {
			line++

			record, err := parseRecord(line, text)
			if err != nil {
				return nil, err
			}

			data = append(data, record)
		}

		if readErr == io.EOF {
			return data, nil
		}
	}
}

func parseRecord(line int, text string) (Record, error) {
	fields := strings.Fields(text)
	record := make(Record, 0, len(fields))

	for _, tok := range fields {
		if isHex(tok) {
			return nil, &ParseError{Line: line, Token: tok, Err: errHexLiteral}
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Token: tok, Err: err}
		}

		record = append(record, v)
	}

	return record, nil
}

func isHex(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")

	return strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X")
}
