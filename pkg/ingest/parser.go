package ingest

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/baybridges/pkg/util"
)

// ParseLine. parse one line of the form
//
//	<id>: ([<latA>, <lonA>], [<latB>, <lonB>])
func ParseLine(line string) (Record, error) {
	idPart, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Record{}, util.WrapErrorf(nil, util.ErrBadParamInput, "missing ':' after bridge id")
	}

	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return Record{}, util.WrapErrorf(err, util.ErrBadParamInput, "invalid bridge id %q", strings.TrimSpace(idPart))
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '(' || r == ')' || r == '[' || r == ']':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, rest)

	tokens := strings.Split(cleaned, ",")
	if len(tokens) != 4 {
		return Record{}, util.WrapErrorf(nil, util.ErrBadParamInput, "expected 4 coordinates, got %d", len(tokens))
	}

	coords := make([]float64, 4)
	for i, tok := range tokens {
		coords[i], err = util.StringToFloat64(tok)
		if err != nil {
			return Record{}, util.WrapErrorf(err, util.ErrBadParamInput, "invalid coordinate %q", tok)
		}
	}

	return NewRecord(id, coords[0], coords[1], coords[2], coords[3]), nil
}

// Parse. read records from r, one per line. blank lines are skipped. the first malformed, out of range or
// duplicate record stops parsing.
func Parse(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	records := make([]Record, 0, 64)
	seen := make(map[int64]int)

	for lineNo := 1; ; lineNo++ {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: read error", lineNo)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNo)
		}
		if err := Validate(rec); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNo)
		}
		if prev, ok := seen[rec.ID]; ok {
			return nil, util.WrapErrorf(nil, util.ErrConflict, "line %d: bridge id %d already used on line %d", lineNo, rec.ID, prev)
		}
		seen[rec.ID] = lineNo

		records = append(records, rec)
	}
	return records, nil
}

// ReadFile. parse the bridge file at path, files ending in .bz2 are decompressed on the fly.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, util.WrapErrorf(err, util.ErrNotFound, "input file %s not found", path)
		}
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "open bzip2 stream %s", path)
		}
		defer bz.Close()
		r = bz
	}

	return Parse(r)
}
