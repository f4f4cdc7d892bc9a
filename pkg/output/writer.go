package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/baybridges/pkg/util"
)

type Format uint8

const (
	TEXT Format = iota
	JSON
)

func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return TEXT, nil
	case "json":
		return JSON, nil
	default:
		return TEXT, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown output format %q", s)
	}
}

type jsonOutput struct {
	Retained []int64 `json:"retained"`
}

// WriteIDs. write retained bridge ids to w, one per line for TEXT.
func WriteIDs(w io.Writer, ids []int64, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		if err := enc.Encode(jsonOutput{Retained: ids}); err != nil {
			return fmt.Errorf("encode retained ids: %w", err)
		}
		return nil
	default:
		bw := bufio.NewWriter(w)
		for _, id := range ids {
			bw.WriteString(strconv.FormatInt(id, 10))
			bw.WriteByte('\n')
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("write retained ids: %w", err)
		}
		return nil
	}
}
