package util

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("1: a\r\n\n2: b"))

	var lines []string
	for {
		line, err := ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"1: a", "", "2: b"}, lines)
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("strconv.ParseFloat: parsing \"x\": invalid syntax")
	err := WrapErrorf(orig, ErrBadParamInput, "line %d: invalid latitude", 3)

	assert.True(t, errors.Is(err, orig))
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Contains(t, err.Error(), "line 3: invalid latitude")
	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("plain")))
}

func TestReadConfigDefaults(t *testing.T) {
	err := ReadConfig(t.TempDir())
	require.NoError(t, err)
}
