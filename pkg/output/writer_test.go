package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIDs(t *testing.T) {
	testCases := []struct {
		name   string
		ids    []int64
		format Format
		want   string
	}{
		{name: "text", ids: []int64{1, 3, 10}, format: TEXT, want: "1\n3\n10\n"},
		{name: "text empty", ids: []int64{}, format: TEXT, want: ""},
		{name: "json", ids: []int64{1, 3}, format: JSON, want: "{\"retained\":[1,3]}\n"},
		{name: "json empty", ids: []int64{}, format: JSON, want: "{\"retained\":[]}\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteIDs(&buf, tt.ids, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, TEXT, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
