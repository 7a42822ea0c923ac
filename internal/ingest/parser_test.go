package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_BasicRecords(t *testing.T) {
	csvText := "name,email,position\nAlice,alice@example.com,Frontend Developer\nBob,bob@example.com,Backend Developer\n"

	records, err := Parse(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Alice", records[0]["name"])
	require.Equal(t, "bob@example.com", records[1]["email"])
}

func TestParse_QuotedFieldsAndTrimming(t *testing.T) {
	csvText := "name,skills\n\"Doe, Jane\",  React, TypeScript \n"

	records, err := Parse(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Doe, Jane", records[0]["name"])
	require.Equal(t, "React, TypeScript", records[0]["skills"])
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	csvText := "name,email\nAlice,a@example.com\n\n\nBob,b@example.com\n"

	records, err := Parse(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestParse_RaggedRowsTolerated(t *testing.T) {
	csvText := "name,email,position\nAlice,a@example.com\nBob,b@example.com,Backend Developer,extra\n"

	records, err := Parse(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, hasPosition := records[0]["position"]
	require.False(t, hasPosition, "short row should omit trailing keys")

	require.Equal(t, "Backend Developer", records[1]["position"])
	require.Len(t, records[1], 3, "extra cells beyond the header are dropped")
}

func TestParse_MalformedCSV(t *testing.T) {
	csvText := "name,email\n\"unterminated,a@example.com\n"

	_, err := Parse(strings.NewReader(csvText))
	require.ErrorIs(t, err, ErrFormat)
}

func TestParse_EmptyInput(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}
