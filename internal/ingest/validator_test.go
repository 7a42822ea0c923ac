package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		"name":     "Alice",
		"email":    "alice@example.com",
		"position": "Frontend Developer",
		"skills":   "React, TypeScript",
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	row, err := ValidateRecord(validRecord())
	require.NoError(t, err)
	require.Equal(t, "Alice", row.Name)
	require.Equal(t, "React, TypeScript", row.Skills)
	require.Empty(t, row.Experience)
}

func TestValidateRecord_ExperienceOptional(t *testing.T) {
	rec := validRecord()
	rec["experience"] = "TechCorp|Dev|2020-Present"

	row, err := ValidateRecord(rec)
	require.NoError(t, err)
	require.Equal(t, "TechCorp|Dev|2020-Present", row.Experience)
}

func TestValidateRecord_MissingEmail(t *testing.T) {
	rec := validRecord()
	delete(rec, "email")

	_, err := ValidateRecord(rec)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, "Email", rowErr.Field)
}

func TestValidateRecord_MalformedEmail(t *testing.T) {
	rec := validRecord()
	rec["email"] = "not-an-email"

	_, err := ValidateRecord(rec)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, "Email", rowErr.Field)
	require.Contains(t, rowErr.Message, "valid email")
}

func TestValidateRecord_EmptyName(t *testing.T) {
	rec := validRecord()
	rec["name"] = "   "

	_, err := ValidateRecord(rec)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, "Name", rowErr.Field)
}

func TestValidateRecord_FailuresAreIndependent(t *testing.T) {
	bad := validRecord()
	bad["email"] = ""
	_, err := ValidateRecord(bad)
	require.Error(t, err)

	// A later, well-formed record still validates.
	row, err := ValidateRecord(validRecord())
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", row.Email)
}
