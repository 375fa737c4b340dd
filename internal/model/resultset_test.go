package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet_WriteCSV(t *testing.T) {
	rs := &ResultSet{
		Columns: []string{"City", "Total_Quantity", "Rate"},
		Rows: [][]any{
			{"Springfield", int64(120), 66.67},
			{"Riverton, East", int64(45), nil},
		},
	}

	var b strings.Builder
	require.NoError(t, rs.WriteCSV(&b))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "City,Total_Quantity,Rate", lines[0])
	assert.Equal(t, "Springfield,120,66.67", lines[1])
	// embedded comma forces quoting, NULL renders as an empty cell
	assert.Equal(t, `"Riverton, East",45,`, lines[2])
}

func TestResultSet_WriteCSV_Empty(t *testing.T) {
	rs := &ResultSet{Columns: []string{"Name"}, Rows: [][]any{}}

	var b strings.Builder
	require.NoError(t, rs.WriteCSV(&b))

	assert.Equal(t, "Name\n", b.String())
	assert.Equal(t, 0, rs.Len())
}
