package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeys(t *testing.T) {
	in := strings.NewReader(`
- {category: Silver, round: KO_1, teams: 2}
- {category: Gold, round: KO_1, teams: 2}
- {category: Gold, round: Pool_B, teams: 4}
- {category: Gold, round: KO_2, teams: 4}
`)

	var out bytes.Buffer
	require.NoError(t, sortKeys(in, &out))

	expected := `- category: Gold
  round: Pool_B
  teams: 4
- category: Gold
  round: KO_2
  teams: 4
- category: Gold
  round: KO_1
  teams: 2
- category: Silver
  round: KO_1
  teams: 2
`
	assert.Equal(t, expected, out.String())
}

func TestSortKeys_Unorderable(t *testing.T) {
	in := strings.NewReader(`
- {category: Gold, round: Pool_A, teams: 4}
- {category: Gold, round: Pool_B, teams: 4}
`)

	var out bytes.Buffer
	err := sortKeys(in, &out)

	var unorderable *round.UnorderableError
	require.True(t, errors.As(err, &unorderable))
	assert.Empty(t, out.String())
}

func TestPrintScore(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printScore([]string{"6", "4", "3", "6", "7", "5", "", ""}, &out))
	assert.Equal(t, "6-4 3-6 7-5\nlocal: 6 3 7\nvisitor: 4 6 5\nsets: 2-1\n", out.String())

	// A lone trailing local score is kept but forms no set
	out.Reset()
	require.NoError(t, printScore([]string{"6", "4", "5"}, &out))
	assert.Equal(t, "6-4\nlocal: 6 5\nvisitor: 4\nsets: 1-0\n", out.String())

	err := printScore([]string{"6", ""}, &out)
	assert.ErrorIs(t, err, score.ErrMissingRequiredSet)
}
