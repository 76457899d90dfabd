package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	p, err := Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 1, Limit: 10}, p)
	assert.Equal(t, 0, p.Offset())
}

func TestParse_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		page  string
		limit string
	}{
		{"zero limit", "1", "0"},
		{"negative page", "-1", "5"},
		{"zero page", "0", "5"},
		{"non numeric page", "abc", "5"},
		{"non numeric limit", "1", "ten"},
		{"float limit", "1", "2.5"},
		{"negative limit", "1", "-3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.page, tc.limit)
			assert.ErrorIs(t, err, ErrInvalidPage)
		})
	}
}

func TestNew_OffsetForSecondPage(t *testing.T) {
	p, err := Parse("2", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Offset())
}

func TestNew_RejectsOverflowingWindow(t *testing.T) {
	cases := []struct {
		name   string
		number int
		limit  int
	}{
		{"max page", math.MaxInt, 10},
		{"max limit on second page", 2, math.MaxInt},
		{"product just over", math.MaxInt/10 + 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.number, tc.limit)
			assert.ErrorIs(t, err, ErrPageOutOfRange)
		})
	}

	_, err := Parse("9223372036854775807", "10")
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	p, err := New(math.MaxInt/10, 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Offset(), 0)

	p, err = New(1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset())
}
