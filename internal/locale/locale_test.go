package locale

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en-US"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"en-GB", "en-GB"},
		{"fi", "fi"},
		{"fi-FI", "fi"},
		{"sv_SE", "sv"},
		{"de-AT", "de"},
		{"ja-JP", "ja"},
		{"zh-CN", "zh-Hans"},
		{"zh-TW", "zh-Hant"},
		{"pt-BR", "en-US"},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.in)
		require.NoErrorf(t, err, "Lookup(%q)", tt.in)
		assert.Equalf(t, tt.want, got.ID(), "Lookup(%q)", tt.in)
	}
}

func TestLookup_Malformed(t *testing.T) {
	_, err := Lookup("not a tag!!")
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestTableQueries(t *testing.T) {
	us := MustLookup("en-US")
	assert.False(t, us.Uses24HourTime())
	assert.True(t, us.MonthPrecedesDay())
	assert.Equal(t, "AM", us.AMSymbol())
	assert.Equal(t, "PM", us.PMSymbol())
	assert.Equal(t, ":", us.TimeSeparator())

	fi := MustLookup("fi")
	assert.True(t, fi.Uses24HourTime())
	assert.False(t, fi.MonthPrecedesDay())
	assert.Equal(t, ".", fi.TimeSeparator())

	de := MustLookup("de")
	months := de.ShortMonthSymbols()
	require.Len(t, months, 12)
	assert.Equal(t, "Mär", months[2])

	// Callers get a copy.
	months[0] = "x"
	assert.Equal(t, "Jan", de.ShortMonthSymbols()[0])
}

func TestSupported(t *testing.T) {
	ids := Supported()
	assert.Equal(t, "en-US", ids[0])
	for _, id := range []string{"ar", "da", "de", "el", "en-GB", "es", "fi", "fr", "he", "ja", "nl", "ro", "ru", "sv", "zh-Hans", "zh-Hant"} {
		assert.Contains(t, ids, id)
		got, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
	}
}

func TestDescribe(t *testing.T) {
	info := Describe(MustLookup("sv"))
	assert.Equal(t, "sv", info.ID)
	assert.True(t, info.Uses24HourTime)
	assert.Equal(t, "fm", info.AMSymbol)
	assert.Len(t, info.ShortMonths, 12)
}

func TestGregorian_DaysInMonth(t *testing.T) {
	var g Gregorian
	assert.Equal(t, 29, g.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, g.DaysInMonth(2023, time.February))
	assert.Equal(t, 28, g.DaysInMonth(1900, time.February))
	assert.Equal(t, 29, g.DaysInMonth(2000, time.February))
	assert.Equal(t, 31, g.DaysInMonth(2023, time.January))
	assert.Equal(t, 30, g.DaysInMonth(2023, time.April))
	assert.Equal(t, 31, g.DaysInMonth(2023, time.December))
	assert.Equal(t, 12, g.MonthsInYear(2023))
}

func TestGregorian_Compose(t *testing.T) {
	var g Gregorian
	got, err := g.Compose(Parts{Year: 2024, Month: time.February, Day: 29, Hour: 22, Minute: 5}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 22, 5, 0, 0, time.UTC), got)
	assert.Equal(t, Parts{Year: 2024, Month: time.February, Day: 29, Hour: 22, Minute: 5}, g.Decompose(got))

	bad := []Parts{
		{Year: 2023, Month: time.February, Day: 29},
		{Year: 2023, Month: 13, Day: 1},
		{Year: 2023, Month: 0, Day: 1},
		{Year: 2023, Month: time.June, Day: 0},
		{Year: 2023, Month: time.June, Day: 1, Hour: 24},
		{Year: 2023, Month: time.June, Day: 1, Minute: 60},
		{Year: 2023, Month: time.June, Day: 1, Minute: -1},
	}
	for _, p := range bad {
		_, err := g.Compose(p, time.UTC)
		assert.ErrorIsf(t, err, ErrInvalidComponents, "%+v", p)
	}
}

func TestGregorian_ComposeRejectsDSTGap(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	var g Gregorian
	_, err = g.Compose(Parts{Year: 2024, Month: time.March, Day: 10, Hour: 2, Minute: 30}, ny)
	require.ErrorIs(t, err, ErrInvalidComponents)

	got, err := g.Compose(Parts{Year: 2024, Month: time.March, Day: 10, Hour: 3, Minute: 30}, ny)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Hour())
}
