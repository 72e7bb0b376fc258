package country

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Flagger/internal/translation"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	names := translation.NewTable([]translation.Entry{
		{ID: 250, Name: "France", Alpha2: "fr", Alpha3: "fra"},
		{ID: 392, Name: "Japan", Alpha2: "jp", Alpha3: "jpn"},
	})

	tests := []struct {
		name  string
		key   string
		names NameLookup
		want  Country
	}{
		{
			name:  "translated code",
			key:   "europe.fr",
			names: names,
			want:  Country{Name: "France", Key: "europe.fr", ISOCode: "FR"},
		},
		{
			name:  "code is case-insensitive",
			key:   "asia.JP",
			names: names,
			want:  Country{Name: "Japan", Key: "asia.JP", ISOCode: "JP"},
		},
		{
			name:  "missing translation keeps raw key as name",
			key:   "europe.xx",
			names: names,
			want:  Country{Name: "europe.xx", Key: "europe.xx", ISOCode: "XX"},
		},
		{
			name:  "key without separator",
			key:   "atlantis",
			names: names,
			want:  Country{Name: "atlantis", Key: "atlantis", ISOCode: "atlantis"},
		},
		{
			name:  "trailing separator",
			key:   "europe.",
			names: names,
			want:  Country{Name: "europe.", Key: "europe.", ISOCode: "europe."},
		},
		{
			name:  "empty key",
			key:   "",
			names: names,
			want:  Country{},
		},
		{
			name:  "nested path uses last segment",
			key:   "flags.europe.fr",
			names: names,
			want:  Country{Name: "France", Key: "flags.europe.fr", ISOCode: "FR"},
		},
		{
			name:  "nil lookup",
			key:   "europe.fr",
			names: nil,
			want:  Country{Name: "europe.fr", Key: "europe.fr", ISOCode: "FR"},
		},
		{
			name:  "empty table",
			key:   "europe.fr",
			names: translation.NewTable(nil),
			want:  Country{Name: "europe.fr", Key: "europe.fr", ISOCode: "FR"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Resolve(tt.key, tt.names))
		})
	}
}

func TestCountryIsComparable(t *testing.T) {
	t.Parallel()

	seen := map[Country]int{}
	seen[Country{Name: "France", Key: "europe.fr", ISOCode: "FR"}]++
	seen[Country{Name: "France", Key: "europe.fr", ISOCode: "FR"}]++
	seen[Country{Name: "France", Key: "fr", ISOCode: "FR"}]++

	require.Len(t, seen, 2)
}

func TestEmoji(t *testing.T) {
	t.Parallel()

	require.Equal(t, "🇫🇷", Emoji("FR"))
	require.Equal(t, "🇯🇵", Emoji(" jp "))
	require.Equal(t, globe, Emoji("FRA"))
	require.Equal(t, globe, Emoji("f1"))
	require.Equal(t, globe, Emoji(""))
}

func TestFormatDisplay(t *testing.T) {
	t.Parallel()

	c := Country{Name: "France", Key: "europe.fr", ISOCode: "FR"}
	require.Equal(t, "France", FormatDisplay(c, false))
	require.Equal(t, "🇫🇷 France", FormatDisplay(c, true))

	unresolved := Country{Name: "atlantis", Key: "atlantis", ISOCode: "atlantis"}
	require.Equal(t, "🌐 atlantis", FormatDisplay(unresolved, true))
	require.False(t, unresolved.Resolved())
	require.True(t, c.Resolved())
}
