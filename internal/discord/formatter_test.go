package discord

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"Flagger/internal/config"
	"Flagger/internal/flag"
	"Flagger/internal/translation"
)

func franceView() flag.ViewRecord {
	names := translation.NewTable([]translation.Entry{{ID: 250, Name: "France", Alpha2: "fr", Alpha3: "fra"}})
	return flag.Normalize(flag.Record{
		Country:   "europe.fr",
		Continent: "europe",
		Colors:    []string{"blue", "white", "red"},
		ImageName: "FR",
		Badges:    flag.Badges{Bars: 3},
	}, names)
}

func TestFlagEmbed(t *testing.T) {
	t.Parallel()

	format := config.DefaultConfig().Format
	embed := FlagEmbed(franceView(), &format)

	require.Equal(t, "🇫🇷 France", embed.Title)
	require.Equal(t, ColorEurope, embed.Color)
	require.Equal(t, "europe.fr", embed.Footer.Text)
	require.Len(t, embed.Fields, len(format.FieldOrder))

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}
	require.Equal(t, "France (FR)", values["🌍 Country"])
	require.Equal(t, "N/A", values["🧭 Zone"])
	require.Equal(t, "blue, red, white", values["🎨 Colors"])
	require.Equal(t, "No", values["🔤 Text"])
	require.Equal(t, "bars: 3", values["📐 Badges"])
	require.Equal(t, "fr", values["🖼️ Image"])
}

func TestFlagEmbedHidesEmptyFields(t *testing.T) {
	t.Parallel()

	format := config.DefaultConfig().Format
	format.ShowEmptyFields = false
	format.ShowUnicodeFlags = false
	format.FieldOrder = []string{"zone", "continent", "unknown"}

	embed := FlagEmbed(franceView(), &format)
	require.Equal(t, "France", embed.Title)
	require.Len(t, embed.Fields, 1)
	require.Equal(t, "europe", embed.Fields[0].Value)
}

func TestWebhookPayloadsChunks(t *testing.T) {
	t.Parallel()

	format := config.DefaultConfig().Format
	views := make([]flag.ViewRecord, 23)
	for i := range views {
		views[i] = franceView()
	}

	payloads := WebhookPayloads(views, &format)
	require.Len(t, payloads, 3)
	require.Len(t, payloads[0].Embeds, 10)
	require.Len(t, payloads[2].Embeds, 3)

	out, err := json.Marshal(payloads[0])
	require.NoError(t, err)
	require.Contains(t, string(out), `"embeds"`)

	require.Empty(t, WebhookPayloads(nil, &format))
}

func TestFormatBadges(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", FormatBadges(flag.Badges{}))
	require.Equal(t, "stripes: 13, quarters: 1, sunstars: 50",
		FormatBadges(flag.Badges{Stripes: 13, Quarters: 1, Sunstars: 50}))
}

func TestContinentColor(t *testing.T) {
	t.Parallel()

	for continent, want := range map[string]int{
		"Europe":    ColorEurope,
		"asia":      ColorAsia,
		"africa":    ColorAfrica,
		"america":   ColorAmerica,
		"oceania":   ColorOceania,
		"antarctic": ColorDefault,
	} {
		require.Equal(t, want, continentColor(continent), continent)
	}
}
