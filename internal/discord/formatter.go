// Package discord renders flags as Discord embeds. Payloads are built here and
// printed by the CLI; nothing in this package talks to the network.
package discord

import (
	"fmt"
	"strings"

	"Flagger/internal/config"
	"Flagger/internal/country"
	"Flagger/internal/flag"
	"Flagger/internal/textutil"

	"github.com/bwmarrin/discordgo"
)

const (
	// maxEmbedsPerMessage is Discord's limit on embeds in one webhook message
	maxEmbedsPerMessage = 10
	// maxFieldValueLength is Discord's limit on an embed field value
	maxFieldValueLength = 1024
)

// Color constants for Discord embeds, one per continent
const (
	ColorEurope  = 0x0055a4
	ColorAsia    = 0xbc002d
	ColorAfrica  = 0x008751
	ColorAmerica = 0xffcc29
	ColorOceania = 0x00843d
	ColorDefault = 0x99aab5
)

// continentColor picks the embed accent color for a continent
func continentColor(continent string) int {
	switch strings.ToLower(continent) {
	case "europe":
		return ColorEurope
	case "asia":
		return ColorAsia
	case "africa":
		return ColorAfrica
	case "america", "north america", "south america":
		return ColorAmerica
	case "oceania":
		return ColorOceania
	default:
		return ColorDefault
	}
}

// FlagEmbed creates a Discord embed "flag card" for a view record
func FlagEmbed(view flag.ViewRecord, formatConfig *config.FormatConfig) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: country.FormatDisplay(view.Country, formatConfig.ShowUnicodeFlags),
		Color: continentColor(view.Continent),
		Footer: &discordgo.MessageEmbedFooter{
			Text: view.CountryKey,
		},
	}

	// Add fields based on the format configuration
	for _, fieldName := range formatConfig.FieldOrder {
		field := createFlagField(fieldName, view, formatConfig)
		if field != nil {
			embed.Fields = append(embed.Fields, field)
		}
	}

	return embed
}

// WebhookPayloads splits flag cards into webhook messages of at most ten embeds
func WebhookPayloads(views []flag.ViewRecord, formatConfig *config.FormatConfig) []*discordgo.WebhookParams {
	var payloads []*discordgo.WebhookParams
	for start := 0; start < len(views); start += maxEmbedsPerMessage {
		end := start + maxEmbedsPerMessage
		if end > len(views) {
			end = len(views)
		}

		params := &discordgo.WebhookParams{}
		for _, v := range views[start:end] {
			params.Embeds = append(params.Embeds, FlagEmbed(v, formatConfig))
		}
		payloads = append(payloads, params)
	}
	return payloads
}

// createFlagField creates a Discord embed field for a specific view field.
// Returns nil for empty values unless empty fields are shown.
func createFlagField(fieldName string, view flag.ViewRecord, formatConfig *config.FormatConfig) *discordgo.MessageEmbedField {
	var name, value string
	inline := true

	switch strings.ToLower(fieldName) {
	case "country":
		name = "🌍 Country"
		value = fmt.Sprintf("%s (%s)", view.Country.Name, view.Country.ISOCode)
	case "continent":
		name = "🗺️ Continent"
		value = view.Continent
	case "zone":
		name = "🧭 Zone"
		value = view.Zone
	case "colors":
		name = "🎨 Colors"
		value = strings.Join(view.Colors.Sorted(), ", ")
		inline = false
	case "text":
		name = "🔤 Text"
		value = view.Text.String()
	case "symbol":
		name = "⚜️ Symbol"
		value = view.Symbol.String()
	case "badges":
		name = "📐 Badges"
		value = FormatBadges(view.Badges)
		inline = false
	case "image":
		name = "🖼️ Image"
		value = view.ImageName
	default:
		return nil
	}

	if value == "" {
		if !formatConfig.ShowEmptyFields {
			return nil
		}
		value = formatConfig.EmptyFieldText
	}

	value = textutil.TruncateText(value, maxFieldValueLength)

	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

// FormatBadges lists the non-zero badge counts, e.g. "bars: 3, circles: 1"
func FormatBadges(b flag.Badges) string {
	var parts []string
	for _, name := range flag.BadgeNames() {
		if n, _ := b.Count(name); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", name, n))
		}
	}
	return strings.Join(parts, ", ")
}
