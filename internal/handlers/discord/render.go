package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/tipsy/internal/bac"
	"github.com/KirkDiggler/tipsy/internal/chart"
	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	// sparklineWidth is how many columns a trend chart is squeezed into
	sparklineWidth = 42

	// historyLimit caps the drinks listed in one history embed
	historyLimit = 15
)

var themeColors = map[models.Theme]int{
	models.ThemeSafe:   0x34d399, // emerald
	models.ThemeBuzz:   0xfacc15, // yellow
	models.ThemeDrunk:  0xf97316, // orange
	models.ThemeDanger: 0xef4444, // red
}

// themeColor maps a status theme onto an embed colour
func themeColor(theme models.Theme) int {
	if c, ok := themeColors[theme]; ok {
		return c
	}
	return themeColors[models.ThemeSafe]
}

// unitOf returns the display unit of a profile, percent when unset
func unitOf(profile *models.Profile) models.BacUnit {
	if profile == nil || profile.Unit == "" {
		return models.BacUnitPercent
	}
	return profile.Unit
}

// formatBac renders a percent BAC value in the requested unit
func formatBac(bac float64, unit models.BacUnit) string {
	return unit.Format(bac)
}

// discordTime renders a timestamp the client shows in the reader's own zone
func discordTime(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// renderStatusEmbed renders a BAC snapshot
func renderStatusEmbed(status *models.BacStatus, profile *models.Profile, quip string, now time.Time) *discordgo.MessageEmbed {
	if status.Tier == models.TierSetupRequired {
		return &discordgo.MessageEmbed{
			Title:       status.Message,
			Description: "Set your weight and gender with `/tipsy profile` before logging drinks.",
			Color:       themeColor(status.Theme),
		}
	}

	unit := unitOf(profile)
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Current",
			Value:  formatBac(status.CurrentBac, unit),
			Inline: true,
		},
		{
			Name:   "Peak",
			Value:  formatBac(status.PeakBac, unit),
			Inline: true,
		},
	}

	if status.PeakTime != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Peak At",
			Value:  discordTime(*status.PeakTime, "t"),
			Inline: true,
		})
	}

	if status.SoberTime != nil && status.SoberTime.After(now) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Sober",
			Value:  fmt.Sprintf("%s (%s)", discordTime(*status.SoberTime, "t"), discordTime(*status.SoberTime, "R")),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       status.Message,
		Description: quip,
		Color:       themeColor(status.Theme),
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Estimate only. Never use this to decide whether to drive.",
		},
		Timestamp: now.Format(time.RFC3339),
	}
}

// renderDrinkEmbed renders the confirmation for a logged drink
func renderDrinkEmbed(drink *models.Drink, status *models.BacStatus, profile *models.Profile, message string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Drink",
			Value:  drinkLabel(drink),
			Inline: false,
		},
	}

	if status != nil && status.Tier != models.TierSetupRequired {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "Now",
				Value:  formatBac(status.CurrentBac, unitOf(profile)),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Heading To",
				Value:  formatBac(status.PeakBac, unitOf(profile)),
				Inline: true,
			},
		)
	}

	color := themeColor(models.ThemeSafe)
	if status != nil {
		color = themeColor(status.Theme)
	}

	return &discordgo.MessageEmbed{
		Title:       "Drink logged!",
		Description: message,
		Color:       color,
		Fields:      fields,
	}
}

// renderTrendEmbed renders a trend series as a sparkline
func renderTrendEmbed(points []models.BacPoint, profile *models.Profile) *discordgo.MessageEmbed {
	if len(points) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "No trend yet",
			Description: "Set up your profile and log a drink to see a chart.",
			Color:       themeColor(models.ThemeSafe),
		}
	}

	peakIdx := chart.Peak(points)
	_, _, theme := bac.Classify(points[peakIdx].Bac)
	unit := unitOf(profile)
	first := points[0].Time
	last := points[len(points)-1].Time

	description := fmt.Sprintf("```\n%s\n```\n%s → %s",
		chart.Sparkline(chart.Values(points), sparklineWidth),
		discordTime(first, "t"),
		discordTime(last, "t"),
	)

	return &discordgo.MessageEmbed{
		Title:       "BAC Trend",
		Description: description,
		Color:       themeColor(theme),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Peak",
				Value:  fmt.Sprintf("%s at %s", formatBac(points[peakIdx].Bac, unit), discordTime(points[peakIdx].Time, "t")),
				Inline: false,
			},
		},
	}
}

// renderHistoryEmbed lists the most recent drinks
func renderHistoryEmbed(drinks []*models.Drink) *discordgo.MessageEmbed {
	if len(drinks) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Drink History",
			Description: "Nothing logged yet.",
			Color:       themeColor(models.ThemeSafe),
		}
	}

	start := 0
	if len(drinks) > historyLimit {
		start = len(drinks) - historyLimit
	}

	var sb strings.Builder
	for _, d := range drinks[start:] {
		sb.WriteString(fmt.Sprintf("%s %s\n", discordTime(d.Timestamp, "t"), drinkLabel(d)))
	}
	if start > 0 {
		sb.WriteString(fmt.Sprintf("\n…and %d earlier", start))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Drink History (%d)", len(drinks)),
		Description: sb.String(),
		Color:       themeColor(models.ThemeBuzz),
	}
}

// drinkLabel is a one-line description of a drink
func drinkLabel(d *models.Drink) string {
	icon := d.Icon
	if icon == "" {
		icon = "🥤"
	}
	label := fmt.Sprintf("%s **%s** %.0fml @ %.1f%%", icon, d.Name, d.VolumeMl, d.ABV)
	if d.IsChug {
		label += " (chugged)"
	}
	return label
}
