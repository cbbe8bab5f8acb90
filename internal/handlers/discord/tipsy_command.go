package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/tipsy/internal/catalog"
	"github.com/KirkDiggler/tipsy/internal/common/clock"
	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/KirkDiggler/tipsy/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonRefreshStatus = "tipsy_refresh_status"
	ButtonUndoDrink     = "tipsy_undo_drink"
	ButtonShowTrend     = "tipsy_show_trend"

	// customIDSeparator splits a button action from its argument
	customIDSeparator = ":"
)

// optionMap indexes subcommand options by name
type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

// TipsyCommand handles the /tipsy command
type TipsyCommand struct {
	BaseCommand
	tracker tracker.Service
	clock   clock.Clock
}

// NewTipsyCommand creates a new tipsy command handler
func NewTipsyCommand(trackerService tracker.Service, clk clock.Clock) *TipsyCommand {
	return &TipsyCommand{
		BaseCommand: BaseCommand{
			Name:        "tipsy",
			Description: "Track your drinks and estimate your blood alcohol",
			Options:     tipsyOptions(),
		},
		tracker: trackerService,
		clock:   clk,
	}
}

func tipsyOptions() []*discordgo.ApplicationCommandOption {
	minZero := 0.0

	var presetChoices []*discordgo.ApplicationCommandOptionChoice
	for _, p := range catalog.Presets() {
		presetChoices = append(presetChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s %s (%.0fml, %.1f%%)", p.Icon, p.Name, p.VolumeMl, p.ABV),
			Value: p.ID,
		})
	}

	var mixerChoices []*discordgo.ApplicationCommandOptionChoice
	for _, m := range catalog.Mixers() {
		mixerChoices = append(mixerChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  m.Name,
			Value: m.ID,
		})
	}

	var typeChoices []*discordgo.ApplicationCommandOptionChoice
	for _, t := range models.DrinkTypes {
		typeChoices = append(typeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(t),
			Value: string(t),
		})
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "profile",
			Description: "Set your weight, gender and drinking pace",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "weight",
					Description: "Body weight in kg",
					Required:    true,
					MinValue:    &minZero,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "gender",
					Description: "Selects the body water ratio",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "male", Value: string(models.GenderMale)},
						{Name: "female", Value: string(models.GenderFemale)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "speed",
					Description: "How fast you usually drink",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "slow", Value: string(models.DrinkingSpeedSlow)},
						{Name: "average", Value: string(models.DrinkingSpeedAverage)},
						{Name: "fast", Value: string(models.DrinkingSpeedFast)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "unit",
					Description: "Display unit",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "percent (%)", Value: string(models.BacUnitPercent)},
						{Name: "permille (g/L)", Value: string(models.BacUnitPermille)},
					},
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "drink",
			Description: "Log a drink",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "preset",
					Description: "A common drink",
					Choices:     presetChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "What you're drinking",
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "volume",
					Description: "Volume in ml",
					MinValue:    &minZero,
					MaxValue:    tracker.MaxVolumeMl,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "abv",
					Description: "Alcohol by volume in percent",
					MinValue:    &minZero,
					MaxValue:    100,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Kind of drink",
					Choices:     typeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mixer",
					Description: "Add a mixer",
					Choices:     mixerChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "mixer_volume",
					Description: "Mixer volume in ml",
					MinValue:    &minZero,
					MaxValue:    tracker.MaxVolumeMl,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "chug",
					Description: "Downed in one go",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "minutes_ago",
					Description: "When you started it",
					MinValue:    &minZero,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "status",
			Description: "Show your current estimated BAC",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "trend",
			Description: "Chart your BAC seven hours either side of now",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "history",
			Description: "List the drinks you've logged",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "undo",
			Description: "Remove your latest drink by time",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "reset",
			Description: "Clear your whole drink log",
		},
	}
}

// Handle processes a Discord interaction for the tipsy command
func (c *TipsyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, _ := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "Couldn't tell who you are.")
	}

	sub := data.Options[0]
	opts := toOptionMap(sub.Options)

	switch sub.Name {
	case "profile":
		return c.handleProfile(s, i, userID, opts)
	case "drink":
		return c.handleDrink(s, i, userID, opts)
	case "status":
		return c.handleStatus(s, i, userID)
	case "trend":
		return c.handleTrend(s, i, userID)
	case "history":
		return c.handleHistory(s, i, userID)
	case "undo":
		return c.handleUndo(s, i, userID, "")
	case "reset":
		return c.handleReset(s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

// HandleComponent processes the buttons attached to tipsy responses
func (c *TipsyCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, _ := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "Couldn't tell who you are.")
	}

	action, arg := parseCustomID(i.MessageComponentData().CustomID)
	switch action {
	case ButtonRefreshStatus:
		return c.handleStatus(s, i, userID)
	case ButtonUndoDrink:
		return c.handleUndo(s, i, userID, arg)
	case ButtonShowTrend:
		return c.handleTrend(s, i, userID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", i.MessageComponentData().CustomID))
	}
}

func (c *TipsyCommand) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	ctx := context.Background()

	out, err := c.tracker.SetProfile(ctx, buildSetProfileInput(userID, opts))
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error saving profile", err)
	}

	p := out.Profile
	embed := &discordgo.MessageEmbed{
		Title:       "Profile saved",
		Description: "Your numbers are only estimates. Drink responsibly.",
		Color:       themeColor(models.ThemeSafe),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Weight", Value: fmt.Sprintf("%.1f kg", p.WeightKg), Inline: true},
			{Name: "Gender", Value: string(p.Gender), Inline: true},
			{Name: "Pace", Value: string(p.DrinkingSpeed), Inline: true},
			{Name: "Unit", Value: p.Unit.Symbol(), Inline: true},
		},
	}

	return RespondWithEmbed(s, i, embed, nil, false)
}

func (c *TipsyCommand) handleDrink(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	ctx := context.Background()

	input, err := buildAddDrinkInput(userID, opts, c.clock.Now())
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	out, err := c.tracker.AddDrink(ctx, input)
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error logging drink", err)
	}

	profile, err := c.tracker.GetProfile(ctx, &tracker.GetProfileInput{UserID: userID})
	var p *models.Profile
	if err == nil {
		p = profile.Profile
	}

	return RespondWithEmbed(s, i, renderDrinkEmbed(out.Drink, out.Status, p, out.Message), drinkButtons(out.Drink.ID), false)
}

// drinkButtons are attached to a drink confirmation; Undo removes that exact drink
func drinkButtons(drinkID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Status",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonRefreshStatus,
			Emoji:    &discordgo.ComponentEmoji{Name: "📊"},
		},
		discordgo.Button{
			Label:    "Undo",
			Style:    discordgo.DangerButton,
			CustomID: undoButtonID(drinkID),
			Emoji:    &discordgo.ComponentEmoji{Name: "↩️"},
		},
	}
}

func (c *TipsyCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.tracker.GetStatus(ctx, &tracker.GetStatusInput{UserID: userID})
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error getting status", err)
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Refresh",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonRefreshStatus,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
		},
		discordgo.Button{
			Label:    "Trend",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonShowTrend,
			Emoji:    &discordgo.ComponentEmoji{Name: "📈"},
		},
	}

	return RespondWithEmbed(s, i, renderStatusEmbed(out.Status, out.Profile, out.Message, c.clock.Now()), buttons, false)
}

func (c *TipsyCommand) handleTrend(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.tracker.GetTrend(ctx, &tracker.GetTrendInput{UserID: userID})
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error building trend", err)
	}

	return RespondWithEmbed(s, i, renderTrendEmbed(out.Points, out.Profile), nil, false)
}

func (c *TipsyCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.tracker.ListDrinks(ctx, &tracker.ListDrinksInput{
		UserID: userID,
		Since:  c.clock.Now().Add(-tracker.DefaultLookback),
	})
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error listing drinks", err)
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(out.Drinks), nil, false)
}

// handleUndo removes drinkID, or the drink with the latest timestamp when no ID is given
func (c *TipsyCommand) handleUndo(s *discordgo.Session, i *discordgo.InteractionCreate, userID, drinkID string) error {
	ctx := context.Background()

	var out *tracker.RemoveDrinkOutput
	var err error
	if drinkID != "" {
		out, err = c.tracker.RemoveDrink(ctx, &tracker.RemoveDrinkInput{UserID: userID, DrinkID: drinkID})
	} else {
		out, err = c.tracker.RemoveLastDrink(ctx, &tracker.RemoveLastDrinkInput{UserID: userID})
	}
	if err != nil {
		return c.respondWithTrackerError(s, i, "Error removing drink", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Drink removed",
		Description: drinkLabel(out.Drink),
		Color:       themeColor(models.ThemeSafe),
	}

	return RespondWithEmbed(s, i, embed, nil, false)
}

func (c *TipsyCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	if err := c.tracker.ClearDrinks(ctx, &tracker.ClearDrinksInput{UserID: userID}); err != nil {
		return c.respondWithTrackerError(s, i, "Error clearing drinks", err)
	}

	return RespondWithEphemeralMessage(s, i, "Drink log cleared. Fresh start!")
}

// respondWithTrackerError shows validation errors verbatim and hides everything else
func (c *TipsyCommand) respondWithTrackerError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) error {
	var trackerErr tracker.TrackerError
	if errors.As(err, &trackerErr) {
		return RespondWithError(s, i, trackerErr.Error())
	}

	log.Printf("%s: %v", action, err)
	return RespondWithError(s, i, fmt.Sprintf("%s. Try again in a bit.", action))
}

func toOptionMap(options []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// buildSetProfileInput maps /tipsy profile options onto a tracker request
func buildSetProfileInput(userID string, opts optionMap) *tracker.SetProfileInput {
	input := &tracker.SetProfileInput{UserID: userID}

	if opt, ok := opts["weight"]; ok {
		input.WeightKg = opt.FloatValue()
	}
	if opt, ok := opts["gender"]; ok {
		input.Gender = models.Gender(opt.StringValue())
	}
	if opt, ok := opts["speed"]; ok {
		input.DrinkingSpeed = models.DrinkingSpeed(opt.StringValue())
	}
	if opt, ok := opts["unit"]; ok {
		input.Unit = models.BacUnit(opt.StringValue())
	}

	return input
}

// buildAddDrinkInput maps /tipsy drink options onto a tracker request.
// A preset supplies defaults that explicit options override.
func buildAddDrinkInput(userID string, opts optionMap, now time.Time) (*tracker.AddDrinkInput, error) {
	input := &tracker.AddDrinkInput{
		UserID:    userID,
		Type:      models.DrinkTypeOther,
		Timestamp: now,
	}

	hasPreset := false
	if opt, ok := opts["preset"]; ok {
		preset, found := catalog.LookupPreset(opt.StringValue())
		if !found {
			return nil, fmt.Errorf("unknown preset %q", opt.StringValue())
		}
		hasPreset = true
		input.Name = preset.Name
		input.VolumeMl = preset.VolumeMl
		input.ABV = preset.ABV
		input.Type = preset.Type
		input.Icon = preset.Icon
	}

	if opt, ok := opts["name"]; ok {
		input.Name = opt.StringValue()
	}
	if opt, ok := opts["volume"]; ok {
		input.VolumeMl = opt.FloatValue()
	}
	if opt, ok := opts["abv"]; ok {
		input.ABV = opt.FloatValue()
	}
	if opt, ok := opts["type"]; ok {
		input.Type = models.DrinkType(opt.StringValue())
	}
	if opt, ok := opts["chug"]; ok {
		input.IsChug = opt.BoolValue()
	}
	if opt, ok := opts["minutes_ago"]; ok {
		input.Timestamp = now.Add(-time.Duration(opt.IntValue()) * time.Minute)
	}

	if !hasPreset {
		if _, ok := opts["volume"]; !ok {
			return nil, errors.New("pick a preset or give a volume and ABV")
		}
		if _, ok := opts["abv"]; !ok {
			return nil, errors.New("pick a preset or give a volume and ABV")
		}
	}

	if opt, ok := opts["mixer"]; ok {
		mixer, found := catalog.LookupMixer(opt.StringValue())
		if !found {
			return nil, fmt.Errorf("unknown mixer %q", opt.StringValue())
		}
		input.Mixer = &tracker.MixerInput{
			Name: mixer.Name,
			ABV:  mixer.ABV,
		}
		if vol, ok := opts["mixer_volume"]; ok {
			input.Mixer.VolumeMl = vol.FloatValue()
		}
		if _, ok := opts["type"]; !ok && !hasPreset {
			input.Type = models.DrinkTypeCocktail
		}
	}

	return input, nil
}

// undoButtonID binds an undo button to the drink its message confirmed
func undoButtonID(drinkID string) string {
	return ButtonUndoDrink + customIDSeparator + drinkID
}

// parseCustomID splits a button custom ID into its action and optional argument
func parseCustomID(customID string) (string, string) {
	action, arg, _ := strings.Cut(customID, customIDSeparator)
	return action, arg
}
