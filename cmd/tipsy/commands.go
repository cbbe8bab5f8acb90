package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tipsy/internal/catalog"
	"github.com/KirkDiggler/tipsy/internal/chart"
	"github.com/KirkDiggler/tipsy/internal/importer"
	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/KirkDiggler/tipsy/internal/services/tracker"
)

const clockLayout = "Mon 15:04"

func withApp(opts *options, fn func(a *app) error) error {
	a, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func newProfileCmd(opts *options) *cobra.Command {
	profileCmd := &cobra.Command{Use: "profile", Short: "Manage your profile"}

	var weight float64
	var gender, speed, unit string

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set weight, gender, drinking pace and display unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				out, err := a.tracker.SetProfile(context.Background(), &tracker.SetProfileInput{
					UserID:        opts.userID,
					WeightKg:      weight,
					Gender:        models.Gender(gender),
					DrinkingSpeed: models.DrinkingSpeed(speed),
					Unit:          models.BacUnit(unit),
				})
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), out.Profile)
				return nil
			})
		},
	}
	setCmd.Flags().Float64Var(&weight, "weight", 0, "body weight in kg")
	setCmd.Flags().StringVar(&gender, "gender", "", "male|female")
	setCmd.Flags().StringVar(&speed, "speed", "", "slow|average|fast (default average)")
	setCmd.Flags().StringVar(&unit, "unit", "", "percent|permille (default percent)")
	_ = setCmd.MarkFlagRequired("weight")
	_ = setCmd.MarkFlagRequired("gender")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				out, err := a.tracker.GetProfile(context.Background(), &tracker.GetProfileInput{UserID: opts.userID})
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), out.Profile)
				return nil
			})
		},
	}

	profileCmd.AddCommand(setCmd, showCmd)
	return profileCmd
}

func newDrinkCmd(opts *options) *cobra.Command {
	drinkCmd := &cobra.Command{Use: "drink", Short: "Log and manage drinks"}

	var (
		name, drinkType, mixer string
		volume, abv, mixerVol  float64
		chug                   bool
		ago                    time.Duration
	)

	addCmd := &cobra.Command{
		Use:   "add [preset]",
		Short: "Log a drink from a preset or explicit volume and ABV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &tracker.AddDrinkInput{
				UserID: opts.userID,
				Type:   models.DrinkTypeOther,
				IsChug: chug,
			}

			if len(args) == 1 {
				preset, ok := catalog.LookupPreset(args[0])
				if !ok {
					return fmt.Errorf("unknown preset %q", args[0])
				}
				input.Name = preset.Name
				input.VolumeMl = preset.VolumeMl
				input.ABV = preset.ABV
				input.Type = preset.Type
				input.Icon = preset.Icon
			} else if !cmd.Flags().Changed("volume") || !cmd.Flags().Changed("abv") {
				return fmt.Errorf("give a preset or both --volume and --abv")
			}

			if cmd.Flags().Changed("name") {
				input.Name = name
			}
			if cmd.Flags().Changed("volume") {
				input.VolumeMl = volume
			}
			if cmd.Flags().Changed("abv") {
				input.ABV = abv
			}
			if cmd.Flags().Changed("type") {
				input.Type = models.DrinkType(drinkType)
			}

			if mixer != "" {
				m, ok := catalog.LookupMixer(mixer)
				if !ok {
					return fmt.Errorf("unknown mixer %q", mixer)
				}
				input.Mixer = &tracker.MixerInput{Name: m.Name, VolumeMl: mixerVol, ABV: m.ABV}
			}
			if ago < 0 {
				return fmt.Errorf("--ago cannot be negative")
			}

			return withApp(opts, func(a *app) error {
				if ago > 0 {
					input.Timestamp = a.clock.Now().Add(-ago)
				}

				out, err := a.tracker.AddDrink(context.Background(), input)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%s (%s)\n", out.Message, out.Drink.ID)
				printStatus(w, out.Status, unitFor(context.Background(), a, opts.userID), "", a.clock.Now())
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "drink name")
	addCmd.Flags().Float64Var(&volume, "volume", 0, "volume in ml")
	addCmd.Flags().Float64Var(&abv, "abv", 0, "alcohol by volume in percent")
	addCmd.Flags().StringVar(&drinkType, "type", "", "beer|wine|cocktail|spirit|other")
	addCmd.Flags().BoolVar(&chug, "chug", false, "downed in one go")
	addCmd.Flags().DurationVar(&ago, "ago", 0, "how long ago you started it, e.g. 20m")
	addCmd.Flags().StringVar(&mixer, "mixer", "", "mixer preset, e.g. tonic")
	addCmd.Flags().Float64Var(&mixerVol, "mixer-volume", 0, "mixer volume in ml")

	var last bool
	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a drink by ID, or the latest with --last",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !last && len(args) == 0 {
				return fmt.Errorf("give a drink ID or --last")
			}
			return withApp(opts, func(a *app) error {
				var out *tracker.RemoveDrinkOutput
				var err error
				if last {
					out, err = a.tracker.RemoveLastDrink(context.Background(), &tracker.RemoveLastDrinkInput{UserID: opts.userID})
				} else {
					out, err = a.tracker.RemoveDrink(context.Background(), &tracker.RemoveDrinkInput{UserID: opts.userID, DrinkID: args[0]})
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s %s\n", out.Drink.Name, out.Drink.ID)
				return nil
			})
		},
	}
	rmCmd.Flags().BoolVar(&last, "last", false, "remove the drink with the latest timestamp")

	var since time.Duration
	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List logged drinks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				input := &tracker.ListDrinksInput{UserID: opts.userID}
				if since > 0 {
					input.Since = a.clock.Now().Add(-since)
				}
				out, err := a.tracker.ListDrinks(context.Background(), input)
				if err != nil {
					return err
				}
				printDrinks(cmd.OutOrStdout(), out.Drinks)
				return nil
			})
		},
	}
	lsCmd.Flags().DurationVar(&since, "since", 0, "only drinks within this window, e.g. 12h")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every logged drink",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				if err := a.tracker.ClearDrinks(context.Background(), &tracker.ClearDrinksInput{UserID: opts.userID}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "drink log cleared")
				return nil
			})
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List drink presets and mixers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tNAME\tVOLUME\tABV\tTYPE")
			for _, p := range catalog.Presets() {
				fmt.Fprintf(tw, "%s\t%s %s\t%.0fml\t%.1f%%\t%s\n", p.ID, p.Icon, p.Name, p.VolumeMl, p.ABV, p.Type)
			}
			fmt.Fprintln(tw, "\nMIXER\tNAME")
			for _, m := range catalog.Mixers() {
				fmt.Fprintf(tw, "%s\t%s\n", m.ID, m.Name)
			}
			return tw.Flush()
		},
	}

	drinkCmd.AddCommand(addCmd, rmCmd, lsCmd, clearCmd, presetsCmd)
	return drinkCmd
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a profile and drinks from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := importer.Decode(f)
			if err != nil {
				return err
			}

			return withApp(opts, func(a *app) error {
				ctx := context.Background()

				if p := doc.ProfileInput(opts.userID); p != nil {
					if _, err := a.tracker.SetProfile(ctx, p); err != nil {
						return fmt.Errorf("profile: %w", err)
					}
				}

				inputs, err := doc.DrinkInputs(opts.userID, a.clock.Now())
				if err != nil {
					return err
				}
				for i, input := range inputs {
					if _, err := a.tracker.AddDrink(ctx, input); err != nil {
						return fmt.Errorf("drink %d: %w", i+1, err)
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "imported %d drinks\n", len(inputs))
				return nil
			})
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write your profile and drinks as YAML to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				ctx := context.Background()

				var p *models.Profile
				if out, err := a.tracker.GetProfile(ctx, &tracker.GetProfileInput{UserID: opts.userID}); err == nil {
					p = out.Profile
				}

				drinks, err := a.tracker.ListDrinks(ctx, &tracker.ListDrinksInput{UserID: opts.userID})
				if err != nil {
					return err
				}

				return importer.Encode(cmd.OutOrStdout(), p, drinks.Drinks)
			})
		},
	}
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your current estimated BAC",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				out, err := a.tracker.GetStatus(context.Background(), &tracker.GetStatusInput{UserID: opts.userID})
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), out.Status, profileUnit(out.Profile), out.Message, a.clock.Now())
				return nil
			})
		},
	}
}

func newTrendCmd(opts *options) *cobra.Command {
	var width int

	trendCmd := &cobra.Command{
		Use:   "trend",
		Short: "Chart your BAC seven hours either side of now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(a *app) error {
				out, err := a.tracker.GetTrend(context.Background(), &tracker.GetTrendInput{UserID: opts.userID})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(out.Points) == 0 {
					fmt.Fprintln(w, "no profile yet: run `tipsy profile set` first")
					return nil
				}

				unit := profileUnit(out.Profile)
				first, last := out.Points[0], out.Points[len(out.Points)-1]
				peak := out.Points[chart.Peak(out.Points)]

				fmt.Fprintln(w, chart.Sparkline(chart.Values(out.Points), width))
				fmt.Fprintf(w, "%s → %s\n", first.Time.Local().Format(clockLayout), last.Time.Local().Format(clockLayout))
				fmt.Fprintf(w, "peak %s at %s\n", unit.Format(peak.Bac), peak.Time.Local().Format(clockLayout))
				return nil
			})
		},
	}
	trendCmd.Flags().IntVar(&width, "width", 56, "chart width in columns")
	return trendCmd
}

func newWatchCmd(opts *options) *cobra.Command {
	var interval time.Duration

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print your status on an interval until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withApp(opts, func(a *app) error {
				unit := unitFor(ctx, a, opts.userID)

				updates, err := a.tracker.Watch(ctx, &tracker.WatchInput{UserID: opts.userID, Interval: interval})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				for update := range updates {
					s := update.Status
					fmt.Fprintf(w, "%s  %-8s %s\n", a.clock.Now().Local().Format("15:04"), s.Message, unit.Format(s.CurrentBac))
					if update.Warning != "" {
						fmt.Fprintf(w, "⚠️  %s\n", update.Warning)
					}
				}
				return nil
			})
		},
	}
	watchCmd.Flags().DurationVar(&interval, "interval", tracker.DefaultWatchInterval, "refresh interval")
	return watchCmd
}

func unitFor(ctx context.Context, a *app, userID string) models.BacUnit {
	out, err := a.tracker.GetProfile(ctx, &tracker.GetProfileInput{UserID: userID})
	if err != nil {
		return models.BacUnitPercent
	}
	return profileUnit(out.Profile)
}

func profileUnit(p *models.Profile) models.BacUnit {
	if p == nil || p.Unit == "" {
		return models.BacUnitPercent
	}
	return p.Unit
}

func printProfile(w io.Writer, p *models.Profile) {
	fmt.Fprintf(w, "weight  %.1f kg\n", p.WeightKg)
	fmt.Fprintf(w, "gender  %s\n", p.Gender)
	fmt.Fprintf(w, "pace    %s\n", p.DrinkingSpeed)
	fmt.Fprintf(w, "unit    %s\n", p.Unit)
}

func printStatus(w io.Writer, s *models.BacStatus, unit models.BacUnit, quip string, now time.Time) {
	if s.Tier == models.TierSetupRequired {
		fmt.Fprintln(w, "Setup Required: run `tipsy profile set --weight <kg> --gender <male|female>`")
		return
	}

	fmt.Fprintf(w, "%-7s %s\n", s.Message, unit.Format(s.CurrentBac))
	if s.PeakTime != nil {
		fmt.Fprintf(w, "peak    %s at %s\n", unit.Format(s.PeakBac), s.PeakTime.Local().Format(clockLayout))
	}
	if s.SoberTime != nil && s.SoberTime.After(now) {
		fmt.Fprintf(w, "sober   %s (in %s)\n", s.SoberTime.Local().Format(clockLayout), s.SoberTime.Sub(now).Round(time.Minute))
	}
	if quip != "" {
		fmt.Fprintln(w, quip)
	}
}

func printDrinks(w io.Writer, drinks []*models.Drink) {
	if len(drinks) == 0 {
		fmt.Fprintln(w, "no drinks logged")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tDRINK\tVOLUME\tABV\tCHUG")
	for _, d := range drinks {
		chug := ""
		if d.IsChug {
			chug = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%.0fml\t%.1f%%\t%s\n",
			d.ID, d.Timestamp.Local().Format(clockLayout), d.Icon, d.Name, d.VolumeMl, d.ABV, chug)
	}
	_ = tw.Flush()
}
