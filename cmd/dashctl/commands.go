package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"osiris-dashboard/internal/app"
	"osiris-dashboard/internal/config"
	"osiris-dashboard/internal/export"
	"osiris-dashboard/internal/reporting"
	"osiris-dashboard/internal/settings"
	"osiris-dashboard/pkg/logger"
)

// withApp loads config, wires services in-process and closes them afterwards.
// Logs go to stderr so stdout stays machine-readable.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(cfg.App.Env, cmd.ErrOrStderr())
	ctx := logger.With(cmd.Context(), log)

	a := app.New(ctx, cfg, log)
	defer a.Close()
	return fn(ctx, a)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- snapshot ---

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the current dashboard snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			data := a.Dashboard.Dashboard(ctx)
			if err := a.Stats.Record(ctx, data.IsLiveData); err != nil {
				logger.From(ctx).Warn("stats record failed", "err", err)
			}
			return writeJSON(cmd.OutOrStdout(), data)
		})
	},
}

// --- roi ---

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Print the ROI summary for the current snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return writeJSON(cmd.OutOrStdout(), reporting.ROI(a.Dashboard.Dashboard(ctx)))
		})
	},
}

// --- settings ---

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update business settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored settings, or defaults when none are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			s, found, err := a.Settings.Get(ctx)
			if err != nil {
				logger.From(ctx).Warn("settings unavailable, showing defaults", "err", err)
			}
			if err != nil || !found {
				s = settings.Defaults()
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"spreadsheetId": s.SpreadsheetID,
				"hourlyRate":    s.HourlyRate,
				"costPerJob":    s.CostPerJob,
				"persisted":     err == nil && found,
			})
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Upsert business settings",
	Long: `Upsert business settings. Flags left unset take the default value.

Examples:
  dashctl settings set --spreadsheet-id 1AbC --hourly-rate 30 --cost-per-job 55`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := settings.Defaults()
		in.SpreadsheetID, _ = cmd.Flags().GetString("spreadsheet-id")
		in.HourlyRate, _ = cmd.Flags().GetFloat64("hourly-rate")
		in.CostPerJob, _ = cmd.Flags().GetFloat64("cost-per-job")
		actor, _ := cmd.Flags().GetString("actor")

		if err := settings.Validate(in); err != nil {
			return fmt.Errorf("hourly-rate and cost-per-job must be non-negative")
		}

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Settings.Save(ctx, in, actor, ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "settings saved")
			return nil
		})
	},
}

func init() {
	settingsSetCmd.Flags().String("spreadsheet-id", "", "Google Sheets document id")
	settingsSetCmd.Flags().Float64("hourly-rate", settings.DefaultHourlyRate, "hourly rate used for time-saved value")
	settingsSetCmd.Flags().Float64("cost-per-job", settings.DefaultCostPerJob, "platform cost per job")
	settingsSetCmd.Flags().String("actor", "dashctl", "actor recorded in the audit log")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

// --- export ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current snapshot to an .xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			return fmt.Errorf("--output is required")
		}

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			f, err := export.Workbook(a.Dashboard.Dashboard(ctx))
			if err != nil {
				return err
			}
			defer f.Close()
			if err := f.SaveAs(out); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "path of the .xlsx file to write")
}
