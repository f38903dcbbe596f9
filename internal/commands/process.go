package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adpgen-dev/adpgen/internal/adp"
	"github.com/adpgen-dev/adpgen/internal/payroll"
	"github.com/adpgen-dev/adpgen/internal/period"
	"github.com/adpgen-dev/adpgen/internal/timesheet"
	"github.com/adpgen-dev/adpgen/internal/tips"
)

type processOptions struct {
	configPath    string
	timesheetPath string
	tipsPath      string
	restaurant    string
	location      string
	weekStart     string
	nameCol       int
	amountCol     int
	filterWeek    bool
	outDir        string
}

func newProcessCommand() *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Convert a Square timesheet and tips ledger into an ADP import file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", defaultConfigPath, "deployment config file")
	cmd.Flags().StringVar(&opts.timesheetPath, "timesheet", "", "Square shift export CSV (required)")
	_ = cmd.MarkFlagRequired("timesheet")
	cmd.Flags().StringVar(&opts.tipsPath, "tips", "", "tips ledger (CSV or Excel)")
	cmd.Flags().StringVar(&opts.restaurant, "restaurant", "", "restaurant name from the config (required)")
	_ = cmd.MarkFlagRequired("restaurant")
	cmd.Flags().StringVar(&opts.location, "location", "", "location name, for restaurants with sub-locations")
	cmd.Flags().StringVar(&opts.weekStart, "week-start", "", "pay week start, YYYY-MM-DD, must be a Monday (required)")
	_ = cmd.MarkFlagRequired("week-start")
	cmd.Flags().IntVar(&opts.nameCol, "tips-name-col", -1, "tips ledger name column index (default: guessed from headers)")
	cmd.Flags().IntVar(&opts.amountCol, "tips-amount-col", -1, "tips ledger amount column index (default: guessed from headers)")
	cmd.Flags().BoolVar(&opts.filterWeek, "filter-week", false, "drop shift rows whose clock-in date falls outside the pay week")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "output directory")

	return cmd
}

func runProcess(opts processOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	iid, locName, err := cfg.ResolveInstitution(opts.restaurant, opts.location)
	if err != nil {
		return err
	}

	wk, err := period.ParseWeekStart(opts.weekStart)
	if err != nil {
		return err
	}

	shifts, err := readTimesheet(opts.timesheetPath)
	if err != nil {
		return err
	}

	if locs := timesheet.Locations(shifts); len(locs) > 1 {
		log.WithField("locations", strings.Join(locs, ", ")).
			Warn("timesheet contains shifts from multiple locations")
	}

	if opts.filterWeek {
		before := len(shifts)
		shifts = timesheet.FilterWeek(shifts, wk)
		log.Infof("week filter kept %d of %d shift rows", len(shifts), before)
	}

	in := payroll.RunInput{
		Shifts: shifts,
		Config: payroll.RunConfig{
			InstitutionID: iid,
			PeriodStart:   wk.StartADP(),
			PeriodEnd:     wk.EndADP(),
			PayFrequency:  cfg.Codes.PayFrequency,
			RateCode:      cfg.Codes.RateCode,
			SpreadRate:    decimal.NewFromFloat(cfg.Rates.SpreadHour),
		},
	}

	if opts.tipsPath != "" {
		table, err := tips.ReadFile(opts.tipsPath)
		if err != nil {
			return err
		}
		in.Tips = table
		in.NameCol = opts.nameCol
		in.AmountCol = opts.amountCol
		if in.NameCol < 0 {
			in.NameCol = tips.GuessNameColumn(table.Headers)
			log.Infof("using %q as the tips name column", header(table.Headers, in.NameCol))
		}
		if in.AmountCol < 0 {
			in.AmountCol = tips.GuessAmountColumn(table.Headers)
			log.Infof("using %q as the tips amount column", header(table.Headers, in.AmountCol))
		}
	}

	out := payroll.Process(in)

	for _, info := range out.Validation.Infos {
		log.Info(info)
	}
	for _, w := range out.Validation.Warnings {
		if w.Detail != "" {
			log.Warnf("%s %s", w.Text, w.Detail)
		} else {
			log.Warn(w.Text)
		}
	}

	log.WithFields(log.Fields{
		"employees":      out.Stats.Employees,
		"regular_hours":  out.Stats.RegularHours.String(),
		"tip_dollars":    out.Stats.TipDollars.StringFixed(2),
		"spread_dollars": out.Stats.SpreadDollars.StringFixed(2),
	}).Info("processed timesheet")

	path := filepath.Join(opts.outDir, adp.Filename(locName, wk))
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := adp.Encode(fh, out.Rows); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	log.WithFields(log.Fields{"file": path, "rows": len(out.Rows)}).Info("wrote ADP import")
	return nil
}

func readTimesheet(path string) ([]timesheet.ShiftRecord, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening timesheet: %w", err)
	}
	defer fh.Close()
	return timesheet.Parse(fh)
}

func header(headers []string, i int) string {
	if i < 0 || i >= len(headers) || headers[i] == "" {
		return fmt.Sprintf("column %d", i+1)
	}
	return headers[i]
}
