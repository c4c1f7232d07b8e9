package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oceanrelay/vesselplan/app"
	"github.com/oceanrelay/vesselplan/config"
	"github.com/oceanrelay/vesselplan/core/solver"
	"github.com/oceanrelay/vesselplan/pkg/export"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scenario and print the resulting itinerary",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}

	out, err := svc.SolveFile(ctx, cfgPath)
	if err != nil {
		return err
	}

	switch out.Kind {
	case solver.OutcomePlan:
		return printPlan(cmd, out)
	case solver.OutcomeInfeasible:
		fmt.Fprint(cmd.OutOrStdout(), out.Diagnostic.String())
		return fmt.Errorf("scenario is infeasible")
	case solver.OutcomeConfigError:
		return fmt.Errorf("configuration error: %s", out.ConfigError.Error())
	default:
		return fmt.Errorf("solve did not complete: %s", out.Kind)
	}
}

func printPlan(cmd *cobra.Command, out solver.Outcome) error {
	switch outputFormat {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), out.Plan)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), out.Plan)
	case "table":
		return printPlanTable(cmd, out)
	default:
		return fmt.Errorf("unknown output format %s", outputFormat)
	}
}

func printPlanTable(cmd *cobra.Command, out solver.Outcome) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATION\tARRIVAL\tSOC (kWh)\tACTION\tSWAPPED\tCHARGED (kWh)\tDWELL (h)\tCOST")
	for _, s := range out.Plan.Steps {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%d\t%.2f\t%.2f\t%s\n",
			s.StationID, s.ArrivalTime, s.SoCArrivingKWh, s.Action, s.ContainersSwapped,
			s.EnergyChargedKWh, s.DwellHours, s.Cost.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\ntotal cost: %s, journey: %.2fh, swaps: %d\n",
		out.Plan.TotalCost.StringFixed(2), out.Plan.TotalJourneyHours, out.Plan.SwapCount)
	return nil
}
