package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oceanrelay/vesselplan/app"
	"github.com/oceanrelay/vesselplan/config"
	"github.com/oceanrelay/vesselplan/core/solver"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Report why a scenario cannot be solved, if it cannot",
	RunE:  runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
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
	case solver.OutcomeInfeasible, solver.OutcomeResourceExhausted:
		fmt.Fprint(cmd.OutOrStdout(), out.Diagnostic.String())
	case solver.OutcomePlan:
		fmt.Fprintf(cmd.OutOrStdout(), "scenario is feasible: total cost %s, %d swap(s)\n",
			out.Plan.TotalCost.StringFixed(2), out.Plan.SwapCount)
	case solver.OutcomeConfigError:
		return fmt.Errorf("configuration error: %s", out.ConfigError.Error())
	default:
		return fmt.Errorf("solve did not complete: %s", out.Kind)
	}
	return nil
}
