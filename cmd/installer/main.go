package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/budai-platform/agent-summarizer/internal/infrastructure/deploy"
	"github.com/budai-platform/agent-summarizer/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installer",
		Short: "Provision the agent summarizer service on Railway",
		Long: `Provisions the agent summarizer on Railway in three idempotent steps:
create the service, set its environment variables, and trigger a deployment
that waits for the health check to pass.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newApplyCmd())
	return cmd
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the deployment plan without applying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := buildInstaller()
			if err != nil {
				return err
			}

			plan := installer.BuildPlan()
			out, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Apply the deployment plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := buildInstaller()
			if err != nil {
				return err
			}

			result, err := installer.Apply(cmd.Context(), installer.BuildPlan())
			for _, step := range result.AppliedSteps {
				fmt.Printf("applied: %s\n", step)
			}
			for name, id := range result.Artifacts {
				fmt.Printf("%s: %s\n", name, id)
			}
			if err != nil {
				return fmt.Errorf("apply failed after %s: %w", result.Duration.Round(0), err)
			}

			fmt.Printf("done in %s\n", result.Duration.Round(0))
			return nil
		},
	}
}

func buildInstaller() (*deploy.Installer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Railway.Token == "" {
		return nil, fmt.Errorf("RAILWAY_TOKEN is required")
	}
	if cfg.Railway.ProjectID == "" {
		return nil, fmt.Errorf("RAILWAY_PROJECT_ID is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	railway := deploy.NewRailwayClient(&cfg.Railway)
	return deploy.NewInstaller(&cfg.Railway, railway, logger), nil
}
