package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtui/semt/pkg/reconcile"
)

var (
	reconcileService string
	reconcileExtra   []string
	reconcilePush    bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <table-id> <column>",
	Short: "Reconcile a column against a knowledge base",
	Long: `Reconcile sends one column of a table to a reconciliation service,
merges the resolved entities back as cell annotations, and prints the
resulting statistics. With --push the annotated table is written back to
the backend.

Geocoding services need two auxiliary location columns passed with
--columns, for example --columns Region,Country.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableID, column := args[0], args[1]

		service, err := reconcile.ParseService(reconcileService)
		if err != nil {
			return err
		}

		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}

		doc, err := client.Table(cmd.Context(), datasetID, tableID)
		if err != nil {
			return err
		}

		result, err := client.Reconcile(cmd.Context(), doc, column, service, reconcileExtra)
		if err != nil {
			return err
		}

		stats := result.Payload.TableInstance
		fmt.Printf("reconciled %d of %d cells (scores %.2f..%.2f)\n",
			stats.NCellsReconciliated, stats.NCells, stats.MinMetaScore, stats.MaxMetaScore)

		if reconcilePush {
			if err := client.PushTable(cmd.Context(), datasetID, tableID, result.Payload); err != nil {
				return err
			}
			fmt.Println("annotated table pushed")
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileService, "service", "s", "", "reconciliation service id (required)")
	reconcileCmd.Flags().StringSliceVar(&reconcileExtra, "columns", nil, "auxiliary columns for two-part services")
	reconcileCmd.Flags().BoolVar(&reconcilePush, "push", false, "push the annotated table back to the backend")
	_ = reconcileCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(reconcileCmd)
}
