package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semtui/semt/pkg/table"
)

var pushFile string

var pushCmd = &cobra.Command{
	Use:   "push <table-id>",
	Short: "Compose and push an annotated table to the backend",
	Long: `Push composes the backend-update payload from an annotated table
document and writes it over the stored table. The document is read from
--file, or fetched from the backend when no file is given, with its
aggregate counters recomputed either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableID := args[0]

		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}

		var doc *table.Document
		if pushFile != "" {
			data, err := os.ReadFile(pushFile)
			if err != nil {
				return err
			}
			doc = &table.Document{}
			if err := json.Unmarshal(data, doc); err != nil {
				return err
			}
		} else {
			if doc, err = client.Table(cmd.Context(), datasetID, tableID); err != nil {
				return err
			}
		}

		payload := table.Compose(doc)
		if err := client.PushTable(cmd.Context(), datasetID, tableID, payload); err != nil {
			return err
		}
		fmt.Printf("table %s pushed (%d reconciled cells)\n", tableID, payload.TableInstance.NCellsReconciliated)
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVarP(&pushFile, "file", "f", "", "annotated table document to push (JSON)")
	rootCmd.AddCommand(pushCmd)
}
