package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtui/semt/pkg/extend"
)

var (
	extendService    string
	extendProperties []string
	extendDateColumn string
	extendDecimal    string
	extendPush       bool
)

var extendCmd = &cobra.Command{
	Use:   "extend <table-id> <column>",
	Short: "Extend a reconciled column with derived properties",
	Long: `Extend sends a reconciled column to an extension service and adds the
returned property columns to the table. With --push the extended table is
written back to the backend.

The meteoPropertiesOpenMeteo extender needs --date-column and
--decimal-format in addition to the requested properties.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableID, column := args[0], args[1]

		extender, err := extend.ParseExtender(extendService)
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

		params := extend.Params{
			DateColumn:    extendDateColumn,
			DecimalFormat: extendDecimal,
		}
		result, err := client.ExtendColumn(cmd.Context(), doc, column, extender, extendProperties, params)
		if err != nil {
			return err
		}

		added := result.Document.Columns.Len() - doc.Columns.Len()
		fmt.Printf("added %d columns\n", added)

		if extendPush {
			if err := client.PushTable(cmd.Context(), datasetID, tableID, result.Payload); err != nil {
				return err
			}
			fmt.Println("extended table pushed")
		}
		return nil
	},
}

func init() {
	extendCmd.Flags().StringVarP(&extendService, "service", "s", "", "extension service id (required)")
	extendCmd.Flags().StringSliceVarP(&extendProperties, "properties", "p", nil, "properties to fetch (required)")
	extendCmd.Flags().StringVar(&extendDateColumn, "date-column", "", "date column for time-indexed extenders")
	extendCmd.Flags().StringVar(&extendDecimal, "decimal-format", "", "decimal separator of returned values")
	extendCmd.Flags().BoolVar(&extendPush, "push", false, "push the extended table back to the backend")
	_ = extendCmd.MarkFlagRequired("service")
	_ = extendCmd.MarkFlagRequired("properties")
	rootCmd.AddCommand(extendCmd)
}
