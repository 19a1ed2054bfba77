package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/semtui/semt/pkg/table"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage tables in a dataset",
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tables in the selected dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}
		tables, err := client.Tables(cmd.Context(), datasetID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROWS\tCOLS\tRECONCILED")
		for _, t := range tables {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", t.ID, t.Name, t.NRows, t.NCols, t.NCellsReconciliated)
		}
		return w.Flush()
	},
}

var tablesGetCmd = &cobra.Command{
	Use:   "get <table-id>",
	Short: "Fetch a table as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}
		doc, err := client.Table(cmd.Context(), datasetID, args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

var tablesUploadName string

var tablesUploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Upload a CSV file as a new table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		grid, err := table.ParseCSV(f)
		if err != nil {
			return err
		}

		name := tablesUploadName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}
		tableID, err := client.AddTable(cmd.Context(), datasetID, name, grid)
		if err != nil {
			return err
		}
		fmt.Printf("table %s uploaded as %s\n", name, tableID)
		return nil
	},
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete <table-id>",
	Short: "Delete a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}
		if err := client.DeleteTable(cmd.Context(), datasetID, args[0]); err != nil {
			return err
		}
		fmt.Printf("table %s deleted\n", args[0])
		return nil
	},
}

var tablesExportFormat string

var tablesExportCmd = &cobra.Command{
	Use:   "export <table-id>",
	Short: "Export a table as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		datasetID, err := requireDataset(cfg)
		if err != nil {
			return err
		}

		var grid *table.Grid
		switch tablesExportFormat {
		case "csv":
			grid, err = client.ExportCSV(cmd.Context(), datasetID, args[0])
		case "w3c":
			grid, err = client.ExportW3C(cmd.Context(), datasetID, args[0])
		default:
			return fmt.Errorf("unknown export format %q", tablesExportFormat)
		}
		if err != nil {
			return err
		}

		data, err := grid.EncodeCSV()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	tablesUploadCmd.Flags().StringVar(&tablesUploadName, "name", "", "table name (defaults to the file name)")
	tablesExportCmd.Flags().StringVar(&tablesExportFormat, "format", "csv", "source format, csv or w3c")

	tablesCmd.AddCommand(tablesListCmd)
	tablesCmd.AddCommand(tablesGetCmd)
	tablesCmd.AddCommand(tablesUploadCmd)
	tablesCmd.AddCommand(tablesDeleteCmd)
	tablesCmd.AddCommand(tablesExportCmd)
	rootCmd.AddCommand(tablesCmd)
}
