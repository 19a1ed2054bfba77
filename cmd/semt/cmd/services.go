package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/semtui/semt/pkg/services"
)

var servicesOffline bool

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List reconciliation and extension services",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var reconciliators, extenders []services.Service

		if servicesOffline {
			catalog, err := services.Embedded()
			if err != nil {
				return err
			}
			reconciliators, extenders = catalog.Reconciliators, catalog.Extenders
		} else {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			if reconciliators, err = client.Reconciliators(cmd.Context()); err != nil {
				return err
			}
			if extenders, err = client.Extenders(cmd.Context()); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tID\tNAME\tREQUIRED PARAMS")
		printServices(w, "reconciliator", reconciliators)
		printServices(w, "extender", extenders)
		return w.Flush()
	},
}

func printServices(w *tabwriter.Writer, kind string, list []services.Service) {
	for _, s := range list {
		mandatory, _ := s.Params()
		names := make([]string, 0, len(mandatory))
		for _, p := range mandatory {
			names = append(names, p.ID)
		}
		params := "-"
		if len(names) > 0 {
			params = ""
			for i, n := range names {
				if i > 0 {
					params += ","
				}
				params += n
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", kind, s.ID, s.Name, params)
	}
}

func init() {
	servicesCmd.Flags().BoolVar(&servicesOffline, "offline", false, "use the embedded catalog instead of the backend")
	rootCmd.AddCommand(servicesCmd)
}
