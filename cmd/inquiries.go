package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wassat/website/internal/db"
	"github.com/wassat/website/internal/inquiry"
)

var (
	inquiriesSince string
	inquiriesLimit int
	inquiriesJSON  bool
)

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List contact form submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		filter := inquiry.ListFilter{Limit: inquiriesLimit}
		if inquiriesSince != "" {
			d, err := time.ParseDuration(inquiriesSince)
			if err != nil {
				return fmt.Errorf("invalid --since: %w", err)
			}
			since := time.Now().Add(-d)
			filter.Since = &since
		}

		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := inquiry.NewStore(database)
		items, err := store.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if inquiriesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("No inquiries.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RECEIVED\tLANG\tNAME\tEMAIL\tSUBJECT")
		for _, in := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				in.CreatedAt.Local().Format(time.DateTime), in.Language, in.Name, in.Email, in.Subject)
		}
		return tw.Flush()
	},
}

func init() {
	inquiriesCmd.Flags().StringVar(&inquiriesSince, "since", "", "only show inquiries newer than this duration (e.g. 72h)")
	inquiriesCmd.Flags().IntVar(&inquiriesLimit, "limit", 50, "maximum number of inquiries")
	inquiriesCmd.Flags().BoolVar(&inquiriesJSON, "json", false, "print JSON")
	rootCmd.AddCommand(inquiriesCmd)
}
