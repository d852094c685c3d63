package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"certverify/internal/devutil"
)

var (
	fetchLimit int
	fetchJSON  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the configured source and list the parsed records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		records, err := loadRecords(ctx, cfg)
		if err != nil {
			return err
		}

		if fetchJSON {
			summaries := make([]map[string]any, 0, len(records))
			for _, r := range records {
				summaries = append(summaries, devutil.Pick(r, "certificateNumber", "studentName", "courseName", "issueDate"))
			}
			return json.NewEncoder(os.Stdout).Encode(summaries)
		}

		fmt.Printf("parsed %d records\n", len(records))
		for i, r := range records {
			if fetchLimit > 0 && i >= fetchLimit {
				fmt.Printf("... and %d more\n", len(records)-fetchLimit)
				break
			}
			fmt.Printf("%-20s %-25s %s\n", r.CertificateNumber, r.StudentName, r.CourseName)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 20, "max records to print (0 = all)")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print record summaries as JSON")
}
