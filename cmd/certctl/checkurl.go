package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"certverify/internal/sheeturl"
)

var checkURLCmd = &cobra.Command{
	Use:   "check-url <url>",
	Short: "Classify a spreadsheet URL and show its CSV export form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		converted := sheeturl.ConvertToCSV(url)

		fmt.Println(sheeturl.ConversionInstructions(url))
		if converted != url {
			fmt.Printf("converted: %s\n", converted)
		}
		if sheeturl.IsValidCSVSource(converted) {
			fmt.Println("usable as a CSV source: yes")
		} else {
			fmt.Println("usable as a CSV source: no")
		}
		return nil
	},
}
