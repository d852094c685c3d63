package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"certverify/internal/lookup"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <certificate-number>",
	Short: "Look up a certificate number against the configured source",
	Args:  cobra.ExactArgs(1),
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

		cert, found := lookup.ByNumber(records, args[0])
		if !found {
			fmt.Printf("certificate not found: %s\n", args[0])
			return nil
		}

		fmt.Printf("certificate:    %s\n", cert.CertificateNumber)
		fmt.Printf("student:        %s\n", cert.StudentName)
		fmt.Printf("course:         %s\n", cert.CourseName)
		fmt.Printf("issued:         %s\n", cert.IssueDate)
		fmt.Printf("completed:      %s\n", cert.CompletionDate)
		fmt.Printf("grade:          %s\n", cert.Grade)
		fmt.Printf("instructor:     %s\n", cert.Instructor)
		fmt.Printf("duration:       %s\n", cert.Duration)
		fmt.Printf("college:        %s\n", cert.College)
		return nil
	},
}
