package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"certverify/internal/archive"
)

var archiveName string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Upload a normalized snapshot to the SFTP archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		records, err := loadRecords(ctx, cfg)
		if err != nil {
			return err
		}

		acfg := archive.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		if err := archive.UploadSnapshot(ctx, acfg, records, archiveName); err != nil {
			return err
		}
		fmt.Printf("archived %d records\n", len(records))
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveName, "name", "", "remote file name (default: generated)")
}
