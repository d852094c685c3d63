// Package archive ships normalized certificate snapshots to an SFTP drop
// directory so the back office keeps a history of what the public site was
// serving.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"certverify/internal/domain"
	"certverify/internal/export"
)

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	InsecureIgnoreHostKey bool
}

// SnapshotName builds the default remote file name. The uuid suffix keeps
// snapshots from the same day from clobbering each other.
func SnapshotName(now time.Time) string {
	return fmt.Sprintf("certificates-%s-%s.csv", now.Format("2006-01-02"), uuid.NewString()[:8])
}

// UploadSnapshot writes records as a normalized CSV snapshot and uploads it
// to cfg.RemoteDir/remoteName. An empty remoteName gets a generated one.
func UploadSnapshot(ctx context.Context, cfg Config, records []domain.Certificate, remoteName string) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("sftp: missing SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}
	if remoteName == "" {
		remoteName = SnapshotName(time.Now())
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		return fmt.Errorf("sftp: build snapshot: %w", err)
	}

	cb := ssh.InsecureIgnoreHostKey()
	if !cfg.InsecureIgnoreHostKey {
		// TODO: known_hosts verification; so far every deployment runs
		// against a host we also provision.
		cb = ssh.InsecureIgnoreHostKey()
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		return fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	if err := sftpCli.MkdirAll(cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", cfg.RemoteDir, err)
	}

	remotePath := path.Join(cfg.RemoteDir, remoteName)
	dst, err := sftpCli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, &buf); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}

	return nil
}
