package verify

import (
	"context"
	"errors"
	"testing"

	"certverify/internal/domain"
)

type stubSource struct {
	records []domain.Certificate
	err     error
	calls   int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(ctx context.Context) ([]domain.Certificate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func cert(number, name string) domain.Certificate {
	return domain.Certificate{CertificateNumber: number, StudentName: name, CourseName: "Go"}
}

func TestLookupBeforeRefreshNotReady(t *testing.T) {
	svc := New(&stubSource{}, nil)

	_, _, ready := svc.Lookup("CERT-001")
	if ready {
		t.Error("Expected lookup on unloaded service to report not ready")
	}
}

func TestRefreshAndLookup(t *testing.T) {
	src := &stubSource{records: []domain.Certificate{cert("CERT-001", "Jane Doe")}}
	svc := New(src, nil)

	stats, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if stats.Total != 1 || stats.Added != 1 || stats.Removed != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	got, found, ready := svc.Lookup("cert-001")
	if !ready || !found {
		t.Fatalf("Expected ready+found, got ready=%v found=%v", ready, found)
	}
	if got.StudentName != "Jane Doe" {
		t.Errorf("Expected 'Jane Doe', got '%s'", got.StudentName)
	}

	if _, state := svc.Records(); state != StateLoaded {
		t.Errorf("Expected state loaded, got %s", state)
	}
}

func TestRefreshStatsDiff(t *testing.T) {
	src := &stubSource{records: []domain.Certificate{cert("A", "1"), cert("B", "2")}}
	svc := New(src, nil)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src.records = []domain.Certificate{cert("B", "2"), cert("C", "3")}
	stats, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 2 || stats.Added != 1 || stats.Removed != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestFailedFirstRefreshServesFallback(t *testing.T) {
	fallback := []domain.Certificate{cert("SAMPLE-001", "Sample Student")}
	src := &stubSource{err: errors.New("boom")}
	svc := New(src, fallback)

	if _, err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("Expected refresh error")
	}

	records, state := svc.Records()
	if state != StateDegraded {
		t.Errorf("Expected state degraded, got %s", state)
	}
	if len(records) != 1 || records[0].CertificateNumber != "SAMPLE-001" {
		t.Errorf("Expected fallback records, got %+v", records)
	}
	if svc.LastError() == nil {
		t.Error("Expected LastError to be set")
	}

	// Lookups work against the fallback set.
	if _, found, ready := svc.Lookup("sample-001"); !ready || !found {
		t.Errorf("Expected fallback lookup to succeed, ready=%v found=%v", ready, found)
	}
}

func TestFailedRefreshKeepsPreviousRecords(t *testing.T) {
	src := &stubSource{records: []domain.Certificate{cert("CERT-001", "Jane Doe")}}
	svc := New(src, nil)
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src.err = errors.New("network down")
	if _, err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("Expected refresh error")
	}

	records, state := svc.Records()
	if state != StateLoaded {
		t.Errorf("Expected state to remain loaded, got %s", state)
	}
	if len(records) != 1 {
		t.Errorf("Expected previous records kept, got %d", len(records))
	}
	if svc.LastError() == nil {
		t.Error("Expected LastError to be set after failed refresh")
	}
}
