package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const rulingYAML = `kind: resolucion
reference: 2024LA-000012-01
agreement: CR-015-2024
title: Resolución de adjudicación
object: compra de equipo de cómputo
issued: 2024-03-26
considerations:
  - Que se recibieron tres ofertas en tiempo.
offers:
  - bidder: Proveedora Central S.A.
    amount: 1250000
    score: 92.5
    eligible: true
signatories:
  - name: Ana Mora Solís
    role: Proveedora Institucional
deadline_days: 5
`

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "R-001.yaml"), []byte(rulingYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	src := DirSource{Dir: dir}

	m, err := src.Load(context.Background(), "R-001")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.ID != "R-001" || m.Kind != Ruling || m.Reference != "2024LA-000012-01" {
		t.Errorf("Load() = %s %s %s", m.ID, m.Kind, m.Reference)
	}
	if want := time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC); !m.Issued.Equal(want) {
		t.Errorf("issued = %v, want %v", m.Issued, want)
	}
	if len(m.Offers) != 1 || m.Offers[0].Amount != 1250000 || !m.Offers[0].Eligible {
		t.Errorf("offers = %+v", m.Offers)
	}
	if m.DeadlineDays != 5 {
		t.Errorf("deadline days = %d, want 5", m.DeadlineDays)
	}
}

func TestDirSourceErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "roto.yaml"), []byte("kind: [resolucion"), 0o600); err != nil {
		t.Fatal(err)
	}
	src := DirSource{Dir: dir}

	tests := []struct {
		name     string
		id       string
		notFound bool
	}{
		{"missing", "R-404", true},
		{"path escape", "../R-001", true},
		{"hidden", ".roto", true},
		{"empty", "", true},
		{"malformed", "roto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := src.Load(context.Background(), tt.id)
			if err == nil {
				t.Fatalf("Load(%q) succeeded", tt.id)
			}
			if got := errors.Is(err, ErrNotFound); got != tt.notFound {
				t.Errorf("Load(%q) error = %v, not found = %v, want %v", tt.id, err, got, tt.notFound)
			}
		})
	}
}

func TestMemorySource(t *testing.T) {
	src := MemorySource{"R-001": sampleRuling()}

	m, err := src.Load(context.Background(), "R-001")
	if err != nil || m.Reference != "2024LA-000012-01" {
		t.Errorf("Load() = %+v, %v", m.Reference, err)
	}
	if _, err := src.Load(context.Background(), "R-002"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Load(ctx, "R-001"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}
