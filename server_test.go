package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"

	"documentos/document"
)

func testModel() document.Model {
	return document.Model{
		ID:        "R-001",
		Kind:      document.Ruling,
		Reference: "2024LA-000012-01",
		Title:     "Resolución de adjudicación",
		Object:    "compra de equipo de cómputo",
		Issued:    time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC),
		Requirements: []document.Requirement{
			{Description: "Garantía de participación", Complies: true},
		},
		Resolutions: []string{"Adjudicar a Proveedora Central S.A."},
		Signatories: []document.Person{{Name: "Ana Mora Solís", Role: "Proveedora Institucional"}},
	}
}

func newTestServer(t *testing.T, models document.MemorySource) *httptest.Server {
	t.Helper()
	s := document.DefaultSettings()
	s.Compress = false
	gen, err := document.NewGenerator(models, s)
	if err != nil {
		t.Fatal(err)
	}
	gen.Log = ll.New("test").Handler(lh.NewTextHandler(io.Discard))
	srv := httptest.NewServer(newServer(gen, 10*time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeDocument(t *testing.T) {
	srv := newTestServer(t, document.MemorySource{"R-001": testModel()})

	resp, err := http.Get(srv.URL + "/documents/R-001")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `inline; filename="R-001.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Errorf("body is not a PDF")
	}
	if !bytes.Contains(body, []byte("P\xe1gina 1 de 1")) {
		t.Errorf("body has no final page label")
	}
}

func TestServeErrors(t *testing.T) {
	noRef := testModel()
	noRef.Reference = ""
	memo := testModel()
	memo.Kind = "memorando"
	srv := newTestServer(t, document.MemorySource{"R-002": noRef, "M-001": memo})

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown document", http.MethodGet, "/documents/R-404", http.StatusNotFound, "NOT_FOUND"},
		{"missing reference", http.MethodGet, "/documents/R-002", http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"unknown kind", http.MethodGet, "/documents/M-001", http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"wrong method", http.MethodPost, "/documents/R-002", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			if err != nil {
				t.Fatal(err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.code == "" {
				return
			}
			var got apiResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if got.Success || got.Error == nil || got.Error.Code != tt.code || got.Error.Message == "" {
				t.Errorf("response = %+v, want code %s with a message", got, tt.code)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, document.MemorySource{})

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var got apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || !got.Success {
		t.Errorf("healthz = %d %+v", resp.StatusCode, got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("load: %w", document.ErrNotFound), http.StatusNotFound},
		{"missing data", &document.MissingDataError{Field: "reference", Fatal: true}, http.StatusUnprocessableEntity},
		{"unknown kind", document.ErrUnknownKind, http.StatusUnprocessableEntity},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := statusFor(tt.err); got != tt.status {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.status)
			}
		})
	}
}
