package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-gomail/gomail"
)

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"R-001", "R-001.pdf"},
		{"2024LA-000012-01", "2024LA-000012-01.pdf"},
		{"acta 7", "acta_7.pdf"},
		{"resolución", "resoluci_n.pdf"},
		{"../secreto", "_secreto.pdf"},
		{"", "documento.pdf"},
		{"...", "documento.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := documentFilename(tt.id)
			if got != tt.expected {
				t.Errorf("documentFilename(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}

func TestMailSubject(t *testing.T) {
	if got := mailSubject("R-001"); got != "Documento R-001" {
		t.Errorf("mailSubject() = %q", got)
	}
}

func TestMailBody(t *testing.T) {
	body := mailBody([]Attachment{
		{Filename: "R-001.pdf", Data: make([]byte, 2048)},
		{Filename: "<x>.pdf", Data: []byte("a")},
	})
	for _, want := range []string{"R-001.pdf (2 KB)", "&lt;x&gt;.pdf (1 KB)"} {
		if !strings.Contains(body, want) {
			t.Errorf("mailBody() = %q, want it to contain %q", body, want)
		}
	}
}

func TestNewMessage(t *testing.T) {
	cfg := Default()
	cfg.Email.From = "proveeduria@example.org"
	cfg.Email.To = "archivo@example.org"
	pdf := []byte("%PDF-1.3 contenido")

	msg := newMessage(cfg, mailSubject("R-001"), Attachment{Filename: "R-001.pdf", Data: pdf})

	var (
		from string
		to   []string
		raw  bytes.Buffer
	)
	sender := gomail.SendFunc(func(f string, rcpt []string, m io.WriterTo) error {
		from, to = f, rcpt
		_, err := m.WriteTo(&raw)
		return err
	})
	if err := gomail.Send(sender, msg); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if from != cfg.Email.From {
		t.Errorf("from = %q, want %q", from, cfg.Email.From)
	}
	if len(to) != 1 || to[0] != cfg.Email.To {
		t.Errorf("to = %v, want [%s]", to, cfg.Email.To)
	}
	out := raw.String()
	for _, want := range []string{"Subject: Documento R-001", `filename="R-001.pdf"`, "application/pdf"} {
		if !strings.Contains(out, want) {
			t.Errorf("message does not contain %q", want)
		}
	}
}
