package main

import (
	"fmt"
	"html"
	"strings"
)

// ---------------------------------------------------------------------------
// Document Naming Helpers
// ---------------------------------------------------------------------------

// documentFilename returns the file name of a rendered document, keeping
// only characters that are safe in file names and mail headers.
func documentFilename(id string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, id)
	clean = strings.Trim(clean, ".")
	if clean == "" {
		clean = "documento"
	}
	return clean + ".pdf"
}

// mailSubject is the subject line for mailing document id.
func mailSubject(id string) string {
	return fmt.Sprintf("Documento %s", id)
}

// mailBody lists the attached documents.
func mailBody(attachments []Attachment) string {
	var b strings.Builder
	b.WriteString("Documentos adjuntos:<br>")
	for _, a := range attachments {
		fmt.Fprintf(&b, "- %s (%d KB)<br>", html.EscapeString(a.Filename), (len(a.Data)+1023)/1024)
	}
	return b.String()
}
