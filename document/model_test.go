package document

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleRuling() Model {
	return Model{
		ID:        "R-001",
		Kind:      Ruling,
		Reference: "2024LA-000012-01",
		Agreement: "CR-015-2024",
		Title:     "Resolución de adjudicación",
		Object:    "compra de equipo de cómputo",
		Issued:    time.Date(2024, time.March, 26, 0, 0, 0, 0, time.UTC),
		Considerations: []string{
			"Que la invitación se publicó en el sistema de compras públicas.",
			"Que se recibieron tres ofertas en tiempo.",
		},
		Requirements: []Requirement{
			{Description: "Declaración jurada de no prohibición", Complies: true},
			{Description: "Garantía de participación", Complies: false, Notes: "Presentada fuera de plazo"},
		},
		Offers: []Offer{
			{Bidder: "Proveedora Central S.A.", Amount: 1250000, Score: 92.5, Eligible: true},
			{Bidder: "Tecnología Andina Ltda.", Amount: 1390000, Score: 81, Eligible: true},
		},
		Resolutions: []string{"Adjudicar a Proveedora Central S.A.", "Notificar a las partes."},
		Signatories: []Person{
			{Name: "Ana Mora Solís", Role: "Proveedora Institucional"},
			{Name: "Luis Quesada Vargas", Role: "Asesor Legal"},
		},
	}
}

func TestNormalizeFatalFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Model)
		field  string
	}{
		{"missing reference", func(m *Model) { m.Reference = "" }, "reference"},
		{"no signatories", func(m *Model) { m.Signatories = nil }, "signatories"},
		{"missing kind", func(m *Model) { m.Kind = "" }, "kind"},
		{"award without contract", func(m *Model) { m.Kind = Award }, "contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleRuling()
			tt.modify(&m)
			_, _, err := Normalize(m)
			var missing *MissingDataError
			if !errors.As(err, &missing) {
				t.Fatalf("Normalize() error = %v, want MissingDataError", err)
			}
			if missing.Field != tt.field || !missing.Fatal {
				t.Errorf("Normalize() error = %+v, want fatal %s", missing, tt.field)
			}
		})
	}
}

func TestNormalizeUnknownKind(t *testing.T) {
	m := sampleRuling()
	m.Kind = "memorando"
	if _, _, err := Normalize(m); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Normalize() error = %v, want ErrUnknownKind", err)
	}
}

func TestNormalizePlaceholders(t *testing.T) {
	m := sampleRuling()
	m.Title = ""
	m.Agreement = ""
	m.Signatories[1].Role = ""

	got, warnings, err := Normalize(m)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if got.Title != Unknown {
		t.Errorf("title = %q, want %q", got.Title, Unknown)
	}
	if got.Agreement != UnknownReference {
		t.Errorf("agreement = %q, want %q", got.Agreement, UnknownReference)
	}
	if got.Signatories[1].Role != Unknown {
		t.Errorf("signatory role = %q, want %q", got.Signatories[1].Role, Unknown)
	}

	var fields []string
	for _, w := range warnings {
		if w.Fatal {
			t.Errorf("warning %v is fatal", w)
		}
		fields = append(fields, w.Field)
	}
	want := []string{"title", "agreement", "signatories[1].role"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("warning fields mismatch (-want +got):\n%s", diff)
	}

	// the input keeps its gaps
	if m.Signatories[1].Role != "" || m.Title != "" {
		t.Errorf("Normalize() modified its input")
	}
}

func TestNormalizeInvitationMeeting(t *testing.T) {
	m := sampleRuling()
	m.Kind = Invitation

	got, warnings, err := Normalize(m)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got.Meeting == nil || got.Meeting.Place != Unknown || got.Meeting.Session != UnknownReference {
		t.Errorf("meeting = %+v, want placeholders", got.Meeting)
	}
	if len(warnings) != 3 {
		t.Errorf("got %d warnings, want session, place and date", len(warnings))
	}
	if m.Meeting != nil {
		t.Errorf("Normalize() modified its input")
	}
}
