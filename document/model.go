// Package document turns procurement records into laid out official
// documents: rulings, award notices and committee invitations.
package document

import (
	"errors"
	"fmt"
	"time"
)

// Kind selects the document template.
type Kind string

const (
	Ruling     Kind = "resolucion"
	Award      Kind = "adjudicacion"
	Invitation Kind = "invitacion"
)

// Placeholders printed for soft fields that are missing.
const (
	Unknown          = "[sin dato]"
	UnknownReference = "XXXX-XXXX"
)

// ErrUnknownKind is returned for a model whose kind has no template.
var ErrUnknownKind = errors.New("document: unknown kind")

// Person is a committee member or signatory.
type Person struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Requirement is one line of the admissibility checklist.
type Requirement struct {
	Description string `yaml:"description"`
	Complies    bool   `yaml:"complies"`
	Notes       string `yaml:"notes"`
}

// Offer is one bid of the economic comparison.
type Offer struct {
	Bidder   string  `yaml:"bidder"`
	Amount   float64 `yaml:"amount"`
	Score    float64 `yaml:"score"`
	Eligible bool    `yaml:"eligible"`
}

// Contract holds the awarded bidder and the contract bounds.
type Contract struct {
	Bidder  string  `yaml:"bidder"`
	Amount  float64 `yaml:"amount"`
	Minimum float64 `yaml:"minimum"`
	Maximum float64 `yaml:"maximum"`
	Term    string  `yaml:"term"`
}

// Meeting is the session a committee is invited to.
type Meeting struct {
	Session string    `yaml:"session"`
	Date    time.Time `yaml:"date"`
	Time    string    `yaml:"time"`
	Place   string    `yaml:"place"`
}

// Model is the validated business data of one document.
type Model struct {
	ID        string    `yaml:"id"`
	Kind      Kind      `yaml:"kind"`
	Reference string    `yaml:"reference"` // procedure number
	Agreement string    `yaml:"agreement"` // committee agreement number
	Title     string    `yaml:"title"`
	Object    string    `yaml:"object"`
	Issued    time.Time `yaml:"issued"`

	Considerations []string      `yaml:"considerations"`
	Requirements   []Requirement `yaml:"requirements"`
	Offers         []Offer       `yaml:"offers"`
	Resolutions    []string      `yaml:"resolutions"`
	Contract       *Contract     `yaml:"contract"`
	Meeting        *Meeting      `yaml:"meeting"`
	Agenda         []string      `yaml:"agenda"`

	Signatories []Person `yaml:"signatories"`
	// DeadlineDays overrides the business days allowed for objections.
	DeadlineDays int `yaml:"deadline_days"`
}

// MissingDataError reports a missing field. A soft field is replaced by a
// placeholder and reported as a warning; a fatal one stops generation before
// any page is drawn.
type MissingDataError struct {
	Field string
	Fatal bool
}

func (e *MissingDataError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("document: required field %s is missing", e.Field)
	}
	return fmt.Sprintf("document: field %s is missing, using a placeholder", e.Field)
}

// Normalize checks m and returns a copy with placeholders in the missing
// soft fields, along with one warning per placeholder. m is not modified.
func Normalize(m Model) (Model, []*MissingDataError, error) {
	switch m.Kind {
	case Ruling, Award, Invitation:
	case "":
		return m, nil, &MissingDataError{Field: "kind", Fatal: true}
	default:
		return m, nil, fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}
	if m.Reference == "" {
		return m, nil, &MissingDataError{Field: "reference", Fatal: true}
	}
	if len(m.Signatories) == 0 {
		return m, nil, &MissingDataError{Field: "signatories", Fatal: true}
	}
	if m.Kind == Award && m.Contract == nil {
		return m, nil, &MissingDataError{Field: "contract", Fatal: true}
	}

	var warnings []*MissingDataError
	fill := func(field string, v *string, placeholder string) {
		if *v == "" {
			*v = placeholder
			warnings = append(warnings, &MissingDataError{Field: field})
		}
	}

	fill("title", &m.Title, Unknown)
	fill("object", &m.Object, Unknown)
	fill("agreement", &m.Agreement, UnknownReference)
	if m.Issued.IsZero() {
		warnings = append(warnings, &MissingDataError{Field: "issued"})
	}

	m.Signatories = append([]Person(nil), m.Signatories...)
	for i := range m.Signatories {
		fill(fmt.Sprintf("signatories[%d].name", i), &m.Signatories[i].Name, Unknown)
		fill(fmt.Sprintf("signatories[%d].role", i), &m.Signatories[i].Role, Unknown)
	}

	if m.Contract != nil {
		c := *m.Contract
		fill("contract.bidder", &c.Bidder, Unknown)
		m.Contract = &c
	}
	if m.Kind == Invitation {
		var mt Meeting
		if m.Meeting != nil {
			mt = *m.Meeting
		}
		fill("meeting.session", &mt.Session, UnknownReference)
		fill("meeting.place", &mt.Place, Unknown)
		if mt.Date.IsZero() {
			warnings = append(warnings, &MissingDataError{Field: "meeting.date"})
		}
		m.Meeting = &mt
	}
	return m, warnings, nil
}
