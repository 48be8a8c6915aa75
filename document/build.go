package document

import (
	"fmt"
	"strings"

	"github.com/rickar/cal/v2"

	"documentos/layout"
	"documentos/numwords"
)

// BuildOptions carries the institution settings that shape the blocks.
type BuildOptions struct {
	City     string
	Table    layout.TableStyle
	Unit     numwords.Unit
	Calendar *cal.BusinessCalendar
	// DeadlineDays is the default number of business days for objections.
	DeadlineDays int
}

const (
	titleSize     = 13
	sectionSpace  = 10
	agendaIndent  = 18
	paragraphGap  = 6
	signatureHead = "Firman:"
)

// Build turns a normalized model into the ordered blocks of its document.
func Build(m Model, opts BuildOptions) ([]layout.Block, error) {
	b := &builder{opts: opts}
	b.titleBlock(m)

	switch m.Kind {
	case Ruling:
		b.ruling(m)
	case Award:
		if err := b.award(m); err != nil {
			return nil, err
		}
	case Invitation:
		b.invitation(m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}

	b.signatures(m)
	return b.blocks, nil
}

type builder struct {
	opts   BuildOptions
	blocks []layout.Block
}

func (b *builder) add(blocks ...layout.Block) {
	b.blocks = append(b.blocks, blocks...)
}

func (b *builder) text(s string) {
	b.add(layout.Paragraph{Text: s, SpaceAfter: paragraphGap})
}

func (b *builder) heading(s string) {
	b.add(layout.Paragraph{Text: s, Emphasis: layout.Bold, SpaceAfter: paragraphGap})
}

func (b *builder) titleBlock(m Model) {
	b.add(
		layout.Paragraph{Text: strings.ToUpper(m.Title), Emphasis: layout.Bold, Align: layout.AlignCenter, Size: titleSize, SpaceAfter: 2},
		layout.Paragraph{Text: "Procedimiento N° " + m.Reference, Emphasis: layout.Bold, Align: layout.AlignCenter},
		layout.Paragraph{Text: "Acuerdo N° " + m.Agreement, Align: layout.AlignCenter, SpaceAfter: sectionSpace},
	)
	place := FormatDate(m.Issued)
	if b.opts.City != "" {
		place = b.opts.City + ", " + place
	}
	b.add(
		layout.Paragraph{Text: place, Align: layout.AlignRight, SpaceAfter: sectionSpace},
		layout.Paragraph{Text: "Objeto: " + m.Object, Emphasis: layout.Italic, SpaceAfter: sectionSpace},
	)
}

// ruling: considerations, admissibility checklist, economic comparison,
// resolutions and the objection deadline.
func (b *builder) ruling(m Model) {
	if len(m.Considerations) > 0 {
		b.heading("CONSIDERANDO:")
		for i, c := range m.Considerations {
			b.text(Roman(i+1) + ". " + c)
		}
		b.add(layout.Spacer{Height: paragraphGap})
	}

	if len(m.Requirements) > 0 {
		b.heading("Verificación de requisitos de admisibilidad")
		t := b.table(
			layout.Column{Header: "Requisito", Ratio: 4},
			layout.Column{Header: "Cumple", Ratio: 1, Align: layout.AlignCenter},
			layout.Column{Header: "Observaciones", Ratio: 3},
		)
		for _, r := range m.Requirements {
			complies := "No"
			if r.Complies {
				complies = "Sí"
			}
			t.Rows = append(t.Rows, []layout.Cell{layout.Text(r.Description), layout.Text(complies), layout.Text(r.Notes)})
		}
		b.add(t)
	}

	if len(m.Offers) > 0 {
		b.heading("Análisis de ofertas económicas")
		t := b.table(
			layout.Column{Header: "Oferente", Ratio: 4},
			layout.Column{Header: "Monto ofertado", Ratio: 3, Align: layout.AlignRight},
			layout.Column{Header: "Puntaje", Ratio: 1, Align: layout.AlignRight},
			layout.Column{Header: "Condición", Ratio: 2, Align: layout.AlignCenter},
		)
		for _, o := range m.Offers {
			status := "Inelegible"
			if o.Eligible {
				status = "Elegible"
			}
			t.Rows = append(t.Rows, []layout.Cell{
				layout.Text(o.Bidder), layout.Money(o.Amount), layout.Text(fmt.Sprintf("%.2f", o.Score)), layout.Text(status),
			})
		}
		b.add(t)
	}

	if len(m.Resolutions) > 0 {
		b.heading("POR TANTO, SE RESUELVE:")
		for i, r := range m.Resolutions {
			b.text(Roman(i+1) + ". " + r)
		}
	}
	b.deadline(m)
}

// award: the award with its amount in words, the contract bounds and the
// objection deadline.
func (b *builder) award(m Model) error {
	c := m.Contract
	words, err := numwords.Amount(c.Amount, b.opts.Unit)
	if err != nil {
		return fmt.Errorf("spelling contract amount: %w", err)
	}
	cur := b.opts.Table.Currency
	b.text(fmt.Sprintf("Se adjudica el procedimiento N° %s, cuyo objeto es %s, a %s por un monto de %s (%s).",
		m.Reference, m.Object, c.Bidder, cur.Format(c.Amount), strings.ToUpper(words)))

	t := b.table(
		layout.Column{Header: "Condición contractual", Ratio: 3},
		layout.Column{Header: "Valor", Ratio: 2, Align: layout.AlignRight},
	)
	t.Rows = [][]layout.Cell{
		{layout.Text("Monto adjudicado"), layout.Money(c.Amount).Strong()},
		{layout.Text("Monto mínimo"), layout.Money(c.Minimum)},
		{layout.Text("Monto máximo"), layout.Money(c.Maximum)},
	}
	if c.Term != "" {
		t.Rows = append(t.Rows, []layout.Cell{layout.Text("Plazo de ejecución"), layout.Text(c.Term)})
	}
	b.add(t)
	b.deadline(m)
	return nil
}

// invitation: the call, the agenda and the committee roll.
func (b *builder) invitation(m Model) {
	mt := m.Meeting
	when := FormatDate(mt.Date)
	if mt.Time != "" {
		when += " a las " + mt.Time
	}
	b.text(fmt.Sprintf("Se convoca a los miembros de la comisión a la sesión N° %s, que se celebrará el %s en %s, con el siguiente orden del día:",
		mt.Session, when, mt.Place))
	for i, item := range m.Agenda {
		b.add(layout.Paragraph{Text: fmt.Sprintf("%d. %s", i+1, item), Indent: agendaIndent, SpaceAfter: 2})
	}
	b.add(layout.Spacer{Height: sectionSpace})

	b.heading("Miembros convocados")
	t := b.table(
		layout.Column{Header: "Nombre", Ratio: 3},
		layout.Column{Header: "Cargo", Ratio: 3},
		layout.Column{Header: "Confirmación", Ratio: 2, Align: layout.AlignCenter},
	)
	for _, p := range m.Signatories {
		t.Rows = append(t.Rows, []layout.Cell{layout.Text(p.Name), layout.Text(p.Role), layout.Text("")})
	}
	b.add(t)
}

func (b *builder) table(cols ...layout.Column) layout.Table {
	return layout.Table{Columns: cols, Style: b.opts.Table, SpaceAfter: sectionSpace}
}

func (b *builder) deadline(m Model) {
	days := m.DeadlineDays
	if days == 0 {
		days = b.opts.DeadlineDays
	}
	if days <= 0 {
		return
	}
	s := fmt.Sprintf("Contra este acto caben los recursos de ley dentro de los %d días hábiles siguientes a su notificación", days)
	if b.opts.Calendar != nil && !m.Issued.IsZero() {
		s += ", es decir, a más tardar el " + FormatDate(Deadline(b.opts.Calendar, m.Issued, days))
	}
	b.text(s + ".")
}

func (b *builder) signatures(m Model) {
	g := layout.SignatureGroup{Title: signatureHead}
	for _, p := range m.Signatories {
		g.Signatories = append(g.Signatories, layout.Signatory{Name: p.Name, Role: p.Role})
	}
	b.add(layout.Spacer{Height: sectionSpace}, g)
}
