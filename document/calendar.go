package document

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

// Costa Rican public holidays. Every date is observed on the day itself.
var (
	NewYear = &cal.Holiday{Name: "Año Nuevo", Type: cal.ObservancePublic,
		Month: time.January, Day: 1, Func: cal.CalcDayOfMonth}
	MaundyThursday = &cal.Holiday{Name: "Jueves Santo", Type: cal.ObservancePublic,
		Offset: -3, Func: cal.CalcEasterOffset}
	GoodFriday = &cal.Holiday{Name: "Viernes Santo", Type: cal.ObservancePublic,
		Offset: -2, Func: cal.CalcEasterOffset}
	JuanSantamaria = &cal.Holiday{Name: "Día de Juan Santamaría", Type: cal.ObservancePublic,
		Month: time.April, Day: 11, Func: cal.CalcDayOfMonth}
	LabourDay = &cal.Holiday{Name: "Día Internacional del Trabajo", Type: cal.ObservancePublic,
		Month: time.May, Day: 1, Func: cal.CalcDayOfMonth}
	Guanacaste = &cal.Holiday{Name: "Anexión del Partido de Nicoya", Type: cal.ObservancePublic,
		Month: time.July, Day: 25, Func: cal.CalcDayOfMonth}
	VirgenDeLosAngeles = &cal.Holiday{Name: "Día de la Virgen de los Ángeles", Type: cal.ObservancePublic,
		Month: time.August, Day: 2, Func: cal.CalcDayOfMonth}
	MothersDay = &cal.Holiday{Name: "Día de la Madre", Type: cal.ObservancePublic,
		Month: time.August, Day: 15, Func: cal.CalcDayOfMonth}
	BlackPersonsDay = &cal.Holiday{Name: "Día de la Persona Negra y la Cultura Afrocostarricense", Type: cal.ObservancePublic,
		Month: time.August, Day: 31, StartYear: 2021, Func: cal.CalcDayOfMonth}
	IndependenceDay = &cal.Holiday{Name: "Día de la Independencia", Type: cal.ObservancePublic,
		Month: time.September, Day: 15, Func: cal.CalcDayOfMonth}
	ArmyAbolition = &cal.Holiday{Name: "Día de la Abolición del Ejército", Type: cal.ObservancePublic,
		Month: time.December, Day: 1, StartYear: 2020, Func: cal.CalcDayOfMonth}
	Christmas = &cal.Holiday{Name: "Navidad", Type: cal.ObservancePublic,
		Month: time.December, Day: 25, Func: cal.CalcDayOfMonth}

	Holidays = []*cal.Holiday{
		NewYear, MaundyThursday, GoodFriday, JuanSantamaria, LabourDay, Guanacaste,
		VirgenDeLosAngeles, MothersDay, BlackPersonsDay, IndependenceDay, ArmyAbolition, Christmas,
	}
)

// NewCalendar returns the business calendar used for legal deadlines: the
// public holidays plus extra closing days given as YYYY-MM-DD.
func NewCalendar(extra []string) (*cal.BusinessCalendar, error) {
	c := cal.NewBusinessCalendar()
	c.Name = "Proveeduría Institucional"
	c.Description = "Días hábiles para plazos de procedimientos de contratación"
	c.AddHoliday(Holidays...)

	for _, s := range extra {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, fmt.Errorf("invalid closing day %q: %w", s, err)
		}
		c.AddHoliday(&cal.Holiday{
			Name:      "Cierre institucional",
			Type:      cal.ObservanceOther,
			Month:     d.Month(),
			Day:       d.Day(),
			StartYear: d.Year(),
			EndYear:   d.Year(),
			Func:      cal.CalcDayOfMonth,
		})
	}
	return c, nil
}

// Deadline returns the date that lies the given number of business days
// after from.
func Deadline(c *cal.BusinessCalendar, from time.Time, days int) time.Time {
	d := from
	for n := 0; n < days; {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkday(d) {
			n++
		}
	}
	return d
}
