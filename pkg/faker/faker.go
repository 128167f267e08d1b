package faker

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/language"
)

// Faker generates locale-flavored synthetic values from a caller-owned
// random source. It is not safe for concurrent use; each generation
// run owns its Faker.
type Faker struct {
	tag language.Tag
	tbl table
	rnd *rand.Rand
}

// New builds a Faker for the given locale. The random source must be
// provided by the caller; determinism of the value stream is entirely
// the caller's seed choice.
func New(tag language.Tag, rnd *rand.Rand) *Faker {
	if rnd == nil {
		panic("faker: nil random source")
	}
	return &Faker{tag: tag, tbl: tableFor(tag), rnd: rnd}
}

// Locale returns the tag the Faker was built with.
func (f *Faker) Locale() language.Tag { return f.tag }

func (f *Faker) pick(list []string) string {
	return list[f.rnd.Intn(len(list))]
}

// FirstName returns a locale-appropriate given name.
func (f *Faker) FirstName() string { return f.pick(f.tbl.firstNames) }

// LastName returns a locale-appropriate family name.
func (f *Faker) LastName() string { return f.pick(f.tbl.lastNames) }

// FullName returns "First Last".
func (f *Faker) FullName() string {
	return f.FirstName() + " " + f.LastName()
}

// Email builds a plausible address from a name pair and a reserved
// test domain.
func (f *Faker) Email() string {
	first := strings.ToLower(f.FirstName())
	last := strings.ToLower(f.LastName())
	return fmt.Sprintf("%s.%s%d@%s", first, last, f.rnd.Intn(100), f.pick(f.tbl.emailDomains))
}

// Phone returns a number in the locale's customary format.
func (f *Faker) Phone() string {
	return f.digits(f.tbl.phoneFormat)
}

// City returns a city name.
func (f *Faker) City() string { return f.pick(f.tbl.cities) }

// Street returns a street address with a house number.
func (f *Faker) Street() string {
	return f.digits(fmt.Sprintf(f.tbl.streetFormat, f.pick(f.tbl.streets)))
}

// Address returns "street, city".
func (f *Faker) Address() string {
	return f.Street() + ", " + f.City()
}

// Company returns a company name.
func (f *Faker) Company() string { return f.pick(f.tbl.companies) }

// Word returns a single common noun.
func (f *Faker) Word() string { return f.pick(f.tbl.words) }

// Sentence returns n words joined by spaces with a trailing period.
func (f *Faker) Sentence(n int) string {
	if n <= 0 {
		n = 1
	}
	words := make([]string, n)
	for i := range words {
		words[i] = f.Word()
	}
	return strings.Join(words, " ") + "."
}

// Text returns word-filled text whose length lands between min and max
// characters where the word stock allows it.
func (f *Faker) Text(min, max int) string {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	var b strings.Builder
	for b.Len() < min {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Word())
	}
	out := b.String()
	if len(out) > max && max > 0 {
		out = out[:max]
	}
	return out
}

// URL returns a test-domain URL.
func (f *Faker) URL() string {
	return fmt.Sprintf("https://www.%s-%s.test", strings.ToLower(f.Word()), strings.ToLower(f.Word()))
}

// ForField picks a value kind for a string field from its name, the
// way analysts name columns: "email" gets an address, "first_name" a
// given name, and so on. Both English and Portuguese column names are
// recognized. Unrecognized names get plain text.
func (f *Faker) ForField(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "email"):
		return f.Email()
	case strings.Contains(n, "name") && strings.Contains(n, "first"),
		strings.Contains(n, "nome") && strings.Contains(n, "primeiro"):
		return f.FirstName()
	case strings.Contains(n, "name") && strings.Contains(n, "last"),
		strings.Contains(n, "sobrenome"):
		return f.LastName()
	case strings.Contains(n, "name") || strings.Contains(n, "nome"):
		return f.FullName()
	case strings.Contains(n, "phone") || strings.Contains(n, "telefone"):
		return f.Phone()
	case strings.Contains(n, "address") || strings.Contains(n, "endereco"):
		return f.Address()
	case strings.Contains(n, "city") || strings.Contains(n, "cidade"):
		return f.City()
	case strings.Contains(n, "company") || strings.Contains(n, "empresa"):
		return f.Company()
	case strings.Contains(n, "description") || strings.Contains(n, "descricao"):
		return f.Sentence(8)
	case strings.Contains(n, "url") || strings.Contains(n, "website"):
		return f.URL()
	default:
		return f.Text(5, 50)
	}
}

// digits replaces every '#' in format with a random digit.
func (f *Faker) digits(format string) string {
	out := []byte(format)
	for i, c := range out {
		if c == '#' {
			out[i] = byte('0' + f.rnd.Intn(10))
		}
	}
	return string(out)
}
