package services

import (
	"strings"
	"time"

	"sampledata/internal/models"
	"sampledata/internal/utils"
)

// Kind is the semantic category inferred from a column name.
type Kind string

const (
	KindIdentifier    Kind = "identifier"
	KindName          Kind = "name"
	KindFirstName     Kind = "first_name"
	KindLastName      Kind = "last_name"
	KindEmail         Kind = "email"
	KindPhone         Kind = "phone"
	KindAddress       Kind = "address"
	KindCity          Kind = "city"
	KindCountry       Kind = "country"
	KindJobTitle      Kind = "job_title"
	KindDepartment    Kind = "department"
	KindSentence      Kind = "sentence"
	KindAge           Kind = "age"
	KindMoney         Kind = "money"
	KindSalary        Kind = "salary"
	KindQuantity      Kind = "quantity"
	KindRating        Kind = "rating"
	KindCount         Kind = "count"
	KindDate          Kind = "date"
	KindStatus        Kind = "status"
	KindPaymentMethod Kind = "payment_method"
	KindCategory      Kind = "category"
	KindFlag          Kind = "flag"
	KindUnknown       Kind = "unknown"
)

// Placeholder is written for columns no rule recognizes.
const Placeholder = "N/A"

const isoDate = "2006-01-02"

var (
	departments    = []string{"Sales", "Marketing", "IT", "HR", "Finance"}
	orderStatuses  = []string{"Pending", "Shipped", "Delivered", "Cancelled"}
	paymentMethods = []string{"Credit Card", "PayPal", "Transfer"}
	categories     = []string{"Electronics", "Books", "Clothing", "Home Goods"}
)

// ValueSource supplies randomness and realistic fake values. Implementations
// must be safe for concurrent use.
type ValueSource interface {
	// IntBetween returns a uniform integer in [lo, hi].
	IntBetween(lo, hi int) int
	// FloatBetween returns a uniform float in [lo, hi].
	FloatBetween(lo, hi float64) float64
	Choice(options []string) string
	Bool() bool

	PersonName() string
	FirstName() string
	LastName() string
	CompanyName() string
	Sentence(words int) string
	StreetAddress() string
	City() string
	Country() string
	JobTitle() string
	Email() string
	PhoneNumber() string
}

// cell is everything a generator may look at for one value.
type cell struct {
	column     string
	lower      string
	primaryKey string
	rowIndex   int
	today      time.Time
}

// rule pairs a column-name predicate with its value generator. A rule
// matches when the lower-cased column name contains any of its keywords.
type rule struct {
	kind     Kind
	keywords []string
	generate func(src ValueSource, c cell) any
}

// rules are evaluated in order and the first match wins. The order is part
// of the output shape: "ProductID" must hit the identifier rule, "Title" the
// name rule, "DeliveryDate" the date rule and so on.
var rules = []rule{
	{KindIdentifier, []string{"id"}, identifier},
	{KindName, []string{"name", "title"}, func(src ValueSource, c cell) any {
		if utils.ContainsAny(c.lower, "product", "company") {
			return src.CompanyName()
		}
		return src.PersonName()
	}},
	{KindFirstName, []string{"first"}, func(src ValueSource, _ cell) any { return src.FirstName() }},
	{KindLastName, []string{"last"}, func(src ValueSource, _ cell) any { return src.LastName() }},
	{KindEmail, []string{"email"}, func(src ValueSource, _ cell) any { return src.Email() }},
	{KindPhone, []string{"phone"}, func(src ValueSource, _ cell) any { return src.PhoneNumber() }},
	{KindAddress, []string{"address", "location"}, func(src ValueSource, _ cell) any { return src.StreetAddress() }},
	{KindCity, []string{"city"}, func(src ValueSource, _ cell) any { return src.City() }},
	{KindCountry, []string{"country"}, func(src ValueSource, _ cell) any { return src.Country() }},
	{KindJobTitle, []string{"position"}, func(src ValueSource, _ cell) any { return src.JobTitle() }},
	{KindDepartment, []string{"department"}, func(src ValueSource, _ cell) any { return src.Choice(departments) }},
	{KindSentence, []string{"description", "comment"}, func(src ValueSource, _ cell) any { return src.Sentence(6) }},
	{KindAge, []string{"age"}, func(src ValueSource, _ cell) any { return src.IntBetween(18, 65) }},
	{KindMoney, []string{"price", "amount", "cost"}, func(src ValueSource, _ cell) any {
		return utils.Round(src.FloatBetween(5.0, 500.0), 2)
	}},
	{KindSalary, []string{"salary"}, func(src ValueSource, _ cell) any { return src.IntBetween(40000, 150000) }},
	{KindQuantity, []string{"stock", "quantity"}, func(src ValueSource, _ cell) any { return src.IntBetween(0, 1000) }},
	{KindRating, []string{"rating"}, func(src ValueSource, _ cell) any {
		return utils.Round(src.FloatBetween(1.0, 5.0), 1)
	}},
	{KindCount, []string{"count"}, func(src ValueSource, _ cell) any { return src.IntBetween(1, 200) }},
	{KindDate, []string{"date"}, date},
	{KindStatus, []string{"status"}, func(src ValueSource, _ cell) any { return src.Choice(orderStatuses) }},
	{KindPaymentMethod, []string{"method"}, func(src ValueSource, _ cell) any { return src.Choice(paymentMethods) }},
	{KindCategory, []string{"category"}, func(src ValueSource, _ cell) any { return src.Choice(categories) }},
	{KindFlag, []string{"active"}, func(src ValueSource, _ cell) any { return src.Bool() }},
}

// identifier numbers the primary key by row and draws foreign keys from
// fixed ranges. Foreign keys do not reference generated rows of other tables.
func identifier(src ValueSource, c cell) any {
	switch {
	case c.column == c.primaryKey:
		return c.rowIndex
	case strings.Contains(c.lower, "customerid"):
		return src.IntBetween(1001, 1100)
	case strings.Contains(c.lower, "productid"):
		return src.IntBetween(2001, 2100)
	case strings.Contains(c.lower, "orderid"):
		return src.IntBetween(3001, 3100)
	default:
		return src.IntBetween(100, 999)
	}
}

func date(src ValueSource, c cell) any {
	var d time.Time
	switch {
	case utils.ContainsAny(c.lower, "join", "hire"):
		// Jan 1 of this year up to today.
		d = c.today.AddDate(0, 0, -src.IntBetween(0, c.today.YearDay()-1))
	case strings.Contains(c.lower, "delivery"):
		d = c.today.AddDate(0, 0, src.IntBetween(1, 10))
	case strings.Contains(c.lower, "expiry"):
		d = c.today.AddDate(0, 0, src.IntBetween(30, 365))
	default:
		// 1st of this month up to today.
		d = c.today.AddDate(0, 0, -src.IntBetween(0, c.today.Day()-1))
	}
	return d.Format(isoDate)
}

func match(lower string) *rule {
	for i := range rules {
		if utils.ContainsAny(lower, rules[i].keywords...) {
			return &rules[i]
		}
	}
	return nil
}

// Classify returns the kind of the first rule matching column, or
// KindUnknown when the placeholder would be used.
func Classify(column string) Kind {
	if r := match(strings.ToLower(column)); r != nil {
		return r.kind
	}
	return KindUnknown
}

// Synthesizer builds fake rows from column names. It keeps no state between
// calls apart from what the ValueSource holds.
type Synthesizer struct {
	source ValueSource
	now    func() time.Time
}

func NewSynthesizer(source ValueSource) *Synthesizer {
	return &Synthesizer{
		source: source,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for date columns.
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	return &Synthesizer{source: s.source, now: now}
}

// Synthesize generates rowCount rows for columns. The first column is
// treated as the primary key and numbered from 1. The caller is expected to
// have checked that the table exists.
func (s *Synthesizer) Synthesize(table string, columns []string, rowCount int) models.Dataset {
	ds := models.Dataset{
		Table:   table,
		Columns: append([]string(nil), columns...),
		Rows:    make([]models.Row, 0, max(rowCount, 0)),
	}

	pk := models.Table{Name: table, Columns: columns}.PrimaryKey()

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	lowered := make([]string, len(columns))
	for i, col := range columns {
		lowered[i] = strings.ToLower(col)
	}

	for i := 1; i <= rowCount; i++ {
		row := make(models.Row, len(columns))
		for j, col := range columns {
			c := cell{
				column:     col,
				lower:      lowered[j],
				primaryKey: pk,
				rowIndex:   i,
				today:      today,
			}
			row[col] = s.value(c)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds
}

func (s *Synthesizer) value(c cell) any {
	r := match(c.lower)
	if r == nil {
		return Placeholder
	}
	return r.generate(s.source, c)
}
