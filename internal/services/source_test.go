package services

// boundarySource always draws the lower bound (or the upper bound when high
// is set), which makes every generated value predictable.
type boundarySource struct {
	high bool
}

func (b boundarySource) IntBetween(lo, hi int) int {
	if b.high {
		return hi
	}
	return lo
}

func (b boundarySource) FloatBetween(lo, hi float64) float64 {
	if b.high {
		return hi
	}
	return lo
}

func (b boundarySource) Choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	if b.high {
		return options[len(options)-1]
	}
	return options[0]
}

func (b boundarySource) Bool() bool { return b.high }

func (boundarySource) PersonName() string        { return "Jane Doe" }
func (boundarySource) FirstName() string         { return "Jane" }
func (boundarySource) LastName() string          { return "Doe" }
func (boundarySource) CompanyName() string       { return "Integrated real-time framework" }
func (boundarySource) Sentence(words int) string { return "Lorem ipsum dolor sit amet elit." }
func (boundarySource) StreetAddress() string     { return "100 Main Street" }
func (boundarySource) City() string              { return "Springfield" }
func (boundarySource) Country() string           { return "Canada" }
func (boundarySource) JobTitle() string          { return "Accountant" }
func (boundarySource) Email() string             { return "jane@example.com" }
func (boundarySource) PhoneNumber() string       { return "201-886-0269" }
