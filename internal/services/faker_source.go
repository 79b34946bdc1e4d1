package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
)

// Word lists for values faker/v3 has no generator for.
var (
	cities = []string{
		"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
		"Clinton", "Fairview", "Salem", "Madison", "Georgetown",
		"Arlington", "Ashland", "Burlington", "Manchester", "Oxford",
		"Lakewood", "Milton", "Newport", "Auburn", "Dayton",
	}
	countries = []string{
		"United States", "Canada", "Mexico", "Brazil", "Argentina",
		"United Kingdom", "Ireland", "France", "Germany", "Spain",
		"Italy", "Netherlands", "Sweden", "Norway", "Poland",
		"Japan", "South Korea", "India", "Australia", "New Zealand",
		"South Africa", "Kenya", "Egypt", "Turkey", "Singapore",
	}
	jobTitles = []string{
		"Accountant", "Software Engineer", "Data Analyst", "Sales Representative",
		"Marketing Manager", "HR Specialist", "Product Manager", "Graphic Designer",
		"Customer Support Agent", "Financial Analyst", "Operations Manager",
		"Systems Administrator", "Recruiter", "Warehouse Supervisor",
		"Business Analyst", "Office Manager", "Quality Assurance Engineer",
		"Logistics Coordinator",
	}
	streetSuffixes = []string{
		"Street", "Avenue", "Road", "Lane", "Drive", "Court",
		"Boulevard", "Way", "Place", "Terrace",
	}
	phraseAdjectives = []string{
		"Adaptive", "Balanced", "Centralized", "Customizable", "Distributed",
		"Enhanced", "Ergonomic", "Focused", "Integrated", "Innovative",
		"Multi-layered", "Optimized", "Proactive", "Reactive", "Synergized",
		"Universal", "User-friendly", "Versatile",
	}
	phraseDescriptors = []string{
		"24/7", "asymmetric", "bottom-line", "client-driven", "dynamic",
		"executive", "global", "heuristic", "interactive", "mission-critical",
		"modular", "next generation", "real-time", "scalable", "tangible",
		"value-added", "zero-defect",
	}
	phraseNouns = []string{
		"ability", "algorithm", "architecture", "benchmark", "capability",
		"challenge", "encoding", "firmware", "framework", "hierarchy",
		"infrastructure", "initiative", "interface", "matrix", "paradigm",
		"portal", "solution", "toolset",
	}
)

// FakerSource is the production ValueSource. People, contact details and
// lorem words come from faker; numeric draws and the word lists above use
// the source's own generator. Both are wrapped with faker.NewSafeSource.
type FakerSource struct {
	rng *rand.Rand
}

// NewFakerSource returns a source seeded with seed. A non-zero seed also
// reseeds faker's package-level generator, so a run with the same seed
// yields the same rows. Seed 0 seeds from the clock and leaves faker alone.
func NewFakerSource(seed int64) *FakerSource {
	if seed != 0 {
		faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(seed)))
	} else {
		seed = time.Now().UnixNano()
	}
	return &FakerSource{rng: rand.New(faker.NewSafeSource(rand.NewSource(seed)))}
}

func (f *FakerSource) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + f.rng.Intn(hi-lo+1)
}

func (f *FakerSource) FloatBetween(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *FakerSource) Choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[f.IntBetween(0, len(options)-1)]
}

func (f *FakerSource) Bool() bool {
	return f.IntBetween(0, 1) == 1
}

func (f *FakerSource) PersonName() string {
	return faker.Name()
}

func (f *FakerSource) FirstName() string {
	return faker.FirstName()
}

func (f *FakerSource) LastName() string {
	return faker.LastName()
}

// CompanyName returns a catch-phrase style name such as
// "Integrated real-time framework".
func (f *FakerSource) CompanyName() string {
	return fmt.Sprintf("%s %s %s",
		f.Choice(phraseAdjectives),
		f.Choice(phraseDescriptors),
		f.Choice(phraseNouns),
	)
}

// Sentence joins the given number of lorem words into a capitalized
// sentence ending with a period.
func (f *FakerSource) Sentence(words int) string {
	if words <= 0 {
		return ""
	}
	parts := make([]string, words)
	for i := range parts {
		parts[i] = faker.Word()
	}
	first := parts[0]
	if first != "" {
		parts[0] = strings.ToUpper(first[:1]) + first[1:]
	}
	return strings.Join(parts, " ") + "."
}

func (f *FakerSource) StreetAddress() string {
	return fmt.Sprintf("%d %s %s", f.IntBetween(100, 9999), faker.LastName(), f.Choice(streetSuffixes))
}

func (f *FakerSource) City() string {
	return f.Choice(cities)
}

func (f *FakerSource) Country() string {
	return f.Choice(countries)
}

func (f *FakerSource) JobTitle() string {
	return f.Choice(jobTitles)
}

func (f *FakerSource) Email() string {
	return faker.Email()
}

func (f *FakerSource) PhoneNumber() string {
	return faker.Phonenumber()
}
