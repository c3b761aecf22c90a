package domain

// PreferenceDomains is the fixed enumeration of domain tags a user may declare
// as interests. The ranking engine matches these against hackathon theme and
// technology tags; nothing else in the system invents domain tags.
var PreferenceDomains = []string{
	"artificial-intelligence",
	"machine-learning",
	"blockchain",
	"web-development",
	"mobile-development",
	"game-development",
	"cybersecurity",
	"data-science",
	"cloud-computing",
	"iot",
	"fintech",
	"healthtech",
	"edtech",
	"greentech",
	"social-impact",
	"hardware",
	"robotics",
	"ar-vr",
	"quantum-computing",
	"devops",
}

// ValidPreferenceDomain reports whether d is a known domain tag.
func ValidPreferenceDomain(d string) bool { return contains(PreferenceDomains, d) }

// Team preference values.
const (
	TeamSolo  = "solo"
	TeamSmall = "small-team"
	TeamLarge = "large-team"
	TeamAny   = "any"
)

// Travel willingness values.
const (
	TravelLocalOnly     = "local-only"
	TravelRegional      = "regional"
	TravelNational      = "national"
	TravelInternational = "international"
)

// Preferred duration values.
const (
	Duration24Hours  = "24-hours"
	Duration48Hours  = "48-hours"
	Duration72Hours  = "72-hours"
	DurationWeekLong = "week-long"
	DurationAny      = "any"
)

var (
	teamPreferences = []string{TeamSolo, TeamSmall, TeamLarge, TeamAny}
	travelOptions   = []string{TravelLocalOnly, TravelRegional, TravelNational, TravelInternational}
	durationOptions = []string{Duration24Hours, Duration48Hours, Duration72Hours, DurationWeekLong, DurationAny}
)

// ValidTeamPreference reports whether v is a known team preference.
func ValidTeamPreference(v string) bool { return contains(teamPreferences, v) }

// ValidTravelWillingness reports whether v is a known travel willingness value.
func ValidTravelWillingness(v string) bool { return contains(travelOptions, v) }

// ValidPreferredDuration reports whether v is a known duration preference.
func ValidPreferredDuration(v string) bool { return contains(durationOptions, v) }

// PrizeRange is the prize bracket a user cares about.
type PrizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preferences holds a user's declared hackathon preferences. Only Domains is
// consumed by the ranking engine; the scheduling and format fields are stored
// and returned but do not influence relevance scores.
type Preferences struct {
	Domains           []string   `json:"domains"`
	HackathonTypes    []string   `json:"hackathon_types"`
	DifficultyLevels  []string   `json:"difficulty_levels"`
	TeamPreference    string     `json:"team_preference"`
	TravelWillingness string     `json:"travel_willingness"`
	PreferredDuration string     `json:"preferred_duration"`
	AvailableWeekends bool       `json:"available_weekends"`
	AvailableWeekdays bool       `json:"available_weekdays"`
	PrizeRange        PrizeRange `json:"prize_range"`
}

// DefaultPreferences returns the preference values assigned at signup when the
// user declares nothing.
func DefaultPreferences() Preferences {
	return Preferences{
		TeamPreference:    TeamAny,
		TravelWillingness: TravelLocalOnly,
		PreferredDuration: DurationAny,
		AvailableWeekends: true,
		PrizeRange:        PrizeRange{Min: 0, Max: 1000000},
	}
}
