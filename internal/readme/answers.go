package readme

import (
	"fmt"
	"strings"
)

// Answers are the wizard responses that drive rendering.
// Audience, Tone and Detail hold one of the option labels below.
type Answers struct {
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	Detail      string `json:"detail"`
}

// Audience labels
const (
	AudienceDevelopers = "Developers (technical users)"
	AudienceEndUsers   = "End Users (non-technical)"
	AudienceTeams      = "Enterprise/Teams"
	AudienceOpenSource = "Open Source Community"
)

// Tone labels
const (
	ToneProfessional = "Professional (corporate, formal)"
	ToneFriendly     = "Friendly (welcoming, casual)"
	ToneTechnical    = "Technical (detailed, precise)"
	ToneCreative     = "Creative (fun, visual)"
)

// Detail labels
const (
	DetailBrief         = "Brief (essential info only)"
	DetailStandard      = "Standard (typical sections)"
	DetailComprehensive = "Comprehensive (detailed guide)"
)

// Choice pairs a short key, used by flags and config, with the label the
// wizard shows.
type Choice struct {
	Key   string
	Label string
}

// Fixed option sets, in the order the wizard presents them.
var (
	Audiences = []Choice{
		{"developers", AudienceDevelopers},
		{"end-users", AudienceEndUsers},
		{"enterprise", AudienceTeams},
		{"open-source", AudienceOpenSource},
	}
	Tones = []Choice{
		{"professional", ToneProfessional},
		{"friendly", ToneFriendly},
		{"technical", ToneTechnical},
		{"creative", ToneCreative},
	}
	Details = []Choice{
		{"brief", DetailBrief},
		{"standard", DetailStandard},
		{"comprehensive", DetailComprehensive},
	}
)

// Labels returns the labels of choices in order.
func Labels(choices []Choice) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

// Keys returns the keys of choices in order.
func Keys(choices []Choice) []string {
	keys := make([]string, len(choices))
	for i, c := range choices {
		keys[i] = c.Key
	}
	return keys
}

// Index returns the position of the choice matching s by key or label,
// case-insensitively, or -1.
func Index(choices []Choice, s string) int {
	s = strings.TrimSpace(s)
	for i, c := range choices {
		if strings.EqualFold(c.Key, s) || strings.EqualFold(c.Label, s) {
			return i
		}
	}
	return -1
}

// Resolve maps a key or label to its label.
func Resolve(choices []Choice, s string) (string, error) {
	i := Index(choices, s)
	if i < 0 {
		return "", fmt.Errorf("unknown option '%s' (valid: %s)", s, strings.Join(Keys(choices), ", "))
	}
	return choices[i].Label, nil
}

// flags are the predicates derived from the answers. Given the fixed option
// sets exactly one flag per group is true.
type flags struct {
	developers bool
	teams      bool
	openSource bool

	professional bool
	technical    bool

	brief         bool
	standard      bool
	comprehensive bool
}

func classify(a Answers) flags {
	return flags{
		developers: strings.Contains(a.Audience, "Developers"),
		teams:      strings.Contains(a.Audience, "Enterprise/Teams"),
		openSource: strings.Contains(a.Audience, "Open Source"),

		professional: strings.Contains(a.Tone, "Professional"),
		technical:    strings.Contains(a.Tone, "Technical"),

		brief:         strings.Contains(a.Detail, "Brief"),
		standard:      strings.Contains(a.Detail, "Standard"),
		comprehensive: strings.Contains(a.Detail, "Comprehensive"),
	}
}
