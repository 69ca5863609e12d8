package safety

import (
	"strings"

	"Expronix-Backend/entities"
)

// healthConcernKeywords maps a health condition to the ingredient and food
// keywords that flag an item for it. Data-driven so adding a condition is a
// table edit, not new branching. Conditions without an entry never match.
var healthConcernKeywords = map[string][]string{
	"Diabetes":    {"sugar", "syrup", "honey", "juice", "fructose", "glucose", "starch", "flour", "rice", "pasta"},
	"BP":          {"salt", "sodium", "msg", "soy sauce", "bouillon", "pickle", "canned"},
	"Heart care":  {"butter", "lard", "fat", "coconut oil", "palm oil", "cream", "bacon", "trans fat"},
	"Pregnancy":   {"alcohol", "wine", "raw", "unpasteurized", "caffeine", "mercury", "sushi"},
	"Cholesterol": {"egg yolk", "butter", "liver", "shrimp", "lard", "processed meat"},
}

// KeywordsFor exposes the disqualifying keywords for a condition, for display.
func KeywordsFor(condition string) []string {
	kws, ok := healthConcernKeywords[condition]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

type ItemText struct {
	Name        string
	Category    string
	Ingredients []string
}

type HealthConcern struct {
	Condition       string
	MatchedKeywords []string
}

type Report struct {
	AllergyMatches  []entities.Allergy
	HighestSeverity entities.AllergySeverity
	HealthConcerns  []HealthConcern
}

func (r Report) HasAllergyConflict() bool {
	return len(r.AllergyMatches) > 0
}

// contains checks case-insensitive substring containment in both directions:
// the term inside the text, or the text inside the term. An allergy named
// "peanut butter cookies" still matches an item named "peanut butter".
func contains(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	return strings.Contains(text, term) || strings.Contains(term, text)
}

func matchesAny(term string, fields ...string) bool {
	for _, f := range fields {
		if contains(f, term) {
			return true
		}
	}
	return false
}

// Match runs the allergy and health-condition checks for one item against a
// profile snapshot. Pure function; re-run whenever the item or the profile
// changes, never cached on the item. Missing profile data yields an empty
// report rather than an error.
func Match(item ItemText, allergies []entities.Allergy, conditions []string) Report {
	report := Report{}

	// Allergies match against name, category, and every ingredient.
	allergyFields := make([]string, 0, len(item.Ingredients)+2)
	allergyFields = append(allergyFields, item.Name, item.Category)
	allergyFields = append(allergyFields, item.Ingredients...)

	for _, allergy := range allergies {
		if matchesAny(allergy.Name, allergyFields...) {
			report.AllergyMatches = append(report.AllergyMatches, allergy)
		}
	}
	report.HighestSeverity = reduceSeverity(report.AllergyMatches)

	// Health concerns skip the category field.
	healthFields := make([]string, 0, len(item.Ingredients)+1)
	healthFields = append(healthFields, item.Name)
	healthFields = append(healthFields, item.Ingredients...)

	for _, condition := range conditions {
		keywords, ok := healthConcernKeywords[condition]
		if !ok {
			continue
		}
		var matched []string
		for _, kw := range keywords {
			if matchesAny(kw, healthFields...) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			report.HealthConcerns = append(report.HealthConcerns, HealthConcern{
				Condition:       condition,
				MatchedKeywords: matched,
			})
		}
	}

	return report
}

// MatchProfile is Match against a full profile.
func MatchProfile(item ItemText, profile entities.UserProfile) Report {
	return Match(item, profile.Allergies, profile.HealthConditions)
}

// reduceSeverity folds matched allergies to the highest severity,
// Severe > Moderate > Mild. Empty input reports no severity.
func reduceSeverity(matches []entities.Allergy) entities.AllergySeverity {
	if len(matches) == 0 {
		return ""
	}
	highest := entities.SeverityMild
	for _, a := range matches {
		switch a.Severity {
		case entities.SeveritySevere:
			return entities.SeveritySevere
		case entities.SeverityModerate:
			highest = entities.SeverityModerate
		}
	}
	return highest
}
