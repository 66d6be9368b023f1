package completion

// fieldAliases is the explicit snake_case → camelCase mapping between the
// chat draft and the persisted candidate record. Keeping the table static
// makes the cross-convention lookup verifiable instead of relying on runtime
// string transforms.
var fieldAliases = map[string]string{
	"first_name":          "firstName",
	"last_name":           "lastName",
	"current_title":       "currentTitle",
	"years_experience":    "yearsExperience",
	"education_level":     "educationLevel",
	"job_type":            "jobType",
	"remote_preference":   "remotePreference",
	"preferred_locations": "preferredLocations",
	"min_salary":          "minSalary",
	"linkedin_url":        "linkedinUrl",
	"portfolio_url":       "portfolioUrl",
}

var fieldAliasesReverse = func() map[string]string {
	m := make(map[string]string, len(fieldAliases))
	for snake, camel := range fieldAliases {
		m[camel] = snake
	}
	return m
}()

// Alias returns the other spelling of a field name, in either direction.
func Alias(field string) (string, bool) {
	if camel, ok := fieldAliases[field]; ok {
		return camel, true
	}
	if snake, ok := fieldAliasesReverse[field]; ok {
		return snake, true
	}
	return "", false
}

// CamelName returns the camelCase spelling used by the profile update
// payload; fields without an alias keep their name as-is.
func CamelName(field string) string {
	if camel, ok := fieldAliases[field]; ok {
		return camel
	}
	return field
}
