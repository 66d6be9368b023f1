package onboarding

import "strings"

// ReviewSection groups answered fields for the review screen.
type ReviewSection struct {
	Title string       `json:"title"`
	Items []ReviewItem `json:"items"`
}

type ReviewItem struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Answered bool   `json:"answered"`
}

var reviewLayout = []struct {
	title  string
	fields []string
}{
	{"Informations personnelles", []string{"first_name", "last_name", "email", "phone", "location"}},
	{"Expérience", []string{"current_title", "years_experience", "education_level", "skills", "languages"}},
	{"Préférences", []string{"job_type", "remote_preference", "preferred_locations", "min_salary", "availability"}},
	{"Liens", []string{"linkedin_url", "portfolio_url", "summary"}},
}

// Review renders the draft into sections. Fields that were never reached
// (unsatisfied dependencies included) are omitted; visited-but-skipped fields
// appear with an empty value.
func (s *Session) Review(cat Catalog) []ReviewSection {
	if s == nil {
		return nil
	}

	out := make([]ReviewSection, 0, len(reviewLayout))
	for _, sec := range reviewLayout {
		items := make([]ReviewItem, 0, len(sec.fields))
		for _, field := range sec.fields {
			q, ok := cat.ByField(field)
			if !ok {
				continue
			}
			ans, visited := s.Draft[field]
			if !visited {
				continue
			}
			items = append(items, ReviewItem{
				Field:    field,
				Label:    q.Label,
				Value:    reviewValue(ans),
				Answered: !ans.IsEmpty(),
			})
		}
		if len(items) > 0 {
			out = append(out, ReviewSection{Title: sec.title, Items: items})
		}
	}
	return out
}

func reviewValue(ans Answer) string {
	if len(ans.Choices) > 0 {
		return strings.Join(ans.Choices, ", ")
	}
	return ans.Text
}
