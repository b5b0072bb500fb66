package llm

// BuildResumeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the model as a structured output constraint and
// also use it locally to validate the response.
func BuildResumeJSONSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }
	strArr := func() map[string]any {
		return map[string]any{"type": "array", "items": str()}
	}
	obj := func(props map[string]any) map[string]any {
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}
	arr := func(item map[string]any) map[string]any {
		return map[string]any{"type": "array", "items": item}
	}

	workExperience := obj(map[string]any{
		"job_title":   str(),
		"company":     str(),
		"location":    str(),
		"start_date":  str(),
		"end_date":    str(),
		"description": str(),
	})
	education := obj(map[string]any{
		"degree":         str(),
		"institution":    str(),
		"field_of_study": str(),
		"start_date":     str(),
		"end_date":       str(),
		"description":    str(),
	})
	skill := obj(map[string]any{
		"name":             str(),
		"category":         str(),
		"proficiency":      str(),
		"years_experience": map[string]any{"type": []string{"number", "string"}},
	})
	project := obj(map[string]any{
		"title":        str(),
		"description":  str(),
		"technologies": map[string]any{"type": "array"},
		"url":          str(),
		"start_date":   str(),
		"end_date":     str(),
	})
	certification := obj(map[string]any{
		"name":                 str(),
		"issuing_organization": str(),
		"issue_date":           str(),
		"expiry_date":          str(),
		"credential_id":        str(),
		"credential_url":       str(),
	})
	achievement := obj(map[string]any{
		"title":       str(),
		"description": str(),
		"date":        str(),
	})
	reference := obj(map[string]any{
		"name":         str(),
		"job_title":    str(),
		"company":      str(),
		"email":        str(),
		"phone":        str(),
		"relationship": str(),
	})

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"first_name":    str(),
			"last_name":     str(),
			"email":         str(),
			"phone":         str(),
			"city":          str(),
			"country":       str(),
			"linkedin_url":  str(),
			"github_url":    str(),
			"portfolio_url": str(),
			"summary":       str(),

			"work_experiences": arr(workExperience),
			"educations":       arr(education),
			"skills":           arr(skill),
			"projects":         arr(project),
			"certifications":   arr(certification),
			"achievements":     arr(achievement),
			"references":       arr(reference),

			"warnings": strArr(),
		},
	}
}
