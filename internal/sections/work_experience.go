package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildWorkExperienceItems validates and normalizes raw work-experience
// records. Job title, company, and a parseable start date are mandatory;
// records missing any of them are dropped with a warning and do not consume a
// display-order slot.
func BuildWorkExperienceItems(raw []llm.RawWorkExperience, profileID uuid.UUID, existingCount int) Result[entity.CreateWorkExperienceRequest] {
	var res Result[entity.CreateWorkExperienceRequest]
	order := existingCount

	for i, r := range raw {
		jobTitle := strings.TrimSpace(r.JobTitle)
		company := strings.TrimSpace(r.Company)
		start := normalize.Date(r.StartDate)

		var missing []string
		if jobTitle == "" {
			missing = append(missing, "missing job title")
		}
		if company == "" {
			missing = append(missing, "missing company")
		}
		if start == nil {
			missing = append(missing, "missing or unparseable start date")
		}
		if len(missing) > 0 {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionWorkExperience, i+1, missing))
			continue
		}

		end := normalize.Date(r.EndDate)
		isCurrent := end == nil && normalize.IsPresentToken(r.EndDate)

		var itemWarnings []string
		if end == nil && !isCurrent && strings.TrimSpace(r.EndDate) != "" {
			itemWarnings = append(itemWarnings, "end date could not be parsed")
		}

		res.Items = append(res.Items, newItem(entity.CreateWorkExperienceRequest{
			ProfileID:    profileID,
			JobTitle:     jobTitle,
			Company:      company,
			Location:     normalize.StringPtr(r.Location),
			StartDate:    *start,
			EndDate:      end,
			IsCurrent:    isCurrent,
			Description:  normalize.StringPtr(r.Description),
			DisplayOrder: order,
		}, itemWarnings))
		order++
	}
	return res
}
