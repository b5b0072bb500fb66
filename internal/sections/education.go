package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildEducationItems validates and normalizes raw education records. Degree
// and institution are mandatory; dates are optional.
func BuildEducationItems(raw []llm.RawEducation, profileID uuid.UUID, existingCount int) Result[entity.CreateEducationRequest] {
	var res Result[entity.CreateEducationRequest]
	order := existingCount

	for i, r := range raw {
		degree := strings.TrimSpace(r.Degree)
		institution := strings.TrimSpace(r.Institution)

		var missing []string
		if degree == "" {
			missing = append(missing, "missing degree")
		}
		if institution == "" {
			missing = append(missing, "missing institution")
		}
		if len(missing) > 0 {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionEducation, i+1, missing))
			continue
		}

		end := normalize.Date(r.EndDate)
		isCurrent := end == nil && normalize.IsPresentToken(r.EndDate)

		res.Items = append(res.Items, newItem(entity.CreateEducationRequest{
			ProfileID:    profileID,
			Degree:       degree,
			Institution:  institution,
			FieldOfStudy: normalize.StringPtr(r.FieldOfStudy),
			StartDate:    normalize.Date(r.StartDate),
			EndDate:      end,
			IsCurrent:    isCurrent,
			Description:  normalize.StringPtr(r.Description),
			DisplayOrder: order,
		}, nil))
		order++
	}
	return res
}
