package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildProjectItems validates and normalizes raw project records. Only a
// title is mandatory. The technologies list is flattened to one comma-joined
// string.
func BuildProjectItems(raw []llm.RawProject, profileID uuid.UUID, existingCount int) Result[entity.CreateProjectRequest] {
	var res Result[entity.CreateProjectRequest]
	order := existingCount

	for i, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionProject, i+1, []string{"missing title"}))
			continue
		}

		end := normalize.Date(r.EndDate)
		isOngoing := end == nil && normalize.IsPresentToken(r.EndDate)

		res.Items = append(res.Items, newItem(entity.CreateProjectRequest{
			ProfileID:    profileID,
			Title:        title,
			Description:  normalize.StringPtr(r.Description),
			Technologies: normalize.JoinList(r.Technologies),
			URL:          normalize.URL(r.URL),
			StartDate:    normalize.Date(r.StartDate),
			EndDate:      end,
			IsOngoing:    isOngoing,
			DisplayOrder: order,
		}, nil))
		order++
	}
	return res
}
