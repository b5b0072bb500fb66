package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildAchievementItems validates and normalizes raw achievement records.
// Only a title is mandatory.
func BuildAchievementItems(raw []llm.RawAchievement, profileID uuid.UUID, existingCount int) Result[entity.CreateAchievementRequest] {
	var res Result[entity.CreateAchievementRequest]
	order := existingCount

	for i, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionAchievement, i+1, []string{"missing title"}))
			continue
		}

		res.Items = append(res.Items, newItem(entity.CreateAchievementRequest{
			ProfileID:    profileID,
			Title:        title,
			Description:  normalize.StringPtr(r.Description),
			Date:         normalize.Date(r.Date),
			DisplayOrder: order,
		}, nil))
		order++
	}
	return res
}
