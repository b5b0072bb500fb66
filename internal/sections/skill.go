package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildSkillItems validates and normalizes raw skill records. Only a name is
// mandatory (category defaults to technical, never blocks). Names are
// de-duplicated case-insensitively within one import; repeats are skipped
// silently and do not consume a display-order slot.
func BuildSkillItems(raw []llm.RawSkill, profileID uuid.UUID, existingCount int) Result[entity.CreateSkillRequest] {
	var res Result[entity.CreateSkillRequest]
	order := existingCount
	seen := make(map[string]struct{}, len(raw))

	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionSkill, i+1, []string{"missing name"}))
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		res.Items = append(res.Items, newItem(entity.CreateSkillRequest{
			ProfileID:       profileID,
			Name:            name,
			Category:        normalize.SkillCategory(r.Category),
			Proficiency:     normalize.Proficiency(r.Proficiency),
			YearsExperience: normalize.Years(r.YearsExperience),
			DisplayOrder:    order,
		}, nil))
		order++
	}
	return res
}
