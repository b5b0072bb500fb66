package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildReferenceItems validates and normalizes raw reference records. Only a
// name is mandatory; an unrecognized relationship label is dropped to nil.
func BuildReferenceItems(raw []llm.RawReference, profileID uuid.UUID, existingCount int) Result[entity.CreateReferenceRequest] {
	var res Result[entity.CreateReferenceRequest]
	order := existingCount

	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionReference, i+1, []string{"missing name"}))
			continue
		}

		res.Items = append(res.Items, newItem(entity.CreateReferenceRequest{
			ProfileID:    profileID,
			Name:         name,
			JobTitle:     normalize.StringPtr(r.JobTitle),
			Company:      normalize.StringPtr(r.Company),
			Email:        normalize.StringPtr(r.Email),
			Phone:        normalize.Phone(r.Phone),
			Relationship: normalize.Relationship(r.Relationship),
			DisplayOrder: order,
		}, nil))
		order++
	}
	return res
}
