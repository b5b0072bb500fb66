package sections

import (
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/entity"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/normalize"
)

// BuildCertificationItems validates and normalizes raw certification records.
// Name and issuing organization are mandatory.
func BuildCertificationItems(raw []llm.RawCertification, profileID uuid.UUID, existingCount int) Result[entity.CreateCertificationRequest] {
	var res Result[entity.CreateCertificationRequest]
	order := existingCount

	for i, r := range raw {
		name := strings.TrimSpace(r.Name)
		issuer := strings.TrimSpace(r.IssuingOrg)

		var missing []string
		if name == "" {
			missing = append(missing, "missing name")
		}
		if issuer == "" {
			missing = append(missing, "missing issuing organization")
		}
		if len(missing) > 0 {
			res.Warnings = append(res.Warnings, dropWarning(constants.SectionCertification, i+1, missing))
			continue
		}

		res.Items = append(res.Items, newItem(entity.CreateCertificationRequest{
			ProfileID:     profileID,
			Name:          name,
			IssuingOrg:    issuer,
			IssueDate:     normalize.Date(r.IssueDate),
			ExpiryDate:    normalize.Date(r.ExpiryDate),
			CredentialID:  normalize.StringPtr(r.CredentialID),
			CredentialURL: normalize.URL(r.CredentialURL),
			DisplayOrder:  order,
		}, nil))
		order++
	}
	return res
}
