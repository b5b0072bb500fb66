// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/careerdock/resume-import/db/ent/schema"
	"github.com/careerdock/resume-import/gen/ent/achievement"
	"github.com/careerdock/resume-import/gen/ent/certification"
	"github.com/careerdock/resume-import/gen/ent/education"
	"github.com/careerdock/resume-import/gen/ent/profile"
	"github.com/careerdock/resume-import/gen/ent/project"
	"github.com/careerdock/resume-import/gen/ent/reference"
	"github.com/careerdock/resume-import/gen/ent/skill"
	"github.com/careerdock/resume-import/gen/ent/workexperience"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescTitle is the schema descriptor for title field.
	achievementDescTitle := achievementFields[2].Descriptor()
	// achievement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievement.TitleValidator = achievementDescTitle.Validators[0].(func(string) error)
	// achievementDescDisplayOrder is the schema descriptor for display_order field.
	achievementDescDisplayOrder := achievementFields[5].Descriptor()
	// achievement.DefaultDisplayOrder holds the default value on creation for the display_order field.
	achievement.DefaultDisplayOrder = achievementDescDisplayOrder.Default.(int)
	// achievementDescCreatedAt is the schema descriptor for created_at field.
	achievementDescCreatedAt := achievementFields[6].Descriptor()
	// achievement.DefaultCreatedAt holds the default value on creation for the created_at field.
	achievement.DefaultCreatedAt = achievementDescCreatedAt.Default.(func() time.Time)
	// achievementDescUpdatedAt is the schema descriptor for updated_at field.
	achievementDescUpdatedAt := achievementFields[7].Descriptor()
	// achievement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	achievement.DefaultUpdatedAt = achievementDescUpdatedAt.Default.(func() time.Time)
	// achievement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	achievement.UpdateDefaultUpdatedAt = achievementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// achievementDescID is the schema descriptor for id field.
	achievementDescID := achievementFields[0].Descriptor()
	// achievement.DefaultID holds the default value on creation for the id field.
	achievement.DefaultID = achievementDescID.Default.(func() uuid.UUID)
	certificationFields := schema.Certification{}.Fields()
	_ = certificationFields
	// certificationDescName is the schema descriptor for name field.
	certificationDescName := certificationFields[2].Descriptor()
	// certification.NameValidator is a validator for the "name" field. It is called by the builders before save.
	certification.NameValidator = certificationDescName.Validators[0].(func(string) error)
	// certificationDescIssuingOrg is the schema descriptor for issuing_org field.
	certificationDescIssuingOrg := certificationFields[3].Descriptor()
	// certification.IssuingOrgValidator is a validator for the "issuing_org" field. It is called by the builders before save.
	certification.IssuingOrgValidator = certificationDescIssuingOrg.Validators[0].(func(string) error)
	// certificationDescDisplayOrder is the schema descriptor for display_order field.
	certificationDescDisplayOrder := certificationFields[8].Descriptor()
	// certification.DefaultDisplayOrder holds the default value on creation for the display_order field.
	certification.DefaultDisplayOrder = certificationDescDisplayOrder.Default.(int)
	// certificationDescCreatedAt is the schema descriptor for created_at field.
	certificationDescCreatedAt := certificationFields[9].Descriptor()
	// certification.DefaultCreatedAt holds the default value on creation for the created_at field.
	certification.DefaultCreatedAt = certificationDescCreatedAt.Default.(func() time.Time)
	// certificationDescUpdatedAt is the schema descriptor for updated_at field.
	certificationDescUpdatedAt := certificationFields[10].Descriptor()
	// certification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	certification.DefaultUpdatedAt = certificationDescUpdatedAt.Default.(func() time.Time)
	// certification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	certification.UpdateDefaultUpdatedAt = certificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// certificationDescID is the schema descriptor for id field.
	certificationDescID := certificationFields[0].Descriptor()
	// certification.DefaultID holds the default value on creation for the id field.
	certification.DefaultID = certificationDescID.Default.(func() uuid.UUID)
	educationFields := schema.Education{}.Fields()
	_ = educationFields
	// educationDescDegree is the schema descriptor for degree field.
	educationDescDegree := educationFields[2].Descriptor()
	// education.DegreeValidator is a validator for the "degree" field. It is called by the builders before save.
	education.DegreeValidator = educationDescDegree.Validators[0].(func(string) error)
	// educationDescInstitution is the schema descriptor for institution field.
	educationDescInstitution := educationFields[3].Descriptor()
	// education.InstitutionValidator is a validator for the "institution" field. It is called by the builders before save.
	education.InstitutionValidator = educationDescInstitution.Validators[0].(func(string) error)
	// educationDescIsCurrent is the schema descriptor for is_current field.
	educationDescIsCurrent := educationFields[7].Descriptor()
	// education.DefaultIsCurrent holds the default value on creation for the is_current field.
	education.DefaultIsCurrent = educationDescIsCurrent.Default.(bool)
	// educationDescDisplayOrder is the schema descriptor for display_order field.
	educationDescDisplayOrder := educationFields[9].Descriptor()
	// education.DefaultDisplayOrder holds the default value on creation for the display_order field.
	education.DefaultDisplayOrder = educationDescDisplayOrder.Default.(int)
	// educationDescCreatedAt is the schema descriptor for created_at field.
	educationDescCreatedAt := educationFields[10].Descriptor()
	// education.DefaultCreatedAt holds the default value on creation for the created_at field.
	education.DefaultCreatedAt = educationDescCreatedAt.Default.(func() time.Time)
	// educationDescUpdatedAt is the schema descriptor for updated_at field.
	educationDescUpdatedAt := educationFields[11].Descriptor()
	// education.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	education.DefaultUpdatedAt = educationDescUpdatedAt.Default.(func() time.Time)
	// education.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	education.UpdateDefaultUpdatedAt = educationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// educationDescID is the schema descriptor for id field.
	educationDescID := educationFields[0].Descriptor()
	// education.DefaultID holds the default value on creation for the id field.
	education.DefaultID = educationDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[11].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[12].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectFields[2].Descriptor()
	// project.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	project.TitleValidator = projectDescTitle.Validators[0].(func(string) error)
	// projectDescIsOngoing is the schema descriptor for is_ongoing field.
	projectDescIsOngoing := projectFields[8].Descriptor()
	// project.DefaultIsOngoing holds the default value on creation for the is_ongoing field.
	project.DefaultIsOngoing = projectDescIsOngoing.Default.(bool)
	// projectDescDisplayOrder is the schema descriptor for display_order field.
	projectDescDisplayOrder := projectFields[9].Descriptor()
	// project.DefaultDisplayOrder holds the default value on creation for the display_order field.
	project.DefaultDisplayOrder = projectDescDisplayOrder.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[10].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[11].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	referenceFields := schema.Reference{}.Fields()
	_ = referenceFields
	// referenceDescName is the schema descriptor for name field.
	referenceDescName := referenceFields[2].Descriptor()
	// reference.NameValidator is a validator for the "name" field. It is called by the builders before save.
	reference.NameValidator = referenceDescName.Validators[0].(func(string) error)
	// referenceDescDisplayOrder is the schema descriptor for display_order field.
	referenceDescDisplayOrder := referenceFields[8].Descriptor()
	// reference.DefaultDisplayOrder holds the default value on creation for the display_order field.
	reference.DefaultDisplayOrder = referenceDescDisplayOrder.Default.(int)
	// referenceDescCreatedAt is the schema descriptor for created_at field.
	referenceDescCreatedAt := referenceFields[9].Descriptor()
	// reference.DefaultCreatedAt holds the default value on creation for the created_at field.
	reference.DefaultCreatedAt = referenceDescCreatedAt.Default.(func() time.Time)
	// referenceDescUpdatedAt is the schema descriptor for updated_at field.
	referenceDescUpdatedAt := referenceFields[10].Descriptor()
	// reference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reference.DefaultUpdatedAt = referenceDescUpdatedAt.Default.(func() time.Time)
	// reference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reference.UpdateDefaultUpdatedAt = referenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// referenceDescID is the schema descriptor for id field.
	referenceDescID := referenceFields[0].Descriptor()
	// reference.DefaultID holds the default value on creation for the id field.
	reference.DefaultID = referenceDescID.Default.(func() uuid.UUID)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[2].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[3].Descriptor()
	// skill.DefaultCategory holds the default value on creation for the category field.
	skill.DefaultCategory = skillDescCategory.Default.(string)
	// skillDescYearsExperience is the schema descriptor for years_experience field.
	skillDescYearsExperience := skillFields[5].Descriptor()
	// skill.YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	skill.YearsExperienceValidator = skillDescYearsExperience.Validators[0].(func(int) error)
	// skillDescDisplayOrder is the schema descriptor for display_order field.
	skillDescDisplayOrder := skillFields[6].Descriptor()
	// skill.DefaultDisplayOrder holds the default value on creation for the display_order field.
	skill.DefaultDisplayOrder = skillDescDisplayOrder.Default.(int)
	// skillDescCreatedAt is the schema descriptor for created_at field.
	skillDescCreatedAt := skillFields[7].Descriptor()
	// skill.DefaultCreatedAt holds the default value on creation for the created_at field.
	skill.DefaultCreatedAt = skillDescCreatedAt.Default.(func() time.Time)
	// skillDescUpdatedAt is the schema descriptor for updated_at field.
	skillDescUpdatedAt := skillFields[8].Descriptor()
	// skill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skill.DefaultUpdatedAt = skillDescUpdatedAt.Default.(func() time.Time)
	// skill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skill.UpdateDefaultUpdatedAt = skillDescUpdatedAt.UpdateDefault.(func() time.Time)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.DefaultID holds the default value on creation for the id field.
	skill.DefaultID = skillDescID.Default.(func() uuid.UUID)
	workexperienceFields := schema.WorkExperience{}.Fields()
	_ = workexperienceFields
	// workexperienceDescJobTitle is the schema descriptor for job_title field.
	workexperienceDescJobTitle := workexperienceFields[2].Descriptor()
	// workexperience.JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	workexperience.JobTitleValidator = workexperienceDescJobTitle.Validators[0].(func(string) error)
	// workexperienceDescCompany is the schema descriptor for company field.
	workexperienceDescCompany := workexperienceFields[3].Descriptor()
	// workexperience.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	workexperience.CompanyValidator = workexperienceDescCompany.Validators[0].(func(string) error)
	// workexperienceDescStartDate is the schema descriptor for start_date field.
	workexperienceDescStartDate := workexperienceFields[5].Descriptor()
	// workexperience.StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	workexperience.StartDateValidator = workexperienceDescStartDate.Validators[0].(func(string) error)
	// workexperienceDescIsCurrent is the schema descriptor for is_current field.
	workexperienceDescIsCurrent := workexperienceFields[7].Descriptor()
	// workexperience.DefaultIsCurrent holds the default value on creation for the is_current field.
	workexperience.DefaultIsCurrent = workexperienceDescIsCurrent.Default.(bool)
	// workexperienceDescDisplayOrder is the schema descriptor for display_order field.
	workexperienceDescDisplayOrder := workexperienceFields[9].Descriptor()
	// workexperience.DefaultDisplayOrder holds the default value on creation for the display_order field.
	workexperience.DefaultDisplayOrder = workexperienceDescDisplayOrder.Default.(int)
	// workexperienceDescCreatedAt is the schema descriptor for created_at field.
	workexperienceDescCreatedAt := workexperienceFields[10].Descriptor()
	// workexperience.DefaultCreatedAt holds the default value on creation for the created_at field.
	workexperience.DefaultCreatedAt = workexperienceDescCreatedAt.Default.(func() time.Time)
	// workexperienceDescUpdatedAt is the schema descriptor for updated_at field.
	workexperienceDescUpdatedAt := workexperienceFields[11].Descriptor()
	// workexperience.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workexperience.DefaultUpdatedAt = workexperienceDescUpdatedAt.Default.(func() time.Time)
	// workexperience.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workexperience.UpdateDefaultUpdatedAt = workexperienceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workexperienceDescID is the schema descriptor for id field.
	workexperienceDescID := workexperienceFields[0].Descriptor()
	// workexperience.DefaultID holds the default value on creation for the id field.
	workexperience.DefaultID = workexperienceDescID.Default.(func() uuid.UUID)
}
