package constants

// Section identifies one of the seven profile entity categories an import produces.
type Section string

// Stable values (wire + session keys use these exact strings).
const (
	SectionWorkExperience Section = "WORK_EXPERIENCE"
	SectionEducation      Section = "EDUCATION"
	SectionSkill          Section = "SKILL"
	SectionProject        Section = "PROJECT"
	SectionCertification  Section = "CERTIFICATION"
	SectionAchievement    Section = "ACHIEVEMENT"
	SectionReference      Section = "REFERENCE"
)

var allSections = []Section{
	SectionWorkExperience,
	SectionEducation,
	SectionSkill,
	SectionProject,
	SectionCertification,
	SectionAchievement,
	SectionReference,
}

// AllSections returns the seven sections in display order.
func AllSections() []Section {
	out := make([]Section, len(allSections))
	copy(out, allSections)
	return out
}

var sectionLabels = map[Section]string{
	SectionWorkExperience: "Work experience",
	SectionEducation:      "Education",
	SectionSkill:          "Skill",
	SectionProject:        "Project",
	SectionCertification:  "Certification",
	SectionAchievement:    "Achievement",
	SectionReference:      "Reference",
}

// Label returns the human-readable label used in validation warnings.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the seven known sections.
func (s Section) Valid() bool {
	_, ok := sectionLabels[s]
	return ok
}
