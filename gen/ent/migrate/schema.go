// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "achievements_profiles_achievements",
				Columns:    []*schema.Column{AchievementsColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// CertificationsColumns holds the columns for the "certifications" table.
	CertificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "issuing_org", Type: field.TypeString},
		{Name: "issue_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "expiry_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "credential_id", Type: field.TypeString, Nullable: true},
		{Name: "credential_url", Type: field.TypeString, Nullable: true},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CertificationsTable holds the schema information for the "certifications" table.
	CertificationsTable = &schema.Table{
		Name:       "certifications",
		Columns:    CertificationsColumns,
		PrimaryKey: []*schema.Column{CertificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "certifications_profiles_certifications",
				Columns:    []*schema.Column{CertificationsColumns[10]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// EducationsColumns holds the columns for the "educations" table.
	EducationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "degree", Type: field.TypeString},
		{Name: "institution", Type: field.TypeString},
		{Name: "field_of_study", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "end_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// EducationsTable holds the schema information for the "educations" table.
	EducationsTable = &schema.Table{
		Name:       "educations",
		Columns:    EducationsColumns,
		PrimaryKey: []*schema.Column{EducationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "educations_profiles_educations",
				Columns:    []*schema.Column{EducationsColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true},
		{Name: "github_url", Type: field.TypeString, Nullable: true},
		{Name: "portfolio_url", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "technologies", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "end_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "is_ongoing", Type: field.TypeBool, Default: false},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_profiles_projects",
				Columns:    []*schema.Column{ProjectsColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReferencesColumns holds the columns for the "references" table.
	ReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "job_title", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ReferencesTable holds the schema information for the "references" table.
	ReferencesTable = &schema.Table{
		Name:       "references",
		Columns:    ReferencesColumns,
		PrimaryKey: []*schema.Column{ReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "references_profiles_references",
				Columns:    []*schema.Column{ReferencesColumns[10]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "technical"},
		{Name: "proficiency", Type: field.TypeString, Nullable: true},
		{Name: "years_experience", Type: field.TypeInt, Nullable: true},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "skills_profiles_skills",
				Columns:    []*schema.Column{SkillsColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// WorkExperiencesColumns holds the columns for the "work_experiences" table.
	WorkExperiencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_title", Type: field.TypeString},
		{Name: "company", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "end_date", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(7)"}},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// WorkExperiencesTable holds the schema information for the "work_experiences" table.
	WorkExperiencesTable = &schema.Table{
		Name:       "work_experiences",
		Columns:    WorkExperiencesColumns,
		PrimaryKey: []*schema.Column{WorkExperiencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_experiences_profiles_work_experiences",
				Columns:    []*schema.Column{WorkExperiencesColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		CertificationsTable,
		EducationsTable,
		ProfilesTable,
		ProjectsTable,
		ReferencesTable,
		SkillsTable,
		WorkExperiencesTable,
	}
)

func init() {
	AchievementsTable.ForeignKeys[0].RefTable = ProfilesTable
	AchievementsTable.Annotation = &entsql.Annotation{
		Table: "achievements",
	}
	CertificationsTable.ForeignKeys[0].RefTable = ProfilesTable
	CertificationsTable.Annotation = &entsql.Annotation{
		Table: "certifications",
	}
	EducationsTable.ForeignKeys[0].RefTable = ProfilesTable
	EducationsTable.Annotation = &entsql.Annotation{
		Table: "educations",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ProjectsTable.ForeignKeys[0].RefTable = ProfilesTable
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	ReferencesTable.ForeignKeys[0].RefTable = ProfilesTable
	ReferencesTable.Annotation = &entsql.Annotation{
		Table: "references",
	}
	SkillsTable.ForeignKeys[0].RefTable = ProfilesTable
	SkillsTable.Annotation = &entsql.Annotation{
		Table: "skills",
	}
	WorkExperiencesTable.ForeignKeys[0].RefTable = ProfilesTable
	WorkExperiencesTable.Annotation = &entsql.Annotation{
		Table: "work_experiences",
	}
}
