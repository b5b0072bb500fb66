package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Profile struct{ ent.Schema }

func (Profile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profiles"},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("first_name").Optional().Nillable(),
		field.String("last_name").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("city").Optional().Nillable(),
		field.String("country").Optional().Nillable(),
		field.String("linkedin_url").Optional().Nillable(),
		field.String("github_url").Optional().Nillable(),
		field.String("portfolio_url").Optional().Nillable(),
		field.Text("summary").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("work_experiences", WorkExperience.Type),
		edge.To("educations", Education.Type),
		edge.To("skills", Skill.Type),
		edge.To("projects", Project.Type),
		edge.To("certifications", Certification.Type),
		edge.To("achievements", Achievement.Type),
		edge.To("references", Reference.Type),
	}
}
