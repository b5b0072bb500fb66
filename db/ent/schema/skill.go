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

type Skill struct{ ent.Schema }

func (Skill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "skills"},
	}
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("category").Default("technical"),
		field.String("proficiency").Optional().Nillable(),
		field.Int("years_experience").Optional().Nillable().Min(0),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Skill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("skills").
			Field("profile_id").
			Required().
			Unique(),
	}
}
