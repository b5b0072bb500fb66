package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Project struct{ ent.Schema }

func (Project) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "projects"},
	}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.Text("description").Optional().Nillable(),
		field.String("technologies").Optional().Nillable(),
		field.String("url").Optional().Nillable(),
		field.String("start_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}),
		field.String("end_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}),
		field.Bool("is_ongoing").Default(false),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("projects").
			Field("profile_id").
			Required().
			Unique(),
	}
}
