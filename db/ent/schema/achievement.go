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

type Achievement struct{ ent.Schema }

func (Achievement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "achievements"},
	}
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.Text("description").Optional().Nillable(),
		field.String("date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Achievement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("achievements").
			Field("profile_id").
			Required().
			Unique(),
	}
}
