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

type Certification struct{ ent.Schema }

func (Certification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "certifications"},
	}
}

func (Certification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("issuing_org").NotEmpty(),
		field.String("issue_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}),
		field.String("expiry_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}),
		field.String("credential_id").Optional().Nillable(),
		field.String("credential_url").Optional().Nillable(),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Certification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("certifications").
			Field("profile_id").
			Required().
			Unique(),
	}
}
