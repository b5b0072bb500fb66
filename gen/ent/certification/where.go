// Code generated by ent, DO NOT EDIT.

package certification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/careerdock/resume-import/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldProfileID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldName, v))
}

// IssuingOrg applies equality check predicate on the "issuing_org" field. It's identical to IssuingOrgEQ.
func IssuingOrg(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssuingOrg, v))
}

// IssueDate applies equality check predicate on the "issue_date" field. It's identical to IssueDateEQ.
func IssueDate(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssueDate, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldExpiryDate, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialURL applies equality check predicate on the "credential_url" field. It's identical to CredentialURLEQ.
func CredentialURL(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialURL, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldDisplayOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldProfileID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldName, v))
}

// IssuingOrgEQ applies the EQ predicate on the "issuing_org" field.
func IssuingOrgEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssuingOrg, v))
}

// IssuingOrgNEQ applies the NEQ predicate on the "issuing_org" field.
func IssuingOrgNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldIssuingOrg, v))
}

// IssuingOrgIn applies the In predicate on the "issuing_org" field.
func IssuingOrgIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldIssuingOrg, vs...))
}

// IssuingOrgNotIn applies the NotIn predicate on the "issuing_org" field.
func IssuingOrgNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldIssuingOrg, vs...))
}

// IssuingOrgGT applies the GT predicate on the "issuing_org" field.
func IssuingOrgGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldIssuingOrg, v))
}

// IssuingOrgGTE applies the GTE predicate on the "issuing_org" field.
func IssuingOrgGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldIssuingOrg, v))
}

// IssuingOrgLT applies the LT predicate on the "issuing_org" field.
func IssuingOrgLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldIssuingOrg, v))
}

// IssuingOrgLTE applies the LTE predicate on the "issuing_org" field.
func IssuingOrgLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldIssuingOrg, v))
}

// IssuingOrgContains applies the Contains predicate on the "issuing_org" field.
func IssuingOrgContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldIssuingOrg, v))
}

// IssuingOrgHasPrefix applies the HasPrefix predicate on the "issuing_org" field.
func IssuingOrgHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldIssuingOrg, v))
}

// IssuingOrgHasSuffix applies the HasSuffix predicate on the "issuing_org" field.
func IssuingOrgHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldIssuingOrg, v))
}

// IssuingOrgEqualFold applies the EqualFold predicate on the "issuing_org" field.
func IssuingOrgEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldIssuingOrg, v))
}

// IssuingOrgContainsFold applies the ContainsFold predicate on the "issuing_org" field.
func IssuingOrgContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldIssuingOrg, v))
}

// IssueDateEQ applies the EQ predicate on the "issue_date" field.
func IssueDateEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssueDate, v))
}

// IssueDateNEQ applies the NEQ predicate on the "issue_date" field.
func IssueDateNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldIssueDate, v))
}

// IssueDateIn applies the In predicate on the "issue_date" field.
func IssueDateIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldIssueDate, vs...))
}

// IssueDateNotIn applies the NotIn predicate on the "issue_date" field.
func IssueDateNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldIssueDate, vs...))
}

// IssueDateGT applies the GT predicate on the "issue_date" field.
func IssueDateGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldIssueDate, v))
}

// IssueDateGTE applies the GTE predicate on the "issue_date" field.
func IssueDateGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldIssueDate, v))
}

// IssueDateLT applies the LT predicate on the "issue_date" field.
func IssueDateLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldIssueDate, v))
}

// IssueDateLTE applies the LTE predicate on the "issue_date" field.
func IssueDateLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldIssueDate, v))
}

// IssueDateContains applies the Contains predicate on the "issue_date" field.
func IssueDateContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldIssueDate, v))
}

// IssueDateHasPrefix applies the HasPrefix predicate on the "issue_date" field.
func IssueDateHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldIssueDate, v))
}

// IssueDateHasSuffix applies the HasSuffix predicate on the "issue_date" field.
func IssueDateHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldIssueDate, v))
}

// IssueDateIsNil applies the IsNil predicate on the "issue_date" field.
func IssueDateIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldIssueDate))
}

// IssueDateNotNil applies the NotNil predicate on the "issue_date" field.
func IssueDateNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldIssueDate))
}

// IssueDateEqualFold applies the EqualFold predicate on the "issue_date" field.
func IssueDateEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldIssueDate, v))
}

// IssueDateContainsFold applies the ContainsFold predicate on the "issue_date" field.
func IssueDateContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldIssueDate, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateContains applies the Contains predicate on the "expiry_date" field.
func ExpiryDateContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldExpiryDate, v))
}

// ExpiryDateHasPrefix applies the HasPrefix predicate on the "expiry_date" field.
func ExpiryDateHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldExpiryDate, v))
}

// ExpiryDateHasSuffix applies the HasSuffix predicate on the "expiry_date" field.
func ExpiryDateHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldExpiryDate))
}

// ExpiryDateEqualFold applies the EqualFold predicate on the "expiry_date" field.
func ExpiryDateEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldExpiryDate, v))
}

// ExpiryDateContainsFold applies the ContainsFold predicate on the "expiry_date" field.
func ExpiryDateContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldExpiryDate, v))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDGT applies the GT predicate on the "credential_id" field.
func CredentialIDGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCredentialID, v))
}

// CredentialIDGTE applies the GTE predicate on the "credential_id" field.
func CredentialIDGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCredentialID, v))
}

// CredentialIDLT applies the LT predicate on the "credential_id" field.
func CredentialIDLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCredentialID, v))
}

// CredentialIDLTE applies the LTE predicate on the "credential_id" field.
func CredentialIDLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCredentialID, v))
}

// CredentialIDContains applies the Contains predicate on the "credential_id" field.
func CredentialIDContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldCredentialID, v))
}

// CredentialIDHasPrefix applies the HasPrefix predicate on the "credential_id" field.
func CredentialIDHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldCredentialID, v))
}

// CredentialIDHasSuffix applies the HasSuffix predicate on the "credential_id" field.
func CredentialIDHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldCredentialID, v))
}

// CredentialIDIsNil applies the IsNil predicate on the "credential_id" field.
func CredentialIDIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldCredentialID))
}

// CredentialIDNotNil applies the NotNil predicate on the "credential_id" field.
func CredentialIDNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldCredentialID))
}

// CredentialIDEqualFold applies the EqualFold predicate on the "credential_id" field.
func CredentialIDEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldCredentialID, v))
}

// CredentialIDContainsFold applies the ContainsFold predicate on the "credential_id" field.
func CredentialIDContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldCredentialID, v))
}

// CredentialURLEQ applies the EQ predicate on the "credential_url" field.
func CredentialURLEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialURL, v))
}

// CredentialURLNEQ applies the NEQ predicate on the "credential_url" field.
func CredentialURLNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCredentialURL, v))
}

// CredentialURLIn applies the In predicate on the "credential_url" field.
func CredentialURLIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCredentialURL, vs...))
}

// CredentialURLNotIn applies the NotIn predicate on the "credential_url" field.
func CredentialURLNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCredentialURL, vs...))
}

// CredentialURLGT applies the GT predicate on the "credential_url" field.
func CredentialURLGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCredentialURL, v))
}

// CredentialURLGTE applies the GTE predicate on the "credential_url" field.
func CredentialURLGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCredentialURL, v))
}

// CredentialURLLT applies the LT predicate on the "credential_url" field.
func CredentialURLLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCredentialURL, v))
}

// CredentialURLLTE applies the LTE predicate on the "credential_url" field.
func CredentialURLLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCredentialURL, v))
}

// CredentialURLContains applies the Contains predicate on the "credential_url" field.
func CredentialURLContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldCredentialURL, v))
}

// CredentialURLHasPrefix applies the HasPrefix predicate on the "credential_url" field.
func CredentialURLHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldCredentialURL, v))
}

// CredentialURLHasSuffix applies the HasSuffix predicate on the "credential_url" field.
func CredentialURLHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldCredentialURL, v))
}

// CredentialURLIsNil applies the IsNil predicate on the "credential_url" field.
func CredentialURLIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldCredentialURL))
}

// CredentialURLNotNil applies the NotNil predicate on the "credential_url" field.
func CredentialURLNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldCredentialURL))
}

// CredentialURLEqualFold applies the EqualFold predicate on the "credential_url" field.
func CredentialURLEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldCredentialURL, v))
}

// CredentialURLContainsFold applies the ContainsFold predicate on the "credential_url" field.
func CredentialURLContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldCredentialURL, v))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldDisplayOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.Certification {
	return predicate.Certification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.Certification {
	return predicate.Certification(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.NotPredicates(p))
}
