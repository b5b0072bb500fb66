// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: resumeimport/v1/resumeimport.proto

package resumeimportv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Section int32

const (
	Section_SECTION_UNSPECIFIED     Section = 0
	Section_SECTION_WORK_EXPERIENCE Section = 1
	Section_SECTION_EDUCATION       Section = 2
	Section_SECTION_SKILL           Section = 3
	Section_SECTION_PROJECT         Section = 4
	Section_SECTION_CERTIFICATION   Section = 5
	Section_SECTION_ACHIEVEMENT     Section = 6
	Section_SECTION_REFERENCE       Section = 7
)

// Enum value maps for Section.
var (
	Section_name = map[int32]string{
		0: "SECTION_UNSPECIFIED",
		1: "SECTION_WORK_EXPERIENCE",
		2: "SECTION_EDUCATION",
		3: "SECTION_SKILL",
		4: "SECTION_PROJECT",
		5: "SECTION_CERTIFICATION",
		6: "SECTION_ACHIEVEMENT",
		7: "SECTION_REFERENCE",
	}
	Section_value = map[string]int32{
		"SECTION_UNSPECIFIED":     0,
		"SECTION_WORK_EXPERIENCE": 1,
		"SECTION_EDUCATION":       2,
		"SECTION_SKILL":           3,
		"SECTION_PROJECT":         4,
		"SECTION_CERTIFICATION":   5,
		"SECTION_ACHIEVEMENT":     6,
		"SECTION_REFERENCE":       7,
	}
)

func (x Section) Enum() *Section {
	p := new(Section)
	*p = x
	return p
}

func (x Section) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Section) Descriptor() protoreflect.EnumDescriptor {
	return file_resumeimport_v1_resumeimport_proto_enumTypes[0].Descriptor()
}

func (Section) Type() protoreflect.EnumType {
	return &file_resumeimport_v1_resumeimport_proto_enumTypes[0]
}

func (x Section) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Section.Descriptor instead.
func (Section) EnumDescriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{0}
}

// ProfileDraft carries the extracted profile fields. Empty string means the
// field was not extracted.
type ProfileDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FirstName     string                 `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	City          string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	Country       string                 `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
	LinkedinUrl   string                 `protobuf:"bytes,7,opt,name=linkedin_url,json=linkedinUrl,proto3" json:"linkedin_url,omitempty"`
	GithubUrl     string                 `protobuf:"bytes,8,opt,name=github_url,json=githubUrl,proto3" json:"github_url,omitempty"`
	PortfolioUrl  string                 `protobuf:"bytes,9,opt,name=portfolio_url,json=portfolioUrl,proto3" json:"portfolio_url,omitempty"`
	Summary       string                 `protobuf:"bytes,10,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProfileDraft) Reset() {
	*x = ProfileDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProfileDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProfileDraft) ProtoMessage() {}

func (x *ProfileDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProfileDraft.ProtoReflect.Descriptor instead.
func (*ProfileDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{0}
}

func (x *ProfileDraft) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *ProfileDraft) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *ProfileDraft) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ProfileDraft) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ProfileDraft) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *ProfileDraft) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *ProfileDraft) GetLinkedinUrl() string {
	if x != nil {
		return x.LinkedinUrl
	}
	return ""
}

func (x *ProfileDraft) GetGithubUrl() string {
	if x != nil {
		return x.GithubUrl
	}
	return ""
}

func (x *ProfileDraft) GetPortfolioUrl() string {
	if x != nil {
		return x.PortfolioUrl
	}
	return ""
}

func (x *ProfileDraft) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type WorkExperienceDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobTitle      string                 `protobuf:"bytes,1,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	Company       string                 `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Location      string                 `protobuf:"bytes,3,opt,name=location,proto3" json:"location,omitempty"`
	StartDate     string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM
	EndDate       string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM, empty while current
	IsCurrent     bool                   `protobuf:"varint,6,opt,name=is_current,json=isCurrent,proto3" json:"is_current,omitempty"`
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,8,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WorkExperienceDraft) Reset() {
	*x = WorkExperienceDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkExperienceDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkExperienceDraft) ProtoMessage() {}

func (x *WorkExperienceDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkExperienceDraft.ProtoReflect.Descriptor instead.
func (*WorkExperienceDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{1}
}

func (x *WorkExperienceDraft) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *WorkExperienceDraft) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *WorkExperienceDraft) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *WorkExperienceDraft) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *WorkExperienceDraft) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *WorkExperienceDraft) GetIsCurrent() bool {
	if x != nil {
		return x.IsCurrent
	}
	return false
}

func (x *WorkExperienceDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *WorkExperienceDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type EducationDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Degree        string                 `protobuf:"bytes,1,opt,name=degree,proto3" json:"degree,omitempty"`
	Institution   string                 `protobuf:"bytes,2,opt,name=institution,proto3" json:"institution,omitempty"`
	FieldOfStudy  string                 `protobuf:"bytes,3,opt,name=field_of_study,json=fieldOfStudy,proto3" json:"field_of_study,omitempty"`
	StartDate     string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	IsCurrent     bool                   `protobuf:"varint,6,opt,name=is_current,json=isCurrent,proto3" json:"is_current,omitempty"`
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,8,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EducationDraft) Reset() {
	*x = EducationDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EducationDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EducationDraft) ProtoMessage() {}

func (x *EducationDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EducationDraft.ProtoReflect.Descriptor instead.
func (*EducationDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{2}
}

func (x *EducationDraft) GetDegree() string {
	if x != nil {
		return x.Degree
	}
	return ""
}

func (x *EducationDraft) GetInstitution() string {
	if x != nil {
		return x.Institution
	}
	return ""
}

func (x *EducationDraft) GetFieldOfStudy() string {
	if x != nil {
		return x.FieldOfStudy
	}
	return ""
}

func (x *EducationDraft) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *EducationDraft) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *EducationDraft) GetIsCurrent() bool {
	if x != nil {
		return x.IsCurrent
	}
	return false
}

func (x *EducationDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *EducationDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type SkillDraft struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category        string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Proficiency     string                 `protobuf:"bytes,3,opt,name=proficiency,proto3" json:"proficiency,omitempty"`
	YearsExperience *int32                 `protobuf:"varint,4,opt,name=years_experience,json=yearsExperience,proto3,oneof" json:"years_experience,omitempty"`
	DisplayOrder    int32                  `protobuf:"varint,5,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SkillDraft) Reset() {
	*x = SkillDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkillDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkillDraft) ProtoMessage() {}

func (x *SkillDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkillDraft.ProtoReflect.Descriptor instead.
func (*SkillDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{3}
}

func (x *SkillDraft) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SkillDraft) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *SkillDraft) GetProficiency() string {
	if x != nil {
		return x.Proficiency
	}
	return ""
}

func (x *SkillDraft) GetYearsExperience() int32 {
	if x != nil && x.YearsExperience != nil {
		return *x.YearsExperience
	}
	return 0
}

func (x *SkillDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type ProjectDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Technologies  string                 `protobuf:"bytes,3,opt,name=technologies,proto3" json:"technologies,omitempty"`
	Url           string                 `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	StartDate     string                 `protobuf:"bytes,5,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string                 `protobuf:"bytes,6,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	IsOngoing     bool                   `protobuf:"varint,7,opt,name=is_ongoing,json=isOngoing,proto3" json:"is_ongoing,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,8,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProjectDraft) Reset() {
	*x = ProjectDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProjectDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProjectDraft) ProtoMessage() {}

func (x *ProjectDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProjectDraft.ProtoReflect.Descriptor instead.
func (*ProjectDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{4}
}

func (x *ProjectDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ProjectDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ProjectDraft) GetTechnologies() string {
	if x != nil {
		return x.Technologies
	}
	return ""
}

func (x *ProjectDraft) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ProjectDraft) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *ProjectDraft) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *ProjectDraft) GetIsOngoing() bool {
	if x != nil {
		return x.IsOngoing
	}
	return false
}

func (x *ProjectDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type CertificationDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	IssuingOrg    string                 `protobuf:"bytes,2,opt,name=issuing_org,json=issuingOrg,proto3" json:"issuing_org,omitempty"`
	IssueDate     string                 `protobuf:"bytes,3,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	ExpiryDate    string                 `protobuf:"bytes,4,opt,name=expiry_date,json=expiryDate,proto3" json:"expiry_date,omitempty"`
	CredentialId  string                 `protobuf:"bytes,5,opt,name=credential_id,json=credentialId,proto3" json:"credential_id,omitempty"`
	CredentialUrl string                 `protobuf:"bytes,6,opt,name=credential_url,json=credentialUrl,proto3" json:"credential_url,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,7,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CertificationDraft) Reset() {
	*x = CertificationDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CertificationDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CertificationDraft) ProtoMessage() {}

func (x *CertificationDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CertificationDraft.ProtoReflect.Descriptor instead.
func (*CertificationDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{5}
}

func (x *CertificationDraft) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CertificationDraft) GetIssuingOrg() string {
	if x != nil {
		return x.IssuingOrg
	}
	return ""
}

func (x *CertificationDraft) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *CertificationDraft) GetExpiryDate() string {
	if x != nil {
		return x.ExpiryDate
	}
	return ""
}

func (x *CertificationDraft) GetCredentialId() string {
	if x != nil {
		return x.CredentialId
	}
	return ""
}

func (x *CertificationDraft) GetCredentialUrl() string {
	if x != nil {
		return x.CredentialUrl
	}
	return ""
}

func (x *CertificationDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type AchievementDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Date          string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,4,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AchievementDraft) Reset() {
	*x = AchievementDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AchievementDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AchievementDraft) ProtoMessage() {}

func (x *AchievementDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AchievementDraft.ProtoReflect.Descriptor instead.
func (*AchievementDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{6}
}

func (x *AchievementDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *AchievementDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AchievementDraft) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *AchievementDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type ReferenceDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	JobTitle      string                 `protobuf:"bytes,2,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	Relationship  string                 `protobuf:"bytes,6,opt,name=relationship,proto3" json:"relationship,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,7,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReferenceDraft) Reset() {
	*x = ReferenceDraft{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReferenceDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReferenceDraft) ProtoMessage() {}

func (x *ReferenceDraft) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReferenceDraft.ProtoReflect.Descriptor instead.
func (*ReferenceDraft) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{7}
}

func (x *ReferenceDraft) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ReferenceDraft) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *ReferenceDraft) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *ReferenceDraft) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ReferenceDraft) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ReferenceDraft) GetRelationship() string {
	if x != nil {
		return x.Relationship
	}
	return ""
}

func (x *ReferenceDraft) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

type DraftItem struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Section  Section                `protobuf:"varint,2,opt,name=section,proto3,enum=resumeimport.v1.Section" json:"section,omitempty"`
	Warnings []string               `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	// Types that are valid to be assigned to Request:
	//
	//	*DraftItem_WorkExperience
	//	*DraftItem_Education
	//	*DraftItem_Skill
	//	*DraftItem_Project
	//	*DraftItem_Certification
	//	*DraftItem_Achievement
	//	*DraftItem_Reference
	Request       isDraftItem_Request `protobuf_oneof:"request"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DraftItem) Reset() {
	*x = DraftItem{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftItem) ProtoMessage() {}

func (x *DraftItem) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftItem.ProtoReflect.Descriptor instead.
func (*DraftItem) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{8}
}

func (x *DraftItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DraftItem) GetSection() Section {
	if x != nil {
		return x.Section
	}
	return Section_SECTION_UNSPECIFIED
}

func (x *DraftItem) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *DraftItem) GetRequest() isDraftItem_Request {
	if x != nil {
		return x.Request
	}
	return nil
}

func (x *DraftItem) GetWorkExperience() *WorkExperienceDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_WorkExperience); ok {
			return x.WorkExperience
		}
	}
	return nil
}

func (x *DraftItem) GetEducation() *EducationDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Education); ok {
			return x.Education
		}
	}
	return nil
}

func (x *DraftItem) GetSkill() *SkillDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Skill); ok {
			return x.Skill
		}
	}
	return nil
}

func (x *DraftItem) GetProject() *ProjectDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Project); ok {
			return x.Project
		}
	}
	return nil
}

func (x *DraftItem) GetCertification() *CertificationDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Certification); ok {
			return x.Certification
		}
	}
	return nil
}

func (x *DraftItem) GetAchievement() *AchievementDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Achievement); ok {
			return x.Achievement
		}
	}
	return nil
}

func (x *DraftItem) GetReference() *ReferenceDraft {
	if x != nil {
		if x, ok := x.Request.(*DraftItem_Reference); ok {
			return x.Reference
		}
	}
	return nil
}

type isDraftItem_Request interface {
	isDraftItem_Request()
}

type DraftItem_WorkExperience struct {
	WorkExperience *WorkExperienceDraft `protobuf:"bytes,4,opt,name=work_experience,json=workExperience,proto3,oneof"`
}

type DraftItem_Education struct {
	Education *EducationDraft `protobuf:"bytes,5,opt,name=education,proto3,oneof"`
}

type DraftItem_Skill struct {
	Skill *SkillDraft `protobuf:"bytes,6,opt,name=skill,proto3,oneof"`
}

type DraftItem_Project struct {
	Project *ProjectDraft `protobuf:"bytes,7,opt,name=project,proto3,oneof"`
}

type DraftItem_Certification struct {
	Certification *CertificationDraft `protobuf:"bytes,8,opt,name=certification,proto3,oneof"`
}

type DraftItem_Achievement struct {
	Achievement *AchievementDraft `protobuf:"bytes,9,opt,name=achievement,proto3,oneof"`
}

type DraftItem_Reference struct {
	Reference *ReferenceDraft `protobuf:"bytes,10,opt,name=reference,proto3,oneof"`
}

func (*DraftItem_WorkExperience) isDraftItem_Request() {}

func (*DraftItem_Education) isDraftItem_Request() {}

func (*DraftItem_Skill) isDraftItem_Request() {}

func (*DraftItem_Project) isDraftItem_Request() {}

func (*DraftItem_Certification) isDraftItem_Request() {}

func (*DraftItem_Achievement) isDraftItem_Request() {}

func (*DraftItem_Reference) isDraftItem_Request() {}

type Session struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Profile       *ProfileDraft          `protobuf:"bytes,3,opt,name=profile,proto3" json:"profile,omitempty"`
	Items         []*DraftItem           `protobuf:"bytes,4,rep,name=items,proto3" json:"items,omitempty"`
	Warnings      []string               `protobuf:"bytes,5,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Markdown      string                 `protobuf:"bytes,6,opt,name=markdown,proto3" json:"markdown,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Session) Reset() {
	*x = Session{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Session) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Session) ProtoMessage() {}

func (x *Session) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Session.ProtoReflect.Descriptor instead.
func (*Session) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{9}
}

func (x *Session) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Session) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Session) GetProfile() *ProfileDraft {
	if x != nil {
		return x.Profile
	}
	return nil
}

func (x *Session) GetItems() []*DraftItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Session) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *Session) GetMarkdown() string {
	if x != nil {
		return x.Markdown
	}
	return ""
}

type ImportResumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"` // empty to create a new profile
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MediaType     string                 `protobuf:"bytes,4,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportResumeRequest) Reset() {
	*x = ImportResumeRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportResumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportResumeRequest) ProtoMessage() {}

func (x *ImportResumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportResumeRequest.ProtoReflect.Descriptor instead.
func (*ImportResumeRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{10}
}

func (x *ImportResumeRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ImportResumeRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ImportResumeRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ImportResumeRequest) GetMediaType() string {
	if x != nil {
		return x.MediaType
	}
	return ""
}

type ImportResumeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportResumeResponse) Reset() {
	*x = ImportResumeResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportResumeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportResumeResponse) ProtoMessage() {}

func (x *ImportResumeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportResumeResponse.ProtoReflect.Descriptor instead.
func (*ImportResumeResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{11}
}

func (x *ImportResumeResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type GetSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionRequest) Reset() {
	*x = GetSessionRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionRequest) ProtoMessage() {}

func (x *GetSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionRequest.ProtoReflect.Descriptor instead.
func (*GetSessionRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{12}
}

func (x *GetSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionResponse) Reset() {
	*x = GetSessionResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionResponse) ProtoMessage() {}

func (x *GetSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionResponse.ProtoReflect.Descriptor instead.
func (*GetSessionResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{13}
}

func (x *GetSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type UpdateDraftRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	SessionId string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ItemId    string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	// Types that are valid to be assigned to Request:
	//
	//	*UpdateDraftRequest_WorkExperience
	//	*UpdateDraftRequest_Education
	//	*UpdateDraftRequest_Skill
	//	*UpdateDraftRequest_Project
	//	*UpdateDraftRequest_Certification
	//	*UpdateDraftRequest_Achievement
	//	*UpdateDraftRequest_Reference
	Request       isUpdateDraftRequest_Request `protobuf_oneof:"request"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDraftRequest) Reset() {
	*x = UpdateDraftRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDraftRequest) ProtoMessage() {}

func (x *UpdateDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDraftRequest.ProtoReflect.Descriptor instead.
func (*UpdateDraftRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{14}
}

func (x *UpdateDraftRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *UpdateDraftRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *UpdateDraftRequest) GetRequest() isUpdateDraftRequest_Request {
	if x != nil {
		return x.Request
	}
	return nil
}

func (x *UpdateDraftRequest) GetWorkExperience() *WorkExperienceDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_WorkExperience); ok {
			return x.WorkExperience
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetEducation() *EducationDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Education); ok {
			return x.Education
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetSkill() *SkillDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Skill); ok {
			return x.Skill
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetProject() *ProjectDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Project); ok {
			return x.Project
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetCertification() *CertificationDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Certification); ok {
			return x.Certification
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetAchievement() *AchievementDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Achievement); ok {
			return x.Achievement
		}
	}
	return nil
}

func (x *UpdateDraftRequest) GetReference() *ReferenceDraft {
	if x != nil {
		if x, ok := x.Request.(*UpdateDraftRequest_Reference); ok {
			return x.Reference
		}
	}
	return nil
}

type isUpdateDraftRequest_Request interface {
	isUpdateDraftRequest_Request()
}

type UpdateDraftRequest_WorkExperience struct {
	WorkExperience *WorkExperienceDraft `protobuf:"bytes,3,opt,name=work_experience,json=workExperience,proto3,oneof"`
}

type UpdateDraftRequest_Education struct {
	Education *EducationDraft `protobuf:"bytes,4,opt,name=education,proto3,oneof"`
}

type UpdateDraftRequest_Skill struct {
	Skill *SkillDraft `protobuf:"bytes,5,opt,name=skill,proto3,oneof"`
}

type UpdateDraftRequest_Project struct {
	Project *ProjectDraft `protobuf:"bytes,6,opt,name=project,proto3,oneof"`
}

type UpdateDraftRequest_Certification struct {
	Certification *CertificationDraft `protobuf:"bytes,7,opt,name=certification,proto3,oneof"`
}

type UpdateDraftRequest_Achievement struct {
	Achievement *AchievementDraft `protobuf:"bytes,8,opt,name=achievement,proto3,oneof"`
}

type UpdateDraftRequest_Reference struct {
	Reference *ReferenceDraft `protobuf:"bytes,9,opt,name=reference,proto3,oneof"`
}

func (*UpdateDraftRequest_WorkExperience) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Education) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Skill) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Project) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Certification) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Achievement) isUpdateDraftRequest_Request() {}

func (*UpdateDraftRequest_Reference) isUpdateDraftRequest_Request() {}

type UpdateDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDraftResponse) Reset() {
	*x = UpdateDraftResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDraftResponse) ProtoMessage() {}

func (x *UpdateDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDraftResponse.ProtoReflect.Descriptor instead.
func (*UpdateDraftResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{15}
}

type DiscardDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardDraftRequest) Reset() {
	*x = DiscardDraftRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardDraftRequest) ProtoMessage() {}

func (x *DiscardDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardDraftRequest.ProtoReflect.Descriptor instead.
func (*DiscardDraftRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{16}
}

func (x *DiscardDraftRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *DiscardDraftRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type DiscardDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscardDraftResponse) Reset() {
	*x = DiscardDraftResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscardDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscardDraftResponse) ProtoMessage() {}

func (x *DiscardDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscardDraftResponse.ProtoReflect.Descriptor instead.
func (*DiscardDraftResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{17}
}

type CommitDraftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitDraftRequest) Reset() {
	*x = CommitDraftRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitDraftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitDraftRequest) ProtoMessage() {}

func (x *CommitDraftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitDraftRequest.ProtoReflect.Descriptor instead.
func (*CommitDraftRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{18}
}

func (x *CommitDraftRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CommitDraftRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type CommitDraftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitDraftResponse) Reset() {
	*x = CommitDraftResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitDraftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitDraftResponse) ProtoMessage() {}

func (x *CommitDraftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitDraftResponse.ProtoReflect.Descriptor instead.
func (*CommitDraftResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{19}
}

type CommitAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitAllRequest) Reset() {
	*x = CommitAllRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitAllRequest) ProtoMessage() {}

func (x *CommitAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitAllRequest.ProtoReflect.Descriptor instead.
func (*CommitAllRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{20}
}

func (x *CommitAllRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type SectionCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Section       Section                `protobuf:"varint,1,opt,name=section,proto3,enum=resumeimport.v1.Section" json:"section,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SectionCount) Reset() {
	*x = SectionCount{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SectionCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SectionCount) ProtoMessage() {}

func (x *SectionCount) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SectionCount.ProtoReflect.Descriptor instead.
func (*SectionCount) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{21}
}

func (x *SectionCount) GetSection() Section {
	if x != nil {
		return x.Section
	}
	return Section_SECTION_UNSPECIFIED
}

func (x *SectionCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CommitAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Committed     []*SectionCount        `protobuf:"bytes,1,rep,name=committed,proto3" json:"committed,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitAllResponse) Reset() {
	*x = CommitAllResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitAllResponse) ProtoMessage() {}

func (x *CommitAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitAllResponse.ProtoReflect.Descriptor instead.
func (*CommitAllResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{22}
}

func (x *CommitAllResponse) GetCommitted() []*SectionCount {
	if x != nil {
		return x.Committed
	}
	return nil
}

func (x *CommitAllResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type ClearSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearSessionRequest) Reset() {
	*x = ClearSessionRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearSessionRequest) ProtoMessage() {}

func (x *ClearSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearSessionRequest.ProtoReflect.Descriptor instead.
func (*ClearSessionRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{23}
}

func (x *ClearSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ClearSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearSessionResponse) Reset() {
	*x = ClearSessionResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearSessionResponse) ProtoMessage() {}

func (x *ClearSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearSessionResponse.ProtoReflect.Descriptor instead.
func (*ClearSessionResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{24}
}

type ListSectionCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSectionCountsRequest) Reset() {
	*x = ListSectionCountsRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSectionCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectionCountsRequest) ProtoMessage() {}

func (x *ListSectionCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectionCountsRequest.ProtoReflect.Descriptor instead.
func (*ListSectionCountsRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{25}
}

func (x *ListSectionCountsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListSectionCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Staged        []*SectionCount        `protobuf:"bytes,1,rep,name=staged,proto3" json:"staged,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSectionCountsResponse) Reset() {
	*x = ListSectionCountsResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSectionCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectionCountsResponse) ProtoMessage() {}

func (x *ListSectionCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectionCountsResponse.ProtoReflect.Descriptor instead.
func (*ListSectionCountsResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{26}
}

func (x *ListSectionCountsResponse) GetStaged() []*SectionCount {
	if x != nil {
		return x.Staged
	}
	return nil
}

type ExportProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProfileRequest) Reset() {
	*x = ExportProfileRequest{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProfileRequest) ProtoMessage() {}

func (x *ExportProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProfileRequest.ProtoReflect.Descriptor instead.
func (*ExportProfileRequest) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{27}
}

func (x *ExportProfileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ExportProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProfileResponse) Reset() {
	*x = ExportProfileResponse{}
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProfileResponse) ProtoMessage() {}

func (x *ExportProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumeimport_v1_resumeimport_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProfileResponse.ProtoReflect.Descriptor instead.
func (*ExportProfileResponse) Descriptor() ([]byte, []int) {
	return file_resumeimport_v1_resumeimport_proto_rawDescGZIP(), []int{28}
}

func (x *ExportProfileResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportProfileResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_resumeimport_v1_resumeimport_proto protoreflect.FileDescriptor

const file_resumeimport_v1_resumeimport_proto_rawDesc = "" +
	"\n" +
	"\"resumeimport/v1/resumeimport.proto\x12\x0fresumeimport.v1\"\xa5\x02\n" +
	"\fProfileDraft\x12\x1d\n" +
	"\n" +
	"first_name\x18\x01 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x02 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x18\n" +
	"\acountry\x18\x06 \x01(\tR\acountry\x12!\n" +
	"\flinkedin_url\x18\a \x01(\tR\vlinkedinUrl\x12\x1d\n" +
	"\n" +
	"github_url\x18\b \x01(\tR\tgithubUrl\x12#\n" +
	"\rportfolio_url\x18\t \x01(\tR\fportfolioUrl\x12\x18\n" +
	"\asummary\x18\n" +
	" \x01(\tR\asummary\"\x88\x02\n" +
	"\x13WorkExperienceDraft\x12\x1b\n" +
	"\tjob_title\x18\x01 \x01(\tR\bjobTitle\x12\x18\n" +
	"\acompany\x18\x02 \x01(\tR\acompany\x12\x1a\n" +
	"\blocation\x18\x03 \x01(\tR\blocation\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"is_current\x18\x06 \x01(\bR\tisCurrent\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12#\n" +
	"\rdisplay_order\x18\b \x01(\x05R\fdisplayOrder\"\x90\x02\n" +
	"\x0eEducationDraft\x12\x16\n" +
	"\x06degree\x18\x01 \x01(\tR\x06degree\x12 \n" +
	"\vinstitution\x18\x02 \x01(\tR\vinstitution\x12$\n" +
	"\x0efield_of_study\x18\x03 \x01(\tR\ffieldOfStudy\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"is_current\x18\x06 \x01(\bR\tisCurrent\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12#\n" +
	"\rdisplay_order\x18\b \x01(\x05R\fdisplayOrder\"\xc8\x01\n" +
	"\n" +
	"SkillDraft\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12 \n" +
	"\vproficiency\x18\x03 \x01(\tR\vproficiency\x12.\n" +
	"\x10years_experience\x18\x04 \x01(\x05H\x00R\x0fyearsExperience\x88\x01\x01\x12#\n" +
	"\rdisplay_order\x18\x05 \x01(\x05R\fdisplayOrderB\x13\n" +
	"\x11_years_experience\"\xfa\x01\n" +
	"\fProjectDraft\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\"\n" +
	"\ftechnologies\x18\x03 \x01(\tR\ftechnologies\x12\x10\n" +
	"\x03url\x18\x04 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"start_date\x18\x05 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x06 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"is_ongoing\x18\a \x01(\bR\tisOngoing\x12#\n" +
	"\rdisplay_order\x18\b \x01(\x05R\fdisplayOrder\"\xfa\x01\n" +
	"\x12CertificationDraft\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vissuing_org\x18\x02 \x01(\tR\n" +
	"issuingOrg\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x03 \x01(\tR\tissueDate\x12\x1f\n" +
	"\vexpiry_date\x18\x04 \x01(\tR\n" +
	"expiryDate\x12#\n" +
	"\rcredential_id\x18\x05 \x01(\tR\fcredentialId\x12%\n" +
	"\x0ecredential_url\x18\x06 \x01(\tR\rcredentialUrl\x12#\n" +
	"\rdisplay_order\x18\a \x01(\x05R\fdisplayOrder\"\x83\x01\n" +
	"\x10AchievementDraft\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12#\n" +
	"\rdisplay_order\x18\x04 \x01(\x05R\fdisplayOrder\"\xd0\x01\n" +
	"\x0eReferenceDraft\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1b\n" +
	"\tjob_title\x18\x02 \x01(\tR\bjobTitle\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\"\n" +
	"\frelationship\x18\x06 \x01(\tR\frelationship\x12#\n" +
	"\rdisplay_order\x18\a \x01(\x05R\fdisplayOrder\"\xcd\x04\n" +
	"\tDraftItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x122\n" +
	"\asection\x18\x02 \x01(\x0e2\x18.resumeimport.v1.SectionR\asection\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\x12O\n" +
	"\x0fwork_experience\x18\x04 \x01(\v2$.resumeimport.v1.WorkExperienceDraftH\x00R\x0eworkExperience\x12?\n" +
	"\teducation\x18\x05 \x01(\v2\x1f.resumeimport.v1.EducationDraftH\x00R\teducation\x123\n" +
	"\x05skill\x18\x06 \x01(\v2\x1b.resumeimport.v1.SkillDraftH\x00R\x05skill\x129\n" +
	"\aproject\x18\a \x01(\v2\x1d.resumeimport.v1.ProjectDraftH\x00R\aproject\x12K\n" +
	"\rcertification\x18\b \x01(\v2#.resumeimport.v1.CertificationDraftH\x00R\rcertification\x12E\n" +
	"\vachievement\x18\t \x01(\v2!.resumeimport.v1.AchievementDraftH\x00R\vachievement\x12?\n" +
	"\treference\x18\n" +
	" \x01(\v2\x1f.resumeimport.v1.ReferenceDraftH\x00R\treferenceB\t\n" +
	"\arequest\"\xea\x01\n" +
	"\aSession\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x127\n" +
	"\aprofile\x18\x03 \x01(\v2\x1d.resumeimport.v1.ProfileDraftR\aprofile\x120\n" +
	"\x05items\x18\x04 \x03(\v2\x1a.resumeimport.v1.DraftItemR\x05items\x12\x1a\n" +
	"\bwarnings\x18\x05 \x03(\tR\bwarnings\x12\x1a\n" +
	"\bmarkdown\x18\x06 \x01(\tR\bmarkdown\"\x8a\x01\n" +
	"\x13ImportResumeRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1d\n" +
	"\n" +
	"media_type\x18\x04 \x01(\tR\tmediaType\"J\n" +
	"\x14ImportResumeResponse\x122\n" +
	"\asession\x18\x01 \x01(\v2\x18.resumeimport.v1.SessionR\asession\"2\n" +
	"\x11GetSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"H\n" +
	"\x12GetSessionResponse\x122\n" +
	"\asession\x18\x01 \x01(\v2\x18.resumeimport.v1.SessionR\asession\"\xae\x04\n" +
	"\x12UpdateDraftRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\x12O\n" +
	"\x0fwork_experience\x18\x03 \x01(\v2$.resumeimport.v1.WorkExperienceDraftH\x00R\x0eworkExperience\x12?\n" +
	"\teducation\x18\x04 \x01(\v2\x1f.resumeimport.v1.EducationDraftH\x00R\teducation\x123\n" +
	"\x05skill\x18\x05 \x01(\v2\x1b.resumeimport.v1.SkillDraftH\x00R\x05skill\x129\n" +
	"\aproject\x18\x06 \x01(\v2\x1d.resumeimport.v1.ProjectDraftH\x00R\aproject\x12K\n" +
	"\rcertification\x18\a \x01(\v2#.resumeimport.v1.CertificationDraftH\x00R\rcertification\x12E\n" +
	"\vachievement\x18\b \x01(\v2!.resumeimport.v1.AchievementDraftH\x00R\vachievement\x12?\n" +
	"\treference\x18\t \x01(\v2\x1f.resumeimport.v1.ReferenceDraftH\x00R\treferenceB\t\n" +
	"\arequest\"\x15\n" +
	"\x13UpdateDraftResponse\"M\n" +
	"\x13DiscardDraftRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\"\x16\n" +
	"\x14DiscardDraftResponse\"L\n" +
	"\x12CommitDraftRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\"\x15\n" +
	"\x13CommitDraftResponse\"1\n" +
	"\x10CommitAllRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"X\n" +
	"\fSectionCount\x122\n" +
	"\asection\x18\x01 \x01(\x0e2\x18.resumeimport.v1.SectionR\asection\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"l\n" +
	"\x11CommitAllResponse\x12;\n" +
	"\tcommitted\x18\x01 \x03(\v2\x1d.resumeimport.v1.SectionCountR\tcommitted\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\"4\n" +
	"\x13ClearSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x16\n" +
	"\x14ClearSessionResponse\"9\n" +
	"\x18ListSectionCountsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"R\n" +
	"\x19ListSectionCountsResponse\x125\n" +
	"\x06staged\x18\x01 \x03(\v2\x1d.resumeimport.v1.SectionCountR\x06staged\"5\n" +
	"\x14ExportProfileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"H\n" +
	"\x15ExportProfileResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName*\xc9\x01\n" +
	"\aSection\x12\x17\n" +
	"\x13SECTION_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17SECTION_WORK_EXPERIENCE\x10\x01\x12\x15\n" +
	"\x11SECTION_EDUCATION\x10\x02\x12\x11\n" +
	"\rSECTION_SKILL\x10\x03\x12\x13\n" +
	"\x0fSECTION_PROJECT\x10\x04\x12\x19\n" +
	"\x15SECTION_CERTIFICATION\x10\x05\x12\x17\n" +
	"\x13SECTION_ACHIEVEMENT\x10\x06\x12\x15\n" +
	"\x11SECTION_REFERENCE\x10\a2\xf1\x05\n" +
	"\rImportService\x12[\n" +
	"\fImportResume\x12$.resumeimport.v1.ImportResumeRequest\x1a%.resumeimport.v1.ImportResumeResponse\x12U\n" +
	"\n" +
	"GetSession\x12\".resumeimport.v1.GetSessionRequest\x1a#.resumeimport.v1.GetSessionResponse\x12X\n" +
	"\vUpdateDraft\x12#.resumeimport.v1.UpdateDraftRequest\x1a$.resumeimport.v1.UpdateDraftResponse\x12[\n" +
	"\fDiscardDraft\x12$.resumeimport.v1.DiscardDraftRequest\x1a%.resumeimport.v1.DiscardDraftResponse\x12X\n" +
	"\vCommitDraft\x12#.resumeimport.v1.CommitDraftRequest\x1a$.resumeimport.v1.CommitDraftResponse\x12R\n" +
	"\tCommitAll\x12!.resumeimport.v1.CommitAllRequest\x1a\".resumeimport.v1.CommitAllResponse\x12[\n" +
	"\fClearSession\x12$.resumeimport.v1.ClearSessionRequest\x1a%.resumeimport.v1.ClearSessionResponse\x12j\n" +
	"\x11ListSectionCounts\x12).resumeimport.v1.ListSectionCountsRequest\x1a*.resumeimport.v1.ListSectionCountsResponse2o\n" +
	"\rExportService\x12^\n" +
	"\rExportProfile\x12%.resumeimport.v1.ExportProfileRequest\x1a&.resumeimport.v1.ExportProfileResponseBNZLgithub.com/careerdock/resume-import/gen/proto/resumeimport/v1;resumeimportv1b\x06proto3"

var (
	file_resumeimport_v1_resumeimport_proto_rawDescOnce sync.Once
	file_resumeimport_v1_resumeimport_proto_rawDescData []byte
)

func file_resumeimport_v1_resumeimport_proto_rawDescGZIP() []byte {
	file_resumeimport_v1_resumeimport_proto_rawDescOnce.Do(func() {
		file_resumeimport_v1_resumeimport_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_resumeimport_v1_resumeimport_proto_rawDesc), len(file_resumeimport_v1_resumeimport_proto_rawDesc)))
	})
	return file_resumeimport_v1_resumeimport_proto_rawDescData
}

var file_resumeimport_v1_resumeimport_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_resumeimport_v1_resumeimport_proto_msgTypes = make([]protoimpl.MessageInfo, 29)
var file_resumeimport_v1_resumeimport_proto_goTypes = []any{
	(Section)(0),                      // 0: resumeimport.v1.Section
	(*ProfileDraft)(nil),              // 1: resumeimport.v1.ProfileDraft
	(*WorkExperienceDraft)(nil),       // 2: resumeimport.v1.WorkExperienceDraft
	(*EducationDraft)(nil),            // 3: resumeimport.v1.EducationDraft
	(*SkillDraft)(nil),                // 4: resumeimport.v1.SkillDraft
	(*ProjectDraft)(nil),              // 5: resumeimport.v1.ProjectDraft
	(*CertificationDraft)(nil),        // 6: resumeimport.v1.CertificationDraft
	(*AchievementDraft)(nil),          // 7: resumeimport.v1.AchievementDraft
	(*ReferenceDraft)(nil),            // 8: resumeimport.v1.ReferenceDraft
	(*DraftItem)(nil),                 // 9: resumeimport.v1.DraftItem
	(*Session)(nil),                   // 10: resumeimport.v1.Session
	(*ImportResumeRequest)(nil),       // 11: resumeimport.v1.ImportResumeRequest
	(*ImportResumeResponse)(nil),      // 12: resumeimport.v1.ImportResumeResponse
	(*GetSessionRequest)(nil),         // 13: resumeimport.v1.GetSessionRequest
	(*GetSessionResponse)(nil),        // 14: resumeimport.v1.GetSessionResponse
	(*UpdateDraftRequest)(nil),        // 15: resumeimport.v1.UpdateDraftRequest
	(*UpdateDraftResponse)(nil),       // 16: resumeimport.v1.UpdateDraftResponse
	(*DiscardDraftRequest)(nil),       // 17: resumeimport.v1.DiscardDraftRequest
	(*DiscardDraftResponse)(nil),      // 18: resumeimport.v1.DiscardDraftResponse
	(*CommitDraftRequest)(nil),        // 19: resumeimport.v1.CommitDraftRequest
	(*CommitDraftResponse)(nil),       // 20: resumeimport.v1.CommitDraftResponse
	(*CommitAllRequest)(nil),          // 21: resumeimport.v1.CommitAllRequest
	(*SectionCount)(nil),              // 22: resumeimport.v1.SectionCount
	(*CommitAllResponse)(nil),         // 23: resumeimport.v1.CommitAllResponse
	(*ClearSessionRequest)(nil),       // 24: resumeimport.v1.ClearSessionRequest
	(*ClearSessionResponse)(nil),      // 25: resumeimport.v1.ClearSessionResponse
	(*ListSectionCountsRequest)(nil),  // 26: resumeimport.v1.ListSectionCountsRequest
	(*ListSectionCountsResponse)(nil), // 27: resumeimport.v1.ListSectionCountsResponse
	(*ExportProfileRequest)(nil),      // 28: resumeimport.v1.ExportProfileRequest
	(*ExportProfileResponse)(nil),     // 29: resumeimport.v1.ExportProfileResponse
}
var file_resumeimport_v1_resumeimport_proto_depIdxs = []int32{
	0,  // 0: resumeimport.v1.DraftItem.section:type_name -> resumeimport.v1.Section
	2,  // 1: resumeimport.v1.DraftItem.work_experience:type_name -> resumeimport.v1.WorkExperienceDraft
	3,  // 2: resumeimport.v1.DraftItem.education:type_name -> resumeimport.v1.EducationDraft
	4,  // 3: resumeimport.v1.DraftItem.skill:type_name -> resumeimport.v1.SkillDraft
	5,  // 4: resumeimport.v1.DraftItem.project:type_name -> resumeimport.v1.ProjectDraft
	6,  // 5: resumeimport.v1.DraftItem.certification:type_name -> resumeimport.v1.CertificationDraft
	7,  // 6: resumeimport.v1.DraftItem.achievement:type_name -> resumeimport.v1.AchievementDraft
	8,  // 7: resumeimport.v1.DraftItem.reference:type_name -> resumeimport.v1.ReferenceDraft
	1,  // 8: resumeimport.v1.Session.profile:type_name -> resumeimport.v1.ProfileDraft
	9,  // 9: resumeimport.v1.Session.items:type_name -> resumeimport.v1.DraftItem
	10, // 10: resumeimport.v1.ImportResumeResponse.session:type_name -> resumeimport.v1.Session
	10, // 11: resumeimport.v1.GetSessionResponse.session:type_name -> resumeimport.v1.Session
	2,  // 12: resumeimport.v1.UpdateDraftRequest.work_experience:type_name -> resumeimport.v1.WorkExperienceDraft
	3,  // 13: resumeimport.v1.UpdateDraftRequest.education:type_name -> resumeimport.v1.EducationDraft
	4,  // 14: resumeimport.v1.UpdateDraftRequest.skill:type_name -> resumeimport.v1.SkillDraft
	5,  // 15: resumeimport.v1.UpdateDraftRequest.project:type_name -> resumeimport.v1.ProjectDraft
	6,  // 16: resumeimport.v1.UpdateDraftRequest.certification:type_name -> resumeimport.v1.CertificationDraft
	7,  // 17: resumeimport.v1.UpdateDraftRequest.achievement:type_name -> resumeimport.v1.AchievementDraft
	8,  // 18: resumeimport.v1.UpdateDraftRequest.reference:type_name -> resumeimport.v1.ReferenceDraft
	0,  // 19: resumeimport.v1.SectionCount.section:type_name -> resumeimport.v1.Section
	22, // 20: resumeimport.v1.CommitAllResponse.committed:type_name -> resumeimport.v1.SectionCount
	22, // 21: resumeimport.v1.ListSectionCountsResponse.staged:type_name -> resumeimport.v1.SectionCount
	11, // 22: resumeimport.v1.ImportService.ImportResume:input_type -> resumeimport.v1.ImportResumeRequest
	13, // 23: resumeimport.v1.ImportService.GetSession:input_type -> resumeimport.v1.GetSessionRequest
	15, // 24: resumeimport.v1.ImportService.UpdateDraft:input_type -> resumeimport.v1.UpdateDraftRequest
	17, // 25: resumeimport.v1.ImportService.DiscardDraft:input_type -> resumeimport.v1.DiscardDraftRequest
	19, // 26: resumeimport.v1.ImportService.CommitDraft:input_type -> resumeimport.v1.CommitDraftRequest
	21, // 27: resumeimport.v1.ImportService.CommitAll:input_type -> resumeimport.v1.CommitAllRequest
	24, // 28: resumeimport.v1.ImportService.ClearSession:input_type -> resumeimport.v1.ClearSessionRequest
	26, // 29: resumeimport.v1.ImportService.ListSectionCounts:input_type -> resumeimport.v1.ListSectionCountsRequest
	28, // 30: resumeimport.v1.ExportService.ExportProfile:input_type -> resumeimport.v1.ExportProfileRequest
	12, // 31: resumeimport.v1.ImportService.ImportResume:output_type -> resumeimport.v1.ImportResumeResponse
	14, // 32: resumeimport.v1.ImportService.GetSession:output_type -> resumeimport.v1.GetSessionResponse
	16, // 33: resumeimport.v1.ImportService.UpdateDraft:output_type -> resumeimport.v1.UpdateDraftResponse
	18, // 34: resumeimport.v1.ImportService.DiscardDraft:output_type -> resumeimport.v1.DiscardDraftResponse
	20, // 35: resumeimport.v1.ImportService.CommitDraft:output_type -> resumeimport.v1.CommitDraftResponse
	23, // 36: resumeimport.v1.ImportService.CommitAll:output_type -> resumeimport.v1.CommitAllResponse
	25, // 37: resumeimport.v1.ImportService.ClearSession:output_type -> resumeimport.v1.ClearSessionResponse
	27, // 38: resumeimport.v1.ImportService.ListSectionCounts:output_type -> resumeimport.v1.ListSectionCountsResponse
	29, // 39: resumeimport.v1.ExportService.ExportProfile:output_type -> resumeimport.v1.ExportProfileResponse
	31, // [31:40] is the sub-list for method output_type
	22, // [22:31] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_resumeimport_v1_resumeimport_proto_init() }
func file_resumeimport_v1_resumeimport_proto_init() {
	if File_resumeimport_v1_resumeimport_proto != nil {
		return
	}
	file_resumeimport_v1_resumeimport_proto_msgTypes[3].OneofWrappers = []any{}
	file_resumeimport_v1_resumeimport_proto_msgTypes[8].OneofWrappers = []any{
		(*DraftItem_WorkExperience)(nil),
		(*DraftItem_Education)(nil),
		(*DraftItem_Skill)(nil),
		(*DraftItem_Project)(nil),
		(*DraftItem_Certification)(nil),
		(*DraftItem_Achievement)(nil),
		(*DraftItem_Reference)(nil),
	}
	file_resumeimport_v1_resumeimport_proto_msgTypes[14].OneofWrappers = []any{
		(*UpdateDraftRequest_WorkExperience)(nil),
		(*UpdateDraftRequest_Education)(nil),
		(*UpdateDraftRequest_Skill)(nil),
		(*UpdateDraftRequest_Project)(nil),
		(*UpdateDraftRequest_Certification)(nil),
		(*UpdateDraftRequest_Achievement)(nil),
		(*UpdateDraftRequest_Reference)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_resumeimport_v1_resumeimport_proto_rawDesc), len(file_resumeimport_v1_resumeimport_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   29,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_resumeimport_v1_resumeimport_proto_goTypes,
		DependencyIndexes: file_resumeimport_v1_resumeimport_proto_depIdxs,
		EnumInfos:         file_resumeimport_v1_resumeimport_proto_enumTypes,
		MessageInfos:      file_resumeimport_v1_resumeimport_proto_msgTypes,
	}.Build()
	File_resumeimport_v1_resumeimport_proto = out.File
	file_resumeimport_v1_resumeimport_proto_goTypes = nil
	file_resumeimport_v1_resumeimport_proto_depIdxs = nil
}
