// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: resumeimport/v1/resumeimport.proto

package resumeimportv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ImportService_ImportResume_FullMethodName      = "/resumeimport.v1.ImportService/ImportResume"
	ImportService_GetSession_FullMethodName        = "/resumeimport.v1.ImportService/GetSession"
	ImportService_UpdateDraft_FullMethodName       = "/resumeimport.v1.ImportService/UpdateDraft"
	ImportService_DiscardDraft_FullMethodName      = "/resumeimport.v1.ImportService/DiscardDraft"
	ImportService_CommitDraft_FullMethodName       = "/resumeimport.v1.ImportService/CommitDraft"
	ImportService_CommitAll_FullMethodName         = "/resumeimport.v1.ImportService/CommitAll"
	ImportService_ClearSession_FullMethodName      = "/resumeimport.v1.ImportService/ClearSession"
	ImportService_ListSectionCounts_FullMethodName = "/resumeimport.v1.ImportService/ListSectionCounts"
)

// ImportServiceClient is the client API for ImportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ImportService drives the resume import flow: upload a document, review the
// staged drafts, edit or discard them, and commit them to storage.
type ImportServiceClient interface {
	ImportResume(ctx context.Context, in *ImportResumeRequest, opts ...grpc.CallOption) (*ImportResumeResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	UpdateDraft(ctx context.Context, in *UpdateDraftRequest, opts ...grpc.CallOption) (*UpdateDraftResponse, error)
	DiscardDraft(ctx context.Context, in *DiscardDraftRequest, opts ...grpc.CallOption) (*DiscardDraftResponse, error)
	CommitDraft(ctx context.Context, in *CommitDraftRequest, opts ...grpc.CallOption) (*CommitDraftResponse, error)
	CommitAll(ctx context.Context, in *CommitAllRequest, opts ...grpc.CallOption) (*CommitAllResponse, error)
	ClearSession(ctx context.Context, in *ClearSessionRequest, opts ...grpc.CallOption) (*ClearSessionResponse, error)
	ListSectionCounts(ctx context.Context, in *ListSectionCountsRequest, opts ...grpc.CallOption) (*ListSectionCountsResponse, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc}
}

func (c *importServiceClient) ImportResume(ctx context.Context, in *ImportResumeRequest, opts ...grpc.CallOption) (*ImportResumeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportResumeResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportResume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSessionResponse)
	err := c.cc.Invoke(ctx, ImportService_GetSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) UpdateDraft(ctx context.Context, in *UpdateDraftRequest, opts ...grpc.CallOption) (*UpdateDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateDraftResponse)
	err := c.cc.Invoke(ctx, ImportService_UpdateDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) DiscardDraft(ctx context.Context, in *DiscardDraftRequest, opts ...grpc.CallOption) (*DiscardDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscardDraftResponse)
	err := c.cc.Invoke(ctx, ImportService_DiscardDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) CommitDraft(ctx context.Context, in *CommitDraftRequest, opts ...grpc.CallOption) (*CommitDraftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitDraftResponse)
	err := c.cc.Invoke(ctx, ImportService_CommitDraft_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) CommitAll(ctx context.Context, in *CommitAllRequest, opts ...grpc.CallOption) (*CommitAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitAllResponse)
	err := c.cc.Invoke(ctx, ImportService_CommitAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ClearSession(ctx context.Context, in *ClearSessionRequest, opts ...grpc.CallOption) (*ClearSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearSessionResponse)
	err := c.cc.Invoke(ctx, ImportService_ClearSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ListSectionCounts(ctx context.Context, in *ListSectionCountsRequest, opts ...grpc.CallOption) (*ListSectionCountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSectionCountsResponse)
	err := c.cc.Invoke(ctx, ImportService_ListSectionCounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportServiceServer is the server API for ImportService service.
// All implementations must embed UnimplementedImportServiceServer
// for forward compatibility.
//
// ImportService drives the resume import flow: upload a document, review the
// staged drafts, edit or discard them, and commit them to storage.
type ImportServiceServer interface {
	ImportResume(context.Context, *ImportResumeRequest) (*ImportResumeResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	UpdateDraft(context.Context, *UpdateDraftRequest) (*UpdateDraftResponse, error)
	DiscardDraft(context.Context, *DiscardDraftRequest) (*DiscardDraftResponse, error)
	CommitDraft(context.Context, *CommitDraftRequest) (*CommitDraftResponse, error)
	CommitAll(context.Context, *CommitAllRequest) (*CommitAllResponse, error)
	ClearSession(context.Context, *ClearSessionRequest) (*ClearSessionResponse, error)
	ListSectionCounts(context.Context, *ListSectionCountsRequest) (*ListSectionCountsResponse, error)
	mustEmbedUnimplementedImportServiceServer()
}

// UnimplementedImportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedImportServiceServer struct{}

func (UnimplementedImportServiceServer) ImportResume(context.Context, *ImportResumeRequest) (*ImportResumeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportResume not implemented")
}
func (UnimplementedImportServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedImportServiceServer) UpdateDraft(context.Context, *UpdateDraftRequest) (*UpdateDraftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateDraft not implemented")
}
func (UnimplementedImportServiceServer) DiscardDraft(context.Context, *DiscardDraftRequest) (*DiscardDraftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DiscardDraft not implemented")
}
func (UnimplementedImportServiceServer) CommitDraft(context.Context, *CommitDraftRequest) (*CommitDraftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitDraft not implemented")
}
func (UnimplementedImportServiceServer) CommitAll(context.Context, *CommitAllRequest) (*CommitAllResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CommitAll not implemented")
}
func (UnimplementedImportServiceServer) ClearSession(context.Context, *ClearSessionRequest) (*ClearSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearSession not implemented")
}
func (UnimplementedImportServiceServer) ListSectionCounts(context.Context, *ListSectionCountsRequest) (*ListSectionCountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSectionCounts not implemented")
}
func (UnimplementedImportServiceServer) mustEmbedUnimplementedImportServiceServer() {}
func (UnimplementedImportServiceServer) testEmbeddedByValue()                       {}

// UnsafeImportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ImportServiceServer will
// result in compilation errors.
type UnsafeImportServiceServer interface {
	mustEmbedUnimplementedImportServiceServer()
}

func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	// If the following call pancis, it indicates UnimplementedImportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ImportService_ServiceDesc, srv)
}

func _ImportService_ImportResume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportResumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportResume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportResume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportResume(ctx, req.(*ImportResumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_GetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_GetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_UpdateDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).UpdateDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_UpdateDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).UpdateDraft(ctx, req.(*UpdateDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_DiscardDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DiscardDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).DiscardDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_DiscardDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).DiscardDraft(ctx, req.(*DiscardDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_CommitDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).CommitDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_CommitDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).CommitDraft(ctx, req.(*CommitDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_CommitAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).CommitAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_CommitAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).CommitAll(ctx, req.(*CommitAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ClearSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ClearSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ClearSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ClearSession(ctx, req.(*ClearSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ListSectionCounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSectionCountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ListSectionCounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ListSectionCounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ListSectionCounts(ctx, req.(*ListSectionCountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportService_ServiceDesc is the grpc.ServiceDesc for ImportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ImportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "resumeimport.v1.ImportService",
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportResume",
			Handler:    _ImportService_ImportResume_Handler,
		},
		{
			MethodName: "GetSession",
			Handler:    _ImportService_GetSession_Handler,
		},
		{
			MethodName: "UpdateDraft",
			Handler:    _ImportService_UpdateDraft_Handler,
		},
		{
			MethodName: "DiscardDraft",
			Handler:    _ImportService_DiscardDraft_Handler,
		},
		{
			MethodName: "CommitDraft",
			Handler:    _ImportService_CommitDraft_Handler,
		},
		{
			MethodName: "CommitAll",
			Handler:    _ImportService_CommitAll_Handler,
		},
		{
			MethodName: "ClearSession",
			Handler:    _ImportService_ClearSession_Handler,
		},
		{
			MethodName: "ListSectionCounts",
			Handler:    _ImportService_ListSectionCounts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "resumeimport/v1/resumeimport.proto",
}

const (
	ExportService_ExportProfile_FullMethodName = "/resumeimport.v1.ExportService/ExportProfile"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces downloadable artifacts from persisted profile data.
type ExportServiceClient interface {
	ExportProfile(ctx context.Context, in *ExportProfileRequest, opts ...grpc.CallOption) (*ExportProfileResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportProfile(ctx context.Context, in *ExportProfileRequest, opts ...grpc.CallOption) (*ExportProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportProfileResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces downloadable artifacts from persisted profile data.
type ExportServiceServer interface {
	ExportProfile(context.Context, *ExportProfileRequest) (*ExportProfileResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportProfile(context.Context, *ExportProfileRequest) (*ExportProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportProfile not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportProfile(ctx, req.(*ExportProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "resumeimport.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportProfile",
			Handler:    _ExportService_ExportProfile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "resumeimport/v1/resumeimport.proto",
}
