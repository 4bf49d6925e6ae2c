package grpc

// proto.go defines the gRPC server interface derived from nps/stub/v1/stub.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StubServiceServer is the server API for StubService.
// It mirrors the proto-generated interface from nps.stub.v1.StubService.
type StubServiceServer interface {
	SubmitReturns(context.Context, *SubmitReturnsRequest) (*SubmitReturnsResponse, error)
	SubmitDeclaration(context.Context, *SubmitDeclarationRequest) (*SubmitDeclarationResponse, error)
	GetReturnResults(context.Context, *GetReturnResultsRequest) (*GetReturnResultsResponse, error)
	mustEmbedUnimplementedStubServiceServer()
}

// UnimplementedStubServiceServer provides forward-compatible default implementations.
type UnimplementedStubServiceServer struct{}

func (UnimplementedStubServiceServer) SubmitReturns(context.Context, *SubmitReturnsRequest) (*SubmitReturnsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReturns not implemented")
}
func (UnimplementedStubServiceServer) SubmitDeclaration(context.Context, *SubmitDeclarationRequest) (*SubmitDeclarationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDeclaration not implemented")
}
func (UnimplementedStubServiceServer) GetReturnResults(context.Context, *GetReturnResultsRequest) (*GetReturnResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReturnResults not implemented")
}
func (UnimplementedStubServiceServer) mustEmbedUnimplementedStubServiceServer() {}

// RegisterStubServiceServer registers the StubServiceServer with the gRPC server.
func RegisterStubServiceServer(s *grpclib.Server, srv StubServiceServer) {
	s.RegisterService(&_StubService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _StubService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "nps.stub.v1.StubService",
	HandlerType: (*StubServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitReturns", Handler: _StubService_SubmitReturns_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "SubmitDeclaration", Handler: _StubService_SubmitDeclaration_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetReturnResults", Handler: _StubService_GetReturnResults_Handler},   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _StubService_SubmitReturns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(SubmitReturnsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(StubServiceServer).SubmitReturns(ctx, req)
}

//nolint:revive,errcheck // gRPC handler registration
func _StubService_SubmitDeclaration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(SubmitDeclarationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(StubServiceServer).SubmitDeclaration(ctx, req)
}

//nolint:revive,errcheck // gRPC handler registration
func _StubService_GetReturnResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetReturnResultsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(StubServiceServer).GetReturnResults(ctx, req)
}
