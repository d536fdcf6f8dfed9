package grpc

// proto.go defines the gRPC server interface derived from
// loanshield/v1/trust.proto. This file serves as a stand-in for buf-generated
// code; replace it with the generated import once `buf generate` is wired up.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TrustServiceServer is the server API for TrustService.
type TrustServiceServer interface {
	CheckApp(context.Context, *CheckAppRequest) (*CheckAppResponse, error)
	SubmitReport(context.Context, *SubmitReportRequest) (*SubmitReportResponse, error)
	GetAppReports(context.Context, *GetAppReportsRequest) (*GetAppReportsResponse, error)
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	mustEmbedUnimplementedTrustServiceServer()
}

// UnimplementedTrustServiceServer provides forward-compatible default implementations.
type UnimplementedTrustServiceServer struct{}

func (UnimplementedTrustServiceServer) CheckApp(context.Context, *CheckAppRequest) (*CheckAppResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckApp not implemented")
}
func (UnimplementedTrustServiceServer) SubmitReport(context.Context, *SubmitReportRequest) (*SubmitReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReport not implemented")
}
func (UnimplementedTrustServiceServer) GetAppReports(context.Context, *GetAppReportsRequest) (*GetAppReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAppReports not implemented")
}
func (UnimplementedTrustServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedTrustServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedTrustServiceServer) mustEmbedUnimplementedTrustServiceServer() {}

// RegisterTrustServiceServer registers the TrustServiceServer with the gRPC server.
func RegisterTrustServiceServer(s *grpclib.Server, srv TrustServiceServer) {
	s.RegisterService(&_TrustService_serviceDesc, srv)
}

var _TrustService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loanshield.v1.TrustService",
	HandlerType: (*TrustServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CheckApp", Handler: _TrustService_CheckApp_Handler},
		{MethodName: "SubmitReport", Handler: _TrustService_SubmitReport_Handler},
		{MethodName: "GetAppReports", Handler: _TrustService_GetAppReports_Handler},
		{MethodName: "RegisterUser", Handler: _TrustService_RegisterUser_Handler},
		{MethodName: "Login", Handler: _TrustService_Login_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _TrustService_CheckApp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CheckAppRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TrustServiceServer).CheckApp(ctx, req)
}

func _TrustService_SubmitReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(SubmitReportRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TrustServiceServer).SubmitReport(ctx, req)
}

func _TrustService_GetAppReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetAppReportsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TrustServiceServer).GetAppReports(ctx, req)
}

func _TrustService_RegisterUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(RegisterUserRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TrustServiceServer).RegisterUser(ctx, req)
}

func _TrustService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(LoginRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TrustServiceServer).Login(ctx, req)
}
