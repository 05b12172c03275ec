// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: cryptotax/v1/cryptotax.proto

package cryptotaxv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	CryptoTaxService_RecordAcquisition_FullMethodName      = "/cryptotax.v1.CryptoTaxService/RecordAcquisition"
	CryptoTaxService_RecordDisposal_FullMethodName         = "/cryptotax.v1.CryptoTaxService/RecordDisposal"
	CryptoTaxService_QueryOpenLots_FullMethodName          = "/cryptotax.v1.CryptoTaxService/QueryOpenLots"
	CryptoTaxService_GetRealizedSummary_FullMethodName     = "/cryptotax.v1.CryptoTaxService/GetRealizedSummary"
	CryptoTaxService_DetectWashSales_FullMethodName        = "/cryptotax.v1.CryptoTaxService/DetectWashSales"
	CryptoTaxService_ListWashSaleViolations_FullMethodName = "/cryptotax.v1.CryptoTaxService/ListWashSaleViolations"
	CryptoTaxService_RunNormalizationSweep_FullMethodName  = "/cryptotax.v1.CryptoTaxService/RunNormalizationSweep"
)

// CryptoTaxServiceClient is the client API for CryptoTaxService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CryptoTaxService exposes the cost-basis engine: lot ingestion, FIFO
// disposal matching, wash-sale detection and realized-gains reporting.
// All monetary values travel as decimal strings to avoid float drift.
type CryptoTaxServiceClient interface {
	RecordAcquisition(ctx context.Context, in *RecordAcquisitionRequest, opts ...grpc.CallOption) (*RecordAcquisitionResponse, error)
	RecordDisposal(ctx context.Context, in *RecordDisposalRequest, opts ...grpc.CallOption) (*RecordDisposalResponse, error)
	QueryOpenLots(ctx context.Context, in *QueryOpenLotsRequest, opts ...grpc.CallOption) (*QueryOpenLotsResponse, error)
	GetRealizedSummary(ctx context.Context, in *GetRealizedSummaryRequest, opts ...grpc.CallOption) (*GetRealizedSummaryResponse, error)
	DetectWashSales(ctx context.Context, in *DetectWashSalesRequest, opts ...grpc.CallOption) (*DetectWashSalesResponse, error)
	ListWashSaleViolations(ctx context.Context, in *ListWashSaleViolationsRequest, opts ...grpc.CallOption) (*ListWashSaleViolationsResponse, error)
	RunNormalizationSweep(ctx context.Context, in *RunNormalizationSweepRequest, opts ...grpc.CallOption) (*RunNormalizationSweepResponse, error)
}

type cryptoTaxServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCryptoTaxServiceClient(cc grpc.ClientConnInterface) CryptoTaxServiceClient {
	return &cryptoTaxServiceClient{cc}
}

func (c *cryptoTaxServiceClient) RecordAcquisition(ctx context.Context, in *RecordAcquisitionRequest, opts ...grpc.CallOption) (*RecordAcquisitionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordAcquisitionResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_RecordAcquisition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) RecordDisposal(ctx context.Context, in *RecordDisposalRequest, opts ...grpc.CallOption) (*RecordDisposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordDisposalResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_RecordDisposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) QueryOpenLots(ctx context.Context, in *QueryOpenLotsRequest, opts ...grpc.CallOption) (*QueryOpenLotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(QueryOpenLotsResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_QueryOpenLots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) GetRealizedSummary(ctx context.Context, in *GetRealizedSummaryRequest, opts ...grpc.CallOption) (*GetRealizedSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRealizedSummaryResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_GetRealizedSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) DetectWashSales(ctx context.Context, in *DetectWashSalesRequest, opts ...grpc.CallOption) (*DetectWashSalesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetectWashSalesResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_DetectWashSales_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) ListWashSaleViolations(ctx context.Context, in *ListWashSaleViolationsRequest, opts ...grpc.CallOption) (*ListWashSaleViolationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWashSaleViolationsResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_ListWashSaleViolations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cryptoTaxServiceClient) RunNormalizationSweep(ctx context.Context, in *RunNormalizationSweepRequest, opts ...grpc.CallOption) (*RunNormalizationSweepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunNormalizationSweepResponse)
	err := c.cc.Invoke(ctx, CryptoTaxService_RunNormalizationSweep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CryptoTaxServiceServer is the server API for CryptoTaxService service.
// All implementations must embed UnimplementedCryptoTaxServiceServer
// for forward compatibility
//
// CryptoTaxService exposes the cost-basis engine: lot ingestion, FIFO
// disposal matching, wash-sale detection and realized-gains reporting.
// All monetary values travel as decimal strings to avoid float drift.
type CryptoTaxServiceServer interface {
	RecordAcquisition(context.Context, *RecordAcquisitionRequest) (*RecordAcquisitionResponse, error)
	RecordDisposal(context.Context, *RecordDisposalRequest) (*RecordDisposalResponse, error)
	QueryOpenLots(context.Context, *QueryOpenLotsRequest) (*QueryOpenLotsResponse, error)
	GetRealizedSummary(context.Context, *GetRealizedSummaryRequest) (*GetRealizedSummaryResponse, error)
	DetectWashSales(context.Context, *DetectWashSalesRequest) (*DetectWashSalesResponse, error)
	ListWashSaleViolations(context.Context, *ListWashSaleViolationsRequest) (*ListWashSaleViolationsResponse, error)
	RunNormalizationSweep(context.Context, *RunNormalizationSweepRequest) (*RunNormalizationSweepResponse, error)
	mustEmbedUnimplementedCryptoTaxServiceServer()
}

// UnimplementedCryptoTaxServiceServer must be embedded to have forward compatible implementations.
type UnimplementedCryptoTaxServiceServer struct {
}

func (UnimplementedCryptoTaxServiceServer) RecordAcquisition(context.Context, *RecordAcquisitionRequest) (*RecordAcquisitionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordAcquisition not implemented")
}
func (UnimplementedCryptoTaxServiceServer) RecordDisposal(context.Context, *RecordDisposalRequest) (*RecordDisposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordDisposal not implemented")
}
func (UnimplementedCryptoTaxServiceServer) QueryOpenLots(context.Context, *QueryOpenLotsRequest) (*QueryOpenLotsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryOpenLots not implemented")
}
func (UnimplementedCryptoTaxServiceServer) GetRealizedSummary(context.Context, *GetRealizedSummaryRequest) (*GetRealizedSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRealizedSummary not implemented")
}
func (UnimplementedCryptoTaxServiceServer) DetectWashSales(context.Context, *DetectWashSalesRequest) (*DetectWashSalesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectWashSales not implemented")
}
func (UnimplementedCryptoTaxServiceServer) ListWashSaleViolations(context.Context, *ListWashSaleViolationsRequest) (*ListWashSaleViolationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWashSaleViolations not implemented")
}
func (UnimplementedCryptoTaxServiceServer) RunNormalizationSweep(context.Context, *RunNormalizationSweepRequest) (*RunNormalizationSweepResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunNormalizationSweep not implemented")
}
func (UnimplementedCryptoTaxServiceServer) mustEmbedUnimplementedCryptoTaxServiceServer() {}

// UnsafeCryptoTaxServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CryptoTaxServiceServer will
// result in compilation errors.
type UnsafeCryptoTaxServiceServer interface {
	mustEmbedUnimplementedCryptoTaxServiceServer()
}

func RegisterCryptoTaxServiceServer(s grpc.ServiceRegistrar, srv CryptoTaxServiceServer) {
	s.RegisterService(&CryptoTaxService_ServiceDesc, srv)
}

func _CryptoTaxService_RecordAcquisition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordAcquisitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).RecordAcquisition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_RecordAcquisition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).RecordAcquisition(ctx, req.(*RecordAcquisitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_RecordDisposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordDisposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).RecordDisposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_RecordDisposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).RecordDisposal(ctx, req.(*RecordDisposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_QueryOpenLots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryOpenLotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).QueryOpenLots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_QueryOpenLots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).QueryOpenLots(ctx, req.(*QueryOpenLotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_GetRealizedSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRealizedSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).GetRealizedSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_GetRealizedSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).GetRealizedSummary(ctx, req.(*GetRealizedSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_DetectWashSales_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectWashSalesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).DetectWashSales(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_DetectWashSales_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).DetectWashSales(ctx, req.(*DetectWashSalesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_ListWashSaleViolations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWashSaleViolationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).ListWashSaleViolations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_ListWashSaleViolations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).ListWashSaleViolations(ctx, req.(*ListWashSaleViolationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CryptoTaxService_RunNormalizationSweep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunNormalizationSweepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CryptoTaxServiceServer).RunNormalizationSweep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CryptoTaxService_RunNormalizationSweep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CryptoTaxServiceServer).RunNormalizationSweep(ctx, req.(*RunNormalizationSweepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CryptoTaxService_ServiceDesc is the grpc.ServiceDesc for CryptoTaxService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CryptoTaxService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cryptotax.v1.CryptoTaxService",
	HandlerType: (*CryptoTaxServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordAcquisition",
			Handler:    _CryptoTaxService_RecordAcquisition_Handler,
		},
		{
			MethodName: "RecordDisposal",
			Handler:    _CryptoTaxService_RecordDisposal_Handler,
		},
		{
			MethodName: "QueryOpenLots",
			Handler:    _CryptoTaxService_QueryOpenLots_Handler,
		},
		{
			MethodName: "GetRealizedSummary",
			Handler:    _CryptoTaxService_GetRealizedSummary_Handler,
		},
		{
			MethodName: "DetectWashSales",
			Handler:    _CryptoTaxService_DetectWashSales_Handler,
		},
		{
			MethodName: "ListWashSaleViolations",
			Handler:    _CryptoTaxService_ListWashSaleViolations_Handler,
		},
		{
			MethodName: "RunNormalizationSweep",
			Handler:    _CryptoTaxService_RunNormalizationSweep_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cryptotax/v1/cryptotax.proto",
}
