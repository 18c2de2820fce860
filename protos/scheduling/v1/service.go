package schedulingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "scheduling.v1.SchedulingService"

	SchedulingService_SuggestSchedule_FullMethodName       = "/scheduling.v1.SchedulingService/SuggestSchedule"
	SchedulingService_ListTripDays_FullMethodName          = "/scheduling.v1.SchedulingService/ListTripDays"
	SchedulingService_ExportCalendar_FullMethodName        = "/scheduling.v1.SchedulingService/ExportCalendar"
	SchedulingService_CalendarDateToInstant_FullMethodName = "/scheduling.v1.SchedulingService/CalendarDateToInstant"
	SchedulingService_InstantToWallDateTime_FullMethodName = "/scheduling.v1.SchedulingService/InstantToWallDateTime"
	SchedulingService_WallDateTimeToInstant_FullMethodName = "/scheduling.v1.SchedulingService/WallDateTimeToInstant"
)

type SchedulingServiceClient interface {
	SuggestSchedule(ctx context.Context, in *SuggestScheduleRequest, opts ...grpc.CallOption) (*SuggestScheduleResponse, error)
	ListTripDays(ctx context.Context, in *ListTripDaysRequest, opts ...grpc.CallOption) (*ListTripDaysResponse, error)
	ExportCalendar(ctx context.Context, in *ExportCalendarRequest, opts ...grpc.CallOption) (*ExportCalendarResponse, error)
	CalendarDateToInstant(ctx context.Context, in *CalendarDateToInstantRequest, opts ...grpc.CallOption) (*CalendarDateToInstantResponse, error)
	InstantToWallDateTime(ctx context.Context, in *InstantToWallDateTimeRequest, opts ...grpc.CallOption) (*InstantToWallDateTimeResponse, error)
	WallDateTimeToInstant(ctx context.Context, in *WallDateTimeToInstantRequest, opts ...grpc.CallOption) (*WallDateTimeToInstantResponse, error)
}

type schedulingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSchedulingServiceClient(cc grpc.ClientConnInterface) SchedulingServiceClient {
	return &schedulingServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulingServiceClient) SuggestSchedule(ctx context.Context, in *SuggestScheduleRequest, opts ...grpc.CallOption) (*SuggestScheduleResponse, error) {
	return invoke[SuggestScheduleResponse](ctx, c.cc, SchedulingService_SuggestSchedule_FullMethodName, in, opts)
}

func (c *schedulingServiceClient) ListTripDays(ctx context.Context, in *ListTripDaysRequest, opts ...grpc.CallOption) (*ListTripDaysResponse, error) {
	return invoke[ListTripDaysResponse](ctx, c.cc, SchedulingService_ListTripDays_FullMethodName, in, opts)
}

func (c *schedulingServiceClient) ExportCalendar(ctx context.Context, in *ExportCalendarRequest, opts ...grpc.CallOption) (*ExportCalendarResponse, error) {
	return invoke[ExportCalendarResponse](ctx, c.cc, SchedulingService_ExportCalendar_FullMethodName, in, opts)
}

func (c *schedulingServiceClient) CalendarDateToInstant(ctx context.Context, in *CalendarDateToInstantRequest, opts ...grpc.CallOption) (*CalendarDateToInstantResponse, error) {
	return invoke[CalendarDateToInstantResponse](ctx, c.cc, SchedulingService_CalendarDateToInstant_FullMethodName, in, opts)
}

func (c *schedulingServiceClient) InstantToWallDateTime(ctx context.Context, in *InstantToWallDateTimeRequest, opts ...grpc.CallOption) (*InstantToWallDateTimeResponse, error) {
	return invoke[InstantToWallDateTimeResponse](ctx, c.cc, SchedulingService_InstantToWallDateTime_FullMethodName, in, opts)
}

func (c *schedulingServiceClient) WallDateTimeToInstant(ctx context.Context, in *WallDateTimeToInstantRequest, opts ...grpc.CallOption) (*WallDateTimeToInstantResponse, error) {
	return invoke[WallDateTimeToInstantResponse](ctx, c.cc, SchedulingService_WallDateTimeToInstant_FullMethodName, in, opts)
}

type SchedulingServiceServer interface {
	SuggestSchedule(context.Context, *SuggestScheduleRequest) (*SuggestScheduleResponse, error)
	ListTripDays(context.Context, *ListTripDaysRequest) (*ListTripDaysResponse, error)
	ExportCalendar(context.Context, *ExportCalendarRequest) (*ExportCalendarResponse, error)
	CalendarDateToInstant(context.Context, *CalendarDateToInstantRequest) (*CalendarDateToInstantResponse, error)
	InstantToWallDateTime(context.Context, *InstantToWallDateTimeRequest) (*InstantToWallDateTimeResponse, error)
	WallDateTimeToInstant(context.Context, *WallDateTimeToInstantRequest) (*WallDateTimeToInstantResponse, error)
}

// UnimplementedSchedulingServiceServer can be embedded to stay forward compatible.
type UnimplementedSchedulingServiceServer struct{}

func (UnimplementedSchedulingServiceServer) SuggestSchedule(context.Context, *SuggestScheduleRequest) (*SuggestScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SuggestSchedule not implemented")
}

func (UnimplementedSchedulingServiceServer) ListTripDays(context.Context, *ListTripDaysRequest) (*ListTripDaysResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTripDays not implemented")
}

func (UnimplementedSchedulingServiceServer) ExportCalendar(context.Context, *ExportCalendarRequest) (*ExportCalendarResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportCalendar not implemented")
}

func (UnimplementedSchedulingServiceServer) CalendarDateToInstant(context.Context, *CalendarDateToInstantRequest) (*CalendarDateToInstantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CalendarDateToInstant not implemented")
}

func (UnimplementedSchedulingServiceServer) InstantToWallDateTime(context.Context, *InstantToWallDateTimeRequest) (*InstantToWallDateTimeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InstantToWallDateTime not implemented")
}

func (UnimplementedSchedulingServiceServer) WallDateTimeToInstant(context.Context, *WallDateTimeToInstantRequest) (*WallDateTimeToInstantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WallDateTimeToInstant not implemented")
}

func RegisterSchedulingServiceServer(s grpc.ServiceRegistrar, srv SchedulingServiceServer) {
	s.RegisterService(&SchedulingService_ServiceDesc, srv)
}

// unary adapts a typed server method to grpc.MethodHandler, running the
// server's interceptor chain the same way generated handlers do.
func unary[Req any, Resp any](fullMethod string, call func(SchedulingServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SchedulingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SchedulingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var SchedulingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SchedulingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SuggestSchedule",
			Handler:    unary(SchedulingService_SuggestSchedule_FullMethodName, SchedulingServiceServer.SuggestSchedule),
		},
		{
			MethodName: "ListTripDays",
			Handler:    unary(SchedulingService_ListTripDays_FullMethodName, SchedulingServiceServer.ListTripDays),
		},
		{
			MethodName: "ExportCalendar",
			Handler:    unary(SchedulingService_ExportCalendar_FullMethodName, SchedulingServiceServer.ExportCalendar),
		},
		{
			MethodName: "CalendarDateToInstant",
			Handler:    unary(SchedulingService_CalendarDateToInstant_FullMethodName, SchedulingServiceServer.CalendarDateToInstant),
		},
		{
			MethodName: "InstantToWallDateTime",
			Handler:    unary(SchedulingService_InstantToWallDateTime_FullMethodName, SchedulingServiceServer.InstantToWallDateTime),
		},
		{
			MethodName: "WallDateTimeToInstant",
			Handler:    unary(SchedulingService_WallDateTimeToInstant_FullMethodName, SchedulingServiceServer.WallDateTimeToInstant),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scheduling/v1/scheduling.proto",
}
