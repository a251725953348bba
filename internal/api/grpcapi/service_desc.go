package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "timeschedule.v1.HoursService"
	getHoursMethod     = "GetHours"
	GetHoursFullMethod = "/" + ServiceName + "/" + getHoursMethod
)

// HoursServer is served over gRPC with well-known Struct messages so no
// generated stubs are needed.
//
// Request fields: contact_center_id (string), at (RFC3339 string, optional).
// Response fields: contact_center_id, open, weekday_hours, weekend_hours,
// evaluated_at.
type HoursServer interface {
	GetHours(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var HoursServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HoursServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: getHoursMethod,
			Handler:    getHoursHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timeschedule/v1/hours.proto",
}

func RegisterHoursServer(s grpc.ServiceRegistrar, srv HoursServer) {
	s.RegisterService(&HoursServiceDesc, srv)
}

func getHoursHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HoursServer).GetHours(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetHoursFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HoursServer).GetHours(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// HoursClient calls GetHours on a remote server.
type HoursClient struct {
	cc grpc.ClientConnInterface
}

func NewHoursClient(cc grpc.ClientConnInterface) *HoursClient {
	return &HoursClient{cc: cc}
}

func (c *HoursClient) GetHours(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetHoursFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
