package staybookv1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "staybook.v1.BookingService"

const (
	methodListRooms            = "ListRooms"
	methodListBookings         = "ListBookings"
	methodGetUnavailableRanges = "GetUnavailableRanges"
	methodQuoteStay            = "QuoteStay"
	methodCreateBooking        = "CreateBooking"
	methodPreviewRefund        = "PreviewRefund"
	methodCancelBooking        = "CancelBooking"
)

// BookingServiceServer is the server API for BookingService.
type BookingServiceServer interface {
	ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error)
	ListBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	GetUnavailableRanges(context.Context, *GetUnavailableRangesRequest) (*GetUnavailableRangesResponse, error)
	QuoteStay(context.Context, *QuoteStayRequest) (*QuoteStayResponse, error)
	CreateBooking(context.Context, *CreateBookingRequest) (*CreateBookingResponse, error)
	PreviewRefund(context.Context, *PreviewRefundRequest) (*PreviewRefundResponse, error)
	CancelBooking(context.Context, *CancelBookingRequest) (*CancelBookingResponse, error)
}

// BookingService_ServiceDesc describes BookingService for grpc.ServiceRegistrar.
var BookingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: methodListRooms, Handler: unaryHandler(methodListRooms, BookingServiceServer.ListRooms)},
		{MethodName: methodListBookings, Handler: unaryHandler(methodListBookings, BookingServiceServer.ListBookings)},
		{MethodName: methodGetUnavailableRanges, Handler: unaryHandler(methodGetUnavailableRanges, BookingServiceServer.GetUnavailableRanges)},
		{MethodName: methodQuoteStay, Handler: unaryHandler(methodQuoteStay, BookingServiceServer.QuoteStay)},
		{MethodName: methodCreateBooking, Handler: unaryHandler(methodCreateBooking, BookingServiceServer.CreateBooking)},
		{MethodName: methodPreviewRefund, Handler: unaryHandler(methodPreviewRefund, BookingServiceServer.PreviewRefund)},
		{MethodName: methodCancelBooking, Handler: unaryHandler(methodCancelBooking, BookingServiceServer.CancelBooking)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterBookingServiceServer attaches server to registrar.
func RegisterBookingServiceServer(registrar grpc.ServiceRegistrar, server BookingServiceServer) {
	registrar.RegisterService(&BookingService_ServiceDesc, server)
}

// FullMethodName returns the "/service/method" path used on the wire.
func FullMethodName(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler[Request any, Response any](method string, call func(BookingServiceServer, context.Context, *Request) (*Response, error)) grpc.MethodHandler {
	return func(server any, ctx context.Context, decode func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		request := new(Request)
		if err := decode(request); err != nil {
			return nil, err
		}
		typed := server.(BookingServiceServer)
		if interceptor == nil {
			return call(typed, ctx, request)
		}
		info := &grpc.UnaryServerInfo{
			Server:     server,
			FullMethod: FullMethodName(method),
		}
		handler := func(ctx context.Context, request any) (any, error) {
			return call(typed, ctx, request.(*Request))
		}
		return interceptor(ctx, request, info, handler)
	}
}
