package staybookv1

import (
	"context"

	"google.golang.org/grpc"
)

// BookingServiceClient is the client API for BookingService.
type BookingServiceClient interface {
	ListRooms(ctx context.Context, request *ListRoomsRequest, options ...grpc.CallOption) (*ListRoomsResponse, error)
	ListBookings(ctx context.Context, request *ListBookingsRequest, options ...grpc.CallOption) (*ListBookingsResponse, error)
	GetUnavailableRanges(ctx context.Context, request *GetUnavailableRangesRequest, options ...grpc.CallOption) (*GetUnavailableRangesResponse, error)
	QuoteStay(ctx context.Context, request *QuoteStayRequest, options ...grpc.CallOption) (*QuoteStayResponse, error)
	CreateBooking(ctx context.Context, request *CreateBookingRequest, options ...grpc.CallOption) (*CreateBookingResponse, error)
	PreviewRefund(ctx context.Context, request *PreviewRefundRequest, options ...grpc.CallOption) (*PreviewRefundResponse, error)
	CancelBooking(ctx context.Context, request *CancelBookingRequest, options ...grpc.CallOption) (*CancelBookingResponse, error)
}

type bookingServiceClient struct {
	conn grpc.ClientConnInterface
}

// NewBookingServiceClient returns a client that sends every call with the JSON codec.
func NewBookingServiceClient(conn grpc.ClientConnInterface) BookingServiceClient {
	return &bookingServiceClient{conn: conn}
}

func (client *bookingServiceClient) ListRooms(ctx context.Context, request *ListRoomsRequest, options ...grpc.CallOption) (*ListRoomsResponse, error) {
	response := new(ListRoomsResponse)
	if err := client.invoke(ctx, methodListRooms, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) ListBookings(ctx context.Context, request *ListBookingsRequest, options ...grpc.CallOption) (*ListBookingsResponse, error) {
	response := new(ListBookingsResponse)
	if err := client.invoke(ctx, methodListBookings, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) GetUnavailableRanges(ctx context.Context, request *GetUnavailableRangesRequest, options ...grpc.CallOption) (*GetUnavailableRangesResponse, error) {
	response := new(GetUnavailableRangesResponse)
	if err := client.invoke(ctx, methodGetUnavailableRanges, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) QuoteStay(ctx context.Context, request *QuoteStayRequest, options ...grpc.CallOption) (*QuoteStayResponse, error) {
	response := new(QuoteStayResponse)
	if err := client.invoke(ctx, methodQuoteStay, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) CreateBooking(ctx context.Context, request *CreateBookingRequest, options ...grpc.CallOption) (*CreateBookingResponse, error) {
	response := new(CreateBookingResponse)
	if err := client.invoke(ctx, methodCreateBooking, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) PreviewRefund(ctx context.Context, request *PreviewRefundRequest, options ...grpc.CallOption) (*PreviewRefundResponse, error) {
	response := new(PreviewRefundResponse)
	if err := client.invoke(ctx, methodPreviewRefund, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) CancelBooking(ctx context.Context, request *CancelBookingRequest, options ...grpc.CallOption) (*CancelBookingResponse, error) {
	response := new(CancelBookingResponse)
	if err := client.invoke(ctx, methodCancelBooking, request, response, options); err != nil {
		return nil, err
	}
	return response, nil
}

func (client *bookingServiceClient) invoke(ctx context.Context, method string, request any, response any, options []grpc.CallOption) error {
	callOptions := make([]grpc.CallOption, 0, len(options)+1)
	callOptions = append(callOptions, grpc.CallContentSubtype(CodecName))
	callOptions = append(callOptions, options...)
	return client.conn.Invoke(ctx, FullMethodName(method), request, response, callOptions...)
}
