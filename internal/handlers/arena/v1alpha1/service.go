package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/arena-api/internal/pkg/jsoncodec"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "arena.v1alpha1.ArenaService"

// ArenaServiceServer is the server API for the arena service.
type ArenaServiceServer interface {
	CreateGladiator(context.Context, *CreateGladiatorRequest) (*GladiatorResponse, error)
	GetGladiator(context.Context, *GetGladiatorRequest) (*GladiatorResponse, error)
	AllocatePoints(context.Context, *AllocatePointsRequest) (*GladiatorResponse, error)
	Train(context.Context, *TrainRequest) (*TrainResponse, error)
	ListRaces(context.Context, *ListRacesRequest) (*ListRacesResponse, error)
	ListEnemies(context.Context, *ListEnemiesRequest) (*ListEnemiesResponse, error)
	ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error)
	PurchaseItem(context.Context, *PurchaseItemRequest) (*PurchaseItemResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error)
	UnequipItem(context.Context, *UnequipItemRequest) (*UnequipItemResponse, error)
	DeriveStats(context.Context, *DeriveStatsRequest) (*DeriveStatsResponse, error)
	StartCombat(context.Context, *StartCombatRequest) (*StartCombatResponse, error)
	AdvanceRound(context.Context, *AdvanceRoundRequest) (*AdvanceRoundResponse, error)
	GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error)
	FinishCombat(context.Context, *FinishCombatRequest) (*FinishCombatResponse, error)
	JoinQueue(context.Context, *JoinQueueRequest) (*JoinQueueResponse, error)
	LeaveQueue(context.Context, *LeaveQueueRequest) (*LeaveQueueResponse, error)
	PollNotifications(context.Context, *PollNotificationsRequest) (*PollNotificationsResponse, error)
}

// UnimplementedArenaServiceServer answers every method with codes.Unimplemented.
type UnimplementedArenaServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedArenaServiceServer) CreateGladiator(context.Context, *CreateGladiatorRequest) (*GladiatorResponse, error) {
	return nil, unimplemented("CreateGladiator")
}
func (UnimplementedArenaServiceServer) GetGladiator(context.Context, *GetGladiatorRequest) (*GladiatorResponse, error) {
	return nil, unimplemented("GetGladiator")
}
func (UnimplementedArenaServiceServer) AllocatePoints(context.Context, *AllocatePointsRequest) (*GladiatorResponse, error) {
	return nil, unimplemented("AllocatePoints")
}
func (UnimplementedArenaServiceServer) Train(context.Context, *TrainRequest) (*TrainResponse, error) {
	return nil, unimplemented("Train")
}
func (UnimplementedArenaServiceServer) ListRaces(context.Context, *ListRacesRequest) (*ListRacesResponse, error) {
	return nil, unimplemented("ListRaces")
}
func (UnimplementedArenaServiceServer) ListEnemies(context.Context, *ListEnemiesRequest) (*ListEnemiesResponse, error) {
	return nil, unimplemented("ListEnemies")
}
func (UnimplementedArenaServiceServer) ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error) {
	return nil, unimplemented("ListEquipment")
}
func (UnimplementedArenaServiceServer) PurchaseItem(context.Context, *PurchaseItemRequest) (*PurchaseItemResponse, error) {
	return nil, unimplemented("PurchaseItem")
}
func (UnimplementedArenaServiceServer) EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error) {
	return nil, unimplemented("EquipItem")
}
func (UnimplementedArenaServiceServer) UnequipItem(context.Context, *UnequipItemRequest) (*UnequipItemResponse, error) {
	return nil, unimplemented("UnequipItem")
}
func (UnimplementedArenaServiceServer) DeriveStats(context.Context, *DeriveStatsRequest) (*DeriveStatsResponse, error) {
	return nil, unimplemented("DeriveStats")
}
func (UnimplementedArenaServiceServer) StartCombat(context.Context, *StartCombatRequest) (*StartCombatResponse, error) {
	return nil, unimplemented("StartCombat")
}
func (UnimplementedArenaServiceServer) AdvanceRound(context.Context, *AdvanceRoundRequest) (*AdvanceRoundResponse, error) {
	return nil, unimplemented("AdvanceRound")
}
func (UnimplementedArenaServiceServer) GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error) {
	return nil, unimplemented("GetCombat")
}
func (UnimplementedArenaServiceServer) FinishCombat(context.Context, *FinishCombatRequest) (*FinishCombatResponse, error) {
	return nil, unimplemented("FinishCombat")
}
func (UnimplementedArenaServiceServer) JoinQueue(context.Context, *JoinQueueRequest) (*JoinQueueResponse, error) {
	return nil, unimplemented("JoinQueue")
}
func (UnimplementedArenaServiceServer) LeaveQueue(context.Context, *LeaveQueueRequest) (*LeaveQueueResponse, error) {
	return nil, unimplemented("LeaveQueue")
}
func (UnimplementedArenaServiceServer) PollNotifications(context.Context, *PollNotificationsRequest) (*PollNotificationsResponse, error) {
	return nil, unimplemented("PollNotifications")
}

// RegisterArenaServiceServer registers srv on s.
func RegisterArenaServiceServer(s grpc.ServiceRegistrar, srv ArenaServiceServer) {
	s.RegisterService(&ArenaServiceDesc, srv)
}

// unary builds the method descriptor for one RPC. Requests are decoded by
// whatever codec the call negotiated, which is the JSON codec for this service.
func unary[Req any, Resp any](
	method string,
	call func(ArenaServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ArenaServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ArenaServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ArenaServiceDesc describes the arena service for grpc.Server.
var ArenaServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArenaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateGladiator", ArenaServiceServer.CreateGladiator),
		unary("GetGladiator", ArenaServiceServer.GetGladiator),
		unary("AllocatePoints", ArenaServiceServer.AllocatePoints),
		unary("Train", ArenaServiceServer.Train),
		unary("ListRaces", ArenaServiceServer.ListRaces),
		unary("ListEnemies", ArenaServiceServer.ListEnemies),
		unary("ListEquipment", ArenaServiceServer.ListEquipment),
		unary("PurchaseItem", ArenaServiceServer.PurchaseItem),
		unary("EquipItem", ArenaServiceServer.EquipItem),
		unary("UnequipItem", ArenaServiceServer.UnequipItem),
		unary("DeriveStats", ArenaServiceServer.DeriveStats),
		unary("StartCombat", ArenaServiceServer.StartCombat),
		unary("AdvanceRound", ArenaServiceServer.AdvanceRound),
		unary("GetCombat", ArenaServiceServer.GetCombat),
		unary("FinishCombat", ArenaServiceServer.FinishCombat),
		unary("JoinQueue", ArenaServiceServer.JoinQueue),
		unary("LeaveQueue", ArenaServiceServer.LeaveQueue),
		unary("PollNotifications", ArenaServiceServer.PollNotifications),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/arena_service",
}

// ArenaServiceClient is the client API for the arena service. Every call is
// sent with the JSON content subtype.
type ArenaServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArenaServiceClient wraps a client connection.
func NewArenaServiceClient(cc grpc.ClientConnInterface) *ArenaServiceClient {
	return &ArenaServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *ArenaServiceClient, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ArenaServiceClient) CreateGladiator(ctx context.Context, in *CreateGladiatorRequest, opts ...grpc.CallOption) (*GladiatorResponse, error) {
	return invoke[GladiatorResponse](ctx, c, "CreateGladiator", in, opts)
}

func (c *ArenaServiceClient) GetGladiator(ctx context.Context, in *GetGladiatorRequest, opts ...grpc.CallOption) (*GladiatorResponse, error) {
	return invoke[GladiatorResponse](ctx, c, "GetGladiator", in, opts)
}

func (c *ArenaServiceClient) AllocatePoints(ctx context.Context, in *AllocatePointsRequest, opts ...grpc.CallOption) (*GladiatorResponse, error) {
	return invoke[GladiatorResponse](ctx, c, "AllocatePoints", in, opts)
}

func (c *ArenaServiceClient) Train(ctx context.Context, in *TrainRequest, opts ...grpc.CallOption) (*TrainResponse, error) {
	return invoke[TrainResponse](ctx, c, "Train", in, opts)
}

func (c *ArenaServiceClient) ListRaces(ctx context.Context, in *ListRacesRequest, opts ...grpc.CallOption) (*ListRacesResponse, error) {
	return invoke[ListRacesResponse](ctx, c, "ListRaces", in, opts)
}

func (c *ArenaServiceClient) ListEnemies(ctx context.Context, in *ListEnemiesRequest, opts ...grpc.CallOption) (*ListEnemiesResponse, error) {
	return invoke[ListEnemiesResponse](ctx, c, "ListEnemies", in, opts)
}

func (c *ArenaServiceClient) ListEquipment(ctx context.Context, in *ListEquipmentRequest, opts ...grpc.CallOption) (*ListEquipmentResponse, error) {
	return invoke[ListEquipmentResponse](ctx, c, "ListEquipment", in, opts)
}

func (c *ArenaServiceClient) PurchaseItem(ctx context.Context, in *PurchaseItemRequest, opts ...grpc.CallOption) (*PurchaseItemResponse, error) {
	return invoke[PurchaseItemResponse](ctx, c, "PurchaseItem", in, opts)
}

func (c *ArenaServiceClient) EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error) {
	return invoke[EquipItemResponse](ctx, c, "EquipItem", in, opts)
}

func (c *ArenaServiceClient) UnequipItem(ctx context.Context, in *UnequipItemRequest, opts ...grpc.CallOption) (*UnequipItemResponse, error) {
	return invoke[UnequipItemResponse](ctx, c, "UnequipItem", in, opts)
}

func (c *ArenaServiceClient) DeriveStats(ctx context.Context, in *DeriveStatsRequest, opts ...grpc.CallOption) (*DeriveStatsResponse, error) {
	return invoke[DeriveStatsResponse](ctx, c, "DeriveStats", in, opts)
}

func (c *ArenaServiceClient) StartCombat(ctx context.Context, in *StartCombatRequest, opts ...grpc.CallOption) (*StartCombatResponse, error) {
	return invoke[StartCombatResponse](ctx, c, "StartCombat", in, opts)
}

func (c *ArenaServiceClient) AdvanceRound(ctx context.Context, in *AdvanceRoundRequest, opts ...grpc.CallOption) (*AdvanceRoundResponse, error) {
	return invoke[AdvanceRoundResponse](ctx, c, "AdvanceRound", in, opts)
}

func (c *ArenaServiceClient) GetCombat(ctx context.Context, in *GetCombatRequest, opts ...grpc.CallOption) (*GetCombatResponse, error) {
	return invoke[GetCombatResponse](ctx, c, "GetCombat", in, opts)
}

func (c *ArenaServiceClient) FinishCombat(ctx context.Context, in *FinishCombatRequest, opts ...grpc.CallOption) (*FinishCombatResponse, error) {
	return invoke[FinishCombatResponse](ctx, c, "FinishCombat", in, opts)
}

func (c *ArenaServiceClient) JoinQueue(ctx context.Context, in *JoinQueueRequest, opts ...grpc.CallOption) (*JoinQueueResponse, error) {
	return invoke[JoinQueueResponse](ctx, c, "JoinQueue", in, opts)
}

func (c *ArenaServiceClient) LeaveQueue(ctx context.Context, in *LeaveQueueRequest, opts ...grpc.CallOption) (*LeaveQueueResponse, error) {
	return invoke[LeaveQueueResponse](ctx, c, "LeaveQueue", in, opts)
}

func (c *ArenaServiceClient) PollNotifications(ctx context.Context, in *PollNotificationsRequest, opts ...grpc.CallOption) (*PollNotificationsResponse, error) {
	return invoke[PollNotificationsResponse](ctx, c, "PollNotifications", in, opts)
}
