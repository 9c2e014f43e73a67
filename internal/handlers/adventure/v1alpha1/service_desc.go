package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "adventure.api.v1alpha1.AdventureService"

// Method names
const (
	MethodStart           = "Start"
	MethodGetStatus       = "GetStatus"
	MethodTick            = "Tick"
	MethodMove            = "Move"
	MethodLook            = "Look"
	MethodTake            = "Take"
	MethodAttack          = "Attack"
	MethodTalk            = "Talk"
	MethodAcceptQuest     = "AcceptQuest"
	MethodListQuests      = "ListQuests"
	MethodGetInventory    = "GetInventory"
	MethodGetSkills       = "GetSkills"
	MethodCraft           = "Craft"
	MethodUseItem         = "UseItem"
	MethodEquip           = "Equip"
	MethodUnequip         = "Unequip"
	MethodBuy             = "Buy"
	MethodSell            = "Sell"
	MethodTradeWithPlayer = "TradeWithPlayer"
)

// AdventureServer is the server API for the adventure service. Requests
// and responses are generic structs keyed by snake_case field names.
type AdventureServer interface {
	Start(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Tick(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Move(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Look(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Take(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Attack(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Talk(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AcceptQuest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListQuests(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Craft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Equip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Unequip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Buy(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Sell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TradeWithPlayer(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(AdventureServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AdventureServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AdventureServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the wire path of a method, e.g.
// /adventure.api.v1alpha1.AdventureService/Move
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// AdventureServiceDesc describes the adventure service for grpc.Server
var AdventureServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AdventureServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodStart, AdventureServer.Start),
		methodDesc(MethodGetStatus, AdventureServer.GetStatus),
		methodDesc(MethodTick, AdventureServer.Tick),
		methodDesc(MethodMove, AdventureServer.Move),
		methodDesc(MethodLook, AdventureServer.Look),
		methodDesc(MethodTake, AdventureServer.Take),
		methodDesc(MethodAttack, AdventureServer.Attack),
		methodDesc(MethodTalk, AdventureServer.Talk),
		methodDesc(MethodAcceptQuest, AdventureServer.AcceptQuest),
		methodDesc(MethodListQuests, AdventureServer.ListQuests),
		methodDesc(MethodGetInventory, AdventureServer.GetInventory),
		methodDesc(MethodGetSkills, AdventureServer.GetSkills),
		methodDesc(MethodCraft, AdventureServer.Craft),
		methodDesc(MethodUseItem, AdventureServer.UseItem),
		methodDesc(MethodEquip, AdventureServer.Equip),
		methodDesc(MethodUnequip, AdventureServer.Unequip),
		methodDesc(MethodBuy, AdventureServer.Buy),
		methodDesc(MethodSell, AdventureServer.Sell),
		methodDesc(MethodTradeWithPlayer, AdventureServer.TradeWithPlayer),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adventure/api/v1alpha1/adventure.proto",
}

// RegisterAdventureServer registers the handler on s
func RegisterAdventureServer(s grpc.ServiceRegistrar, srv AdventureServer) {
	s.RegisterService(&AdventureServiceDesc, srv)
}

// Client calls the adventure service
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps a connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with req
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
