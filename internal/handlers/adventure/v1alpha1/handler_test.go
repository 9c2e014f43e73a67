package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-adventure/internal/handlers/adventure/v1alpha1"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
	adventuremock "github.com/KirkDiggler/rpg-adventure/internal/services/adventure/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *adventuremock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = adventuremock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AdventureService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.ctx = context.Background()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestMissingFields() {
	testCases := []struct {
		name string
		call func(context.Context, *structpb.Struct) (*structpb.Struct, error)
		req  map[string]any
	}{
		{"start without player", s.handler.Start, map[string]any{}},
		{"move without direction", s.handler.Move, map[string]any{"player_id": "p1"}},
		{"take without item", s.handler.Take, map[string]any{"player_id": "p1", "item_name": "  "}},
		{"buy without merchant", s.handler.Buy, map[string]any{"player_id": "p1", "item_name": "Wood"}},
		{"trade without seller", s.handler.TradeWithPlayer, map[string]any{"buyer_id": "p1", "item_name": "Wood"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tc.call(s.ctx, s.request(tc.req))
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestStart() {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.mockService.EXPECT().
		Start(s.ctx, &adventure.StartInput{PlayerID: "p1", Name: "Aria"}).
		Return(&adventure.StartOutput{
			Created: true,
			Status: character.Status{
				ID:               "p1",
				Name:             "Aria",
				Level:            1,
				ExperienceToNext: 100,
				Gold:             100,
				Vitals:           character.Vitals{Health: 100, Stamina: 100, Hunger: 100, Thirst: 100},
				Stats:            stats.Stats{Strength: 10, Dexterity: 10, Intelligence: 10, Vitality: 10, Agility: 10},
				CreatedAt:        createdAt,
			},
		}, nil)

	resp, err := s.handler.Start(s.ctx, s.request(map[string]any{"player_id": "p1", "name": "Aria"}))
	s.Require().NoError(err)

	s.True(resp.GetFields()["created"].GetBoolValue())
	st := resp.GetFields()["status"].GetStructValue().GetFields()
	s.Equal("Aria", st["name"].GetStringValue())
	s.Equal(float64(100), st["gold"].GetNumberValue())
	s.Equal(float64(createdAt.Unix()), st["created_at"].GetNumberValue())
	s.Equal(float64(10), st["stats"].GetStructValue().GetFields()["agility"].GetNumberValue())
	s.Equal(float64(100), st["vitals"].GetStructValue().GetFields()["thirst"].GetNumberValue())
}

func (s *HandlerTestSuite) TestMoveConvertsEncounter() {
	s.mockService.EXPECT().
		Move(s.ctx, &adventure.MoveInput{PlayerID: "p1", Direction: "north"}).
		Return(&adventure.MoveOutput{Result: &character.MoveResult{
			Position:     character.Position{X: 0, Y: 1},
			StaminaSpent: 5,
			Encounter: character.EncounterView{
				Position: character.Position{X: 0, Y: 1},
				Items:    []character.ItemView{character.NewItemView(item.HealthPotion())},
				Enemies:  []character.NPCView{{ID: "npc_1", Name: "Bandit", Health: 75}},
			},
			Report: character.Report{
				QuestsAdvanced: []character.QuestView{{ID: "q1", Type: quest.TypeExploreAreas, Current: 1, Target: 10}},
			},
		}}, nil)

	resp, err := s.handler.Move(s.ctx, s.request(map[string]any{"player_id": "p1", "direction": "north"}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(float64(1), fields["position"].GetStructValue().GetFields()["y"].GetNumberValue())
	s.Equal(float64(5), fields["stamina_spent"].GetNumberValue())

	enc := fields["encounter"].GetStructValue().GetFields()
	s.Len(enc["items"].GetListValue().GetValues(), 1)
	s.Empty(enc["npcs"].GetListValue().GetValues())
	enemy := enc["enemies"].GetListValue().GetValues()[0].GetStructValue().GetFields()
	s.Equal("Bandit", enemy["name"].GetStringValue())

	advanced := fields["report"].GetStructValue().GetFields()["quests_advanced"].GetListValue().GetValues()
	s.Require().Len(advanced, 1)
	s.Equal(quest.TypeExploreAreas.String(), advanced[0].GetStructValue().GetFields()["type"].GetStringValue())
}

func (s *HandlerTestSuite) TestAttackReportsWeaponDurability() {
	s.mockService.EXPECT().
		Attack(s.ctx, &adventure.AttackInput{PlayerID: "p1", TargetName: "bandit"}).
		Return(&adventure.AttackOutput{Result: &character.AttackResult{
			TargetID:         "npc_1",
			TargetName:       "Bandit",
			Damage:           10,
			TargetHealth:     65,
			WeaponName:       item.NameRustyKnife,
			WeaponDurability: 99,
		}}, nil)

	resp, err := s.handler.Attack(s.ctx, s.request(map[string]any{"player_id": "p1", "target_name": "bandit"}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(item.NameRustyKnife, fields["weapon_name"].GetStringValue())
	s.Equal(float64(99), fields["weapon_durability"].GetNumberValue())
	s.Equal(float64(65), fields["target_health"].GetNumberValue())
}

func (s *HandlerTestSuite) TestServiceErrorKeepsReason() {
	s.mockService.EXPECT().
		Move(gomock.Any(), gomock.Any()).
		Return(nil, errors.InsufficientStamina(5, 2))

	_, err := s.handler.Move(s.ctx, s.request(map[string]any{"player_id": "p1", "direction": "north"}))
	s.Require().Error(err)
	s.Equal(codes.ResourceExhausted, status.Code(err))
	s.Equal(errors.ReasonInsufficientStamina, errors.GetReason(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestTradeWithPlayerPassesPrice() {
	s.mockService.EXPECT().
		TradeWithPlayer(s.ctx, &adventure.TradeWithPlayerInput{
			BuyerID:  "p1",
			SellerID: "p2",
			ItemName: "Wood",
			Price:    12,
		}).
		Return(&adventure.TradeWithPlayerOutput{Result: &character.TradeResult{
			Item:           character.NewItemView(item.Wood()),
			Price:          12,
			Gold:           88,
			CounterpartyID: "p2",
		}}, nil)

	resp, err := s.handler.TradeWithPlayer(s.ctx, s.request(map[string]any{
		"buyer_id":  "p1",
		"seller_id": "p2",
		"item_name": "Wood",
		"price":     12,
	}))
	s.Require().NoError(err)
	s.Equal(float64(88), resp.GetFields()["gold"].GetNumberValue())
	s.Equal("p2", resp.GetFields()["counterparty_id"].GetStringValue())
}

func (s *HandlerTestSuite) TestTradeWithPlayerRejectsBadPrice() {
	testCases := []struct {
		name    string
		price   any
		problem string
	}{
		{"missing", nil, "price: is required"},
		{"fractional", 12.5, "price: is invalid: must be a whole number"},
		{"negative", -1, "price: must be between 0 and 2147483647"},
		{"too large", 1e19, "price: must be between 0 and 2147483647"},
		{"string", "12", "price: is invalid: must be a number"},
		{"boolean", true, "price: is invalid: must be a number"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fields := map[string]any{"buyer_id": "p1", "seller_id": "p2", "item_name": "Wood"}
			if tc.price != nil {
				fields["price"] = tc.price
			}

			_, err := s.handler.TradeWithPlayer(s.ctx, s.request(fields))
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
			s.Contains(status.Convert(err).Message(), tc.problem)
		})
	}
}

func (s *HandlerTestSuite) TestGetInventoryEquipped() {
	s.mockService.EXPECT().
		GetInventory(s.ctx, &adventure.GetInventoryInput{PlayerID: "p1"}).
		Return(&adventure.GetInventoryOutput{Inventory: character.InventoryView{
			Items:     []character.ItemView{},
			Weight:    3,
			MaxWeight: 100,
			Gold:      100,
			Equipped:  map[equipment.EquipmentSlot]string{equipment.SlotWeapon: "Iron Sword"},
		}}, nil)

	resp, err := s.handler.GetInventory(s.ctx, s.request(map[string]any{"player_id": "p1"}))
	s.Require().NoError(err)

	equipped := resp.GetFields()["equipped"].GetStructValue().GetFields()
	s.Equal("Iron Sword", equipped[equipment.SlotWeapon.String()].GetStringValue())
	s.Equal(float64(100), resp.GetFields()["max_weight"].GetNumberValue())
}

func (s *HandlerTestSuite) TestListQuests() {
	s.mockService.EXPECT().
		ListQuests(s.ctx, &adventure.ListQuestsInput{PlayerID: "p1"}).
		Return(&adventure.ListQuestsOutput{Quests: character.QuestLog{
			Active:    []character.QuestView{{ID: "q2", Title: "Gather", Rewards: []string{"Wood"}}},
			Completed: []character.QuestView{{ID: "q1", Completed: true}},
		}}, nil)

	resp, err := s.handler.ListQuests(s.ctx, s.request(map[string]any{"player_id": "p1"}))
	s.Require().NoError(err)

	active := resp.GetFields()["active"].GetListValue().GetValues()
	s.Require().Len(active, 1)
	rewards := active[0].GetStructValue().GetFields()["rewards"].GetListValue().GetValues()
	s.Equal("Wood", rewards[0].GetStringValue())
	s.Len(resp.GetFields()["completed"].GetListValue().GetValues(), 1)
}

// ServerTestSuite drives the handler through a real grpc server over bufconn
type ServerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *adventuremock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      *v1alpha1.Client
	ctx         context.Context
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = adventuremock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{AdventureService: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterAdventureServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewClient(conn)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServerTestSuite) TestCallRoundTrip() {
	s.mockService.EXPECT().
		Tick(gomock.Any(), &adventure.TickInput{PlayerID: "p1"}).
		Return(&adventure.TickOutput{Vitals: character.Vitals{Health: 100, Stamina: 100, Hunger: 99.8, Thirst: 99.6}}, nil)

	req, err := structpb.NewStruct(map[string]any{"player_id": "p1"})
	s.Require().NoError(err)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodTick, req)
	s.Require().NoError(err)
	vitals := resp.GetFields()["vitals"].GetStructValue().GetFields()
	s.InDelta(99.6, vitals["thirst"].GetNumberValue(), 0.0001)
}

func (s *ServerTestSuite) TestErrorReasonCrossesTheWire() {
	s.mockService.EXPECT().
		Buy(gomock.Any(), gomock.Any()).
		Return(nil, errors.InsufficientFunds(50, 10).WithMeta("player_id", "p1"))

	req, err := structpb.NewStruct(map[string]any{
		"player_id":     "p1",
		"item_name":     "Iron Sword",
		"merchant_name": "Villager",
	})
	s.Require().NoError(err)

	_, err = s.client.Call(s.ctx, v1alpha1.MethodBuy, req)
	s.Require().Error(err)
	s.Equal(codes.ResourceExhausted, status.Code(err))

	back := errors.FromGRPCError(err)
	s.Equal(errors.ReasonInsufficientFunds, errors.GetReason(back))
	s.Equal("p1", errors.GetMeta(back)["player_id"])
}

func (s *ServerTestSuite) TestUnknownMethod() {
	_, err := s.client.Call(s.ctx, "Teleport", &structpb.Struct{})
	s.Require().Error(err)
	s.Equal(codes.Unimplemented, status.Code(err))
}
