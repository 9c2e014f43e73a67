// Package client provides debug commands that call the adventure gRPC service
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/rpg-adventure/internal/handlers/adventure/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the adventure service",
	Long:  `Client commands call a running adventure server and print the JSON response.`,
}

// action maps positional arguments onto request fields
type action struct {
	method string
	fields []string
	short  string
}

var actions = []action{
	{v1alpha1.MethodStart, []string{"player_id", "name"}, "Create a character"},
	{v1alpha1.MethodGetStatus, []string{"player_id"}, "Show the character sheet"},
	{v1alpha1.MethodTick, []string{"player_id"}, "Apply one survival tick"},
	{v1alpha1.MethodMove, []string{"player_id", "direction"}, "Move one tile"},
	{v1alpha1.MethodLook, []string{"player_id"}, "Show what is nearby"},
	{v1alpha1.MethodTake, []string{"player_id", "item_name"}, "Pick up a nearby item"},
	{v1alpha1.MethodAttack, []string{"player_id", "target_name"}, "Attack a nearby enemy"},
	{v1alpha1.MethodTalk, []string{"player_id", "npc_name"}, "Talk to a nearby NPC"},
	{v1alpha1.MethodAcceptQuest, []string{"player_id"}, "Accept a new quest"},
	{v1alpha1.MethodListQuests, []string{"player_id"}, "List quests"},
	{v1alpha1.MethodGetInventory, []string{"player_id"}, "Show the inventory"},
	{v1alpha1.MethodGetSkills, []string{"player_id"}, "Show skills"},
	{v1alpha1.MethodCraft, []string{"player_id", "recipe"}, "Craft a recipe"},
	{v1alpha1.MethodUseItem, []string{"player_id", "item_name"}, "Use a consumable"},
	{v1alpha1.MethodEquip, []string{"player_id", "item_name"}, "Equip an item"},
	{v1alpha1.MethodUnequip, []string{"player_id", "slot"}, "Unequip a slot"},
	{v1alpha1.MethodBuy, []string{"player_id", "item_name", "merchant_name"}, "Buy from a merchant"},
	{v1alpha1.MethodSell, []string{"player_id", "item_name", "merchant_name"}, "Sell to a merchant"},
	{v1alpha1.MethodTradeWithPlayer, []string{"buyer_id", "seller_id", "item_name", "price"}, "Trade with another player"},
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	for _, a := range actions {
		ClientCmd.AddCommand(newActionCmd(a))
	}
}

func newActionCmd(a action) *cobra.Command {
	args := make([]string, 0, len(a.fields))
	for _, f := range a.fields {
		args = append(args, "<"+f+">")
	}

	minArgs := len(a.fields)
	if a.method == v1alpha1.MethodStart {
		// name is optional
		minArgs = 1
	}

	return &cobra.Command{
		Use:   kebab(a.method) + " " + strings.Join(args, " "),
		Short: a.short,
		Args:  cobra.RangeArgs(minArgs, len(a.fields)),
		RunE: func(cmd *cobra.Command, values []string) error {
			req, err := buildRequest(a.fields, values)
			if err != nil {
				return err
			}
			return call(cmd.Context(), a.method, req)
		},
	}
}

func buildRequest(fields, values []string) (*structpb.Struct, error) {
	m := make(map[string]any, len(values))
	for i, v := range values {
		if fields[i] == "price" {
			price, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("price must be a number: %w", err)
			}
			m[fields[i]] = price
			continue
		}
		m[fields[i]] = v
	}
	return structpb.NewStruct(m)
}

// kebab turns a method name like GetInventory into get-inventory
func kebab(method string) string {
	var b strings.Builder
	for i, r := range method {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

func call(ctx context.Context, method string, req *structpb.Struct) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := v1alpha1.NewClient(conn).Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
