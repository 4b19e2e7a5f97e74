// Package client provides commands that exercise the Arena API over gRPC
package client

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	playerID   string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Arena API",
	Long:  `Client commands let you play the arena by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player", "", "Player id sent with every request")

	// Gladiator commands
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(statsCmd)
	ClientCmd.AddCommand(allocateCmd)
	ClientCmd.AddCommand(trainCmd)

	// Shop commands
	ClientCmd.AddCommand(buyCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)

	// Combat and queue commands
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(joinCmd)
	ClientCmd.AddCommand(pollCmd)

	// Catalog commands
	ClientCmd.AddCommand(racesCmd)
	ClientCmd.AddCommand(enemiesCmd)
	ClientCmd.AddCommand(equipmentCmd)
}

// createArenaClient dials the server and returns a client plus its cleanup
func createArenaClient() (*v1alpha1.ArenaServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewArenaServiceClient(conn), cleanup, nil
}

// requestContext applies the timeout and the player header
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if playerID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, v1alpha1.PlayerIDHeader, playerID)
	}
	return ctx, cancel
}

func requirePlayer() error {
	if playerID == "" {
		return fmt.Errorf("--player is required")
	}
	return nil
}

// parseAllocation reads "strength=40,vitality=30" style pairs
func parseAllocation(raw string) (map[string]int, error) {
	out := map[string]int{}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid allocation %q, expected stat=points", pair)
		}
		points, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid points for %s: %w", name, err)
		}
		out[strings.ToLower(strings.TrimSpace(name))] += points
	}
	return out, nil
}

func printStats(indent string, sheet arena.EffectiveStatSheet) {
	fmt.Printf("%sHealth: %d\n", indent, sheet.MaxHealth)
	for _, stat := range arena.Stats {
		fmt.Printf("%s%-12s %d\n", indent, stat, sheet.Get(stat))
	}
}

func printGladiator(g *v1alpha1.Gladiator) {
	if g == nil {
		return
	}
	race := ""
	if g.Race != nil {
		race = g.Race.Name
	}
	fmt.Printf("⚔️  %s the %s (player %s)\n", g.Name, race, g.PlayerID)
	fmt.Printf("   Level %d, %d/%d experience to next level\n", g.Level, g.Experience, g.ExperienceToNext)
	fmt.Printf("   Gold: %d   Unspent points: %d   Record: %d-%d\n", g.Gold, g.UnspentPoints, g.Wins, g.Losses)
	printStats("   ", g.Stats)

	if len(g.Equipped) > 0 {
		slots := make([]string, 0, len(g.Equipped))
		for slot := range g.Equipped {
			slots = append(slots, string(slot))
		}
		sort.Strings(slots)
		fmt.Println("   Equipped:")
		for _, slot := range slots {
			fmt.Printf("     %-10s %s\n", slot, g.Equipped[arena.Slot(slot)].Name)
		}
	}
	if len(g.Inventory) > 0 {
		fmt.Println("   Inventory:")
		for _, item := range g.Inventory {
			fmt.Printf("     %s (%s)\n", item.Name, item.ID)
		}
	}
}
