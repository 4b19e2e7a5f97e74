package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var enemyID string

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Fight an arena battle to the end",
	Long:  `Start a battle against a named enemy (or a random opponent), advance every round and collect the reward.`,
	RunE:  runFight,
}

func init() {
	fightCmd.Flags().StringVar(&enemyID, "enemy", "", "Enemy id (empty for a random opponent)")
}

func runFight(_ *cobra.Command, _ []string) error {
	if err := requirePlayer(); err != nil {
		return err
	}

	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	started, err := client.StartCombat(ctx, &v1alpha1.StartCombatRequest{PlayerID: playerID, EnemyID: enemyID})
	if err != nil {
		return fmt.Errorf("failed to start combat: %w", err)
	}
	fmt.Printf("🏟️  %s\n", started.Message)
	if started.DiscardedSessionID != "" {
		fmt.Printf("   (abandoned session %s was discarded)\n", started.DiscardedSessionID)
	}

	sessionID := started.Session.ID
	for {
		advanced, err := client.AdvanceRound(ctx, &v1alpha1.AdvanceRoundRequest{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to advance round: %w", err)
		}
		fmt.Printf("Round %d\n", advanced.Outcome.Round)
		for _, action := range advanced.Outcome.Actions {
			fmt.Printf("   %s\n", action.Text)
		}
		fmt.Printf("   Health: you %d, opponent %d\n", advanced.Outcome.PlayerHealth, advanced.Outcome.OpponentHealth)
		if advanced.Outcome.Finished {
			break
		}
	}

	finished, err := client.FinishCombat(ctx, &v1alpha1.FinishCombatRequest{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to finish combat: %w", err)
	}

	if finished.Result == "victory" {
		fmt.Println("🏆 Victory!")
	} else {
		fmt.Println("💀 Defeat")
	}
	fmt.Printf("   +%d gold, +%d experience\n", finished.Gold, finished.Experience)
	if finished.LeveledUp {
		fmt.Printf("🎉 Reached level %d with %d new stat points\n", finished.NewLevel, finished.NewStatPoints)
	}
	return nil
}
