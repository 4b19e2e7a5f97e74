package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var enemyLevel int

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "List playable races",
	RunE:  runRaces,
}

var enemiesCmd = &cobra.Command{
	Use:   "enemies",
	Short: "List arena enemies",
	RunE:  runEnemies,
}

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "List the shop",
	RunE:  runEquipment,
}

func init() {
	enemiesCmd.Flags().IntVar(&enemyLevel, "level", 0, "Only enemies unlocked at this level (0 lists all)")
}

func runRaces(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListRaces(ctx, &v1alpha1.ListRacesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list races: %w", err)
	}

	fmt.Printf("Found %d races:\n\n", len(resp.Races))
	for _, race := range resp.Races {
		fmt.Printf("🎭 %s (ID: %s)\n", race.Name, race.ID)
		if race.Description != "" {
			fmt.Printf("   %s\n", race.Description)
		}
		for _, bonus := range race.Bonuses {
			fmt.Printf("   %+d%% %s\n", bonus.Percent, bonus.Stat)
		}
		for _, ability := range race.Abilities {
			fmt.Printf("   • %s\n", ability)
		}
		fmt.Println()
	}
	return nil
}

func runEnemies(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListEnemies(ctx, &v1alpha1.ListEnemiesRequest{Level: enemyLevel})
	if err != nil {
		return fmt.Errorf("failed to list enemies: %w", err)
	}

	fmt.Printf("Found %d enemies:\n\n", len(resp.Enemies))
	for _, enemy := range resp.Enemies {
		fmt.Printf("👹 %s (ID: %s) level %d, reward x%.2f\n", enemy.Name, enemy.ID, enemy.MinLevel, enemy.Coefficient)
		if enemy.Description != "" {
			fmt.Printf("   %s\n", enemy.Description)
		}
	}
	return nil
}

func runEquipment(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListEquipment(ctx, &v1alpha1.ListEquipmentRequest{})
	if err != nil {
		return fmt.Errorf("failed to list equipment: %w", err)
	}

	fmt.Printf("Found %d items:\n\n", len(resp.Items))
	for _, item := range resp.Items {
		fmt.Printf("🗡️  %s (ID: %s) [%s] %d gold, level %d\n",
			item.Name, item.ID, item.Slot, item.Value, item.LevelRequirement)
	}
	return nil
}
