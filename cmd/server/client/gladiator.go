package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var (
	gladiatorName string
	gladiatorRace string
	allocation    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create (or replace) your gladiator",
	Long:  `Create a gladiator from a race and a point allocation, e.g. --alloc strength=40,vitality=40,stamina=20,dodge=10,initiative=20,weaponskill=20`,
	RunE:  runCreate,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your gladiator",
	RunE:  runStats,
}

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Spend unspent stat points",
	RunE:  runAllocate,
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Pay gold for a training session",
	RunE:  runTrain,
}

func init() {
	createCmd.Flags().StringVar(&gladiatorName, "name", "", "Gladiator name")
	createCmd.Flags().StringVar(&gladiatorRace, "race", "human", "Race id (see 'client races')")
	createCmd.Flags().StringVar(&allocation, "alloc", "", "Point allocation as stat=points pairs")

	allocateCmd.Flags().StringVar(&allocation, "alloc", "", "Point allocation as stat=points pairs")
}

func runCreate(_ *cobra.Command, _ []string) error {
	if err := requirePlayer(); err != nil {
		return err
	}
	alloc, err := parseAllocation(allocation)
	if err != nil {
		return err
	}

	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.CreateGladiator(ctx, &v1alpha1.CreateGladiatorRequest{
		PlayerID:   playerID,
		Name:       gladiatorName,
		Race:       gladiatorRace,
		Allocation: alloc,
	})
	if err != nil {
		return fmt.Errorf("failed to create gladiator: %w", err)
	}

	fmt.Println("✅ Gladiator created")
	printGladiator(resp.Gladiator)
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
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

	resp, err := client.GetGladiator(ctx, &v1alpha1.GetGladiatorRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to get gladiator: %w", err)
	}

	printGladiator(resp.Gladiator)
	return nil
}

func runAllocate(_ *cobra.Command, _ []string) error {
	if err := requirePlayer(); err != nil {
		return err
	}
	alloc, err := parseAllocation(allocation)
	if err != nil {
		return err
	}

	client, cleanup, err := createArenaClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.AllocatePoints(ctx, &v1alpha1.AllocatePointsRequest{PlayerID: playerID, Allocation: alloc})
	if err != nil {
		return fmt.Errorf("failed to allocate points: %w", err)
	}

	fmt.Println("✅ Points allocated")
	printGladiator(resp.Gladiator)
	return nil
}

func runTrain(_ *cobra.Command, _ []string) error {
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

	resp, err := client.Train(ctx, &v1alpha1.TrainRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to train: %w", err)
	}

	fmt.Printf("🏋️  Training cost %d gold and earned %d experience\n", resp.GoldSpent, resp.Experience)
	if resp.LeveledUp {
		fmt.Printf("🎉 Level up! %d new stat points\n", resp.NewStatPoints)
	}
	printGladiator(resp.Gladiator)
	return nil
}
