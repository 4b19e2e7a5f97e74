package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var buyCmd = &cobra.Command{
	Use:   "buy ITEM_ID",
	Short: "Buy an item from the shop",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuy,
}

var equipCmd = &cobra.Command{
	Use:   "equip SLOT ITEM_ID",
	Short: "Equip an owned item into a slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runEquip,
}

var unequipCmd = &cobra.Command{
	Use:   "unequip SLOT",
	Short: "Empty an equipment slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnequip,
}

func runBuy(_ *cobra.Command, args []string) error {
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

	resp, err := client.PurchaseItem(ctx, &v1alpha1.PurchaseItemRequest{PlayerID: playerID, ItemID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to buy %s: %w", args[0], err)
	}

	fmt.Printf("🛒 Bought %s for %d gold\n", resp.Item.Name, resp.Item.Value)
	printGladiator(resp.Gladiator)
	return nil
}

func runEquip(_ *cobra.Command, args []string) error {
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

	resp, err := client.EquipItem(ctx, &v1alpha1.EquipItemRequest{PlayerID: playerID, Slot: args[0], ItemID: args[1]})
	if err != nil {
		return fmt.Errorf("failed to equip %s: %w", args[1], err)
	}

	if resp.Replaced != nil {
		fmt.Printf("↩️  %s returned to inventory\n", resp.Replaced.Name)
	}
	printGladiator(resp.Gladiator)
	return nil
}

func runUnequip(_ *cobra.Command, args []string) error {
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

	resp, err := client.UnequipItem(ctx, &v1alpha1.UnequipItemRequest{PlayerID: playerID, Slot: args[0]})
	if err != nil {
		return fmt.Errorf("failed to unequip %s: %w", args[0], err)
	}

	if resp.Removed == nil {
		fmt.Printf("Slot %s was already empty\n", args[0])
	}
	printGladiator(resp.Gladiator)
	return nil
}
