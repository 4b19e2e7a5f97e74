package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

var leave bool

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Join (or with --leave, leave) the random battle queue",
	RunE:  runJoin,
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Read your notifications",
	RunE:  runPoll,
}

func init() {
	joinCmd.Flags().BoolVar(&leave, "leave", false, "Leave the queue instead of joining")
}

func runJoin(_ *cobra.Command, _ []string) error {
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

	if leave {
		resp, err := client.LeaveQueue(ctx, &v1alpha1.LeaveQueueRequest{PlayerID: playerID})
		if err != nil {
			return fmt.Errorf("failed to leave queue: %w", err)
		}
		if resp.Removed {
			fmt.Println("Left the queue")
		} else {
			fmt.Println("You were not queued")
		}
		return nil
	}

	resp, err := client.JoinQueue(ctx, &v1alpha1.JoinQueueRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to join queue: %w", err)
	}
	fmt.Printf("[%s] %s\n", resp.Status, resp.Message)
	return nil
}

func runPoll(_ *cobra.Command, _ []string) error {
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

	resp, err := client.PollNotifications(ctx, &v1alpha1.PollNotificationsRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to poll notifications: %w", err)
	}

	if len(resp.Notifications) == 0 {
		fmt.Println("No new notifications")
	}
	for _, n := range resp.Notifications {
		fmt.Printf("📬 %s  %s\n", n.CreatedAt.Format("15:04:05"), n.Message)
	}
	if resp.Queued {
		fmt.Println("Still waiting for an opponent...")
	}
	return nil
}
