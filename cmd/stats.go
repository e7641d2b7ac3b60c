package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's question exposure statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		ctx := context.Background()
		eng, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		stats, err := eng.tracker.Stats(ctx, userID)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("User:        %s\n", userID)
		fmt.Printf("Total seen:  %d\n", stats.TotalSeen)

		if len(stats.SeenByTopic) == 0 {
			return nil
		}

		topics := make([]string, 0, len(stats.SeenByTopic))
		for id := range stats.SeenByTopic {
			topics = append(topics, id)
		}
		sort.Strings(topics)

		fmt.Println()
		fmt.Printf("%-24s  %s\n", "Topic", "Seen")
		fmt.Println(strings.Repeat("─", 32))
		for _, id := range topics {
			fmt.Printf("%-24s  %d\n", id, stats.SeenByTopic[id])
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "User to report on")
	_ = statsCmd.MarkFlagRequired("user")
}
