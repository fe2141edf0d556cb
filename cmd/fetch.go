package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <learner>",
	Short: "Select practice items for the learner's current zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner := args[0]
		gameType, _ := cmd.Flags().GetString("game-type")
		limit, _ := cmd.Flags().GetInt("limit")
		exclude, _ := cmd.Flags().GetIntSlice("exclude")

		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ids, err := eng.SelectItems(cmd.Context(), learner, gameType, limit, exclude)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No items available")
			return nil
		}

		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("game-type", "quiz", "Minigame type (e.g. quiz, hangman, debugging)")
	fetchCmd.Flags().Int("limit", 10, "Maximum number of items to select")
	fetchCmd.Flags().IntSlice("exclude", nil, "Item IDs to exclude (already served this session)")
}
