package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner>",
	Short: "Show mastery, topic proficiency, and zone completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learner := args[0]

		st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		g, err := st.Hierarchy().Graph(ctx)
		if err != nil {
			return fmt.Errorf("load hierarchy: %w", err)
		}
		mastery, err := st.Mastery().ForLearner(ctx, learner)
		if err != nil {
			return fmt.Errorf("load mastery: %w", err)
		}
		topicPct, err := st.Rollups().TopicProficiency(ctx, learner)
		if err != nil {
			return fmt.Errorf("load topic proficiency: %w", err)
		}
		zonePct, err := st.Rollups().ZoneCompletion(ctx, learner)
		if err != nil {
			return fmt.Errorf("load zone completion: %w", err)
		}

		if len(mastery) == 0 {
			fmt.Println("No mastery records yet")
			return nil
		}

		for _, z := range g.Zones() {
			fmt.Printf("%s  %s\n", z.Name, pctOrDash(zonePct, z.ID))
			for _, t := range g.TopicsIn(z.ID) {
				fmt.Printf("  %s  %s\n", t.Name, pctOrDash(topicPct, t.ID))
				subs := g.SubtopicsIn(t.ID)
				sort.Slice(subs, func(i, j int) bool { return subs[i].ID < subs[j].ID })
				for _, s := range subs {
					if _, ok := mastery[s.ID]; !ok {
						continue
					}
					fmt.Printf("    %s  %s\n", s.Name, pctOrDash(mastery, s.ID))
				}
			}
			fmt.Println(strings.Repeat("─", 40))
		}
		return nil
	},
}

func pctOrDash(m map[int]float64, id int) string {
	if pct, ok := m[id]; ok {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return "—"
}
