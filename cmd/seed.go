package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pygrounds/adaptive/internal/hierarchy"
	"github.com/pygrounds/adaptive/internal/store"
)

// hierarchySeed is the on-disk shape of a content hierarchy file.
type hierarchySeed struct {
	Zones []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Order int    `json:"order"`
	} `json:"zones"`
	Topics []struct {
		ID     int    `json:"id"`
		ZoneID int    `json:"zone_id"`
		Name   string `json:"name"`
		Order  int    `json:"order"`
	} `json:"topics"`
	Subtopics []struct {
		ID      int    `json:"id"`
		TopicID int    `json:"topic_id"`
		Name    string `json:"name"`
	} `json:"subtopics"`
}

// itemSeed is the on-disk shape of a candidate item.
type itemSeed struct {
	ID         int            `json:"id"`
	SubtopicID int            `json:"subtopic_id"`
	GameType   string         `json:"game_type"`
	Difficulty string         `json:"difficulty"`
	Answer     string         `json:"answer,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the content hierarchy and candidate items from JSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		hierPath, _ := cmd.Flags().GetString("hierarchy")
		itemsPath, _ := cmd.Flags().GetString("items")
		if hierPath == "" && itemsPath == "" {
			return fmt.Errorf("nothing to seed: pass --hierarchy and/or --items")
		}

		st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		if hierPath != "" {
			var hs hierarchySeed
			if err := decodeFile(hierPath, &hs); err != nil {
				return err
			}

			zones := make([]hierarchy.Zone, len(hs.Zones))
			for i, z := range hs.Zones {
				zones[i] = hierarchy.Zone{ID: z.ID, Name: z.Name, Order: z.Order}
			}
			topics := make([]hierarchy.Topic, len(hs.Topics))
			for i, t := range hs.Topics {
				topics[i] = hierarchy.Topic{ID: t.ID, ZoneID: t.ZoneID, Name: t.Name, Order: t.Order}
			}
			subs := make([]hierarchy.Subtopic, len(hs.Subtopics))
			for i, s := range hs.Subtopics {
				subs[i] = hierarchy.Subtopic{ID: s.ID, TopicID: s.TopicID, Name: s.Name}
			}

			if err := st.Hierarchy().Seed(ctx, zones, topics, subs); err != nil {
				return fmt.Errorf("seed hierarchy: %w", err)
			}
			fmt.Printf("Seeded %d zones, %d topics, %d subtopics\n",
				len(zones), len(topics), len(subs))
		}

		if itemsPath != "" {
			var raw []itemSeed
			if err := decodeFile(itemsPath, &raw); err != nil {
				return err
			}

			items := make([]store.ItemSeed, len(raw))
			for i, it := range raw {
				items[i] = store.ItemSeed{
					ID:         it.ID,
					SubtopicID: it.SubtopicID,
					GameType:   it.GameType,
					Difficulty: it.Difficulty,
					Answer:     it.Answer,
					Meta:       it.Meta,
				}
			}

			if err := st.Items().Seed(ctx, items); err != nil {
				return fmt.Errorf("seed items: %w", err)
			}
			fmt.Printf("Seeded %d items\n", len(items))
		}

		return nil
	},
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func init() {
	seedCmd.Flags().String("hierarchy", "", "Path to a hierarchy JSON file")
	seedCmd.Flags().String("items", "", "Path to an items JSON file")
}
