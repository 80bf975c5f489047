package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/classify"
	"github.com/spigell/offer-advisor/internal/compensation"
	"github.com/spigell/offer-advisor/internal/evaluation"
	"github.com/spigell/offer-advisor/internal/taxonomy"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Derive a job title from skills and projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skills")
		projects, _ := cmd.Flags().GetStringArray("project")
		title, _ := cmd.Flags().GetString("title")
		score, _ := cmd.Flags().GetFloat64("score")

		derived := classify.New(zap.NewNop()).Classify(skills, projects, title)
		fmt.Printf("title: %s\n", derived)

		scores := classify.Score(skills, projects)
		for _, id := range scores.Ranked() {
			fmt.Printf("  %-28s %.2f\n", taxonomy.Label(id), scores[id])
		}

		directions := evaluation.SkillDirections(skills, projects)
		if len(directions) > 0 {
			labels := make([]string, 0, len(directions))
			for _, d := range directions {
				labels = append(labels, d.Label)
			}
			fmt.Printf("directions: %s\n", strings.Join(labels, ", "))
		}

		if cmd.Flags().Changed("score") {
			rec := compensation.NewEngine(zap.NewNop()).Recommend(derived, score, nil)
			fmt.Printf("offer (%s tier, %s): %s\n", rec.Tier, rec.Source, rec.Summary())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringSliceP("skills", "s", nil, "comma separated technical skills")
	classifyCmd.Flags().StringArrayP("project", "p", nil, "project description, may be repeated")
	classifyCmd.Flags().StringP("title", "t", "", "explicit target position")
	classifyCmd.Flags().Float64("score", 0, "overall interview score; prints a baseline offer when set")
}
