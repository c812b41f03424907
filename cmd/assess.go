package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/calibra/internal/calibration"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Record a graded response with its self-rated confidence",
	Example: `  calibra assess --prompt q-17 --objective cardio-acs-ecg --confidence 4 --score 50
  calibra assess --prompt q-18 --objective renal-aki --confidence 2 --score 100 --post 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		a := calibration.Assessment{UserID: userID}
		a.PromptID, _ = flags.GetString("prompt")
		a.ObjectiveID, _ = flags.GetString("objective")
		a.PreConfidence, _ = flags.GetInt("confidence")
		a.Score, _ = flags.GetFloat64("score")
		a.Rationale, _ = flags.GetString("rationale")
		a.ReflectionNotes, _ = flags.GetString("notes")
		if flags.Changed("post") {
			post, _ := flags.GetInt("post")
			a.PostConfidence = &post
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.engine.RecordAssessment(cmd.Context(), a)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, res)
		}
		fmt.Fprintln(out, renderPairs([][2]string{
			{"Confidence", strconv.Itoa(res.ConfidenceNormalized) + "%"},
			{"Score", fmt.Sprintf("%.0f%%", a.Score)},
			{"Delta", fmt.Sprintf("%+.1f", res.CalibrationDelta)},
			{"Category", res.Category.DisplayName()},
		}))
		fmt.Fprintln(out, res.FeedbackMessage)
		return nil
	},
}

func init() {
	f := assessCmd.Flags()
	f.String("prompt", "", "Prompt (question) id")
	f.String("objective", "", "Learning objective id")
	f.Int("confidence", 0, "Confidence before answering, 1-5")
	f.Float64("score", 0, "Graded score, 0-100")
	f.Int("post", 0, "Confidence after answering, 1-5")
	f.String("rationale", "", "Why the learner chose their answer")
	f.String("notes", "", "Reflection notes")
	_ = assessCmd.MarkFlagRequired("prompt")
	_ = assessCmd.MarkFlagRequired("objective")
	_ = assessCmd.MarkFlagRequired("confidence")
	_ = assessCmd.MarkFlagRequired("score")
}
