package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/calibra/internal/app"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/engine"
	challengescreen "github.com/abhisek/calibra/internal/screens/challenge"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge <objective>",
	Short: "Take a controlled-failure challenge for an objective",
	Long: `Present the next controlled-failure challenge for an objective.

Without --answer the challenge runs in an interactive terminal UI. With
--answer and --confidence it is answered in one step, which suits scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: runChallenge,
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List objectives in the challenge bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, bank.Objectives)
		}
		rows := make([][]string, 0, len(bank.Objectives))
		for _, o := range bank.Objectives {
			rows = append(rows, []string{
				o.ID, o.Topic, strconv.Itoa(len(bank.ForObjective(o.ID))), truncate(o.Description, 50),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Objective", "Topic", "Challenges", "Description"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		))
		return nil
	},
}

var challengeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the learner's progress on every attempted objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sums, err := rt.engine.ChallengeStatus(cmd.Context(), userID, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, sums)
		}
		if len(sums) == 0 {
			fmt.Fprintln(out, "No challenges attempted yet.")
			return nil
		}
		rows := make([][]string, 0, len(sums))
		for _, s := range sums {
			next := "-"
			if s.NextRetry != nil {
				next = fmtTime(*s.NextRetry)
			}
			rows = append(rows, []string{
				s.ObjectiveID, string(s.State), strconv.Itoa(s.Attempts),
				fmtOptFloat(s.LastScore, "%.0f%%"), fmtTime(s.LastAttemptAt), next,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Objective", "State", "Attempts", "Last score", "Last attempt", "Next retry"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
		))
		return nil
	},
}

var challengeHistoryCmd = &cobra.Command{
	Use:   "history <objective>",
	Short: "List every attempt against an objective",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		attempts, err := rt.engine.ChallengeHistory(cmd.Context(), userID, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, attempts)
		}
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts recorded.")
			return nil
		}
		rows := make([][]string, 0, len(attempts))
		for _, a := range attempts {
			result := "✗"
			if a.IsCorrect {
				result = "✓"
			}
			rows = append(rows, []string{
				strconv.Itoa(a.AttemptNumber), a.ChallengeID, a.UserAnswer, result,
				strconv.Itoa(a.Confidence), string(a.EmotionTag), fmtTime(a.CreatedAt),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Challenge", "Answer", "OK", "Conf.", "Emotion", "When"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
		))
		return nil
	},
}

func runChallenge(cmd *cobra.Command, args []string) error {
	userID, err := resolveUser(cmd)
	if err != nil {
		return err
	}
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	objectiveID := args[0]
	c, pres, err := rt.engine.PresentChallenge(ctx, userID, objectiveID)
	if err != nil {
		if engine.ErrorKind(err) == engine.KindNotFound {
			return fmt.Errorf("%w (see 'calibra challenge list')", err)
		}
		return err
	}

	if cmd.Flags().Changed("answer") {
		return answerOnce(cmd, rt.engine, userID, c, pres)
	}

	submit := func(ctx context.Context, s challenge.Submission) (challenge.Attempt, error) {
		return rt.engine.SubmitChallenge(ctx, userID, c.ID, s)
	}
	scr := challengescreen.New(c, pres, submit)
	status := fmt.Sprintf("%s · attempt %d", objectiveID, pres.AttemptNumber)
	quitOn := func(msg tea.Msg) bool {
		_, ok := msg.(challengescreen.DoneMsg)
		return ok
	}
	if err := app.Run(scr, status, quitOn); err != nil {
		return err
	}

	if scr.Attempt() == nil {
		if err := rt.engine.AbandonChallenge(ctx, userID, objectiveID); err != nil {
			rt.log.Warn("abandon challenge", "objective_id", objectiveID, "error", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Challenge abandoned.")
	}
	return nil
}

func answerOnce(cmd *cobra.Command, eng *engine.Engine, userID string, c challenge.Challenge, pres challenge.Presentation) error {
	flags := cmd.Flags()
	var s challenge.Submission
	s.UserAnswer, _ = flags.GetString("answer")
	s.Confidence, _ = flags.GetInt("confidence")
	emotion, _ := flags.GetString("emotion")
	s.EmotionTag = challenge.EmotionTag(strings.ToLower(emotion))
	s.PersonalNotes, _ = flags.GetString("notes")

	a, err := eng.SubmitChallenge(cmd.Context(), userID, c.ID, s)
	if err != nil {
		if abandonErr := eng.AbandonChallenge(cmd.Context(), userID, c.ObjectiveID); abandonErr != nil {
			err = errors.Join(err, abandonErr)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return printJSON(out, a)
	}
	printAttempt(cmd, c, pres, a)
	return nil
}

func printAttempt(cmd *cobra.Command, c challenge.Challenge, pres challenge.Presentation, a challenge.Attempt) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.QuestionText)
	if msg := pres.LastTimeMessage(); msg != "" {
		fmt.Fprintln(out, msg)
	}
	fmt.Fprintln(out)

	if a.IsCorrect {
		fmt.Fprintln(out, "Correct.")
		if a.CelebrationMessage != "" {
			fmt.Fprintln(out, a.CelebrationMessage)
		}
		return
	}

	correct := c.CorrectOption()
	fmt.Fprintf(out, "Incorrect. The answer is %s) %s\n", strings.ToUpper(correct.ID), correct.Text)
	if fb := a.Feedback; fb != nil {
		pairs := [][2]string{
			{"Misconception", fb.MisconceptionExplained},
			{"Why wrong", fb.WhyAnswerWrong},
			{"Correct concept", fb.CorrectConcept},
			{"Clinical context", fb.ClinicalContext},
		}
		if fb.MemoryAnchor.Content != "" {
			pairs = append(pairs, [2]string{"Remember", fb.MemoryAnchor.Content})
		}
		fmt.Fprintln(out, renderPairs(pairs))
	}
	if len(a.RetrySchedule) > 0 {
		dates := make([]string, len(a.RetrySchedule))
		for i, t := range a.RetrySchedule {
			dates[i] = fmtTime(t)
		}
		fmt.Fprintf(out, "Retries scheduled: %s\n", strings.Join(dates, ", "))
	}
}

func init() {
	f := challengeCmd.Flags()
	f.String("answer", "", "Answer option id; skips the interactive UI")
	f.Int("confidence", 0, "Confidence in the answer, 1-5 (with --answer)")
	f.String("emotion", "", "How the learner feels: confident, confused, frustrated, surprised, anxious, curious")
	f.String("notes", "", "Personal notes")

	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeStatusCmd)
	challengeCmd.AddCommand(challengeHistoryCmd)
}
