package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ai-interviewer/backend/internal/api"
	"github.com/ai-interviewer/backend/internal/domain/interview"
)

func newTranscriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <session-id>",
		Short: "Print the questions, answers and scores of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := NewClient(flagServer).Transcript(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTranscript(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func printTranscript(out io.Writer, t api.SessionResponse) {
	fmt.Fprintf(out, "Session %s: %s (%s)\n", t.SessionID, t.Topic, t.State)
	for i, turn := range t.History {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, turn.Question)
		fmt.Fprintf(out, "   Answer:   %s\n", turn.Answer)
		fmt.Fprintf(out, "   Feedback: %s\n", turn.Feedback)
		fmt.Fprintf(out, "   Score:    %s/%d\n", interview.FormatScore(turn.Score), interview.MaxScorePerRound)
	}
	fmt.Fprintf(out, "\nTotal: %s/%d\n", interview.FormatScore(t.TotalScore), t.MaxScore)
}
