package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var (
		topic     string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run an interactive interview",
		Long: `Start an interview on a topic and answer each question on stdin.
The interview ends with a summary after the server's round limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				id, err := gonanoid.New()
				if err != nil {
					return fmt.Errorf("generate session id: %w", err)
				}
				sessionID = id
			}
			return runChat(cmd.Context(), NewClient(flagServer), cmd.InOrStdin(), cmd.OutOrStdout(), sessionID, topic)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "interview topic (asked interactively when empty)")
	cmd.Flags().StringVar(&sessionID, "session", "", "session id (random when empty)")

	return cmd
}

// runChat drives one interview: topic first, then answers until the server
// returns a summary or input ends.
func runChat(ctx context.Context, c *Client, in io.Reader, out io.Writer, sessionID, topic string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	fmt.Fprintln(out, "Hi, I'm your AI Interviewer.")
	if topic == "" {
		fmt.Fprint(out, "Type your topic (e.g. JavaScript)\n> ")
		line, ok := readLine(scanner)
		if !ok {
			return errors.New("no topic given")
		}
		topic = line
	}

	question, err := c.Start(ctx, sessionID, topic)
	if err != nil {
		return fmt.Errorf("couldn't get a question: %w", err)
	}
	fmt.Fprintf(out, "Session: %s\n\n%s\n\n> ", sessionID, question)

	for {
		answer, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		reply, err := c.Answer(ctx, sessionID, answer)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nFeedback: %s\n\n", reply.Feedback)
		if reply.Summary != "" {
			fmt.Fprintln(out, reply.Summary)
			return nil
		}
		fmt.Fprintf(out, "%s\n\n> ", reply.NextQuestion)
	}
}

// readLine returns the next non-blank line.
func readLine(s *bufio.Scanner) (string, bool) {
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}
