package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagServer string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "interview",
		Short:        "Practice technical interviews against the AI interviewer server",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8000", "interviewer server URL")

	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newTranscriptCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
