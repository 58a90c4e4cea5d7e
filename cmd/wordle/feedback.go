package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback TARGET GUESS",
	Short: "Print the clues GUESS would get against TARGET",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wordle.Feedback(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}
