package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moodmingle",
		Short: "MoodMingle marketing site and members area",
		Long:  "MoodMingle: the landing page and sign-in demo for a mood-tracking app.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
