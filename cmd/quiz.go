package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingoquest/lingo/internal/catalog"
	"github.com/lingoquest/lingo/internal/screens/home"
)

var quizCmd = &cobra.Command{
	Use:     "quiz",
	Short:   "Open the quiz for one language",
	Example: "  lingo quiz --lang Spanish",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")
		if lang == "" {
			return fmt.Errorf("--lang is required (one of: %v)", catalog.Names())
		}
		return runApp(cmd, home.LanguageURL(lang), false)
	},
}

func init() {
	quizCmd.Flags().String("lang", "", "Language name, exactly as shown on its card")
}
