package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingoquest/lingo/internal/appearance"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the saved theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctl := appearance.NewController(st.Settings())
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(ctl.Mode())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctl := appearance.NewController(st.Settings())
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		mode, err := ctl.Toggle(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Theme set to", mode)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
}
