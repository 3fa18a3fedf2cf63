package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/cmd/tally/internal/view"
)

var registerPassword string

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new account.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := tally.accounts.Register(cmd.Context(), args[0], registerPassword)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), view.Success(fmt.Sprintf("Account %q created.", acc.Username())))

		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password.")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}
