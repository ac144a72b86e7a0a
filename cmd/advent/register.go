package main

import (
	"github.com/spf13/cobra"
)

var fillNames bool

var registerCmd = &cobra.Command{
	Use:   "register [day|all]",
	Short: "Solve puzzles and record their results in the README calendar",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := newSolver(cfg, cmd)
		if err != nil {
			return err
		}
		if fillNames {
			// Unpublished or unreachable days stay blank.
			s.Calendar.FillNames(cmd.Context(), newScraper(cfg))
		}

		day, all, err := dayArg(args)
		if err != nil {
			return err
		}
		if all {
			return s.RegisterAll()
		}

		return s.RegisterDay(day)
	},
}

func init() {
	registerCmd.Flags().BoolVar(&fillNames, "names", false, "also fill missing puzzle names from the website")
	rootCmd.AddCommand(registerCmd)
}
