package main

import (
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [day|all]",
	Short: "Run registered solvers and print their solutions",
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

		day, all, err := dayArg(args)
		if err != nil {
			return err
		}
		if all {
			return s.PrintAll()
		}

		return s.PrintDay(day)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
