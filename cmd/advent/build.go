package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaviLunes/AdventCodeTools/build"
	"github.com/JaviLunes/AdventCodeTools/scrape"
)

var fetchInput bool

var buildCmd = &cobra.Command{
	Use:   "build [day|all]",
	Short: "Scaffold the directories of one puzzle day, or of all days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		scraper := newScraper(cfg)
		builder := &build.Builder{Paths: cfg.Paths(), Names: scraper}

		day, all, err := dayArg(args)
		if err != nil {
			return err
		}
		if all {
			if err = builder.BuildAll(cmd.Context()); err != nil {
				return err
			}
		} else if err = builder.BuildDay(cmd.Context(), day); err != nil {
			return err
		}
		if !fetchInput {
			return nil
		}
		if all {
			return errors.New("--fetch requires a single day")
		}

		return downloadInput(cmd, scraper, day)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&fetchInput, "fetch", false, "also download the day's puzzle input")
	rootCmd.AddCommand(buildCmd)
}

// dayArg parses the optional day argument; absent or "all" selects the
// whole calendar.
func dayArg(args []string) (day int, all bool, err error) {
	if len(args) == 0 || args[0] == "all" {
		return 0, true, nil
	}
	day, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid day %q", args[0])
	}

	return day, false, nil
}

// downloadInput fetches the personal puzzle input into the scaffolded
// input file. An already downloaded input is left untouched.
func downloadInput(cmd *cobra.Command, scraper *scrape.Scraper, day int) error {
	inputPath, err := scraper.Paths.InputFile(day)
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(inputPath); statErr == nil && info.Size() > 0 {
		cmd.Printf("Input for day %d is already downloaded.\n", day)
		return nil
	}

	lines, err := scraper.PuzzleInput(cmd.Context(), day)
	if errors.Is(err, scrape.ErrLoginEmpty) || errors.Is(err, scrape.ErrLoginFormat) ||
		errors.Is(err, scrape.ErrLoginRejected) {
		cmd.PrintErrln(scrape.LoginHelp)
		return err
	}
	if err != nil {
		return err
	}

	content := strings.Join(lines, "\n") + "\n"

	return os.WriteFile(inputPath, []byte(content), 0o644)
}
