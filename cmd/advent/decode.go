package main

import (
	"bufio"
	"errors"

	"github.com/spf13/cobra"

	"github.com/JaviLunes/AdventCodeTools/pixel"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Read a pixel-banner answer from stdin and print its letters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Pixel.OnPixel == "" || cfg.Pixel.OffPixel == "" {
			return errors.New("pixel marks must not be empty")
		}

		p, err := pixel.New(pixel.WithMarks(
			[]rune(cfg.Pixel.OnPixel)[0],
			[]rune(cfg.Pixel.OffPixel)[0],
		))
		if err != nil {
			return err
		}

		var lines []string
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if scanner.Text() == "" {
				continue
			}
			lines = append(lines, scanner.Text())
		}
		if err = scanner.Err(); err != nil {
			return err
		}

		word, err := p.Decode(lines)
		if err != nil {
			return err
		}
		cmd.Println(word)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
