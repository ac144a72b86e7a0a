// Command advent manages yearly Advent of Code puzzle projects: it
// scaffolds day directories, runs registered solvers, records their
// results in the README calendar and decodes pixel-banner answers.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JaviLunes/AdventCodeTools/calendar"
	"github.com/JaviLunes/AdventCodeTools/config"
	"github.com/JaviLunes/AdventCodeTools/scrape"
	"github.com/JaviLunes/AdventCodeTools/solve"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code project toolkit",
		Long: `Advent manages a yearly Advent of Code puzzle project: it scaffolds
the per-day directories, downloads puzzle inputs, runs registered
solvers and keeps the README progress calendar up to date.`,
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.advent.yaml)")
	rootCmd.PersistentFlags().Int("year", 0, "puzzle calendar year")
	rootCmd.PersistentFlags().String("base-dir", "", "directory holding the yearly project folders")

	// Bind flags to viper
	_ = viper.BindPFlag("project.year", rootCmd.PersistentFlags().Lookup("year"))
	_ = viper.BindPFlag("project.base_dir", rootCmd.PersistentFlags().Lookup("base-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".advent" (without
		// extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".advent")
	}

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// loadConfig resolves the effective toolkit configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// newScraper wires a website client for the configured project.
func newScraper(cfg *config.Config) *scrape.Scraper {
	return &scrape.Scraper{
		Paths:   cfg.Paths(),
		Client:  &http.Client{Timeout: time.Duration(cfg.Scrape.Timeout) * time.Second},
		BaseURL: cfg.Scrape.BaseURL,
	}
}

// newSolver wires the solving pipeline over the project's README
// calendar.
func newSolver(cfg *config.Config, cmd *cobra.Command) (*solve.Solver, error) {
	m := cfg.Paths()
	cal, err := calendar.Load(m)
	if err != nil {
		return nil, err
	}

	return &solve.Solver{
		Paths:    m,
		Calendar: cal,
		Registry: solvers,
		Out:      cmd.OutOrStdout(),
	}, nil
}
