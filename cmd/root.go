package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seedkit/hrseed/internal/logger"
)

var (
	cfgFile string
	verbose bool

	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "hrseed",
	Short: "Load the HR demo schema and seed data into a database",
	Long: `
hrseed provisions the classic HR demonstration data set (a departments table
and an employees table with seven fixed rows each) into a relational
database, atomically.

Database Support:
- PostgreSQL
- MySQL
- SQLite (embedded databases)

The load is all-or-nothing: table creation and every seed insert run inside a
single transaction, and any failure rolls the whole batch back.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("hrseed version %s\n", Version)
			os.Exit(0)
		}

		color.New(color.FgGreen, color.Bold).Println("🌱 hrseed - HR demo seed loader")
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hrseed.config.json)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("hrseed.config")
	}

	viper.AutomaticEnv()

	// a missing config file is fine, defaults cover it
	_ = viper.ReadInConfig()
}
