package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"faa-load/internal/dbconn"
	"faa-load/internal/loader"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "faa-load",
	Short: "FAA aircraft registry loader",
	Long: `
  _____ _    _|_|    _     ___   _   ____
 |  ___/ \  / \     | |   / _ \ / \ |  _ \
 | |_ / _ \/ _ \    | |  | | | / _ \| | | |
 |  _/ ___ \ ___\   | |__| |_| / ___ \ |_| |
 |_|/_/   \_\  \_\  |____|\___/_/   \_\___/

FAA LOAD ✈  - Releasable Aircraft Registry Importer
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := RootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./faa-load.yaml)")
	pf.String("engine", "", `target engine: "sqlite" or "sqlserver"`)
	pf.String("db", "", "SQLite database file")
	pf.String("server", "", "SQL Server host[:port]")
	pf.String("database", "", "SQL Server database name")
	pf.String("username", "", "SQL Server login")
	pf.String("password", "", "SQL Server password")
	pf.Bool("trusted", false, "use integrated authentication (no credentials in DSN)")
	pf.String("zip", "", "path of the registry archive")

	viper.BindPFlag("database.engine", pf.Lookup("engine"))
	viper.BindPFlag("database.path", pf.Lookup("db"))
	viper.BindPFlag("database.server", pf.Lookup("server"))
	viper.BindPFlag("database.database", pf.Lookup("database"))
	viper.BindPFlag("database.username", pf.Lookup("username"))
	viper.BindPFlag("database.password", pf.Lookup("password"))
	viper.BindPFlag("database.trusted", pf.Lookup("trusted"))
	viper.BindPFlag("source.zip", pf.Lookup("zip"))

	viper.SetDefault("database.engine", "sqlite")
	viper.SetDefault("database.path", filepath.Join("db", "faa_registry.db"))
	viper.SetDefault("source.url", "https://registry.faa.gov/database/ReleasableAircraft.zip")
	viper.SetDefault("source.zip", filepath.Join("data", "ReleasableAircraft.zip"))
	viper.SetDefault("settings.batch_size", loader.DefaultBatchSize)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("faa-load")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// connConfig assembles the connection config from the resolved settings
// (flag > config file > default).
func connConfig() dbconn.Config {
	return dbconn.Config{
		Engine:   viper.GetString("database.engine"),
		Path:     viper.GetString("database.path"),
		Server:   viper.GetString("database.server"),
		Database: viper.GetString("database.database"),
		Username: viper.GetString("database.username"),
		Password: viper.GetString("database.password"),
		Trusted:  viper.GetBool("database.trusted"),
	}
}
