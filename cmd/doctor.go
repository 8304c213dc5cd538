package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"runtime"
	"strings"

	"faa-load/internal/dbconn"
	"faa-load/internal/dialect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the runtime environment and database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("🔍 Checking environment...")
		fmt.Printf("ℹ  Go runtime: %s\n", runtime.Version())
		fmt.Printf("ℹ  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("ℹ  Registered drivers: %s\n", strings.Join(sql.Drivers(), ", "))

		failed := false
		cfg := connConfig()

		if _, err := dialect.GetDialect(cfg.Engine); err != nil {
			fmt.Printf("❌ engine: %v\n", err)
			failed = true
		} else {
			fmt.Printf("✅ engine: %s\n", cfg.Engine)
		}

		archivePath := viper.GetString("source.zip")
		if _, err := os.Stat(archivePath); err != nil {
			fmt.Printf("⚠  archive: %s not present (run fetch or mock first)\n", archivePath)
		} else {
			fmt.Printf("✅ archive: %s\n", archivePath)
		}

		if db, err := dbconn.Open(cfg); err != nil {
			fmt.Printf("❌ database: %v\n", err)
			failed = true
		} else {
			db.Close()
			fmt.Println("✅ database: reachable")
		}

		if failed {
			return fmt.Errorf("environment check failed")
		}
		fmt.Println("✔ Environment check passed.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
