package cmd

import (
	"fmt"
	"log"
	"time"

	"faa-load/internal/catalog"
	"faa-load/internal/dbconn"
	"faa-load/internal/dialect"
	"faa-load/internal/fetch"
	"faa-load/internal/loader"
	"faa-load/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	fetchFirst bool
	batchSize  int
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the registry archive into the database (full replace)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := connConfig()
		archivePath := viper.GetString("source.zip")

		// Batch size: Flag > Config > Default.
		batch := viper.GetInt("settings.batch_size")
		if batchSize > 0 {
			batch = batchSize
		}

		if fetchFirst {
			url := viper.GetString("source.url")
			log.Printf("Downloading %s ...", url)
			if err := fetch.Download(url, archivePath); err != nil {
				return err
			}
			log.Printf("Saved %s", archivePath)
		}

		d, err := dialect.GetDialect(cfg.Engine)
		if err != nil {
			return err
		}

		db, err := dbconn.Open(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		fmt.Printf("✈  Connected via %s\n", d.Name())

		tables := catalog.Default()

		// Provision, truncate and load run in one transaction; the
		// database reverts to its pre-run state on any failure.
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() {
			if tx != nil {
				tx.Rollback()
			}
		}()

		log.Println("Initializing schema...")
		if err := schema.Initialize(tx, d); err != nil {
			return err
		}

		log.Printf("Loading %d tables (batch size %d)...", len(tables), batch)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(tables)).AppendCompleted().PrependElapsed()
		current := ""
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("%-10s", current)
		})

		results, err := loader.Run(tx, d, tables, archivePath, batch, func(res loader.Result) {
			current = res.Table
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit load transaction: %w", err)
		}
		tx = nil

		fmt.Println("\n📊 Load Report:")
		total, skipped := 0, 0
		for i, r := range results {
			fmt.Printf("[%02d/%02d] %-10s : %d rows inserted, %d skipped (%.2fs)\n",
				i+1, len(results), r.Table, r.Inserted, r.Skipped, r.Elapsed.Seconds())
			total += r.Inserted
			skipped += r.Skipped
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total: %d rows inserted, %d skipped\n", total, skipped)
		log.Printf("Load Done! Time Elapsed: %s", time.Since(start))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&fetchFirst, "fetch", false, "download the archive before loading")
	loadCmd.Flags().IntVar(&batchSize, "batch-size", 0, "rows per insert batch (overrides config)")
}
