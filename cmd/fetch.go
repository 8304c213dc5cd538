package cmd

import (
	"fmt"
	"log"

	"faa-load/internal/fetch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the current registry archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := viper.GetString("source.url")
		dest := viper.GetString("source.zip")

		log.Printf("Downloading %s ...", url)
		if err := fetch.Download(url, dest); err != nil {
			return err
		}
		fmt.Printf("✅ Saved %s\n", dest)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}
