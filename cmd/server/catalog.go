package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/config"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/engine"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/logging"
)

// catalogCmd is a sanity check for a data file: load it and show what the
// dashboard would offer for selection.
var catalogCmd = &cobra.Command{
	Use:   "catalog [file]",
	Short: "Load a data file and print its selection catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel, cfg.LogFormat)

		path := cfg.DataFile
		if len(args) == 1 {
			path = args[0]
		}

		store, err := engine.Load(path, cfg.Sheet)
		if err != nil {
			return err
		}

		cat := engine.BuildCatalog(store.Records())
		fmt.Printf("Rows:       %d\n", store.Len())
		fmt.Printf("Years:      %v\n", cat.Years)
		fmt.Printf("Minerals:   %s\n", strings.Join(cat.Minerals, ", "))
		fmt.Printf("Indicators: %s\n", strings.Join(cat.Indicators, ", "))
		return nil
	},
}
