package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter mineraldash.yaml with the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "mineraldash.yaml"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
