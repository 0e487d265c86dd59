package main

import (
	"fmt"
	"os"

	"scene-demos/internal/commands"
	"scene-demos/internal/config"
)

func registerConfig(reg *commands.Registry) {
	var cfgPath string
	var force bool
	fs := newFlagSet("config", &cfgPath)
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")
	reg.Register("config", "write the default config file", fs, func() error {
		if _, err := os.Stat(cfgPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use -force to overwrite)", cfgPath)
		}
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfgPath)
		return nil
	})
}
