package main

import (
	"os"

	"shared-data/internal/app"
	"shared-data/internal/config"
	"shared-data/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(runGUI).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(run func(*config.Config) error) *cobra.Command {
	var cfgFile string
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:          "shared-data",
		Short:        "Edit two values on one page and view them on another",
		Version:      app.AppVersion,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("data", "data.json", "file the two values are stored in")
	flags.String("log-level", "info", "debug, info, warn, error or off")
	flags.Bool("log-json", false, "write logs as JSON lines")

	bindFlags(v, cmd)
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	bindings := map[string]string{
		"data_file": "data",
		"log.level": "log-level",
		"log.json":  "log-json",
	}
	for key, flag := range bindings {
		// the flag names are static, so this cannot fail
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

func runGUI(cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(level, cfg.Log.JSON)

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{
			"stage": "startup",
		})
		return err
	}

	return application.Run()
}
