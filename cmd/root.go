package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"offer_letter/internal/logger"
	"offer_letter/internal/notify"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "offer_letter",
	Short: "Offer letter intake client and webhook proxy",
	Long: "Sign up or log in against the local credential store, submit offer letters with a resume, " +
		"or run the proxy that relays submissions to the document generation webhook.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return loadConfig() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")
	rootCmd.PersistentFlags().String("db", "", "path of the local SQLite store")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	_ = viper.BindPFlag("db.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func setDefaults() {
	viper.SetDefault("port", "5000")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.path", "offer_letter.db")
	viper.SetDefault("auth.hasher", "sha256")
	viper.SetDefault("webhook.url", "")
	viper.SetDefault("webhook.timeout", 30*time.Second)
	viper.SetDefault("proxy.url", "http://localhost:5000")
	viper.SetDefault("notify.duration", notify.DefaultDuration)
}

// loadConfig reads configs/config.yml (or --config) and layers env overrides on top.
// A missing default config file is not an error.
func loadConfig() error {
	setDefaults()

	viper.SetEnvPrefix("OFFER_LETTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("webhook.url", "N8N_WEBHOOK_URL", "OFFER_LETTER_WEBHOOK_URL")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func appLogger() *logger.Logger {
	return logger.Get(viper.GetString("log.level"))
}
