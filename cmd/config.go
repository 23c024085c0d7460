package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".todo"
	envPrefix  = "TODO"
)

// AppConfig is the unmarshaled view of all configuration sources: defaults,
// config file, environment and flags.
type AppConfig struct {
	Verbose bool `mapstructure:"verbose"`
	Data    struct {
		Dir  string `mapstructure:"dir" validate:"required"`
		File string `mapstructure:"file" validate:"required"`
	} `mapstructure:"data"`
}

var appConfig AppConfig

var configValidate = validator.New()

// InitConfig reads in the config file and environment variables if set.
func InitConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. TODO_DATA_DIR
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home) // $HOME/.todo.yaml
		viper.AddConfigPath(".")  // ./.todo.yaml
		viper.SetConfigName(configName)
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	viper.SetDefault("data.dir", filepath.Join(home, ".todo"))
	viper.SetDefault("data.file", "lists.json")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			if cfgFile != "" {
				fmt.Fprintln(os.Stderr, "Error: specified config file not found or unreadable:", cfgFile)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(1)
		}
	} else if viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&appConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if err := configValidate.Struct(&appConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns a pointer to the global AppConfig instance.
func GetConfig() *AppConfig {
	return &appConfig
}
