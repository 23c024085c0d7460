package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/todofile/todo/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo manages named task lists from the command line.",
	Long: `todo keeps any number of named task lists in a single file and tracks one
"focused" list that task-level commands act on. Create lists, focus one, add
tasks with optional due dates, and tick them off.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command. Any error has already been rendered for the
// user; the process exits 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error(), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.todo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetListFilePath returns the resolved path of the persisted list file.
func GetListFilePath() string {
	cfg := GetConfig()
	return filepath.Join(cfg.Data.Dir, cfg.Data.File)
}

// GetStore builds the file store with the resolved data path threaded in
// explicitly; nothing below the cmd layer reads configuration.
func GetStore() (store.ListStore, error) {
	path := GetListFilePath()
	s, err := store.NewFileListStore(afero.NewOsFs(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", path, err)
	}
	return s, nil
}
