package cmd

import (
	"github.com/spf13/cobra"
)

type serveFlags struct {
	port        string
	storageFile string
	seedFile    string
	logLevel    string
}

var serveFlagVals serveFlags

var rootCmd = &cobra.Command{
	Use:           "mockedapi",
	Short:         "Mocked account backend API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the account API (default command)",
	Long: `Serve the account API backed by a single JSON storage file.

Configuration is read from API_PORT, STORAGE_FILE, SEED_FILE and LOG_LEVEL;
flags given on the command line take precedence.`,
	Example: `  # Serve on the default port with ./storage/account.json
  mockedapi serve

  # Seed fixture accounts for the login page tests
  mockedapi serve --seed fixtures/users.yaml --port 8081`,
	RunE: runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		f := &serveFlagVals
		c.Flags().StringVarP(&f.port, "port", "p", "", "HTTP server port (overrides API_PORT)")
		c.Flags().StringVarP(&f.storageFile, "storage", "s", "", "Path of the JSON storage file (overrides STORAGE_FILE)")
		c.Flags().StringVar(&f.seedFile, "seed", "", "YAML or JSON file with accounts to seed on startup (overrides SEED_FILE)")
		c.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	}

	rootCmd.AddCommand(serveCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
