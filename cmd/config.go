package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/darrenoakey/generate-image/internal/config"
	"github.com/darrenoakey/generate-image/internal/credentials"
	"github.com/darrenoakey/generate-image/internal/input"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	RunE:  runConfig,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the OpenAI API key in the system keyring",
	Long: `Reads an API key and stores it in the system keyring under the
openai/openai service/account pair, where generate-image looks it up when
neither the config file nor OPENAI_API_KEY provides one.

The key is read from the terminal without echo, or from stdin when piped.`,
	Args: cobra.NoArgs,
	RunE: runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s\n", path)
	fmt.Printf("Model:       %s\n", cfg.OpenAI.Model)
	fmt.Printf("Quality:     %s\n", cfg.OpenAI.Quality)
	fmt.Printf("API key:     %s\n", describeKeySource(cfg))
	return nil
}

// describeKeySource reports where the API key would come from, without
// printing the key itself.
func describeKeySource(cfg *config.Config) string {
	if cfg.OpenAI.APIKey != "" {
		return "configured (config file or OPENAI_API_KEY)"
	}
	if _, err := credentials.GetOpenAIKey(credentials.SystemKeyring{}); err == nil {
		return "configured (system keyring)"
	}
	return "not set (run 'generate-image config set-key')"
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	var key string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "OpenAI API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		key = string(raw)
	} else {
		content, err := input.ReadStdin()
		if err != nil {
			return err
		}
		key = content
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("no key provided")
	}

	if err := credentials.SetOpenAIKey(credentials.SystemKeyring{}, key); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "API key stored in system keyring")
	return nil
}
