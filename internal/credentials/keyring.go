package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// The fixed service/account pair the API key is stored under.
const (
	KeyringService = "openai"
	KeyringAccount = "openai"
)

// Store looks up secrets by service/account pair. The production
// implementation is the OS keyring; tests substitute a fake.
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
}

// SystemKeyring is the OS-backed Store.
type SystemKeyring struct{}

func (SystemKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

func (SystemKeyring) Set(service, account, secret string) error {
	return keyring.Set(service, account, secret)
}

// GetOpenAIKey returns the OpenAI API key from the store. A missing key
// produces an error explaining how to configure one.
func GetOpenAIKey(store Store) (string, error) {
	secret, err := store.Get(KeyringService, KeyringAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("no OpenAI API key found.\n" +
				"Options:\n" +
				"  1. Run 'generate-image config set-key' to store one in the system keyring\n" +
				"  2. Set the OPENAI_API_KEY environment variable\n" +
				"  3. Add openai.api_key to the config file")
		}
		return "", fmt.Errorf("reading keyring: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("empty OpenAI API key in keyring")
	}
	return secret, nil
}

// SetOpenAIKey stores the OpenAI API key in the store.
func SetOpenAIKey(store Store, secret string) error {
	if err := store.Set(KeyringService, KeyringAccount, secret); err != nil {
		return fmt.Errorf("writing keyring: %w", err)
	}
	return nil
}
