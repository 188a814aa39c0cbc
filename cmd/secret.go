package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/tradebot/internal/config"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage account secrets in the secret store",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Store a secret (" + secretNames() + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretStoreKey(args[0])
			if err != nil {
				return err
			}
			return app.secretStore.Put(cmd.Context(), key, value)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretStoreKey(args[0])
			if err != nil {
				return err
			}
			return app.secretStore.Delete(cmd.Context(), key)
		},
	}
}

func secretStoreKey(name string) (string, error) {
	if _, ok := config.SecretKeys[name]; !ok {
		return "", fmt.Errorf("unknown secret %q, want one of %s", name, secretNames())
	}
	return config.SecretKeyPrefix + name, nil
}

func secretNames() string {
	names := make([]string, 0, len(config.SecretKeys))
	for name := range config.SecretKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
