package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var createCmd = &cobra.Command{
	Use:   "create <dir> <value>",
	Short: "Create an entry with a store-assigned name",
	Long:  "Create a new entry under a directory, letting the store assign an in-order numeric name.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().Duration("ttl", 0, "time-to-live for the entry")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ttl, _ := cmd.Flags().GetDuration("ttl")

	env, err := client.Create(cmd.Context(), treekv.StringKey(args[0]), args[1], &treekv.CreateOptions{TTL: ttl})
	if err != nil {
		return err
	}

	fmt.Println(env.Node.Key)
	return nil
}
