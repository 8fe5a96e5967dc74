package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a key",
	Long:  "Write a leaf value, optionally with a TTL or a conditional constraint.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func init() {
	setCmd.Flags().Duration("ttl", 0, "time-to-live for the entry")
	setCmd.Flags().String("prev-value", "", "only write if the current value matches")
	setCmd.Flags().Uint64("prev-index", 0, "only write if the current modifiedIndex matches")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ttl, _ := cmd.Flags().GetDuration("ttl")
	prevValue, _ := cmd.Flags().GetString("prev-value")
	prevIndex, _ := cmd.Flags().GetUint64("prev-index")

	env, err := client.Set(cmd.Context(), treekv.StringKey(args[0]), args[1], &treekv.SetOptions{
		TTL:       ttl,
		PrevValue: prevValue,
		PrevIndex: prevIndex,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (modifiedIndex %d)\n", env.Action, env.Node.Key, env.Node.ModifiedIndex)
	return nil
}
