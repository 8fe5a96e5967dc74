package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var casCmd = &cobra.Command{
	Use:   "cas <key> <prev-value> <value>",
	Short: "Conditionally update a key",
	Long:  "Replace the value of a key only if its current value matches. Exits with status 1 when the swap loses the race.",
	Args:  cobra.ExactArgs(3),
	RunE:  runCas,
}

func init() {
	rootCmd.AddCommand(casCmd)
}

func runCas(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	env, swapped, err := client.CompareAndSwap(cmd.Context(), treekv.StringKey(args[0]), args[1], args[2], nil)
	if err != nil {
		return err
	}
	if !swapped {
		return fmt.Errorf("compare failed: current value of %s is not %q", args[0], args[1])
	}

	fmt.Printf("%s %s (modifiedIndex %d)\n", env.Action, env.Node.Key, env.Node.ModifiedIndex)
	return nil
}
