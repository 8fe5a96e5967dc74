package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Read a key",
	Long:  "Read a key and print its value, or a JSON tree for a directory. Without a key the root is listed.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().Bool("recursive", false, "fetch the full subtree of a directory")
	getCmd.Flags().Bool("sorted", false, "return directory children in key order")
	getCmd.Flags().Bool("consistent", false, "read through the leader")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	key := treekv.RootKey()
	if len(args) == 1 {
		key = treekv.StringKey(args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	recursive, _ := cmd.Flags().GetBool("recursive")
	sorted, _ := cmd.Flags().GetBool("sorted")
	consistent, _ := cmd.Flags().GetBool("consistent")

	value, err := client.Get(cmd.Context(), key, &treekv.GetOptions{
		Recursive:  recursive,
		Sorted:     sorted,
		Consistent: consistent,
	})
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
		fmt.Println("(not found)")
	case string:
		fmt.Println(v)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return nil
}
