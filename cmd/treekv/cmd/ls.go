package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List the children of a directory",
	Long:  "List the keys directly under a directory, one per line. Directories carry a trailing slash. Without an argument the root is listed.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	key := treekv.RootKey()
	if len(args) == 1 {
		key = treekv.StringKey(args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	env, err := client.GetNode(cmd.Context(), key, &treekv.GetOptions{Sorted: true})
	if err != nil {
		return err
	}

	if !env.Node.Dir {
		fmt.Println(env.Node.Key)
		return nil
	}
	for _, child := range env.Node.Nodes {
		if child.Dir {
			fmt.Println(child.Key + "/")
			continue
		}
		fmt.Println(child.Key)
	}
	return nil
}
