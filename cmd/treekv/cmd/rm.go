package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	treekv "github.com/treekv/treekv-go"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete a key",
	Long:  "Delete a leaf, an empty directory (--dir), or a whole subtree (--recursive).",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().Bool("recursive", false, "delete a directory and everything under it")
	rmCmd.Flags().Bool("dir", false, "delete an empty directory")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	recursive, _ := cmd.Flags().GetBool("recursive")
	dir, _ := cmd.Flags().GetBool("dir")

	env, err := client.Delete(cmd.Context(), treekv.StringKey(args[0]), &treekv.DeleteOptions{
		Recursive: recursive,
		Dir:       dir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", env.Action, env.Node.Key)
	return nil
}
