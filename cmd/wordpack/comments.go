package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/wordpack"
)

var commentsCmd = &cobra.Command{
	Use:   "comments <file>...",
	Short: "List each document's comments",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandArgs(args)
		if err != nil {
			fatal("expanding arguments", err)
		}

		for _, file := range files {
			doc, err := wordpack.Open(file)
			if err != nil {
				fatal("opening "+file, err)
			}

			if len(files) > 1 {
				fmt.Printf("==> %s <==\n", file)
			}
			for _, c := range doc.Comments() {
				author := c.Author()
				if author == "" {
					author = "unknown"
				}
				fmt.Printf("[%s] %s (%s): %s\n", c.ID(), author, c.Date(), c.Text())
			}

			doc.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(commentsCmd)
}
