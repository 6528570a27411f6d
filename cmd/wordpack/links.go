package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/wordpack"
	"github.com/tsawler/wordpack/docx"
)

var linksStrict bool

var linksCmd = &cobra.Command{
	Use:   "links <file>...",
	Short: "List each document's hyperlinks",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandArgs(args)
		if err != nil {
			fatal("expanding arguments", err)
		}

		var opts []docx.Option
		if linksStrict {
			opts = append(opts, docx.WithStrictLinks())
		}

		for _, file := range files {
			doc, err := wordpack.Open(file, opts...)
			if err != nil {
				fatal("opening "+file, err)
			}

			if len(files) > 1 {
				fmt.Printf("==> %s <==\n", file)
			}
			for _, link := range doc.Hyperlinks() {
				fmt.Printf("%s\t%s\n", link.ID, link.Target)
			}
			for _, diag := range doc.Diagnostics() {
				fmt.Printf("! %v\n", diag)
			}

			doc.Close()
		}
	},
}

func init() {
	linksCmd.Flags().BoolVar(&linksStrict, "strict", false, "Fail on unresolvable hyperlink relationships")
	rootCmd.AddCommand(linksCmd)
}
