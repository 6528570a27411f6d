package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/wordpack"
)

var stylesCmd = &cobra.Command{
	Use:   "styles <file>",
	Short: "Print a document's resolved styles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := wordpack.Open(args[0])
		if err != nil {
			fatal("opening "+args[0], err)
		}
		defer doc.Close()

		styles, err := doc.Styles()
		if err != nil {
			fatal("loading styles", err)
		}

		for _, id := range styles.IDs() {
			rs := styles.Resolve(id)
			heading := ""
			if rs.IsHeading {
				heading = fmt.Sprintf(" heading=%d", rs.HeadingLevel)
			}
			fmt.Printf("%s\t%q\t%s %gpt%s\n", rs.ID, rs.Name, rs.FontName, rs.FontSize, heading)
		}
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
