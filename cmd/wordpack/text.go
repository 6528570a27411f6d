package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/wordpack"
	"github.com/tsawler/wordpack/ocr"
)

var textOCR bool

var textCmd = &cobra.Command{
	Use:   "text <file>...",
	Short: "Print the plain text of one or more documents",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandArgs(args)
		if err != nil {
			fatal("expanding arguments", err)
		}

		var client *ocr.Client
		if textOCR {
			client, err = ocr.New()
			if err != nil {
				fatal("initializing OCR", err)
			}
			defer client.Close()
		}

		for _, file := range files {
			doc, err := wordpack.Open(file)
			if err != nil {
				fatal("opening "+file, err)
			}

			if len(files) > 1 {
				fmt.Printf("==> %s <==\n", file)
			}
			fmt.Println(doc.Text())

			if client != nil {
				for _, pic := range doc.Pictures() {
					text, err := client.RecognizePicture(pic)
					if err != nil {
						slog.Warn("OCR failed", "part", pic.Part.Name, "error", err)
						continue
					}
					if text != "" {
						fmt.Printf("[image %s]\n%s\n", pic.Part.Name, text)
					}
				}
			}

			doc.Close()
		}
	},
}

func init() {
	textCmd.Flags().BoolVar(&textOCR, "ocr", false, "Recognize text in embedded images (requires -tags ocr build)")
	rootCmd.AddCommand(textCmd)
}
