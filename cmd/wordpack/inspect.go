package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/wordpack"
)

// inspectReport is the yaml-serialized summary of one document.
type inspectReport struct {
	File        string            `yaml:"file"`
	Paragraphs  int               `yaml:"paragraphs"`
	Tables      int               `yaml:"tables"`
	Hyperlinks  []inspectLink     `yaml:"hyperlinks,omitempty"`
	Comments    []string          `yaml:"comments,omitempty"`
	Embeds      []inspectEmbed    `yaml:"embeds,omitempty"`
	Pictures    []string          `yaml:"pictures,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Footers     map[string]string `yaml:"footers,omitempty"`
	Diagnostics []string          `yaml:"diagnostics,omitempty"`
}

type inspectLink struct {
	ID     string `yaml:"id"`
	Target string `yaml:"target"`
}

type inspectEmbed struct {
	Part string `yaml:"part"`
	Kind string `yaml:"kind"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Print a yaml summary of each document's assembled model",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandArgs(args)
		if err != nil {
			fatal("expanding arguments", err)
		}

		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()

		for _, file := range files {
			doc, err := wordpack.Open(file)
			if err != nil {
				fatal("opening "+file, err)
			}
			if err := enc.Encode(buildReport(file, doc)); err != nil {
				doc.Close()
				fatal("encoding report", err)
			}
			doc.Close()
		}
	},
}

func buildReport(file string, doc *wordpack.Document) inspectReport {
	report := inspectReport{
		File:       file,
		Paragraphs: len(doc.Paragraphs()),
		Tables:     len(doc.Tables()),
	}

	for _, link := range doc.Hyperlinks() {
		report.Hyperlinks = append(report.Hyperlinks, inspectLink{ID: link.ID, Target: link.Target})
	}
	for _, c := range doc.Comments() {
		report.Comments = append(report.Comments, fmt.Sprintf("%s (%s)", c.ID(), c.Author()))
	}
	for _, e := range doc.Embeds() {
		report.Embeds = append(report.Embeds, inspectEmbed{Part: e.Part.Name, Kind: e.Kind.String()})
	}
	for _, p := range doc.Pictures() {
		report.Pictures = append(report.Pictures, p.Part.Name)
	}

	policy := doc.HeaderFooterPolicy()
	report.Headers = make(map[string]string)
	report.Footers = make(map[string]string)
	if hf := policy.DefaultHeader(); hf != nil {
		report.Headers["default"] = hf.PartName()
	}
	if hf := policy.EvenPageHeader(); hf != nil {
		report.Headers["even"] = hf.PartName()
	}
	if hf := policy.FirstPageHeader(); hf != nil {
		report.Headers["first"] = hf.PartName()
	}
	if hf := policy.DefaultFooter(); hf != nil {
		report.Footers["default"] = hf.PartName()
	}
	if hf := policy.EvenPageFooter(); hf != nil {
		report.Footers["even"] = hf.PartName()
	}
	if hf := policy.FirstPageFooter(); hf != nil {
		report.Footers["first"] = hf.PartName()
	}
	if len(report.Headers) == 0 {
		report.Headers = nil
	}
	if len(report.Footers) == 0 {
		report.Footers = nil
	}

	for _, diag := range doc.Diagnostics() {
		report.Diagnostics = append(report.Diagnostics, diag.Error())
	}
	return report
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
