// Command mtl inspects Wavefront MTL material libraries.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/mtl"
)

var rootCmd = &cobra.Command{
	Use:   "mtl",
	Short: "Inspect Wavefront MTL material libraries",
	Long:  `mtl decodes Wavefront MTL files and prints their materials in canonical, JSON, or YAML form.`,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump all materials of an MTL file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List material names with their diffuse color",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <file> <name>",
	Short: "Print one material by name",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

func init() {
	dumpCmd.Flags().String("format", "text", "Output format: text, json, yaml")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	doc, err := mtl.DecodeFile(args[0], nil)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil

	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil

	case "text":
		b, err := mtl.Format(doc, nil)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	doc, err := mtl.DecodeFile(args[0], nil)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIFFUSE\tMAP_KD")
	for i := range doc.Materials {
		m := &doc.Materials[i]

		diffuse := "-"
		if c, ok := m.Diffuse.Colorful(); ok {
			diffuse = c.Clamped().Hex()
		}

		file := "-"
		if m.DiffuseMap.File.Parsed {
			file = m.DiffuseMap.File.Value
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name.Value, diffuse, file)
	}

	return tw.Flush()
}

func runLookup(cmd *cobra.Command, args []string) error {
	doc, err := mtl.DecodeFile(args[0], nil)
	if err != nil {
		return err
	}

	m, ok := doc.Lookup(args[1])
	if !ok {
		return fmt.Errorf("material %q not found", args[1])
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	fmt.Print(string(b))
	return nil
}
