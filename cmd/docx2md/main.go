// Package main is the entry point for docx2md, which reads a DOCX file
// and prints its content as markdown or plain text.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/docforge"
	"github.com/tsawler/docforge/format"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "docx2md FILE",
	Short: "Convert a DOCX document to markdown or plain text",
	Long: `docx2md reads a .docx file and prints its paragraphs and tables to
stdout in document order. In markdown mode heading styles become '#'
prefixes, list styles become bullets, and tables render as pipe tables
with a separator row after the header.`,
	Args:    cobra.ExactArgs(1),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		name, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") {
			if v := viper.GetString("format"); v != "" {
				name = v
			}
		}
		out, err := format.ParseOutput(name)
		if err != nil {
			return err
		}

		if !format.IsDOCX(file) {
			fmt.Fprintf(os.Stderr, "warning: %s does not have a .docx extension\n", file)
		}

		rendered, err := docforge.Open(file).Render(out)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("format", "f", "markdown", "output format: text, markdown, or md")
	rootCmd.SilenceUsage = true
}

func initConfig() {
	viper.SetConfigName("docforge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "docforge"))
	}

	viper.SetEnvPrefix("DOCFORGE")
	viper.AutomaticEnv()

	// Config file is optional.
	viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
