// Package main is the entry point for md2docx, which builds a DOCX
// file from a JSON element list or markdown content.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/docforge"
	"github.com/tsawler/docforge/convert"
	"github.com/tsawler/docforge/format"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "md2docx OUTPUT",
	Short: "Build a DOCX document from JSON elements or markdown",
	Long: `md2docx writes a .docx file from content given with --content: either
a path to a file or a literal string. JSON content follows the
{"elements": [...]} schema; markdown supports headings, pipe tables,
bullet and numbered lists, and plain paragraphs. With --template the
new content is appended to an existing package.

Styling defaults (font, title_color) can be set in docforge.yaml or
through DOCFORGE_* environment variables.`,
	Args:    cobra.ExactArgs(1),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := format.ForceDOCXExt(args[0])

		contentArg, _ := cmd.Flags().GetString("content")
		if contentArg == "" {
			return fmt.Errorf("--content is required")
		}

		name, _ := cmd.Flags().GetString("format")
		f, err := format.ParseContent(name)
		if err != nil {
			return err
		}

		data, contentPath, err := convert.LoadContent(contentArg)
		if err != nil {
			return err
		}
		if f == format.ContentAuto {
			f = format.DetectContent(contentPath, data)
		}

		opts := docforge.BuildOptions{
			Font:       viper.GetString("font"),
			TitleColor: convert.ParseColor(viper.GetString("title_color")),
		}

		template, _ := cmd.Flags().GetString("template")
		builder := docforge.NewWithOptions(opts)
		if template != "" {
			builder, err = docforge.NewFromTemplateWithOptions(template, opts)
			if err != nil {
				return err
			}
		}

		if err := convert.Build(builder, data, f); err != nil {
			return err
		}

		if err := builder.Save(output); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", output)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("content", "c", "", "content file path or literal content string")
	rootCmd.Flags().StringP("template", "t", "", "existing DOCX package to seed from")
	rootCmd.Flags().StringP("format", "f", "auto", "content format: json, markdown, md, or auto")
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
