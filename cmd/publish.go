package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notepublisher/internal/core"
	"github.com/julien-sobczak/the-notepublisher/internal/markdown"
	"github.com/julien-sobczak/the-notepublisher/pkg/console"
	"github.com/julien-sobczak/the-notepublisher/pkg/text"
)

var outputDir string

func init() {
	publishCmd.Flags().StringVarP(&outputDir, "output", "o", "", "write block files to this directory instead of stdout")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish FILE...",
	Short: "Convert notes",
	Long:  `Convert Markdown notes into WordPress block markup.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		publisher := core.NewPublisher()

		var progress *console.ProgressLog
		if outputDir != "" {
			progress = console.NewProgressLog(len(args), console.ShowPercent())
		}

		for i, path := range args {
			if !config.ConfigFile.SupportExtension(path) {
				core.CurrentLogger().Infof("Skipping %s (unsupported extension)", path)
				continue
			}
			if progress != nil {
				progress.Log(i+1, path)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				color.Red("Unable to read %s: %v", path, err)
				os.Exit(1)
			}
			note := string(content)

			frontMatter, _ := markdown.StripFrontMatter(note)
			if title := frontMatter.Title(); title != "" {
				core.CurrentLogger().Infof("Publishing %q", title)
			}

			blocks := publisher.Convert(note)

			if outputDir == "" {
				fmt.Println(blocks)
				continue
			}
			out := filepath.Join(outputDir, text.TrimExtension(filepath.Base(path))+".html")
			if err := os.WriteFile(out, []byte(blocks+"\n"), 0644); err != nil {
				color.Red("Unable to write %s: %v", out, err)
				os.Exit(1)
			}
		}

		if progress != nil {
			progress.Clear("Done")
		}
	},
}
