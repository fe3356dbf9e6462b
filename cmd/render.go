package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notepublisher/internal/core"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a note to HTML",
	Long:  `Render the intermediate HTML of a note without segmenting it into blocks.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publisher := core.NewPublisher()

		content, err := os.ReadFile(args[0])
		if err != nil {
			color.Red("Unable to read %s: %v", args[0], err)
			os.Exit(1)
		}

		fmt.Println(publisher.RenderHTML(string(content)))
	},
}
