package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutatest.dev/pkg/mutatest/internal/domain"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved suite reports",
		Long:  "List the suite reports of a reports directory, or show the latest one in full.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, err := cmd.Flags().GetBool("latest")
			if err != nil {
				return err
			}

			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.View(context.Background(), domain.ViewArgs{Reports: reportsPath, Latest: latest})
		},
	}

	cmd.Flags().BoolP("latest", "l", false, "show the most recent report in full")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
