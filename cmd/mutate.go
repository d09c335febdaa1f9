package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutatest.dev/pkg/mutatest/internal/domain"
)

var mutateDiffFlag bool

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate SENTENCE",
		Short: "Print the variants of a sentence",
		Long: `Generate variants of SENTENCE with the configured mutator and print them.
Several arguments are joined with single spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := cmd.Flags().GetBool("diff")
			if err != nil {
				return err
			}

			return workflow.Mutate(context.Background(), domain.MutateArgs{
				Sentence: strings.Join(args, " "),
				Lexicon:  parsePaths(viper.GetStringSlice(lexiconPathsKey)),
				Mutator:  mutatorConfigFromViper(),
				Diff:     diff,
			})
		},
	}

	cmd.Flags().BoolVarP(&mutateDiffFlag, "diff", "d", false, "show a word diff under every variant")

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}
