package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutatest.dev/pkg/mutatest/internal/domain"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

var runModelFlag string
var runSimilarityFlag string
var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a mutamorphic test suite",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(context.Background(), domain.RunArgs{
				Input:      m.Path(args[0]),
				Reports:    m.Path(viper.GetString(outputFlagName)),
				Lexicon:    parsePaths(viper.GetStringSlice(lexiconPathsKey)),
				Mutator:    mutatorConfigFromViper(),
				Model:      viper.GetString(runModelKey),
				Similarity: viper.GetString(runSimilarityKey),
				Threads:    viper.GetInt(runParallelConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runModelFlag, modelFlagName, "m", domain.ModelTokens, "built-in model under test: tokens or bag")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), runModelKey)
	cmd.Flags().StringVarP(&runSimilarityFlag, similarityFlagName, "s", domain.SimilarityJaccard, "similarity function: jaccard, dice or positional")
	bindFlagToConfig(cmd.Flags().Lookup(similarityFlagName), runSimilarityKey)
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of test cases run in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
