// Package cmd provides the root command and CLI setup for mutatest.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutatest.dev/pkg/mutatest/internal/adapter"
	"mutatest.dev/pkg/mutatest/internal/controller"
	"mutatest.dev/pkg/mutatest/internal/domain"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var (
	kindFlag           string
	replacementsFlag   int
	dropoutsFlag       int
	variantsFlag       int
	strategyFlag       string
	assureVariantsFlag bool
	seedFlag           int64
	lexiconFlag        []string
	verboseFlag        bool
	logFileFlag        string
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(adapter.LoadLexicon, reportStore, ui)
}

const rootLongDescription = `Mutatest is a mutamorphic testing tool for natural language models.

It derives meaning-preserving variants of input sentences by swapping words
for synonyms and hypernyms or by dropping words, runs the model under test on
the original and on every variant, and reports how similar the outputs stay.`

const runLongDescription = `Run a mutamorphic test suite over the sentences in FILE.

FILE is a YAML or JSON list of sentences, or plain text with one sentence per
line. Every sentence is mutated with the configured mutator, the built-in model
is applied to the sentence and its variants, and the similarity of the outputs
is reported and saved to the output directory.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "mutatest",
		Short:        "Mutamorphic testing for NLP models",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := loadEnvFile(envFileName); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	replacement := m.DefaultReplacementConfig()
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", defaultReportsDir, "output directory for suite reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVarP(&kindFlag, kindFlagName, "k", string(replacement.Kind), "mutator kind: replacement or dropout")
	bindFlagToConfig(flags.Lookup(kindFlagName), mutatorKindKey)

	flags.IntVar(&replacementsFlag, replacementsFlagName, replacement.NumReplacements, "words replaced per variant")
	bindFlagToConfig(flags.Lookup(replacementsFlagName), mutatorReplacementsKey)

	flags.IntVar(&dropoutsFlag, dropoutsFlagName, m.DefaultDropoutConfig().NumDropouts, "words dropped per variant")
	bindFlagToConfig(flags.Lookup(dropoutsFlagName), mutatorDropoutsKey)

	flags.IntVarP(&variantsFlag, variantsFlagName, "n", replacement.NumVariants, "maximum number of variants per sentence")
	bindFlagToConfig(flags.Lookup(variantsFlagName), mutatorVariantsKey)

	flags.StringVar(&strategyFlag, strategyFlagName, string(replacement.Strategy), "replacement strategy: random or most_common_first")
	bindFlagToConfig(flags.Lookup(strategyFlagName), mutatorStrategyKey)

	flags.BoolVar(&assureVariantsFlag, assureVariantsFlagName, replacement.AssureVariants, "return no variants unless the requested number can be produced")
	bindFlagToConfig(flags.Lookup(assureVariantsFlagName), mutatorAssureKey)

	flags.Int64Var(&seedFlag, seedFlagName, replacement.RandomSeed, "random seed for variant selection")
	bindFlagToConfig(flags.Lookup(seedFlagName), seedKey)

	flags.StringArrayVar(&lexiconFlag, lexiconFlagName, nil, "additional lexicon YAML file (can be repeated)")
	bindFlagToConfig(flags.Lookup(lexiconFlagName), lexiconPathsKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// loadEnvFile exports the variables of a dotenv file. A missing file is fine.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
