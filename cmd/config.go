package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mutatest.dev/pkg/mutatest/internal/domain"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutatest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	envFileName      = ".env"

	outputFlagName         = "output"
	kindFlagName           = "kind"
	replacementsFlagName   = "replacements"
	dropoutsFlagName       = "dropouts"
	variantsFlagName       = "variants"
	strategyFlagName       = "strategy"
	assureVariantsFlagName = "assure-variants"
	seedFlagName           = "seed"
	lexiconFlagName        = "lexicon"
	modelFlagName          = "model"
	similarityFlagName     = "similarity"
	runParallelFlagName    = "parallel"
	verboseFlagName        = "verbose"
	logFileFlagName        = "log-file"

	mutatorKindKey         = "mutator.kind"
	mutatorReplacementsKey = "mutator.replacements"
	mutatorDropoutsKey     = "mutator.dropouts"
	mutatorVariantsKey     = "mutator.variants"
	mutatorStrategyKey     = "mutator.strategy"
	mutatorAssureKey       = "mutator.assure_variants"
	seedKey                = "seed"
	lexiconPathsKey        = "lexicon.paths"
	runModelKey            = "run.model"
	runSimilarityKey       = "run.similarity"
	runParallelConfigKey   = "run.parallel"

	defaultReportsDir  = ".mutatest-reports"
	defaultRunParallel = 1

	envPrefix = "MUTATEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutatest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := m.DefaultReplacementConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(mutatorKindKey, string(defaults.Kind))
	viper.SetDefault(mutatorReplacementsKey, defaults.NumReplacements)
	viper.SetDefault(mutatorDropoutsKey, m.DefaultDropoutConfig().NumDropouts)
	viper.SetDefault(mutatorVariantsKey, defaults.NumVariants)
	viper.SetDefault(mutatorStrategyKey, string(defaults.Strategy))
	viper.SetDefault(mutatorAssureKey, defaults.AssureVariants)
	viper.SetDefault(seedKey, defaults.RandomSeed)
	viper.SetDefault(lexiconPathsKey, []string{})
	viper.SetDefault(runModelKey, domain.ModelTokens)
	viper.SetDefault(runSimilarityKey, domain.SimilarityJaccard)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "mutatest: ignoring %s: %v\n", configFileName, err)
	}
}

// mutatorConfigFromViper collects the mutator settings from flags, env and
// config file.
func mutatorConfigFromViper() m.MutatorConfig {
	return m.MutatorConfig{
		Kind:            m.MutatorKind(strings.ToLower(viper.GetString(mutatorKindKey))),
		NumReplacements: viper.GetInt(mutatorReplacementsKey),
		NumDropouts:     viper.GetInt(mutatorDropoutsKey),
		NumVariants:     viper.GetInt(mutatorVariantsKey),
		Strategy:        m.Strategy(viper.GetString(mutatorStrategyKey)),
		RandomSeed:      viper.GetInt64(seedKey),
		AssureVariants:  viper.GetBool(mutatorAssureKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
