package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "job-recommender"

	defaultAddr = ":8080"
)

type Config struct {
	ProfileFile string         `mapstructure:"profile-file"`
	JobsFile    string         `mapstructure:"jobs-file"`
	ExcludeFile string         `mapstructure:"exclude-file"`
	Limit       int            `mapstructure:"limit"`
	Filters     *FiltersConfig `mapstructure:"filters"`
	Server      *ServerConfig  `mapstructure:"server"`
	AI          *AIConfig      `mapstructure:"ai"`
}

type FiltersConfig struct {
	Companies []string `mapstructure:"companies"`
	Types     []string `mapstructure:"types"`
	Locations []string `mapstructure:"locations"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type AIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Provider        string        `mapstructure:"provider"`
	MinimumFitScore float64       `mapstructure:"minimum-fit-score"`
	DropUnfit       bool          `mapstructure:"drop-unfit"`
	Prompt          *PromptConfig `mapstructure:"prompt"`
	Gemini          *GeminiConfig `mapstructure:"gemini"`
}

type PromptConfig struct {
	ExtraCriteria    string `mapstructure:"extra-criteria"`
	DealBreakers     string `mapstructure:"deal-breakers"`
	Tone             string `mapstructure:"tone"`
	UserInstructions string `mapstructure:"user-instructions"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`

	// RequestsPerMinute paces calls to the API. Zero means no limit.
	RequestsPerMinute int `mapstructure:"requests-per-minute"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-recommender ranks job postings against a candidate profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"profile-file":           "JR_PROFILE_FILE",
		"jobs-file":              "JR_JOBS_FILE",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("limit", 5)
	viper.SetDefault("server.addr", defaultAddr)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-recommender.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	// Values from .env are visible to viper as regular environment variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The default config file is optional, an explicit one is not.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Filters == nil {
		config.Filters = &FiltersConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{Addr: defaultAddr}
	}

	return config, nil
}
