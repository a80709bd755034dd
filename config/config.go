package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Groq    GroqConfig    `yaml:"groq"`
	Media   MediaConfig   `yaml:"media"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	Database string `yaml:"database"`
}

// GeminiConfig holds the transcription model settings.
// The API key itself always comes from the environment, never from yaml.
type GeminiConfig struct {
	Model string `yaml:"model"`

	// PollIntervalSeconds is the wait between Files API state checks
	// while an uploaded audio file is still processing.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

// GroqConfig holds the title-generation model settings.
type GroqConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type MediaConfig struct {
	Dir string `yaml:"dir"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GeminiAPIKey returns the Gemini credential, empty when transcription is unconfigured.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GroqAPIKey returns the Groq credential, empty when title generation is unconfigured.
func GroqAPIKey() string {
	return os.Getenv("GROQ_API_KEY")
}

func MongoURI() string {
	return os.Getenv("MONGO_URI")
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
