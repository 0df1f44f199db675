package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting. Provider credentials are
// required at startup: a missing key is a fatal condition, not a per-request error.
type Config struct {
	Port     string `envconfig:"PORT" default:"5000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MongoURI  string `envconfig:"MONGODB_URI" required:"true"`
	MongoDB   string `envconfig:"MONGODB_DATABASE" default:"agriAdvice"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	SarvamAPIKey  string `envconfig:"SARVAM_API_KEY" required:"true"`
	SarvamBaseURL string `envconfig:"SARVAM_BASE_URL" default:"https://api.sarvam.ai"`

	OpenWeatherAPIKey  string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`

	// DataGov and PlantNet keys are optional: the prices endpoints fall back to
	// mock data and identification fails per-request when unset.
	DataGovAPIKey   string `envconfig:"DATAGOV_API_KEY"`
	DataGovBaseURL  string `envconfig:"DATAGOV_BASE_URL" default:"https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"`
	PlantNetAPIKey  string `envconfig:"PLANTNET_API_KEY"`
	PlantNetBaseURL string `envconfig:"PLANTNET_BASE_URL" default:"https://my-api.plantnet.org/v2/identify/all"`

	WeatherCity     string        `envconfig:"WEATHER_CITY" default:"Bangalore"`
	UploadDir       string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"15s"`
}

// Load reads .env when present and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
