package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Discovery    Discovery    `mapstructure:",squash"`
	Selection    Selection    `mapstructure:",squash"`
	Queue        Queue        `mapstructure:",squash"`
	RotationTick RotationTick `mapstructure:",squash"`
	Notification Notification `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// Discovery configures the external restaurant discovery client.
type Discovery struct {
	URL            string `mapstructure:"discovery_url"`
	APIKey         string `mapstructure:"discovery_api_key"`
	Location       string `mapstructure:"discovery_location"`
	TimeoutSeconds int    `mapstructure:"discovery_timeout_seconds"`
}

// Selection configures candidate filtering and retry bounds.
type Selection struct {
	MinRating      float64 `mapstructure:"selection_min_rating"`
	MinReviewCount int     `mapstructure:"selection_min_review_count"`
	BatchSize      int     `mapstructure:"selection_batch_size"`
	MaxRetries     int     `mapstructure:"selection_max_retries"`
}

// Queue configures replenishment of the rotation queue.
type Queue struct {
	TargetSize          int `mapstructure:"queue_target_size"`
	RequestDelaySeconds int `mapstructure:"queue_request_delay_seconds"`
}

// RotationTick configures the scheduler that fires due rotations.
type RotationTick struct {
	CronSchedule      string `mapstructure:"rotation_tick_cron"`
	TickWindowMinutes int    `mapstructure:"rotation_tick_window_minutes"`
	Enabled           bool   `mapstructure:"rotation_tick_enabled"`
	ReplenishOnRotate bool   `mapstructure:"rotation_replenish_enabled"`
}

type Notification struct {
	WebhookURL     string `mapstructure:"notification_webhook_url"`
	TimeoutSeconds int    `mapstructure:"notification_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/rotation")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	viper.SetDefault("DISCOVERY_URL", "https://api.yelp.com/v3")
	viper.SetDefault("DISCOVERY_API_KEY", "your_api_key")
	viper.SetDefault("DISCOVERY_LOCATION", "Austin, TX")
	viper.SetDefault("DISCOVERY_TIMEOUT_SECONDS", 10)

	viper.SetDefault("SELECTION_MIN_RATING", 4.0)
	viper.SetDefault("SELECTION_MIN_REVIEW_COUNT", 5)
	viper.SetDefault("SELECTION_BATCH_SIZE", 20)
	viper.SetDefault("SELECTION_MAX_RETRIES", 5)

	viper.SetDefault("QUEUE_TARGET_SIZE", 10)
	viper.SetDefault("QUEUE_REQUEST_DELAY_SECONDS", 1)

	viper.SetDefault("ROTATION_TICK_CRON", "0 * * * *") // hourly, rotation time is minute-granular
	viper.SetDefault("ROTATION_TICK_WINDOW_MINUTES", 60)
	viper.SetDefault("ROTATION_TICK_ENABLED", true)
	viper.SetDefault("ROTATION_REPLENISH_ENABLED", true)

	viper.SetDefault("NOTIFICATION_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFICATION_TIMEOUT_SECONDS", 5)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("No .env file readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from ", location)
			return
		}
	}
}
