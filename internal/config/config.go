package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries every externally configured value. Components receive the
// values they need explicitly; nothing reads the environment after startup.
type Config struct {
	Port string `mapstructure:"PORT"`

	SupabaseURL        string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey    string `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseDBPassword string `mapstructure:"SUPABASE_DB_PASSWORD"`

	// MarkersBackend selects the markers repository: "supabase" (default)
	// or "postgres" for a direct database connection.
	MarkersBackend string `mapstructure:"MARKERS_BACKEND"`

	RedisURL string `mapstructure:"REDIS_URL"`

	WeatherAPIKey string `mapstructure:"WEATHERAPI_KEY"`
	TomTomAPIKey  string `mapstructure:"TOMTOM_API_KEY"`

	EventsFeedURL   string `mapstructure:"EVENTS_FEED_URL"`
	FloorPlanBucket string `mapstructure:"FLOOR_PLAN_BUCKET"`
}

// LoadConfig reads .env.<APP_ENV> (development by default) and the process
// environment, which takes precedence.
func LoadConfig() (c Config, err error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MARKERS_BACKEND", "supabase")
	viper.SetDefault("EVENTS_FEED_URL", "https://mypnwlife.pnw.edu/ical/pnw/ical_pnw.ics")
	viper.SetDefault("FLOOR_PLAN_BUCKET", "floorplans")

	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine, the environment alone can carry the config
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	err = viper.Unmarshal(&c)
	return
}
