package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Storage backend selection: memory | file | redis | sql.
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DataFile       string `mapstructure:"DATA_FILE"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	// Redis configuration (remote-document backend).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisKey      string `mapstructure:"REDIS_KEY"`

	// Staff authentication.
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	JWTExpiryHours int    `mapstructure:"JWT_EXPIRY_HOURS"`
	AdminUsername  string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword  string `mapstructure:"ADMIN_PASSWORD"`

	// Twilio outbound messaging.
	TwilioAccountSID     string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppNumber string `mapstructure:"TWILIO_WHATSAPP_NUMBER"`
	TwilioPhoneNumber    string `mapstructure:"TWILIO_PHONE_NUMBER"`

	// Country code prepended to phone numbers that arrive without one.
	DefaultCountryCode string `mapstructure:"DEFAULT_COUNTRY_CODE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_BACKEND", "memory")
	viper.SetDefault("DATA_FILE", "data/appointments.json")
	viper.SetDefault("DATABASE_URL", "carlach.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY", "carlach_bookings")
	viper.SetDefault("JWT_EXPIRY_HOURS", 8)
	viper.SetDefault("ADMIN_USERNAME", "carlach")
	viper.SetDefault("DEFAULT_COUNTRY_CODE", "55")

	// Secrets have no sensible default, but every key needs one: AutomaticEnv
	// only surfaces keys viper already knows about, so a key without a default
	// would never be read from the environment.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_WHATSAPP_NUMBER", "")
	viper.SetDefault("TWILIO_PHONE_NUMBER", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
