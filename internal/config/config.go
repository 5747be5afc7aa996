package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup and
// passed into collaborators; nothing reads the environment after Load returns.
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	CORS        CORSConfig
	Upload      UploadConfig
	Transcriber TranscriberConfig
	Extractor   ExtractorConfig
	Auth        AuthConfig
	Email       EmailConfig
	S3          S3Config
	Frontend    FrontendConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds the local archive directory settings.
type UploadConfig struct {
	Dir            string `mapstructure:"dir"`
	MaxAudioSizeMB int64  `mapstructure:"max_audio_size_mb"`
}

// TranscriberConfig holds speech-to-text provider settings.
type TranscriberConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExtractorProviderConfig holds settings for a single LLM extractor provider.
type ExtractorProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds LLM invoice extractor settings. The secondary provider
// is the fallback when the primary is unavailable or rate limited.
type ExtractorConfig struct {
	Primary   ExtractorProviderConfig `mapstructure:"primary"`
	Secondary ExtractorProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary extractor config, or nil if not configured.
func (e *ExtractorConfig) SecondaryConfig() *ExtractorProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// AuthConfig holds Clerk session verification settings. With no secret key,
// bearer tokens pass through unverified (development only).
type AuthConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	APIBaseURL  string `mapstructure:"api_base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// EmailConfig holds contact relay settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// S3Config holds the optional offsite PDF mirror settings. An empty bucket
// disables the mirror.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Enabled reports whether the S3 mirror is configured.
func (s *S3Config) Enabled() bool { return s.Bucket != "" }

// FrontendConfig holds the hosted frontend URL used for page redirects.
type FrontendConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from environment variables with the VOXBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VOXBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5000,http://127.0.0.1:5000")

	// Upload defaults
	v.SetDefault("upload.dir", "/tmp/uploads")
	v.SetDefault("upload.max_audio_size_mb", 25)

	// Transcriber defaults
	v.SetDefault("transcriber.provider", "whisper")
	v.SetDefault("transcriber.api_key", "")
	v.SetDefault("transcriber.model", "openai/whisper-large-v3-turbo")
	v.SetDefault("transcriber.timeout_secs", 60)

	// Extractor defaults
	v.SetDefault("extractor.primary.provider", "gemini")
	v.SetDefault("extractor.primary.api_key", "")
	v.SetDefault("extractor.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("extractor.primary.timeout_secs", 120)
	v.SetDefault("extractor.secondary.provider", "demo")
	v.SetDefault("extractor.secondary.api_key", "")
	v.SetDefault("extractor.secondary.default_model", "")
	v.SetDefault("extractor.secondary.timeout_secs", 120)

	// Auth defaults
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.api_base_url", "https://api.clerk.com")
	v.SetDefault("auth.timeout_secs", 10)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@voxbill.app")
	v.SetDefault("email.from_name", "VoxBill")
	v.SetDefault("email.to_address", "contact@voxbill.app")

	// S3 defaults (mirror disabled unless a bucket is set)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.key_prefix", "invoices/")

	// Frontend defaults
	v.SetDefault("frontend.url", "")

	// Bind environment variables explicitly for nested keys. Every key maps to
	// VOXBILL_<KEY> with dots replaced by underscores.
	envKeys := []string{
		"server.port", "server.read_timeout", "server.write_timeout", "server.environment",
		"log.level", "log.format",
		"cors.allowed_origins",
		"upload.dir", "upload.max_audio_size_mb",
		"transcriber.provider", "transcriber.api_key", "transcriber.model", "transcriber.timeout_secs",
		"extractor.primary.provider", "extractor.primary.api_key",
		"extractor.primary.default_model", "extractor.primary.timeout_secs",
		"extractor.secondary.provider", "extractor.secondary.api_key",
		"extractor.secondary.default_model", "extractor.secondary.timeout_secs",
		"auth.secret_key", "auth.api_base_url", "auth.timeout_secs",
		"email.provider", "email.region", "email.from_address", "email.from_name", "email.to_address",
		"s3.region", "s3.bucket", "s3.endpoint", "s3.access_key", "s3.secret_key", "s3.key_prefix",
		"frontend.url",
	}
	for _, key := range envKeys {
		env := "VOXBILL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Cloud Run/Railway/Heroku set a PORT env var. Use it if VOXBILL_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOXBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(o), "/"))
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	// The hosted frontend is always an allowed origin.
	if u := strings.TrimSuffix(strings.TrimSpace(v.GetString("frontend.url")), "/"); u != "" {
		corsOrigins = append(corsOrigins, u)
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{
		Dir:            v.GetString("upload.dir"),
		MaxAudioSizeMB: v.GetInt64("upload.max_audio_size_mb"),
	}
	cfg.Transcriber = TranscriberConfig{
		Provider:    v.GetString("transcriber.provider"),
		APIKey:      v.GetString("transcriber.api_key"),
		Model:       v.GetString("transcriber.model"),
		TimeoutSecs: v.GetInt("transcriber.timeout_secs"),
	}
	cfg.Extractor = ExtractorConfig{
		Primary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.primary.provider"),
			APIKey:       v.GetString("extractor.primary.api_key"),
			DefaultModel: v.GetString("extractor.primary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.primary.timeout_secs"),
		},
		Secondary: ExtractorProviderConfig{
			Provider:     v.GetString("extractor.secondary.provider"),
			APIKey:       v.GetString("extractor.secondary.api_key"),
			DefaultModel: v.GetString("extractor.secondary.default_model"),
			TimeoutSecs:  v.GetInt("extractor.secondary.timeout_secs"),
		},
	}
	cfg.Auth = AuthConfig{
		SecretKey:   v.GetString("auth.secret_key"),
		APIBaseURL:  v.GetString("auth.api_base_url"),
		TimeoutSecs: v.GetInt("auth.timeout_secs"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ToAddress:   v.GetString("email.to_address"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		KeyPrefix: v.GetString("s3.key_prefix"),
	}
	cfg.Frontend = FrontendConfig{
		URL: strings.TrimSuffix(strings.TrimSpace(v.GetString("frontend.url")), "/"),
	}

	if cfg.Upload.Dir == "" {
		return nil, fmt.Errorf("upload.dir must not be empty")
	}
	return cfg, nil
}
