package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	EnvPrefix      = "HRMS_"
	ConfigPathEnv  = "HRMS_CONFIG"
	defaultPath    = "config.yaml"
	envLevelJoiner = "__"
)

type Config struct {
	App        AppConfig        `koanf:"app"`
	Database   DatabaseConfig   `koanf:"database"`
	Redis      RedisConfig      `koanf:"redis"`
	Kafka      KafkaConfig      `koanf:"kafka"`
	JWT        JWTConfig        `koanf:"jwt"`
	SMTP       SMTPConfig       `koanf:"smtp"`
	Auth       AuthConfig       `koanf:"auth"`
	Onboarding OnboardingConfig `koanf:"onboarding"`
	RateLimit  RateLimitConfig  `koanf:"rate_limit"`
	Leave      LeaveConfig      `koanf:"leave"`
	Holiday    HolidayConfig    `koanf:"holiday"`
	Admin      AdminConfig      `koanf:"admin"`
}

type AppConfig struct {
	Env         string `koanf:"env"`
	Name        string `koanf:"name"`
	Port        string `koanf:"port"`
	FrontendURL string `koanf:"frontend_url"`
}

type DatabaseConfig struct {
	Host       string `koanf:"host"`
	Port       string `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
	SSLMode    string `koanf:"sslmode"`
	MaxRetries int    `koanf:"max_retries"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type KafkaConfig struct {
	Broker       string        `koanf:"broker"`
	GroupID      string        `koanf:"group_id"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

type JWTConfig struct {
	Secret        string        `koanf:"secret"`
	AccessTTL     time.Duration `koanf:"access_ttl"`
	RefreshTTL    time.Duration `koanf:"refresh_ttl"`
	OnboardingTTL time.Duration `koanf:"onboarding_ttl"`
}

type SMTPConfig struct {
	Host       string `koanf:"host"`
	Port       string `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	From       string `koanf:"from"`
	TLSEnabled bool   `koanf:"tls_enabled"`
}

type AuthConfig struct {
	MaxFailedAttempts int           `koanf:"max_failed_attempts"`
	LockDuration      time.Duration `koanf:"lock_duration"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
}

type OnboardingConfig struct {
	InviteTTL               time.Duration `koanf:"invite_ttl"`
	OTPTTL                  time.Duration `koanf:"otp_ttl"`
	HRNotificationEmail     string        `koanf:"hr_notification_email"`
	CompleteOnNotifyFailure bool          `koanf:"complete_on_notify_failure"`
}

type RateLimitConfig struct {
	OTPLimit  int           `koanf:"otp_limit"`
	OTPWindow time.Duration `koanf:"otp_window"`
}

type LeaveConfig struct {
	DefaultBalances map[string]int `koanf:"default_balances"`
}

type HolidayConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// AdminConfig: akun ADMIN pertama dibuat saat start-up bila email belum terdaftar.
// Email kosong berarti seeding dilewati.
type AdminConfig struct {
	Name     string `koanf:"name"`
	Email    string `koanf:"email"`
	Mobile   string `koanf:"mobile"`
	Password string `koanf:"password"`
}

// Default mengembalikan nilai bawaan sebelum file dan env diterapkan.
func Default() Config {
	return Config{
		App: AppConfig{
			Env:         "development",
			Name:        "hrms",
			Port:        "3000",
			FrontendURL: "http://localhost:5173",
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			Port:       "5432",
			User:       "postgres",
			Name:       "hrms",
			SSLMode:    "disable",
			MaxRetries: 5,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			GroupID:      "hrms-notification",
			PollInterval: 3 * time.Second,
		},
		JWT: JWTConfig{
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    7 * 24 * time.Hour,
			OnboardingTTL: 2 * time.Hour,
		},
		Auth: AuthConfig{
			MaxFailedAttempts: 5,
			LockDuration:      15 * time.Minute,
		},
		Onboarding: OnboardingConfig{
			InviteTTL:               7 * 24 * time.Hour,
			OTPTTL:                  10 * time.Minute,
			CompleteOnNotifyFailure: true,
		},
		RateLimit: RateLimitConfig{
			OTPLimit:  5,
			OTPWindow: 15 * time.Minute,
		},
		Leave: LeaveConfig{
			DefaultBalances: map[string]int{
				"annual":    18,
				"sick":      12,
				"personal":  5,
				"maternity": 90,
				"paternity": 10,
			},
		},
		Holiday: HolidayConfig{CacheTTL: 24 * time.Hour},
	}
}

// Load membaca config.yaml (opsional) lalu env HRMS_*, di atas nilai Default.
func Load() (*Config, error) {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		path = defaultPath
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "read config file %s failed", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config file %s", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeyToPath(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyToPath: HRMS_DATABASE__HOST -> database.host, HRMS_JWT__ACCESS_TTL -> jwt.access_ttl
func envKeyToPath(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	parts := strings.Split(strings.ToLower(key), envLevelJoiner)
	return strings.Join(parts, ".")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt.secret is required")
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 || c.JWT.OnboardingTTL <= 0 {
		return errors.New("jwt ttl values must be positive")
	}
	if c.Onboarding.InviteTTL <= 0 || c.Onboarding.OTPTTL <= 0 {
		return errors.New("onboarding ttl values must be positive")
	}
	if c.RateLimit.OTPLimit <= 0 || c.RateLimit.OTPWindow <= 0 {
		return errors.New("rate_limit otp values must be positive")
	}
	if c.Admin.Email != "" && (c.Admin.Mobile == "" || c.Admin.Password == "") {
		return errors.New("admin.mobile and admin.password are required when admin.email is set")
	}
	if c.Auth.MaxFailedAttempts <= 0 {
		return errors.Errorf("auth.max_failed_attempts must be positive, got %d", c.Auth.MaxFailedAttempts)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
