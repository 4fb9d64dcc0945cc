package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64KB"

	StorageDriverBlob  = "blob"
	StorageDriverRedis = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port" validate:"required,min=1,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Gateway configures the remote commerce backend client
	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`

	// Storage selects the local persistence backend for the guest cart and auth snapshot
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Cart holds pricing and quantity rules applied client-side
	Cart CartConfig `json:"cart" yaml:"cart"`

	// Auth holds session manager settings
	Auth AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig defines how the remote backend is reached
type GatewayConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`

	// Per-call deadlines imposed by the cart engine
	RequestTimeout   time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	MergeItemTimeout time.Duration `json:"mergeItemTimeout" yaml:"mergeItemTimeout"`
	CatalogTimeout   time.Duration `json:"catalogTimeout" yaml:"catalogTimeout"`

	// Transport-level behaviour
	ClientTimeout time.Duration `json:"clientTimeout" yaml:"clientTimeout"`
	RetryBackoff  time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
	ChromeTLS     bool          `json:"chromeTls" yaml:"chromeTls"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig configures the circuit breaker in front of the backend
type BreakerConfig struct {
	Enabled             bool          `json:"enabled" yaml:"enabled"`
	ConsecutiveFailures uint32        `json:"consecutiveFailures" yaml:"consecutiveFailures"`
	OpenTimeout         time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// StorageConfig defines the local store backend
type StorageConfig struct {
	// Driver is "blob" (gocloud bucket URL such as file:///var/lib/storefront or mem://) or "redis"
	Driver    string `json:"driver" yaml:"driver" validate:"required,oneof=blob redis"`
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
	// OpTimeout bounds every get/set/remove call
	OpTimeout time.Duration `json:"opTimeout" yaml:"opTimeout"`

	Redis struct {
		Addr         string        `json:"addr" yaml:"addr"`
		Password     string        `json:"password" yaml:"password"`
		DB           int           `json:"db" yaml:"db"`
		DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
		ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
		WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	} `json:"redis" yaml:"redis"`
}

// CartConfig defines client-side pricing rules
type CartConfig struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold" yaml:"freeShippingThreshold" validate:"gte=0"`
	ShippingFee           float64 `json:"shippingFee" yaml:"shippingFee" validate:"gte=0"`
	MaxUpdateQuantity     int     `json:"maxUpdateQuantity" yaml:"maxUpdateQuantity" validate:"gte=1"`
	CatalogLookupLimit    int     `json:"catalogLookupLimit" yaml:"catalogLookupLimit" validate:"gte=1"`
}

// AuthConfig defines session manager settings
type AuthConfig struct {
	// SnapshotTTL bounds how old a cached auth snapshot may be to be trusted provisionally
	SnapshotTTL time.Duration `json:"snapshotTtl" yaml:"snapshotTtl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// GATEWAY_BASEURL -> gateway.baseUrl, aligned with the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every zero-valued setting with the storefront defaults.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "127.0.0.1"
	}
	if cfg.Gateway.RequestTimeout <= 0 {
		cfg.Gateway.RequestTimeout = 10 * time.Second
	}
	if cfg.Gateway.MergeItemTimeout <= 0 {
		cfg.Gateway.MergeItemTimeout = 5 * time.Second
	}
	if cfg.Gateway.CatalogTimeout <= 0 {
		cfg.Gateway.CatalogTimeout = 10 * time.Second
	}
	if cfg.Gateway.ClientTimeout <= 0 {
		cfg.Gateway.ClientTimeout = 30 * time.Second
	}
	if cfg.Gateway.RetryBackoff <= 0 {
		cfg.Gateway.RetryBackoff = time.Second
	}
	if cfg.Gateway.Breaker.ConsecutiveFailures == 0 {
		cfg.Gateway.Breaker.ConsecutiveFailures = 5
	}
	if cfg.Gateway.Breaker.OpenTimeout <= 0 {
		cfg.Gateway.Breaker.OpenTimeout = 30 * time.Second
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverBlob
	}
	if cfg.Storage.Driver == StorageDriverBlob && cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.OpTimeout <= 0 {
		cfg.Storage.OpTimeout = 3 * time.Second
	}
	if cfg.Storage.Redis.DialTimeout <= 0 {
		cfg.Storage.Redis.DialTimeout = 2 * time.Second
	}
	if cfg.Storage.Redis.ReadTimeout <= 0 {
		cfg.Storage.Redis.ReadTimeout = time.Second
	}
	if cfg.Storage.Redis.WriteTimeout <= 0 {
		cfg.Storage.Redis.WriteTimeout = time.Second
	}
	if cfg.Cart.FreeShippingThreshold == 0 {
		cfg.Cart.FreeShippingThreshold = 297
	}
	if cfg.Cart.ShippingFee == 0 {
		cfg.Cart.ShippingFee = 50
	}
	if cfg.Cart.MaxUpdateQuantity == 0 {
		cfg.Cart.MaxUpdateQuantity = 5
	}
	if cfg.Cart.CatalogLookupLimit == 0 {
		cfg.Cart.CatalogLookupLimit = 1000
	}
	if cfg.Auth.SnapshotTTL <= 0 {
		cfg.Auth.SnapshotTTL = 24 * time.Hour
	}
}

// Validate checks struct tags and cross-field requirements.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if cfg.Storage.Driver == StorageDriverRedis && cfg.Storage.Redis.Addr == "" {
		return errors.New("invalid config: storage.redis.addr is required for the redis driver")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
