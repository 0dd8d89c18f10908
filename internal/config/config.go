package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Env           string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN           string            `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	TokenTTL      time.Duration     `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	JWTSecret     string            `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	SessionSecret string            `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	HTTP          HTTPConfig        `yaml:"http"`
	Database      DatabaseConfig    `yaml:"database"`
	FileStorage   FileStorageConfig `yaml:"file_storage"`
	Cache         CacheConfig       `yaml:"cache"`
	Redis         RedisConf         `yaml:"redis"`
	Admin         AdminConfig       `yaml:"admin"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
}

type DatabaseConfig struct {
	MaxConns        int32         `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env:"DB_MIN_CONNS" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" env-default:"1h"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"UPLOAD_DIR" env-default:"./public"`
	BaseURL string `yaml:"base_url" env:"UPLOAD_BASE_URL" env-default:"/"`
	MaxSize int64  `yaml:"max_size" env:"UPLOAD_MAX_SIZE" env-default:"5242880"`
}

type CacheConfig struct {
	Driver string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"60s"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
}

type AdminConfig struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL" env-default:"admin@fosfenosmedia.com"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	Name     string `yaml:"name" env:"ADMIN_NAME" env-default:"Administrador"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load reads .env (when present) into the environment, then the YAML file,
// then applies environment overrides.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("cannot read .env: " + err.Error())
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.New("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, errors.New("cannot read config: " + err.Error())
	}

	if cfg.Cache.Driver != CacheMemory && cfg.Cache.Driver != CacheRedis {
		return nil, errors.New("unknown cache driver: " + cfg.Cache.Driver)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
