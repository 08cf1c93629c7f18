package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // DSN直指定（あればPOSTGRES_*より優先）
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート
	PostgresSSLMode  string // sslmode（既定disable）

	AgeGateSecret string        // 年齢ゲートトークンの署名シークレット
	AgeGateTTL    time.Duration // 年齢確認の有効期間（再確認ポリシー）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// 年齢確認のデフォルト有効期間（30日）
const defaultAgeGateTTL = 30 * 24 * time.Hour

// Loadは環境変数
func Load() (Config, error) {
	//DATABASE_URLがあればPOSTGRES_*は使わない
	pgPort := 0
	if os.Getenv("DATABASE_URL") == "" {
		var err error
		pgPort, err = mustAtoi("POSTGRES_PORT")
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  os.Getenv("POSTGRES_SSLMODE"),

		AgeGateSecret: os.Getenv("AGE_GATE_SECRET"),
		AgeGateTTL:    defaultAgeGateTTL,

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),
	}

	//TTLは任意（時間数で指定）
	if v := os.Getenv("AGE_GATE_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("AGE_GATE_TTL_HOURS must be a positive number")
		}
		cfg.AgeGateTTL = time.Duration(hours) * time.Hour
	}

	if cfg.PostgresSSLMode == "" {
		cfg.PostgresSSLMode = "disable"
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
	}
	if cfg.AgeGateSecret == "" {
		return Config{}, fmt.Errorf("AGE_GATE_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
