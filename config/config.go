package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
)

const AppName = "lostfound_backend"

var Config struct {
	Mode     string `env:"MODE" envDefault:"dev"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	DbUrl    string `env:"DB_URL"`
	RedisUrl string `env:"REDIS_URL"`

	JwtSecret         string `env:"JWT_SECRET" envDefault:"lostfound-secret"`
	AccessExpireTime  int    `env:"ACCESS_EXPIRE_TIME" envDefault:"30"`  // 30 minutes
	RefreshExpireTime int    `env:"REFRESH_EXPIRE_TIME" envDefault:"30"` // 30 days

	// invite code issuance default expiry
	InviteCodeExpireDays int `env:"INVITE_CODE_EXPIRE_DAYS" envDefault:"7"`

	// password reset token lifetime in minutes
	ResetTokenExpireTime int `env:"RESET_TOKEN_EXPIRE_TIME" envDefault:"60"`

	// sending email config; mail is skipped when SECRET_ID is empty
	EmailFrom         string `env:"EMAIL_FROM"`
	TencentSecretID   string `env:"SECRET_ID"`
	TencentSecretKey  string `env:"SECRET_KEY"`
	TencentTemplateID uint64 `env:"TEMPLATE_ID"`

	// credential endpoint rate limit, events per second with burst
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateBurst int `env:"AUTH_RATE_BURST" envDefault:"20"`
}

func InitConfig() {
	var err error
	if err = env.Parse(&Config); err != nil {
		panic(err)
	}
	if Config.Debug {
		fmt.Printf("%+v\n", &Config)
	}

	initCache()
}
