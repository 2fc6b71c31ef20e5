package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName       string
		Build         string
		Env           string // DEV (local; default), TEST, QA, PROD
		Debug         bool
		TestMode      bool
		SecretKey     string
		RollbarToken  string
		LogConfigPath string // zeroconfig yaml; console output when empty

		Server ServerConfig
		Portal PortalConfig
	}

	ServerConfig struct {
		Host                 string
		Address              string
		DebugHost            string
		ShutdownTimeout      time.Duration
		DisableReqLogs       bool
		AllowOrigins         []string
		TokenExpirationDelta time.Duration
		SessionIdleTimeout   time.Duration
		SessionSweepSpec     string // cron spec
	}

	PortalConfig struct {
		LoadMoreDelay       time.Duration
		UploadDelay         time.Duration
		GalleryInitialCount int
		GalleryPageSize     int
		TeacherChance       float64
		ParentChance        float64
		ToastCapacity       int
	}
)

// NewConfig reads the configuration from the environment.
// `config/.env.<env>` is loaded first when it exists.
func NewConfig() *Config {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:       v.GetString("appName"),
		Build:         v.GetString("build"),
		Env:           env,
		Debug:         v.GetBool("debug"),
		TestMode:      v.GetBool("testMode"),
		SecretKey:     v.GetString("secretKey"),
		RollbarToken:  v.GetString("rollbarToken"),
		LogConfigPath: v.GetString("logConfigPath"),
		Server: ServerConfig{
			Host:                 v.GetString("server.host"),
			Address:              v.GetString("server.address"),
			DebugHost:            v.GetString("server.debugHost"),
			ShutdownTimeout:      v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:       v.GetBool("server.disableReqLogs"),
			AllowOrigins:         v.GetStringSlice("server.allowOrigins"),
			TokenExpirationDelta: v.GetDuration("server.tokenExpirationDelta"),
			SessionIdleTimeout:   v.GetDuration("server.sessionIdleTimeout"),
			SessionSweepSpec:     v.GetString("server.sessionSweepSpec"),
		},
		Portal: PortalConfig{
			LoadMoreDelay:       v.GetDuration("portal.loadMoreDelay"),
			UploadDelay:         v.GetDuration("portal.uploadDelay"),
			GalleryInitialCount: v.GetInt("portal.galleryInitialCount"),
			GalleryPageSize:     v.GetInt("portal.galleryPageSize"),
			TeacherChance:       v.GetFloat64("portal.teacherChance"),
			ParentChance:        v.GetFloat64("portal.parentChance"),
			ToastCapacity:       v.GetInt("portal.toastCapacity"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)

	v.SetDefault("debug", true)
	v.SetDefault("appName", "快乐班级")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "k2m%8c-w!xq7@r$5p0zj&d^u+3s9(h)e4lq=yv6n1fb")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("logConfigPath", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.allowOrigins", []string{"http://localhost:3000"})
	v.SetDefault("server.tokenExpirationDelta", 24*time.Hour)
	v.SetDefault("server.sessionIdleTimeout", 2*time.Hour)
	v.SetDefault("server.sessionSweepSpec", "@every 5m")

	// the portal's own timings: 800ms to load more photos, 1s to upload a file
	v.SetDefault("portal.loadMoreDelay", 800*time.Millisecond)
	v.SetDefault("portal.uploadDelay", time.Second)
	v.SetDefault("portal.galleryInitialCount", 6)
	v.SetDefault("portal.galleryPageSize", 3)
	v.SetDefault("portal.teacherChance", .3)
	v.SetDefault("portal.parentChance", .5)
	v.SetDefault("portal.toastCapacity", 20)
}
