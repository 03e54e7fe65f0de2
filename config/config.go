package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Config struct {
	Port  string
	DBDSN string

	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration

	// Tarif pajak dalam persen. CGST/SGST/GST dikonfigurasi terpisah dan
	// dihitung independen; konsistensi cgst+sgst==gst tidak dipaksakan.
	GSTPercentage  float64
	CGSTPercentage float64
	SGSTPercentage float64

	// Debug mengembalikan OTP di response login (development saja).
	Debug bool
	// AdminRoleEnforced mengaktifkan pengecekan flag is_admin pada rute
	// admin. Default off: setiap user terautentikasi dianggap staff.
	AdminRoleEnforced bool

	CORSOrigins []string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

var (
	cfg  *Config
	once sync.Once
)

// Load membaca konfigurasi dari environment (sekali saja).
func Load() *Config {
	once.Do(func() {
		cfg = &Config{
			Port:              getEnv("PORT", "8080"),
			DBDSN:             getEnv("DB_DSN", "root:password@tcp(127.0.0.1:3306)/table_order?charset=utf8mb4&parseTime=True&loc=Local"),
			JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
			TokenTTL:          getDuration("TOKEN_TTL_MINUTES", 15) * time.Minute,
			OTPTTL:            getDuration("OTP_TTL_MINUTES", 5) * time.Minute,
			GSTPercentage:     getFloat("GST_PERCENTAGE", 18.0),
			CGSTPercentage:    getFloat("CGST_PERCENTAGE", 9.0),
			SGSTPercentage:    getFloat("SGST_PERCENTAGE", 9.0),
			Debug:             getBool("DEBUG", true),
			AdminRoleEnforced: getBool("ADMIN_ROLE_ENFORCED", false),
			CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
			TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioFrom:        os.Getenv("TWILIO_PHONE_NUMBER"),
		}
	})
	return cfg
}

// Get mengembalikan konfigurasi yang sudah dimuat.
func Get() *Config {
	return Load()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallbackMinutes int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(fallbackMinutes)
}
