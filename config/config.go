package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Job line materialization policies for the POS builder.
const (
	JobLinePolicySingle  = "single"
	JobLinePolicyPerType = "per-type"
)

var (
	MAIN_ROUTES string
	APP_PORT    string

	// DefaultVatRate is the percent rate used when the VAT master has no
	// active record, e.g. 20 for 20%.
	DefaultVatRate = decimal.NewFromInt(20)

	// DocNoSeed is the first document number handed out to a POS session.
	DocNoSeed int64 = 100245

	// JobLinePolicy selects between one job line per completed selection
	// (canonical) and one line per selected process type (legacy variant).
	JobLinePolicy = JobLinePolicySingle

	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string

	allowedOrigins map[string]bool
)

// LoadConfig membaca file .env dan menginisialisasi variabel konfigurasi
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api/v1")
	APP_PORT = getEnv("APP_PORT", "9000")

	DefaultVatRate = getEnvAsDecimal("DEFAULT_VAT_RATE", decimal.NewFromInt(20))
	DocNoSeed = int64(getEnvAsInt("DOC_NO_SEED", 100245))

	JobLinePolicy = getEnv("JOB_LINE_POLICY", JobLinePolicySingle)
	if JobLinePolicy != JobLinePolicySingle && JobLinePolicy != JobLinePolicyPerType {
		log.Printf("Warning: unknown JOB_LINE_POLICY %q, falling back to %q", JobLinePolicy, JobLinePolicySingle)
		JobLinePolicy = JobLinePolicySingle
	}

	// SMTP is optional; the email ticket output stays disabled without a host.
	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPSender = getEnv("SMTP_SENDER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")

	loadAllowedOrigins()
}

// getEnv membaca environment variable dengan nilai default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt membaca environment variable sebagai integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := getEnv(key, "")
	if value, err := decimal.NewFromString(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// loadAllowedOrigins memuat daftar origin yang diizinkan dari environment variable
func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
		}
		return
	}

	origins := strings.Split(originsStr, ",")
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}
