package config

import (
	"os"
	"strings"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	StoreID       string
	StorePassword string
	Sandbox       bool
	ServerURL     string   // base URL the gateway calls back on
	ClientURL     string   // base URL the browser is redirected to
	CORSOrigins   []string
}

func Load() Config {
	return Config{
		Port:          getenv("API_PORT", "5000"),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DATABASE", "MedConnect"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		StoreID:       os.Getenv("STORE_ID"),
		StorePassword: os.Getenv("STORE_PASSWORD"),
		Sandbox:       getenv("SSLCOMMERZ_SANDBOX", "true") == "true",
		ServerURL:     getenv("SERVER_URL", "http://localhost:5000"),
		ClientURL:     getenv("CLIENT_URL", "http://localhost:5173"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
