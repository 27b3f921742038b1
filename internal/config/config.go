package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RedditBaseURL       string
	UserAgent           string
	ProxyURLs           []string
	MaxRetries          int
	RetryBaseDelay      time.Duration
	RequestTimeout      time.Duration
	OllamaBaseURL       string
	OllamaModel         string
	SummaryTimeout      time.Duration
	DefaultSearchLimit  int
	DefaultCommentLimit int
	ServerPort          string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var proxyURLs []string
	if proxyURLsStr := strings.TrimSpace(os.Getenv("REDDIT_PROXY_URLS")); proxyURLsStr != "" {
		for _, proxyURL := range strings.Split(proxyURLsStr, ",") {
			proxyURL = strings.TrimSpace(proxyURL)
			if proxyURL == "" {
				continue
			}

			if _, err := url.Parse(proxyURL); err != nil {
				return nil, fmt.Errorf("invalid proxy URL %s: %w", proxyURL, err)
			}

			proxyURLs = append(proxyURLs, proxyURL)
		}
	}

	return &Config{
		RedditBaseURL:       getEnv("REDDIT_BASE_URL", "https://www.reddit.com"),
		UserAgent:           getEnv("REDDIT_USER_AGENT", "reddit-explorer/1.0"),
		ProxyURLs:           proxyURLs,
		MaxRetries:          getEnvInt("MAX_RETRIES", 3),
		RetryBaseDelay:      getEnvDuration("RETRY_BASE_DELAY", time.Second),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:         getEnv("OLLAMA_MODEL", "llama3"),
		SummaryTimeout:      getEnvDuration("SUMMARY_TIMEOUT", 30*time.Second),
		DefaultSearchLimit:  getEnvInt("DEFAULT_SEARCH_LIMIT", 15),
		DefaultCommentLimit: getEnvInt("DEFAULT_COMMENT_LIMIT", 100),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
