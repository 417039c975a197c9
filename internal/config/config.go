package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

const (
	defaultPort          = "5000"
	defaultProviderName  = "Groq"
	defaultModel         = "llama-3.1-8b-instant"
	defaultBaseURL       = "https://api.groq.com/openai/v1"
	defaultTimeoutSecond = 30
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
	CORS   CORSConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, CORS: loadCORSConfig()}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	Provider            string
	APIKey              string
	Model               string
	RecommendationModel string
	BaseURL             string
	Timeout             time.Duration
}

// Enabled 表示是否提供了密钥与模型。
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel 基于配置创建 OpenAI 兼容的聊天模型，每次调用只请求一次，不做重试。
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%s 的 API Key 或模型配置缺失", c.Provider)
	}

	timeout := c.Timeout
	retryTimes := 0

	return ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL:    c.BaseURL,
		APIKey:     c.APIKey,
		Model:      c.Model,
		Timeout:    &timeout,
		RetryTimes: &retryTimes,
	})
}

func loadAIConfig() (AIConfig, error) {
	timeoutSeconds := defaultTimeoutSecond
	if override, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("invalid AI_TIMEOUT_SECONDS value %d: must be positive", *override)
		}
		timeoutSeconds = *override
	}

	modelName := getEnvOrDefault("GROQ_MODEL", defaultModel)

	return AIConfig{
		Provider:            getEnvOrDefault("AI_PROVIDER_NAME", defaultProviderName),
		APIKey:              strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Model:               modelName,
		RecommendationModel: getEnvOrDefault("RECOMMENDATION_MODEL", modelName),
		BaseURL:             strings.TrimRight(getEnvOrDefault("GROQ_BASE_URL", defaultBaseURL), "/"),
		Timeout:             time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// CORSConfig 描述跨域策略。
type CORSConfig struct {
	AllowedOrigins []string
}

// loadCORSConfig 解析逗号分隔的来源列表，为空时允许任意来源。
func loadCORSConfig() CORSConfig {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if raw == "" {
		return CORSConfig{AllowedOrigins: []string{"*"}}
	}

	origins := make([]string, 0, 4)
	for _, item := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(item); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
