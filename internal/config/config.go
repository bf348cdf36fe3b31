package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ==================== 配置 ====================

// Config 应用配置
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string
}

// Load 从环境变量加载配置，存在 .env 文件时先行载入
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// 生产环境通常没有 .env，仅提示
		log.Println("未找到 .env 文件，使用环境变量")
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "inventory_management"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
	}
}

// GetDSN 拼接数据库连接串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
