package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Postgres  *Postgres  `json:"postgres" yaml:"postgres"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Embedding *Embedding `json:"embedding" yaml:"embedding"`
	Gdpr      *Gdpr      `json:"gdpr" yaml:"gdpr"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
