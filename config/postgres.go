package config

import "fmt"

// Postgres 数据库配置信息
type Postgres struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	SslMode  string `json:"sslmode" yaml:"sslmode"`
}

func (p *Postgres) Dsn() string {
	sslmode := p.SslMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		p.Host, p.Username, p.Password, p.Database, p.Port, sslmode)
}
