package config

// Gdpr 数据导出/删除配置
type Gdpr struct {
	HashSalt     string `json:"hash_salt" yaml:"hash_salt"`         // 导出清单公开编号的 hashids 盐
	ManifestDays int    `json:"manifest_days" yaml:"manifest_days"` // 清单有效期（天），默认 7
	CountWorkers int    `json:"count_workers" yaml:"count_workers"` // 并发统计各应用 schema 的协程数
}

func ProvideGdprConfig(cfg *Config) *Gdpr {
	return cfg.Gdpr
}
