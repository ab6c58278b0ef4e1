package config

// Embedding 向量化服务配置
type Embedding struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	APIKey    string `json:"api_key" yaml:"api_key"`
	Model     string `json:"model" yaml:"model"`
	Dimension int    `json:"dimension" yaml:"dimension"` // 向量维度，需与 entries 表的 vector 列一致
}

func ProvideEmbeddingConfig(cfg *Config) *Embedding {
	return cfg.Embedding
}
