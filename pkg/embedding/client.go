package embedding

import (
	"Nexus/config"
	"Nexus/pkg/log"
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// Client 封装 openai 兼容的 embedding 接口
type Client struct {
	api  openai.Client
	conf *config.Embedding
}

func NewClient(conf *config.Embedding) *Client {
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(conf.APIKey),
			option.WithBaseURL(conf.BaseURL),
		),
		conf: conf,
	}
}

// Dimension 返回配置的向量维度
func (c *Client) Dimension() int {
	return c.conf.Dimension
}

// EmbedTexts 批量向量化，返回顺序与输入一致
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	startTime := time.Now()
	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.conf.Model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		log.L.Error("failed to embed texts", zap.Error(err))
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, errors.New("embedding 返回数量与输入不一致")
	}
	log.L.Info("embed texts",
		zap.Int("count", len(texts)),
		zap.Duration("embed time", time.Since(startTime)))

	vectors := make([]pgvector.Vector, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = pgvector.NewVector(vec)
	}
	return vectors, nil
}

// EmbedText 单条向量化
func (c *Client) EmbedText(ctx context.Context, text string) (pgvector.Vector, error) {
	vecs, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vecs[0], nil
}
