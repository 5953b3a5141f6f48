package docintel

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/config"

	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// New returns the Azure extractor backed by the local one, or just the local
// extractor when Azure is not configured.
func New(cfg config.DocIntelConfig, logger *zap.Logger) Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	local := Local{}
	if strings.TrimSpace(cfg.Endpoint) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		logger.Info("document intelligence not configured, using local extraction")
		return local
	}
	return Fallback{
		Primary:   NewAzure(cfg.Endpoint, cfg.APIKey, cfg.APIVersion),
		Secondary: local,
		Logger:    logger,
	}
}

type Fallback struct {
	Primary   Extractor
	Secondary Extractor
	Logger    *zap.Logger
}

func (f Fallback) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	text, err := f.Primary.ExtractText(ctx, filename, data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if f.Logger != nil {
		f.Logger.Warn("primary extraction failed, falling back", zap.String("file", filename), zap.Error(err))
	}
	return f.Secondary.ExtractText(ctx, filename, data)
}
