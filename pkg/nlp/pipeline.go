package nlp

import (
	"context"

	"github.com/newsner/newsner/pkg/models"
)

var _ models.Pipeline = &RemotePipeline{}

// RemotePipeline is a pipeline resolved on the NLP server at startup.
type RemotePipeline struct {
	client  *Client
	name    string
	version string
}

func (p *RemotePipeline) Name() string {
	return p.name
}

func (p *RemotePipeline) Version() string {
	return p.version
}

func (p *RemotePipeline) Entities(ctx context.Context, text string) ([]models.Span, error) {
	return p.client.Extract(ctx, p.name, text)
}
