package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/newsner/newsner/pkg/models"
)

const (
	startupBackoffMin = 500 * time.Millisecond
	startupBackoffMax = 10 * time.Second
)

// LoadOptions controls how pipelines are resolved at startup.
type LoadOptions struct {
	// Names of the pipelines that must be available, in order.
	Names []string
	// MinVersion, if set, is the lowest acceptable model version.
	MinVersion string
	// Retries is how many times listing models is retried while the
	// NLP server is unavailable.
	Retries int
}

// Load resolves every named pipeline on the NLP server once. It returns a
// ModelsNotFoundError when any pipeline is missing or too old, and wraps
// ErrModelsNotFound when the server cannot be reached at all.
func Load(ctx context.Context, client *Client, opts LoadOptions) ([]models.Pipeline, error) {
	var minVersion *semver.Version
	if opts.MinVersion != "" {
		v, err := semver.NewVersion(opts.MinVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum model version %q: %w", opts.MinVersion, err)
		}
		minVersion = v
	}

	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	listRetryPolicy := retrypolicy.Builder[[]models.ModelInfo]().
		HandleErrors(models.ErrNLPUnavailable).
		WithBackoff(startupBackoffMin, startupBackoffMax).
		WithMaxRetries(retries).
		Build()

	attempt := 0
	available, err := failsafe.Get(func() ([]models.ModelInfo, error) {
		attempt++
		if attempt > 1 {
			log.Warnf("NLP server not ready, retrying (attempt %d of %d)", attempt, retries+1)
		}
		return client.Models(ctx)
	}, listRetryPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrModelsNotFound, err)
	}

	byName := make(map[string]models.ModelInfo, len(available))
	for _, m := range available {
		byName[m.Name] = m
	}

	pipelines := make([]models.Pipeline, 0, len(opts.Names))
	var missing []string
	for _, name := range opts.Names {
		info, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if minVersion != nil && !satisfies(info.Version, minVersion) {
			missing = append(missing, fmt.Sprintf("%s (version %q < %s)", name, info.Version, minVersion))
			continue
		}
		pipelines = append(pipelines, &RemotePipeline{
			client:  client,
			name:    info.Name,
			version: info.Version,
		})
		log.Infof("Loaded NLP pipeline %s %s", info.Name, info.Version)
	}

	if len(missing) > 0 {
		return nil, models.NewModelsNotFoundError(missing...)
	}

	return pipelines, nil
}

func satisfies(version string, minVersion *semver.Version) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return !v.LessThan(minVersion)
}
