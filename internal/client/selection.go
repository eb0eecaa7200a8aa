package client

import (
	"context"
	"log/slog"

	"skysnoop/internal/apierr"
	"skysnoop/internal/models"
)

// SelectBackend picks which backend a new client will use. The decision is
// made once, before the adapter is constructed:
//
//  1. An explicit preference wins unconditionally - if that backend turns
//     out to be unreachable the failure surfaces to the caller, no fallback.
//  2. An API key selects the openapi backend, which is the one that will
//     accept keys when they become required.
//  3. Otherwise the re-api backend is probed; it is preferred for its full
//     native feature set, with openapi as the always-reachable fallback.
func SelectBackend(ctx context.Context, opts Options) (models.BackendID, error) {
	switch opts.Backend {
	case models.BackendREAPI, models.BackendOpenAPI:
		slog.Debug("backend selected explicitly", "backend", opts.Backend)
		return opts.Backend, nil
	case models.BackendAuto, "":
		// fall through to auto selection
	default:
		return "", apierr.Validationf("unknown backend %q (must be auto, reapi, or openapi)", opts.Backend)
	}

	if opts.APIKey != "" {
		slog.Debug("api key provided, selecting openapi backend")
		return models.BackendOpenAPI, nil
	}

	probe := NewREAPIClient(opts.REAPIBaseURL, opts.Timeout)
	if err := probe.Ping(ctx); err != nil {
		slog.Debug("re-api backend unreachable, falling back to openapi", "error", err)
		return models.BackendOpenAPI, nil
	}

	slog.Debug("re-api backend reachable, selecting it")
	return models.BackendREAPI, nil
}
