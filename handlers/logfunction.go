/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/suparena/pedigreestore/logging"
)

// loggingFunction injects a per-invocation child logger into the context.
func loggingFunction(name string, logger *zap.Logger, fn Function) Function {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		l := logger.With(
			zap.String("function", name),
			zap.String("request_id", req.RequestContext.RequestID),
		)
		ctx = logging.NewContext(ctx, l)

		start := time.Now()
		resp, err := fn(ctx, req)
		l.Info("request handled",
			zap.String("method", req.HTTPMethod),
			zap.String("path", req.Path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return resp, err
	}
}

// LoggingFetcher wraps every fetched function in a decorator that injects
// a logger.
type LoggingFetcher struct {
	Logger  *zap.Logger
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log injection.
func (f *LoggingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	fn, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return loggingFunction(name, f.Logger, fn), nil
}
