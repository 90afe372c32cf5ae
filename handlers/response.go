/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/logging"
)

const (
	msgValidation     = "Validation error"
	msgInternal       = "Internal server error"
	msgRouteNotFound  = "Route not found"
	msgProbandMissing = "Proband not found"
	msgMemberMissing  = "Family member not found"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error   string                         `json:"error"`
	Details []*storeerrors.ValidationError `json:"details,omitempty"`
}

func baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// preflightHeaders are returned on OPTIONS and on proband creation.
func preflightHeaders() map[string]string {
	h := baseHeaders()
	h["Access-Control-Allow-Headers"] = "Content-Type"
	h["Access-Control-Allow-Methods"] = "GET,POST,PUT,DELETE,OPTIONS"
	return h
}

func jsonResponse(status int, body any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    baseHeaders(),
		Body:       string(b),
	}, nil
}

// errorResponse maps err onto a status code. notFound is the message used
// when err is a NotFoundError.
func errorResponse(ctx context.Context, op string, err error, notFound string) (events.APIGatewayProxyResponse, error) {
	switch storeerrors.KindOf(err) {
	case storeerrors.KindInvalidInput:
		return jsonResponse(http.StatusBadRequest, errorBody{
			Error:   msgValidation,
			Details: storeerrors.AsValidationErrors(err),
		})
	case storeerrors.KindNotFound:
		return jsonResponse(http.StatusNotFound, errorBody{Error: notFound})
	default:
		logging.FromContext(ctx).Error("request failed",
			zap.String("operation", op),
			zap.Error(err),
		)
		return jsonResponse(http.StatusInternalServerError, errorBody{Error: msgInternal})
	}
}
