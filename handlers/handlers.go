/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	storeerrors "github.com/suparena/pedigreestore/errors"
	"github.com/suparena/pedigreestore/storagemodels"
)

// Service is the set of operations the handlers expose.
type Service interface {
	CreateProband(ctx context.Context, body []byte) (*storagemodels.Proband, error)
	GetProband(ctx context.Context, id string) (*storagemodels.Proband, error)
	CreateFamilyMember(ctx context.Context, body []byte) (*storagemodels.FamilyMember, error)
	ListFamilyMembers(ctx context.Context, probandID string) ([]storagemodels.FamilyMember, error)
	UpdateFamilyMember(ctx context.Context, id string, body []byte) (*storagemodels.FamilyMember, error)
	DeleteFamilyMember(ctx context.Context, id string) error
}

// Handlers binds a Service to API Gateway proxy functions.
type Handlers struct {
	Service Service
}

type createdBody struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Data    any    `json:"data"`
}

type messageBody struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type listBody struct {
	FamilyMembers []storagemodels.FamilyMember `json:"family_members"`
	Count         int                          `json:"count"`
}

// CreateProband handles POST /probands.
func (h *Handlers) CreateProband(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := requestBody(req)
	if err != nil {
		return errorResponse(ctx, FunctionCreateProband, err, msgProbandMissing)
	}
	p, err := h.Service.CreateProband(ctx, body)
	if err != nil {
		return errorResponse(ctx, FunctionCreateProband, err, msgProbandMissing)
	}

	resp, err := jsonResponse(http.StatusCreated, createdBody{
		Message: "Proband created successfully",
		ID:      p.ID.String(),
		Data:    p,
	})
	if err != nil {
		return resp, err
	}
	resp.Headers["Access-Control-Allow-Headers"] = "Content-Type"
	resp.Headers["Access-Control-Allow-Methods"] = http.MethodPost
	return resp, nil
}

// GetProband handles GET /probands/{id}.
func (h *Handlers) GetProband(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := h.Service.GetProband(ctx, req.PathParameters["id"])
	if err != nil {
		return errorResponse(ctx, FunctionGetProband, err, msgProbandMissing)
	}
	return jsonResponse(http.StatusOK, p)
}

// CreateFamilyMember handles POST /family.
func (h *Handlers) CreateFamilyMember(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := requestBody(req)
	if err != nil {
		return errorResponse(ctx, FunctionCreateFamilyMember, err, msgMemberMissing)
	}
	m, err := h.Service.CreateFamilyMember(ctx, body)
	if err != nil {
		return errorResponse(ctx, FunctionCreateFamilyMember, err, msgMemberMissing)
	}
	return jsonResponse(http.StatusCreated, createdBody{
		Message: "Family member created successfully",
		ID:      m.ID.String(),
		Data:    m,
	})
}

// ListFamilyMembers handles GET /probands/{probandId}/family.
func (h *Handlers) ListFamilyMembers(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	rows, err := h.Service.ListFamilyMembers(ctx, req.PathParameters["probandId"])
	if err != nil {
		return errorResponse(ctx, FunctionListFamilyMembers, err, msgProbandMissing)
	}
	if rows == nil {
		rows = []storagemodels.FamilyMember{}
	}
	return jsonResponse(http.StatusOK, listBody{FamilyMembers: rows, Count: len(rows)})
}

// UpdateFamilyMember handles PUT /family/{id}.
func (h *Handlers) UpdateFamilyMember(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := requestBody(req)
	if err != nil {
		return errorResponse(ctx, FunctionUpdateFamilyMember, err, msgMemberMissing)
	}
	m, err := h.Service.UpdateFamilyMember(ctx, req.PathParameters["id"], body)
	if err != nil {
		return errorResponse(ctx, FunctionUpdateFamilyMember, err, msgMemberMissing)
	}
	return jsonResponse(http.StatusOK, messageBody{
		Message: "Family member updated successfully",
		Data:    m,
	})
}

// DeleteFamilyMember handles DELETE /family/{id}.
func (h *Handlers) DeleteFamilyMember(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.Service.DeleteFamilyMember(ctx, req.PathParameters["id"]); err != nil {
		return errorResponse(ctx, FunctionDeleteFamilyMember, err, msgMemberMissing)
	}
	return jsonResponse(http.StatusOK, messageBody{Message: "Family member deleted successfully"})
}

// requestBody returns the raw request body, decoding it when the gateway
// delivered it base64 encoded.
func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	b, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, storeerrors.NewValidationError("body", "body is not valid base64")
	}
	return b, nil
}
