package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TasksResourceURI names the resource holding the whole collection.
const TasksResourceURI = "tasks://list"

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		TasksResourceURI,
		"Tasks",
		mcp.WithResourceDescription("Every task in the list with open and total counts."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, tasksResourceHandler(svc))
}

func tasksResourceHandler(svc *Service) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summary, err := svc.ListTasks(ctx, false)
		if err != nil {
			return nil, err
		}
		uri := request.Params.URI
		if uri == "" {
			uri = TasksResourceURI
		}
		return encodeResourceJSON(uri, summary)
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
