package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(listTasksTool(), listTasksHandler(svc))
	srv.AddTool(addTaskTool(), addTaskHandler(svc))
	srv.AddTool(toggleTaskTool(), toggleTaskHandler(svc))
	srv.AddTool(deleteTaskTool(), deleteTaskHandler(svc))
}

type toolHandler = func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func listTasksTool() mcp.Tool {
	return mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks in the order they were added."),
		mcp.WithBoolean("open_only",
			mcp.Description("Only return tasks that are not completed."),
		),
	)
}

func listTasksHandler(svc *Service) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.ListTasks(ctx, request.GetBool("open_only", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	}
}

func addTaskTool() mcp.Tool {
	return mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to the end of the list."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title; must not be blank."),
		),
		mcp.WithString("description",
			mcp.Description("Optional longer description."),
		),
		mcp.WithString("emoji",
			mcp.Description("Optional emoji shown with the task. Defaults to ✏️."),
		),
	)
}

func addTaskHandler(svc *Service) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := request.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.AddTask(ctx, title, request.GetString("description", ""), request.GetString("emoji", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func toggleTaskTool() mcp.Tool {
	return mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip a task between open and completed."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to toggle."),
		),
	)
}

func toggleTaskHandler(svc *Service) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func deleteTaskTool() mcp.Tool {
	return mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
	)
}

func deleteTaskHandler(svc *Service) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
