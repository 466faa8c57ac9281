package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/poiesic/minutes"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/search"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	result := textResult(fmt.Sprintf(format, args...))
	result.IsError = true
	return result
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return textResult(string(data)), nil
}

// handleSearchMeetings implements the search_meetings tool
func handleSearchMeetings(searcher *search.Searcher, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		resp, err := searcher.Search(ctx, query,
			request.GetString("folder", ""),
			request.GetInt("limit", search.DefaultSearchLimit))
		if err != nil {
			logger.Error("search failed", "query", query, "err", err)
			return errorResult("Search error: %v", err), nil
		}
		return jsonResult(resp)
	}
}

// handleSearchByTheme implements the search_by_theme tool
func handleSearchByTheme(searcher *search.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		theme, err := request.RequireString("theme")
		if err != nil || !core.IsKnownTheme(theme) {
			return errorResult("Error: theme must be one of %s", strings.Join(core.ThemeIDs(), ", ")), nil
		}

		matches := searcher.SearchByTheme(ctx, theme,
			request.GetString("folder", ""),
			request.GetInt("limit", search.DefaultThemeLimit))
		return jsonResult(matches)
	}
}

// handleSearchExcerpts implements the search_excerpts tool
func handleSearchExcerpts(searcher *search.Searcher, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		filter := search.ExcerptFilter{
			Kind:  core.ChunkKind(request.GetString("kind", "")),
			Theme: request.GetString("theme", ""),
		}
		excerpts, err := searcher.SearchExcerpts(ctx, query, filter, request.GetInt("limit", search.DefaultExcerptLimit))
		if err != nil {
			logger.Error("excerpt search failed", "query", query, "err", err)
			return errorResult("Search error: %v", err), nil
		}
		return jsonResult(excerpts)
	}
}

// handleGetMeeting implements the get_meeting tool
func handleGetMeeting(searcher *search.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		detail, ok := searcher.GetDocument(ctx, id)
		if !ok {
			return errorResult("Meeting not found: %s", id), nil
		}
		return jsonResult(detail)
	}
}

// handleGetTranscript implements the get_transcript tool
func handleGetTranscript(searcher *search.Searcher, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		text, ok, err := searcher.GetTranscript(ctx, id)
		if err != nil {
			logger.Error("failed to read transcript", "id", id, "err", err)
			return errorResult("Transcript error: %v", err), nil
		}
		if !ok {
			return errorResult("No transcript for meeting: %s", id), nil
		}
		return textResult(text), nil
	}
}

// handleListMeetings implements the list_meetings tool
func handleListMeetings(searcher *search.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := searcher.ListDocuments(ctx,
			request.GetString("folder", ""),
			request.GetInt("limit", search.DefaultListLimit))
		return jsonResult(list)
	}
}

// handleListFolders implements the list_folders tool
func handleListFolders(searcher *search.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(searcher.ListFolders(ctx))
	}
}

// handleListThemes implements the list_themes tool
func handleListThemes(searcher *search.Searcher) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(searcher.ListThemes(ctx))
	}
}

// handleIndexMeetings implements the index_meetings tool
func handleIndexMeetings(db *minutes.Database, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := db.Index(ctx, indexing.IndexOptions{
			Model:          request.GetString("model", ""),
			SkipExtraction: request.GetBool("skip_extraction", false),
			BulkExtraction: request.GetBool("bulk", false),
		})
		if err != nil {
			logger.Error("indexing failed", "err", err)
			return errorResult("Indexing error: %v", err), nil
		}
		return jsonResult(result)
	}
}
