package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/poiesic/minutes"
	"github.com/poiesic/minutes/ai"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	// stdout carries the protocol, so logs go to stderr and stay quiet.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	dir := os.Getenv("MINUTES_EXPORT_DIR")
	if dir == "" {
		fmt.Fprintln(os.Stderr, "MINUTES_EXPORT_DIR must be set")
		os.Exit(1)
	}

	db, err := minutes.Open(dir, minutes.WithAIConfig(configFromEnv()), minutes.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open index: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	mcpServer, err := newServer(db, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tools: %v\n", err)
		os.Exit(1)
	}

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("MCP server failed", "err", err)
	}
}

func configFromEnv() *ai.Config {
	opts := []ai.ConfigOption{ai.WithAPIKey(os.Getenv("OPENAI_API_KEY"))}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		opts = append(opts, ai.WithBaseURL(v))
	}
	if v := os.Getenv("MINUTES_EMBEDDING_MODEL"); v != "" {
		opts = append(opts, ai.WithEmbeddingModel(v))
	}
	if v := os.Getenv("MINUTES_EXTRACTION_MODEL"); v != "" {
		opts = append(opts, ai.WithExtractionModel(v))
	}
	return ai.NewConfig(opts...)
}

func newServer(db *minutes.Database, logger *slog.Logger) (*server.MCPServer, error) {
	searcher, err := db.NewSearcher()
	if err != nil {
		return nil, err
	}

	mcpServer := server.NewMCPServer(
		"minutes",
		version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createSearchMeetingsTool(), handleSearchMeetings(searcher, logger))
	mcpServer.AddTool(createSearchByThemeTool(), handleSearchByTheme(searcher))
	mcpServer.AddTool(createSearchExcerptsTool(), handleSearchExcerpts(searcher, logger))
	mcpServer.AddTool(createGetMeetingTool(), handleGetMeeting(searcher))
	mcpServer.AddTool(createGetTranscriptTool(), handleGetTranscript(searcher, logger))
	mcpServer.AddTool(createListMeetingsTool(), handleListMeetings(searcher))
	mcpServer.AddTool(createListFoldersTool(), handleListFolders(searcher))
	mcpServer.AddTool(createListThemesTool(), handleListThemes(searcher))
	mcpServer.AddTool(createIndexMeetingsTool(), handleIndexMeetings(db, logger))

	return mcpServer, nil
}
