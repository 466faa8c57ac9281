package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poiesic/minutes/core"
)

// createSearchMeetingsTool returns the search_meetings tool definition
func createSearchMeetingsTool() mcp.Tool {
	return mcp.NewTool("search_meetings",
		mcp.WithDescription("Semantic search over meeting summaries. Returns the closest meetings with themes and top quotes."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language query"),
		),
		mcp.WithString("folder",
			mcp.Description("Only meetings in folders containing this text (case-insensitive)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 5)"),
		),
	)
}

// createSearchByThemeTool returns the search_by_theme tool definition
func createSearchByThemeTool() mcp.Tool {
	return mcp.NewTool("search_by_theme",
		mcp.WithDescription("List recent meetings tagged with a theme, with the evidence and quotes behind it"),
		mcp.WithString("theme",
			mcp.Required(),
			mcp.Enum(core.ThemeIDs()...),
			mcp.Description("Theme id"),
		),
		mcp.WithString("folder",
			mcp.Description("Only meetings in folders containing this text (case-insensitive)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 10)"),
		),
	)
}

// createSearchExcerptsTool returns the search_excerpts tool definition
func createSearchExcerptsTool() mcp.Tool {
	return mcp.NewTool("search_excerpts",
		mcp.WithDescription("Semantic search over individual summaries, theme descriptions and quotes"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural language query"),
		),
		mcp.WithString("kind",
			mcp.Enum(string(core.ChunkKindSummary), string(core.ChunkKindTheme), string(core.ChunkKindQuote), string(core.ChunkKindRawSummary)),
			mcp.Description("Restrict to one excerpt kind"),
		),
		mcp.WithString("theme",
			mcp.Description("Restrict to excerpts tagged with this theme id"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 10)"),
		),
	)
}

// createGetMeetingTool returns the get_meeting tool definition
func createGetMeetingTool() mcp.Tool {
	return mcp.NewTool("get_meeting",
		mcp.WithDescription("Retrieve everything indexed for one meeting"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Meeting id"),
		),
	)
}

// createGetTranscriptTool returns the get_transcript tool definition
func createGetTranscriptTool() mcp.Tool {
	return mcp.NewTool("get_transcript",
		mcp.WithDescription("Retrieve the full speaker-labelled transcript of a meeting"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Meeting id"),
		),
	)
}

// createListMeetingsTool returns the list_meetings tool definition
func createListMeetingsTool() mcp.Tool {
	return mcp.NewTool("list_meetings",
		mcp.WithDescription("List meetings, newest first"),
		mcp.WithString("folder",
			mcp.Description("Only meetings in folders containing this text (case-insensitive)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 20)"),
		),
	)
}

// createListFoldersTool returns the list_folders tool definition
func createListFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List folders with their meeting counts"),
	)
}

// createListThemesTool returns the list_themes tool definition
func createListThemesTool() mcp.Tool {
	return mcp.NewTool("list_themes",
		mcp.WithDescription("List the theme catalog with meeting and evidence counts"),
	)
}

// createIndexMeetingsTool returns the index_meetings tool definition
func createIndexMeetingsTool() mcp.Tool {
	return mcp.NewTool("index_meetings",
		mcp.WithDescription("Rebuild the index from the export directory"),
		mcp.WithBoolean("skip_extraction",
			mcp.Description("Summarize from notes only, without calling the language model"),
		),
		mcp.WithBoolean("bulk",
			mcp.Description("Run extractions concurrently in bounded windows"),
		),
		mcp.WithString("model",
			mcp.Description("Override the extraction model for this run"),
		),
	)
}
