// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/search"
	"github.com/urfave/cli/v2"
)

func main() {
	// Values from .env must be in the environment before flags are parsed.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "minutes",
		Usage: "Index and search meeting notes and transcripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Export directory holding notes/ and transcripts/",
				EnvVars: []string{"MINUTES_EXPORT_DIR"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key for the OpenAI-compatible service",
				EnvVars: []string{"OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Base URL of the OpenAI-compatible service",
				EnvVars: []string{"OPENAI_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				EnvVars: []string{"MINUTES_EMBEDDING_MODEL"},
			},
			&cli.StringFlag{
				Name:    "extraction-model",
				Usage:   "Model used to extract insights",
				EnvVars: []string{"MINUTES_EXTRACTION_MODEL"},
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "Retries after a transient upstream failure",
				Value: 2,
			},
			&cli.DurationFlag{
				Name:  "retry-delay",
				Usage: "Base delay for exponential backoff",
				Value: 2 * time.Second,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Rebuild the index from the export directory",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "model",
						Usage: "Override the extraction model for this run",
					},
					&cli.BoolFlag{
						Name:  "skip-extraction",
						Usage: "Summarize from notes only, without calling the language model",
					},
					&cli.BoolFlag{
						Name:  "bulk",
						Usage: "Run extractions concurrently in bounded windows",
					},
					&cli.IntFlag{
						Name:  "window-size",
						Usage: "Concurrent extractions per window in bulk mode",
						Value: indexing.DefaultWindowSize,
					},
					&cli.DurationFlag{
						Name:  "window-delay",
						Usage: "Pause between extraction windows in bulk mode",
						Value: indexing.DefaultWindowDelay,
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Do not report progress",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Find the meetings closest to a query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					folderFlag(),
					limitFlag(search.DefaultSearchLimit),
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Trace each search stage on stderr",
					},
				},
			},
			{
				Name:      "excerpts",
				Usage:     "Find the summaries, themes and quotes closest to a query",
				ArgsUsage: "QUERY",
				Action:    excerptsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Restrict to one kind (summary, theme, quote)",
					},
					&cli.StringFlag{
						Name:  "theme",
						Usage: "Restrict to one theme id",
					},
					limitFlag(search.DefaultExcerptLimit),
				},
			},
			{
				Name:      "theme",
				Usage:     "List meetings tagged with a theme, with evidence",
				ArgsUsage: "THEME_ID",
				Action:    themeCommand,
				Flags: []cli.Flag{
					folderFlag(),
					limitFlag(search.DefaultThemeLimit),
				},
			},
			{
				Name:      "show",
				Usage:     "Show everything indexed for a meeting",
				ArgsUsage: "ID",
				Action:    showCommand,
			},
			{
				Name:      "transcript",
				Usage:     "Print the transcript of a meeting",
				ArgsUsage: "ID",
				Action:    transcriptCommand,
			},
			{
				Name:   "list",
				Usage:  "List meetings, newest first",
				Action: listCommand,
				Flags: []cli.Flag{
					folderFlag(),
					limitFlag(search.DefaultListLimit),
				},
			},
			{
				Name:   "folders",
				Usage:  "List folders with their meeting counts",
				Action: foldersCommand,
			},
			{
				Name:   "themes",
				Usage:  "List the theme catalog with live counts",
				Action: themesCommand,
			},
			{
				Name:   "import",
				Usage:  "Add a meeting to the export directory",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Meeting title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "Meeting id (defaults to the sanitized title)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Markdown notes file",
					},
					&cli.StringFlag{
						Name:  "segments",
						Usage: "JSON file of transcript segments ([{source, text, start_time, end_time}])",
					},
					&cli.StringSliceFlag{
						Name:  "folder",
						Usage: "Folder name, repeatable",
					},
					&cli.TimestampFlag{
						Name:   "created",
						Usage:  "Creation time (RFC 3339, defaults to now)",
						Layout: time.RFC3339,
					},
				},
			},
		},
	}
}

func folderFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "folder",
		Aliases: []string{"f"},
		Usage:   "Only meetings in folders containing this text (case-insensitive)",
	}
}

func limitFlag(def int) cli.Flag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of results",
		Value:   def,
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
