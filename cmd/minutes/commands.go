package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/poiesic/minutes"
	"github.com/poiesic/minutes/ai"
	"github.com/poiesic/minutes/core"
	"github.com/poiesic/minutes/indexing"
	"github.com/poiesic/minutes/layout"
	"github.com/poiesic/minutes/search"
	"github.com/urfave/cli/v2"
)

var (
	errExportDirRequired = errors.New("export directory is required (--dir or MINUTES_EXPORT_DIR)")
	errNotFound          = errors.New("not found")
)

// openDatabase is replaced in tests to inject a mock provider.
var openDatabase = func(c *cli.Context) (*minutes.Database, error) {
	dir, err := exportDir(c)
	if err != nil {
		return nil, err
	}
	return minutes.Open(dir, minutes.WithAIConfig(aiConfig(c)))
}

func exportDir(c *cli.Context) (string, error) {
	dir := c.String("dir")
	if dir == "" {
		return "", errExportDirRequired
	}
	return dir, nil
}

func aiConfig(c *cli.Context) *ai.Config {
	opts := []ai.ConfigOption{
		ai.WithAPIKey(c.String("api-key")),
		ai.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	}
	if v := c.String("base-url"); v != "" {
		opts = append(opts, ai.WithBaseURL(v))
	}
	if v := c.String("embedding-model"); v != "" {
		opts = append(opts, ai.WithEmbeddingModel(v))
	}
	if v := c.String("extraction-model"); v != "" {
		opts = append(opts, ai.WithExtractionModel(v))
	}
	return ai.NewConfig(opts...)
}

func withSearcher(c *cli.Context, fn func(*search.Searcher) error) error {
	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}
	return fn(searcher)
}

func queryArg(c *cli.Context, name string) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return query, nil
}

func indexCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer db.Close()

	ixOpts := []indexing.Option{
		indexing.WithWindowSize(c.Int("window-size")),
		indexing.WithWindowDelay(c.Duration("window-delay")),
	}
	if !c.Bool("quiet") {
		ixOpts = append(ixOpts, indexing.WithProgress(c.App.ErrWriter))
	}

	result, err := db.Index(c.Context, indexing.IndexOptions{
		Model:          c.String("model"),
		SkipExtraction: c.Bool("skip-extraction"),
		BulkExtraction: c.Bool("bulk"),
	}, ixOpts...)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	return render(c, result, func(p *printer) {
		p.indexResult(result)
	})
}

func searchCommand(c *cli.Context) error {
	query, err := queryArg(c, "query")
	if err != nil {
		return err
	}
	return withSearcher(c, func(s *search.Searcher) error {
		var monitor search.SearchMonitor
		if c.Bool("verbose") {
			monitor = &traceMonitor{w: c.App.ErrWriter, start: time.Now()}
		}
		resp, err := s.SearchWithMonitor(c.Context, query, c.String("folder"), c.Int("limit"), monitor)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		return render(c, resp, func(p *printer) {
			p.searchResponse(resp)
		})
	})
}

func excerptsCommand(c *cli.Context) error {
	query, err := queryArg(c, "query")
	if err != nil {
		return err
	}
	filter := search.ExcerptFilter{
		Kind:  core.ChunkKind(strings.ToLower(c.String("kind"))),
		Theme: c.String("theme"),
	}
	return withSearcher(c, func(s *search.Searcher) error {
		excerpts, err := s.SearchExcerpts(c.Context, query, filter, c.Int("limit"))
		if err != nil {
			return fmt.Errorf("excerpt search failed: %w", err)
		}
		return render(c, excerpts, func(p *printer) {
			p.excerpts(excerpts)
		})
	})
}

func themeCommand(c *cli.Context) error {
	themeID, err := queryArg(c, "theme id")
	if err != nil {
		return err
	}
	if !core.IsKnownTheme(themeID) {
		return fmt.Errorf("unknown theme %q: must be one of %s", themeID, strings.Join(core.ThemeIDs(), ", "))
	}
	return withSearcher(c, func(s *search.Searcher) error {
		matches := s.SearchByTheme(c.Context, themeID, c.String("folder"), c.Int("limit"))
		return render(c, matches, func(p *printer) {
			p.themeMatches(themeID, matches)
		})
	})
}

func showCommand(c *cli.Context) error {
	id, err := queryArg(c, "document id")
	if err != nil {
		return err
	}
	return withSearcher(c, func(s *search.Searcher) error {
		detail, ok := s.GetDocument(c.Context, id)
		if !ok {
			return fmt.Errorf("document %q: %w", id, errNotFound)
		}
		return render(c, detail, func(p *printer) {
			p.documentDetail(detail)
		})
	})
}

func transcriptCommand(c *cli.Context) error {
	id, err := queryArg(c, "document id")
	if err != nil {
		return err
	}
	return withSearcher(c, func(s *search.Searcher) error {
		text, ok, err := s.GetTranscript(c.Context, id)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		if !ok {
			return fmt.Errorf("transcript for %q: %w", id, errNotFound)
		}
		return render(c, map[string]string{"id": id, "transcript": text}, func(p *printer) {
			p.raw(text)
		})
	})
}

func listCommand(c *cli.Context) error {
	return withSearcher(c, func(s *search.Searcher) error {
		list := s.ListDocuments(c.Context, c.String("folder"), c.Int("limit"))
		return render(c, list, func(p *printer) {
			p.documentList(list)
		})
	})
}

func foldersCommand(c *cli.Context) error {
	return withSearcher(c, func(s *search.Searcher) error {
		folders := s.ListFolders(c.Context)
		return render(c, folders, func(p *printer) {
			p.folders(folders)
		})
	})
}

func themesCommand(c *cli.Context) error {
	return withSearcher(c, func(s *search.Searcher) error {
		themes := s.ListThemes(c.Context)
		return render(c, themes, func(p *printer) {
			p.themes(themes)
		})
	})
}

func importCommand(c *cli.Context) error {
	dir, err := exportDir(c)
	if err != nil {
		return err
	}

	doc := layout.SourceDocument{
		ID:      c.String("id"),
		Title:   c.String("title"),
		Folders: c.StringSlice("folder"),
	}
	if ts := c.Timestamp("created"); ts != nil {
		doc.CreatedAt = ts.UTC()
	} else {
		doc.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	if path := c.String("notes"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
		doc.Notes = string(data)
	}

	if path := c.String("segments"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read segments: %w", err)
		}
		var segments []layout.Segment
		if err := json.Unmarshal(data, &segments); err != nil {
			return fmt.Errorf("failed to parse segments %s: %w", path, err)
		}
		doc.Transcript = layout.FormatTranscript(segments)
	}

	l := layout.New(dir)
	if err := l.WriteDocument(doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	out := map[string]string{"notes": l.NotesPath(doc.Title)}
	if doc.Transcript != "" {
		out["transcript"] = l.TranscriptPath(doc.Title)
	}
	return render(c, out, func(p *printer) {
		p.imported(out)
	})
}
