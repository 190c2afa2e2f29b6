package gallery

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/brighthorizon/showcase/internal/models"
	"github.com/brighthorizon/showcase/internal/parser"
	"github.com/brighthorizon/showcase/internal/source"
)

// fetchConcurrency bounds parallel content fetches during a load.
const fetchConcurrency = 8

// Load lists the source's documents and fetches and parses each one
// concurrently. A listing failure aborts the whole load; a per-document
// fetch failure yields an unavailable placeholder entry and does not abort
// the rest. The returned slice preserves listing order.
func Load(ctx context.Context, src source.Source, logger *slog.Logger) ([]models.Project, error) {
	refs, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	projects := make([]models.Project, len(refs))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(fetchConcurrency)
	for i, ref := range refs {
		grp.Go(func() error {
			data, err := src.Fetch(gctx, ref)
			if err != nil {
				logger.Warn("document fetch failed",
					slog.String("url", ref.URL),
					slog.String("error", err.Error()))
				projects[i] = models.Project{
					SourceID:    ref.URL,
					Title:       parser.TitleFallback(ref.Name),
					PublishedAt: ref.ModifiedAt,
					Unavailable: true,
				}
				return nil
			}

			res := parser.Parse(data)
			title := res.Title
			if title == "" {
				title = parser.TitleFallback(ref.Name)
			}
			projects[i] = models.Project{
				SourceID:    ref.URL,
				Title:       title,
				Tags:        res.Tags,
				Preview:     res.Preview,
				FullBody:    string(data),
				PublishedAt: ref.ModifiedAt,
			}
			return nil
		})
	}
	_ = grp.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}
