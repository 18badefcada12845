package legacy

import (
	"bytes"
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"shelter-dogs/internal/platform/httpclient"
	"shelter-dogs/internal/platform/logger"
)

const (
	DefaultBatchSize  = 5
	DefaultBatchDelay = 600 * time.Millisecond
	DefaultBudget     = 5 * time.Minute
	DefaultTimeout    = 12 * time.Second
)

// PageRetry: reintentos al bajar una ficha.
var PageRetry = httpclient.Retry{Attempts: 3, Wait: 1500 * time.Millisecond}

// Scraper baja las fichas en lotes. Dentro del lote las páginas se piden en paralelo.
type Scraper struct {
	HTTP       *httpclient.Client
	Log        logger.Logger
	BatchSize  int
	BatchDelay time.Duration
	Budget     time.Duration
	Retry      httpclient.Retry

	now func() time.Time
}

func NewScraper(log logger.Logger) *Scraper {
	return &Scraper{
		HTTP:       httpclient.New(DefaultTimeout),
		Log:        log,
		BatchSize:  DefaultBatchSize,
		BatchDelay: DefaultBatchDelay,
		Budget:     DefaultBudget,
		Retry:      PageRetry,
		now:        time.Now,
	}
}

type ScrapeReport struct {
	Processed int
	WithText  int
	Empty     int
}

// Scrape devuelve un registro por entrada, en el mismo orden. Las fichas que
// fallan o que quedan fuera del presupuesto de tiempo salen con descripción vacía.
func (s *Scraper) Scrape(ctx context.Context, entries []Entry) ([]DescriptionRecord, ScrapeReport) {
	out := make([]DescriptionRecord, len(entries))
	for i, e := range entries {
		out[i].Name = e.Name
	}
	batch := s.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	now := s.now
	if now == nil {
		now = time.Now
	}
	start := now()

	var rep ScrapeReport
	for i := 0; i < len(entries); i += batch {
		if s.Budget > 0 && now().Sub(start) > s.Budget {
			s.Log.Warn("time budget reached, stopping", map[string]any{"done": i, "total": len(entries)})
			break
		}
		end := min(i+batch, len(entries))

		g, gctx := errgroup.WithContext(ctx)
		for j := i; j < end; j++ {
			g.Go(func() error {
				out[j].Description = s.scrapeOne(gctx, entries[j])
				return nil
			})
		}
		_ = g.Wait()

		for j := i; j < end; j++ {
			rep.Processed++
			if out[j].Description != "" {
				rep.WithText++
			} else {
				rep.Empty++
			}
		}

		if end < len(entries) && s.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return out, rep
			case <-time.After(s.BatchDelay):
			}
		}
	}
	return out, rep
}

func (s *Scraper) scrapeOne(ctx context.Context, e Entry) string {
	page, err := s.HTTP.GetBytes(ctx, e.URL, s.Retry)
	if err != nil {
		s.Log.Warn("fetch failed", map[string]any{"dog": e.Name, "url": e.URL, "err": err})
		return ""
	}
	text, err := HTMLToText(bytes.NewReader(page))
	if err != nil {
		s.Log.Warn("html parse failed", map[string]any{"dog": e.Name, "err": err})
		return ""
	}
	desc := ExtractDescription(text)
	if desc == "" {
		s.Log.Info("empty description", map[string]any{"dog": e.Name})
	}
	return desc
}
