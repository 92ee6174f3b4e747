package run

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/extract"
	"jobsift-engine/internal/fetch"
	"jobsift-engine/internal/notify"
	"jobsift-engine/internal/sink"
	"jobsift-engine/internal/store"
)

const fetchTimeout = 90 * time.Second

type Deps struct {
	DB     *sql.DB
	Fetch  *fetch.Client
	Notify *notify.Reporter
	OutDir string
}

// Sweep runs every enabled service once: pages are fetched concurrently,
// then each document goes through the extraction pipeline strictly
// sequentially in config order, and each qualified batch fans out to the
// store, the file sinks and the notifier. A failure in one service is
// logged and reported but never stops the others.
func Sweep(ctx context.Context, deps Deps, cfg config.Config) (added int, err error) {
	services := cfg.EnabledServices()
	if len(services) == 0 {
		log.Printf("[sweep] no enabled services")
		return 0, nil
	}

	runID := uuid.NewString()[:8]
	log.Printf("[sweep:%s] starting, services=%d", runID, len(services))

	// Fetching goes through the scrape proxy and dominates wall time, so
	// it runs concurrently; everything after stays single-threaded.
	docs := make([]string, len(services))
	var g errgroup.Group
	for i, svc := range services {
		i, svc := i, svc
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			doc, ferr := deps.Fetch.FetchDocument(fctx, svc.URL)
			if ferr != nil {
				// best-effort: don't cancel siblings
				log.Printf("[sweep:%s] %s fetch error: %v", runID, svc.Name, ferr)
				if nerr := deps.Notify.ReportError(svc.Name, ferr); nerr != nil {
					log.Printf("[notify] %v", nerr)
				}
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	for i, svc := range services {
		if docs[i] == "" {
			continue
		}

		res := extract.ProcessDocument(docs[i], svc, time.Now())
		log.Printf("[sweep:%s] %s found=%d qualified=%d skipped=%d",
			runID, svc.Name, res.TotalFound, len(res.Jobs), len(res.Skipped))

		if len(res.Jobs) > 0 {
			n, serr := store.UpsertBatch(ctx, deps.DB, svc.Table, res.Jobs)
			if serr != nil {
				log.Printf("[sweep:%s] %s store error: %v", runID, svc.Name, serr)
				if nerr := deps.Notify.ReportError(svc.Name, serr); nerr != nil {
					log.Printf("[notify] %v", nerr)
				}
				continue
			}
			added += n

			if _, werr := sink.WriteJSON(deps.OutDir, svc.Name, runID, res.Jobs); werr != nil {
				log.Printf("[sink] %s json: %v", svc.Name, werr)
			}
			if _, werr := sink.WriteCSV(deps.OutDir, svc.Name, runID, res.Jobs); werr != nil {
				log.Printf("[sink] %s csv: %v", svc.Name, werr)
			}
		}

		if nerr := deps.Notify.ServiceSummary(svc.DisplayName, res.TotalFound, len(res.Jobs)); nerr != nil {
			log.Printf("[notify] %v", nerr)
		}
	}

	if nerr := deps.Notify.SweepSummary(added, len(services)); nerr != nil {
		log.Printf("[notify] %v", nerr)
	}
	log.Printf("[sweep:%s] done, added=%d", runID, added)
	return added, nil
}
