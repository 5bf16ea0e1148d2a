package crossref

import (
	"context"
	"fmt"

	"github.com/docfield/docfield/internal/reference"
)

// Fetcher resolves refs-input entries into formatted reference records.
type Fetcher struct {
	Client *Client
	Cache  *Cache // nil disables caching
	Style  Style
}

// Resolved couples the output record with the raw work, which the BibTeX
// export path still needs. Work is nil when the entry fell back.
type Resolved struct {
	Record reference.Record
	Work   *Work
}

// Resolve fetches metadata for each input in order. An entry without a DOI,
// or whose fetch fails, resolves to its fallback text; a fetch failure is
// reported per entry rather than aborting the batch.
func (f *Fetcher) Resolve(ctx context.Context, inputs []reference.InputRef) ([]Resolved, error) {
	results := make([]Resolved, 0, len(inputs))

	for _, in := range inputs {
		fallback := in.Fallback
		if fallback == "" {
			fallback = fmt.Sprintf("Reference %d", in.ID)
		}

		if in.DOI == "" {
			results = append(results, Resolved{Record: reference.Record{
				ID:        in.ID,
				Formatted: fallback,
				Source:    reference.SourceFallback,
			}})
			continue
		}

		work, err := f.lookup(ctx, in.DOI)
		if err != nil || work == nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			results = append(results, Resolved{Record: reference.Record{
				ID:        in.ID,
				DOI:       in.DOI,
				Formatted: fallback,
				Source:    reference.SourceFallback,
			}})
			continue
		}

		results = append(results, Resolved{
			Record: reference.Record{
				ID:        in.ID,
				DOI:       in.DOI,
				Formatted: Format(work, f.Style),
				Source:    reference.SourceCrossref,
			},
			Work: work,
		})
	}

	return results, nil
}

// lookup consults the cache before the network and populates it after a
// successful fetch. Cache write failures are ignored: the fetched work is
// still usable.
func (f *Fetcher) lookup(ctx context.Context, doi string) (*Work, error) {
	if f.Cache != nil {
		if work, ok, err := f.Cache.Get(doi); err == nil && ok {
			return work, nil
		}
	}

	work, err := f.Client.GetWork(ctx, doi)
	if err != nil {
		return nil, err
	}

	if f.Cache != nil {
		f.Cache.Put(doi, work)
	}
	return work, nil
}
