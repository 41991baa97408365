package shopee

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	defaultMaxPages  = 10
	defaultPageDelay = time.Second
)

// ReportFetcher fetches one page of a report operation. Both
// AffiliateClient report methods satisfy this signature.
type ReportFetcher func(ctx context.Context, req ReportRequest) (*ReportPage, error)

// Paginator drives a report operation across pages, forwarding the scroll
// token from each response into the next request. Pages are fetched
// strictly sequentially: the scroll token is only valid for one "next"
// call and expires after roughly 30 seconds, and the provider caps calls
// at about 2000/hour, so a pacing delay separates successive pages.
type Paginator struct {
	maxPages int
	limiter  *rate.Limiter
	logger   *log.Logger
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithMaxPages overrides the default page cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPageDelay overrides the default delay between successive page
// fetches. Zero disables pacing (tests).
func WithPageDelay(d time.Duration) PaginatorOption {
	return func(p *Paginator) {
		p.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a Paginator with the default page cap and pacing.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		maxPages: defaultMaxPages,
		limiter:  rate.NewLimiter(rate.Every(defaultPageDelay), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Capped returns a Paginator whose page cap is n, or the receiver itself
// when n is not positive. The copy shares the receiver's limiter, so
// per-request caps never bypass the pacing budget.
func (p *Paginator) Capped(n int) *Paginator {
	if n <= 0 || n == p.maxPages {
		return p
	}
	cp := *p
	cp.maxPages = n
	return &cp
}

// FetchAll accumulates records from page 1 until the response reports no
// next page or the page cap is reached. A failure on any page propagates
// immediately and discards everything collected so far: a failure anywhere
// invalidates the whole batch.
func (p *Paginator) FetchAll(
	ctx context.Context,
	fetch ReportFetcher,
	req ReportRequest,
) ([]OrderRecord, error) {
	var all []OrderRecord

	req.ScrollID = ""
	for page := 1; page <= p.maxPages; page++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing wait: %w", err)
		}

		req.Page = page
		resp, err := fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetching report page %d: %w", page, err)
		}

		all = append(all, resp.Nodes...)

		if p.logger != nil {
			p.logger.Debug(
				"report page fetched",
				"page", page,
				"records", len(resp.Nodes),
				"has_next", resp.PageInfo.HasNextPage,
			)
		}

		if !resp.PageInfo.HasNextPage {
			return all, nil
		}
		req.ScrollID = resp.PageInfo.ScrollID
	}

	return all, nil
}
