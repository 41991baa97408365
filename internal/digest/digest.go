// Package digest produces periodic commission digests and delivers them to
// the admin chat.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/affiliatehub/shopee-relay/internal/bot"
	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// MessageSender delivers a digest message. *bot.Client satisfies it.
type MessageSender interface {
	SendMessage(ctx context.Context, msg bot.OutgoingMessage) error
}

// Digest collects the conversion report for a trailing window and sends a
// summary to a chat.
type Digest struct {
	affiliate shopee.AffiliateClient
	paginator *shopee.Paginator
	sender    MessageSender
	chatID    int64
	window    time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Digest.
type Option func(*Digest)

// WithNow overrides the clock (tests).
func WithNow(now func() time.Time) Option {
	return func(d *Digest) {
		d.now = now
	}
}

// New creates a Digest.
func New(
	affiliate shopee.AffiliateClient,
	p *shopee.Paginator,
	sender MessageSender,
	chatID int64,
	window time.Duration,
	log *slog.Logger,
	opts ...Option,
) *Digest {
	d := &Digest{
		affiliate: affiliate,
		paginator: p,
		sender:    sender,
		chatID:    chatID,
		window:    window,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run collects and delivers one digest covering the trailing window.
func (d *Digest) Run(ctx context.Context) error {
	end := d.now()
	start := end.Add(-d.window)

	orders, err := d.paginator.FetchAll(ctx, d.affiliate.ConversionReport, shopee.ReportRequest{
		StartTime: start.Unix(),
		EndTime:   end.Unix(),
	})
	if err != nil {
		return fmt.Errorf("collecting report: %w", err)
	}

	summary := shopee.Summarize(orders)
	d.log.Info("digest collected",
		"orders", summary.OrderCount,
		"total_commission", summary.TotalCommission.String(),
	)

	if err := d.sender.SendMessage(ctx, bot.OutgoingMessage{
		ChatID:    d.chatID,
		Text:      formatDigest(summary, d.window),
		ParseMode: "Markdown",
	}); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}
	return nil
}

// formatDigest renders the digest text. Channel and status lines are sorted
// for stable output.
func formatDigest(s shopee.ReportSummary, window time.Duration) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Commission digest* (last %s)\n\n", window)
	if s.OrderCount == 0 {
		sb.WriteString("No conversions in this window.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "*Total commission:* R$ %s\n", s.TotalCommission.StringFixed(2))
	fmt.Fprintf(&sb, "*Orders:* %d\n", s.OrderCount)
	fmt.Fprintf(&sb, "*Average commission:* R$ %s\n", s.AverageCommission.StringFixed(2))

	sb.WriteString("\n*By status:*\n")
	for _, k := range sortedKeys(s.ByStatus) {
		g := s.ByStatus[k]
		fmt.Fprintf(&sb, "- %s: %d (R$ %s)\n", k, g.Count, g.TotalCommission.StringFixed(2))
	}

	sb.WriteString("\n*By channel:*\n")
	for _, k := range sortedKeys(s.ByChannel) {
		g := s.ByChannel[k]
		fmt.Fprintf(&sb, "- %s: %d (R$ %s)\n", k, g.Count, g.TotalCommission.StringFixed(2))
	}

	return sb.String()
}

func sortedKeys(m map[string]shopee.GroupStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
