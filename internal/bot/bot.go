package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/affiliatehub/shopee-relay/internal/metrics"
	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

const (
	defaultPollTimeout = 30 * time.Second
	reportWindow       = 7 * 24 * time.Hour

	searchLimit   = 10
	categoryLimit = 15
	shopLimit     = 15
	topFetchLimit = 20
	topKeepLimit  = 10
)

// topMinCommission is the percent threshold for /top offers.
var topMinCommission = decimal.NewFromInt(5)

// Bot polls for chat commands and answers them with affiliate search
// results, tracked links, and commission reports.
type Bot struct {
	api         API
	affiliate   shopee.AffiliateClient
	paginator   *shopee.Paginator
	logger      *log.Logger
	pollTimeout time.Duration
	now         func() time.Time
}

// Option configures a Bot.
type Option func(*Bot)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(b *Bot) {
		b.logger = l
	}
}

// WithPollTimeout sets the long-poll timeout.
func WithPollTimeout(d time.Duration) Option {
	return func(b *Bot) {
		b.pollTimeout = d
	}
}

// WithNow overrides the clock (tests).
func WithNow(now func() time.Time) Option {
	return func(b *Bot) {
		b.now = now
	}
}

// New creates a Bot.
func New(api API, affiliate shopee.AffiliateClient, p *shopee.Paginator, opts ...Option) *Bot {
	b := &Bot{
		api:         api,
		affiliate:   affiliate,
		paginator:   p,
		logger:      log.Default(),
		pollTimeout: defaultPollTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run long-polls for updates until the context is canceled. Update fetch
// failures are logged and retried after a short pause; the loop only exits
// with the context.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started")

	var offset int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := b.api.GetUpdates(ctx, offset, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Error("fetching updates", "err", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			metrics.BotUpdatesTotal.Inc()
			b.handle(ctx, u)
		}
	}
}

func (b *Bot) handle(ctx context.Context, u Update) {
	if u.Message == nil || u.Message.Text == "" {
		return
	}

	command, args := splitCommand(u.Message.Text)
	if command == "" {
		return
	}

	chatID := u.Message.Chat.ID
	var userID int64
	if u.Message.From != nil {
		userID = u.Message.From.ID
	}

	var err error
	switch command {
	case "/start":
		err = b.reply(ctx, chatID, welcomeText)
	case "/help":
		err = b.reply(ctx, chatID, helpText)
	case "/search":
		err = b.handleSearch(ctx, chatID, userID, args)
	case "/category":
		err = b.handleCategory(ctx, chatID, userID, args)
	case "/shop":
		err = b.handleShop(ctx, chatID, userID, args)
	case "/top":
		err = b.handleTop(ctx, chatID, userID)
	case "/report":
		err = b.handleReport(ctx, chatID)
	default:
		err = b.reply(ctx, chatID, "Unknown command. Send /help for the command list.")
	}

	if err != nil {
		metrics.BotCommandErrorsTotal.WithLabelValues(command).Inc()
		b.logger.Error("handling command", "command", command, "err", err)
		if replyErr := b.reply(ctx, chatID, errorText(err)); replyErr != nil {
			b.logger.Error("sending error reply", "err", replyErr)
		}
	}
}

func (b *Bot) handleSearch(ctx context.Context, chatID, userID int64, args string) error {
	keyword := strings.TrimSpace(args)
	if keyword == "" {
		return b.reply(ctx, chatID, "Usage: /search <keyword>\nExample: /search fone bluetooth")
	}

	page, err := b.affiliate.ProductSearch(ctx, shopee.ProductSearchRequest{
		Keyword: keyword,
		Limit:   searchLimit,
	})
	if err != nil {
		return err
	}
	if len(page.Nodes) == 0 {
		return b.reply(ctx, chatID, "No products found.")
	}

	b.sendProductCards(ctx, chatID, userID, page.Nodes)
	return b.reply(ctx, chatID, "Found "+strconv.Itoa(len(page.Nodes))+" products.")
}

func (b *Bot) handleCategory(ctx context.Context, chatID, userID int64, args string) error {
	categoryID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return b.reply(ctx, chatID, "Usage: /category <id>\nExample: /category 100636")
	}

	page, err := b.affiliate.ProductSearch(ctx, shopee.ProductSearchRequest{
		CategoryID: categoryID,
		Limit:      categoryLimit,
	})
	if err != nil {
		return err
	}
	if len(page.Nodes) == 0 {
		return b.reply(ctx, chatID, "No products found in this category.")
	}

	b.sendProductCards(ctx, chatID, userID, page.Nodes)
	return b.reply(ctx, chatID, "Found "+strconv.Itoa(len(page.Nodes))+" products.")
}

func (b *Bot) handleShop(ctx context.Context, chatID, userID int64, args string) error {
	shopID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return b.reply(ctx, chatID, "Usage: /shop <id>\nExample: /shop 84499012")
	}

	page, err := b.affiliate.ProductSearch(ctx, shopee.ProductSearchRequest{
		ShopID: shopID,
		Limit:  shopLimit,
	})
	if err != nil {
		return err
	}
	if len(page.Nodes) == 0 {
		return b.reply(ctx, chatID, "No products found in this shop.")
	}

	if err := b.reply(ctx, chatID, formatShopHeader(page.Nodes)); err != nil {
		return err
	}
	b.sendProductCards(ctx, chatID, userID, page.Nodes)
	return nil
}

func (b *Bot) handleTop(ctx context.Context, chatID, userID int64) error {
	page, err := b.affiliate.ProductSearch(ctx, shopee.ProductSearchRequest{
		Limit: topFetchLimit,
	})
	if err != nil {
		return err
	}

	top := topOffers(page.Nodes, topMinCommission, topKeepLimit)
	if len(top) == 0 {
		return b.reply(ctx, chatID, "No offers available right now.")
	}

	if err := b.reply(ctx, chatID, "Top "+strconv.Itoa(len(top))+" offers by commission:"); err != nil {
		return err
	}
	b.sendProductCards(ctx, chatID, userID, top)
	return nil
}

func (b *Bot) handleReport(ctx context.Context, chatID int64) error {
	end := b.now().Unix()
	start := end - int64(reportWindow.Seconds())

	orders, err := b.paginator.FetchAll(ctx, b.affiliate.ConversionReport, shopee.ReportRequest{
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return b.reply(ctx, chatID, "No conversions in the last 7 days.")
	}

	summary := shopee.Summarize(orders)
	if err := b.reply(ctx, chatID, formatReport(summary)); err != nil {
		return err
	}
	return b.reply(ctx, chatID, formatRecentOrders(orders, 5))
}

// sendProductCards sends one card per product. A failed card is logged and
// skipped so the rest of the batch still goes out.
func (b *Bot) sendProductCards(
	ctx context.Context,
	chatID, userID int64,
	products []shopee.ProductOffer,
) {
	for _, p := range products {
		if err := b.sendProductCard(ctx, chatID, userID, p); err != nil {
			b.logger.Error("sending product card", "item", p.ItemID, "err", err)
		}
	}
}

func (b *Bot) sendProductCard(
	ctx context.Context,
	chatID, userID int64,
	p shopee.ProductOffer,
) error {
	subIDs := []string{"telegram", "user_" + strconv.FormatInt(userID, 10), "bot", "", ""}

	link, err := b.affiliate.GenerateShortLink(ctx, p.OfferLink, subIDs)
	if err != nil {
		// Fall back to the untracked offer link rather than dropping the card.
		b.logger.Warn("generating short link", "item", p.ItemID, "err", err)
		link = p.OfferLink
	}

	photo := OutgoingPhoto{
		ChatID:    chatID,
		Photo:     p.ImageURL,
		Caption:   formatProductCaption(p),
		ParseMode: "Markdown",
		ReplyMarkup: &InlineKeyboard{
			InlineKeyboard: [][]InlineButton{{{Text: "Buy now", URL: link}}},
		},
	}

	if err := b.api.SendPhoto(ctx, photo); err != nil {
		// Plain text fallback when the image is rejected.
		return b.api.SendMessage(ctx, OutgoingMessage{
			ChatID: chatID,
			Text:   p.ProductName + "\n" + link,
		})
	}
	return nil
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) error {
	return b.api.SendMessage(ctx, OutgoingMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
}

// errorText renders a failure for the chat, using the friendly description
// for known affiliate API codes.
func errorText(err error) string {
	var apiErr *shopee.APIError
	if errors.As(err, &apiErr) {
		return "Request failed: " + shopee.Describe(apiErr)
	}
	return "Request failed: " + err.Error()
}

// splitCommand extracts the leading bot command and its argument string.
// The @botname suffix used in group chats is dropped.
func splitCommand(text string) (command, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}

	command = text
	if i := strings.IndexByte(text, ' '); i >= 0 {
		command = text[:i]
		args = strings.TrimSpace(text[i+1:])
	}
	if i := strings.IndexByte(command, '@'); i >= 0 {
		command = command[:i]
	}
	return command, args
}
