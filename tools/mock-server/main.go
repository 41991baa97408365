// Package main implements a mock Shopee affiliate API server for local
// development. It serves canned GraphQL responses from JSON fixtures so the
// relay server, bot, and sra CLI can run without real affiliate credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type productFixture struct {
	Nodes []json.RawMessage `json:"nodes"`
}

type productNode struct {
	ProductName string `json:"productName"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type pageInfo struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	HasNextPage bool   `json:"hasNextPage"`
	ScrollID    string `json:"scrollId,omitempty"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/product_offers.json", "path to product offer fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Nodes))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /graphql", graphqlHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock affiliate server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*productFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fixture productFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fixture, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func graphqlHandler(logger *slog.Logger, fixture *productFixture) http.HandlerFunc {
	// Pre-parse product names for keyword filtering.
	type indexedProduct struct {
		raw  json.RawMessage
		name string
	}
	products := make([]indexedProduct, 0, len(fixture.Nodes))
	for _, raw := range fixture.Nodes {
		var p productNode
		//nolint:errcheck,gosec // fixture data is trusted; name extraction is best-effort
		json.Unmarshal(raw, &p)
		products = append(products, indexedProduct{raw: raw, name: strings.ToLower(p.ProductName)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// A real signature cannot be verified without the secret, but the
		// header shape must match what the client sends.
		if !strings.HasPrefix(r.Header.Get("Authorization"), "SHA256 Credential=") {
			logger.Warn("request missing SHA256 Authorization header")
			writeError(w, 10020, "Invalid Signature")
			return
		}

		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 11001, "Invalid request body")
			return
		}

		switch {
		case strings.Contains(req.Query, "productOfferV2"):
			keyword := strings.ToLower(stringVar(req.Variables, "keyword"))
			page := intVar(req.Variables, "page", 1)
			limit := intVar(req.Variables, "limit", 10)

			var matched []json.RawMessage
			for _, p := range products {
				if keyword == "" || strings.Contains(p.name, keyword) {
					matched = append(matched, p.raw)
				}
			}
			total := len(matched)

			start := (page - 1) * limit
			if start >= total {
				matched = nil
			} else {
				end := min(start+limit, total)
				matched = matched[start:end]
			}
			if matched == nil {
				matched = []json.RawMessage{}
			}

			writeData(w, "productOfferV2", map[string]any{
				"nodes": matched,
				"pageInfo": pageInfo{
					Page:        page,
					Limit:       limit,
					HasNextPage: start+limit < total,
				},
			})
			logger.Info("productOfferV2", "keyword", keyword, "matched", total, "returned", len(matched))

		case strings.Contains(req.Query, "generateShortLink"):
			origin := stringVar(req.Variables, "url")
			if origin == "" {
				writeError(w, 11001, "url is required")
				return
			}
			writeData(w, "generateShortLink", map[string]any{
				"shortLink": shortLinkFor(origin),
			})
			logger.Info("generateShortLink", "origin", origin)

		case strings.Contains(req.Query, "conversionReport") || strings.Contains(req.Query, "validatedReport"):
			field := "conversionReport"
			if strings.Contains(req.Query, "validatedReport") {
				field = "validatedReport"
			}
			nodes, info := reportPage(stringVar(req.Variables, "scrollId"))
			writeData(w, field, map[string]any{
				"nodes":    nodes,
				"pageInfo": info,
			})
			logger.Info(field, "scroll", info.ScrollID, "orders", len(nodes))

		case strings.Contains(req.Query, "shopeeOfferV2"):
			writeData(w, "shopeeOfferV2", map[string]any{
				"nodes":    campaignOffers,
				"pageInfo": pageInfo{Page: 1, Limit: 10},
			})

		case strings.Contains(req.Query, "shopOfferV2"):
			writeData(w, "shopOfferV2", map[string]any{
				"nodes":    shopOffers,
				"pageInfo": pageInfo{Page: 1, Limit: 10},
			})

		default:
			writeError(w, 11001, "Unknown operation")
		}
	}
}

// shortLinkFor derives a stable fake short link from the origin URL so
// repeated requests for the same product return the same link.
func shortLinkFor(origin string) string {
	h := fnv.New32a()
	//nolint:errcheck,gosec // fnv writes never fail
	h.Write([]byte(origin))
	return fmt.Sprintf("https://s.shopee.com.br/mock%08x", h.Sum32())
}

const reportScrollID = "mock-scroll-1"

// reportPage serves a two-page conversion report: the first request gets a
// scroll token, the follow-up with that token gets the final page.
func reportPage(scrollID string) ([]map[string]any, pageInfo) {
	if scrollID == reportScrollID {
		return reportOrders[2:], pageInfo{Page: 2, Limit: 2}
	}
	return reportOrders[:2], pageInfo{Page: 1, Limit: 2, HasNextPage: true, ScrollID: reportScrollID}
}

var reportOrders = []map[string]any{
	{
		"orderId":          "BR2406150001",
		"purchaseTime":     1718409600,
		"commissionRate":   "7.50",
		"commissionAmount": "3.74",
		"orderStatus":      "COMPLETED",
		"subIds":           []string{"telegram", "user_42", "bot", "", ""},
		"productName":      "Fone Bluetooth TWS",
		"itemPrice":        "49.90",
	},
	{
		"orderId":          "BR2406150002",
		"purchaseTime":     1718413200,
		"commissionRate":   "5.00",
		"commissionAmount": "6.00",
		"orderStatus":      "PENDING",
		"subIds":           []string{"webhook", "", "", "", ""},
		"productName":      "Smartwatch D20",
		"itemPrice":        "120.00",
	},
	{
		"orderId":          "BR2406150003",
		"purchaseTime":     1718416800,
		"commissionRate":   "10.00",
		"commissionAmount": "2.99",
		"orderStatus":      "COMPLETED",
		"subIds":           []string{"telegram", "user_7", "bot", "", ""},
		"productName":      "Capinha iPhone 15",
		"itemPrice":        "29.90",
	},
}

var campaignOffers = []map[string]any{
	{
		"commissionRate": "12.00",
		"imageUrl":       "https://cf.shopee.com.br/file/mock-campaign-1",
		"offerLink":      "https://shopee.com.br/m/ofertas-relampago",
		"offerName":      "Ofertas Relâmpago",
		"offerType":      1,
	},
	{
		"commissionRate": "8.00",
		"imageUrl":       "https://cf.shopee.com.br/file/mock-campaign-2",
		"offerLink":      "https://shopee.com.br/m/frete-gratis",
		"offerName":      "Frete Grátis",
		"offerType":      2,
	},
}

var shopOffers = []map[string]any{
	{
		"commissionRate":  "6.50",
		"shopId":          84328428,
		"shopName":        "TechStore BR",
		"ratingStar":      "4.8",
		"remainingBudget": 3,
		"offerLink":       "https://shopee.com.br/techstore.br",
		"bannerInfo":      map[string]any{"count": 0, "banners": []any{}},
	},
}

func stringVar(vars map[string]any, key string) string {
	s, _ := vars[key].(string)
	return s
}

func intVar(vars map[string]any, key string, fallback int) int {
	// JSON numbers decode as float64.
	if f, ok := vars[key].(float64); ok && f > 0 {
		return int(f)
	}
	return fallback
}

func writeData(w http.ResponseWriter, field string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{field: payload},
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]any{
			{
				"message":    message,
				"extensions": map[string]any{"code": code},
			},
		},
	})
}
