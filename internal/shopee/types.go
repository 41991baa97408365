package shopee

import "github.com/shopspring/decimal"

// PageInfo is the pagination state returned by list operations. ScrollID,
// when present, is an opaque token valid for roughly 30 seconds and must be
// forwarded verbatim to fetch the next page.
type PageInfo struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	HasNextPage bool   `json:"hasNextPage"`
	ScrollID    string `json:"scrollId,omitempty"`
}

// ProductOffer is one productOfferV2 node. Monetary and rate fields arrive
// as JSON strings and decode into decimals.
type ProductOffer struct {
	ItemID               int64           `json:"itemId"`
	ProductName          string          `json:"productName"`
	CommissionRate       decimal.Decimal `json:"commissionRate"`
	SellerCommissionRate decimal.Decimal `json:"sellerCommissionRate"`
	ShopeeCommissionRate decimal.Decimal `json:"shopeeCommissionRate"`
	Commission           decimal.Decimal `json:"commission"`
	PriceMin             decimal.Decimal `json:"priceMin"`
	PriceMax             decimal.Decimal `json:"priceMax"`
	Sales                int64           `json:"sales"`
	RatingStar           decimal.Decimal `json:"ratingStar"`
	ImageURL             string          `json:"imageUrl"`
	OfferLink            string          `json:"offerLink"`
	ShopID               int64           `json:"shopId"`
	ShopName             string          `json:"shopName"`
	ShopType             []int           `json:"shopType"`
	ProductCatIDs        []int64         `json:"productCatIds"`
}

// ShopeeOffer is one shopeeOfferV2 node (marketplace-wide campaign offers).
type ShopeeOffer struct {
	CommissionRate decimal.Decimal `json:"commissionRate"`
	ImageURL       string          `json:"imageUrl"`
	OfferLink      string          `json:"offerLink"`
	OfferName      string          `json:"offerName"`
	OfferType      int             `json:"offerType"`
}

// ShopOffer is one shopOfferV2 node.
type ShopOffer struct {
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	ShopID          int64           `json:"shopId"`
	ShopName        string          `json:"shopName"`
	RatingStar      decimal.Decimal `json:"ratingStar"`
	RemainingBudget int             `json:"remainingBudget"`
	OfferLink       string          `json:"offerLink"`
	BannerInfo      BannerInfo      `json:"bannerInfo"`
}

// BannerInfo carries a shop's promotional banners.
type BannerInfo struct {
	Count   int      `json:"count"`
	Banners []Banner `json:"banners"`
}

// Banner is a single promotional image.
type Banner struct {
	ImageURL    string `json:"imageUrl"`
	ImageWidth  int    `json:"imageWidth"`
	ImageHeight int    `json:"imageHeight"`
}

// OrderRecord is one conversion or validated report node.
type OrderRecord struct {
	OrderID          string          `json:"orderId"`
	PurchaseTime     int64           `json:"purchaseTime"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	OrderStatus      string          `json:"orderStatus"`
	SubIDs           []string        `json:"subIds"`
	ProductName      string          `json:"productName"`
	ItemPrice        decimal.Decimal `json:"itemPrice"`
}

// ProductPage is one page of product search results.
type ProductPage struct {
	Nodes    []ProductOffer `json:"nodes"`
	PageInfo PageInfo       `json:"pageInfo"`
}

// OfferPage is one page of marketplace offer results.
type OfferPage struct {
	Nodes    []ShopeeOffer `json:"nodes"`
	PageInfo PageInfo      `json:"pageInfo"`
}

// ShopPage is one page of shop offer results.
type ShopPage struct {
	Nodes    []ShopOffer `json:"nodes"`
	PageInfo PageInfo    `json:"pageInfo"`
}

// ReportPage is one page of a commission report.
type ReportPage struct {
	Nodes    []OrderRecord `json:"nodes"`
	PageInfo PageInfo      `json:"pageInfo"`
}
