package shopee

import "fmt"

// Default variable values applied when the caller leaves a field zero.
const (
	defaultSortType     = 5 // best-selling first
	defaultListType     = 1 // keyword/category listing
	shopListType        = 5 // shop-scoped listing
	defaultPage         = 1
	defaultSearchLimit  = 10
	defaultReportLimit  = 500
	defaultShopSortType = 2 // commission descending
)

// subIDCount is the fixed arity the generateShortLink mutation requires.
const subIDCount = 5

const pageInfoFields = `
    pageInfo {
      page
      limit
      hasNextPage
    }`

const offerSearchQuery = `query($keyword: String!, $sortType: Int!, $page: Int!, $limit: Int!) {
  shopeeOfferV2(keyword: $keyword, sortType: $sortType, page: $page, limit: $limit) {
    nodes {
      commissionRate
      imageUrl
      offerLink
      offerName
      offerType
    }` + pageInfoFields + `
  }
}`

const shopSearchQuery = `query($keyword: String!, $shopTypes: [Int!]!, $sortType: Int!, $page: Int!, $limit: Int!) {
  shopOfferV2(keyword: $keyword, shopType: $shopTypes, sortType: $sortType, page: $page, limit: $limit) {
    nodes {
      commissionRate
      shopId
      shopName
      ratingStar
      remainingBudget
      offerLink
      bannerInfo {
        count
        banners {
          imageUrl
          imageWidth
          imageHeight
        }
      }
    }` + pageInfoFields + `
  }
}`

const productOfferFields = `
    nodes {
      itemId
      productName
      commissionRate
      sellerCommissionRate
      shopeeCommissionRate
      commission
      priceMin
      priceMax
      sales
      ratingStar
      imageUrl
      offerLink
      shopId
      shopName
      shopType
      productCatIds
    }` + pageInfoFields

// Product search query variants. The upstream schema rejects unused filter
// arguments, so each combination of filters gets its own fixed document
// instead of runtime string assembly. Shop-scoped search must bind both
// shopId and matchId to the same value.
const (
	productSearchByShop = `query ProductSearch($shopId: Int!, $listType: Int!, $sortType: Int!, $page: Int!, $limit: Int!) {
  productOfferV2(shopId: $shopId, matchId: $shopId, listType: $listType, sortType: $sortType, page: $page, limit: $limit) {` + productOfferFields + `
  }
}`

	productSearchByCategory = `query ProductSearch($categoryId: Int!, $listType: Int!, $sortType: Int!, $page: Int!, $limit: Int!) {
  productOfferV2(productCatId: $categoryId, listType: $listType, sortType: $sortType, page: $page, limit: $limit) {` + productOfferFields + `
  }
}`

	productSearchByKeyword = `query ProductSearch($keyword: String!, $listType: Int!, $sortType: Int!, $page: Int!, $limit: Int!) {
  productOfferV2(keyword: $keyword, listType: $listType, sortType: $sortType, page: $page, limit: $limit) {` + productOfferFields + `
  }
}`

	productSearchListWide = `query ProductSearch($listType: Int!, $sortType: Int!, $page: Int!, $limit: Int!) {
  productOfferV2(listType: $listType, sortType: $sortType, page: $page, limit: $limit) {` + productOfferFields + `
  }
}`
)

const shortLinkMutation = `mutation($url: String!, $subIds: [String!]!) {
  generateShortLink(input: {originUrl: $url, subIds: $subIds}) {
    shortLink
  }
}`

const reportQueryTemplate = `query %s($start: Int!, $end: Int!, $page: Int!, $limit: Int!, $scrollId: String) {
  %s(purchaseTimeStart: $start, purchaseTimeEnd: $end, page: $page, limit: $limit, scrollId: $scrollId) {
    nodes {
      orderId
      purchaseTime
      commissionRate
      commissionAmount
      orderStatus
      subIds
      productName
      itemPrice
    }
    pageInfo {
      page
      limit
      hasNextPage
      scrollId
    }
  }
}`

// OfferSearchRequest parameterizes a marketplace-wide offer search.
type OfferSearchRequest struct {
	Keyword  string
	SortType int
	Page     int
	Limit    int
}

// OfferSearchQuery builds the shopeeOfferV2 operation.
func OfferSearchQuery(req OfferSearchRequest) Request {
	return Request{
		Query: offerSearchQuery,
		Variables: map[string]any{
			"keyword":  req.Keyword,
			"sortType": intOrDefault(req.SortType, defaultShopSortType),
			"page":     intOrDefault(req.Page, defaultPage),
			"limit":    intOrDefault(req.Limit, defaultSearchLimit),
		},
	}
}

// ShopSearchRequest parameterizes a shop offer search. ShopTypes defaults
// to Mall (1) and Preferred (4) shops.
type ShopSearchRequest struct {
	Keyword   string
	ShopTypes []int
	SortType  int
	Page      int
	Limit     int
}

// ShopSearchQuery builds the shopOfferV2 operation.
func ShopSearchQuery(req ShopSearchRequest) Request {
	shopTypes := req.ShopTypes
	if len(shopTypes) == 0 {
		shopTypes = []int{1, 4}
	}
	return Request{
		Query: shopSearchQuery,
		Variables: map[string]any{
			"keyword":   req.Keyword,
			"shopTypes": shopTypes,
			"sortType":  intOrDefault(req.SortType, defaultShopSortType),
			"page":      intOrDefault(req.Page, defaultPage),
			"limit":     intOrDefault(req.Limit, defaultSearchLimit),
		},
	}
}

// ProductSearchRequest parameterizes a product search. At most one filter
// applies per request, selected with priority ShopID > CategoryID >
// Keyword; with no filter set the query lists marketplace-wide offers.
type ProductSearchRequest struct {
	Keyword    string
	CategoryID int64
	ShopID     int64
	ListType   int
	SortType   int
	Page       int
	Limit      int
}

// ProductSearchQuery builds the productOfferV2 operation, selecting the
// query variant that matches the filters present in req.
func ProductSearchQuery(req ProductSearchRequest) Request {
	listType := req.ListType
	vars := map[string]any{
		"sortType": intOrDefault(req.SortType, defaultSortType),
		"page":     intOrDefault(req.Page, defaultPage),
		"limit":    intOrDefault(req.Limit, defaultSearchLimit),
	}

	var query string
	switch {
	case req.ShopID != 0:
		query = productSearchByShop
		vars["shopId"] = req.ShopID
		listType = intOrDefault(listType, shopListType)
	case req.CategoryID != 0:
		query = productSearchByCategory
		vars["categoryId"] = req.CategoryID
		listType = intOrDefault(listType, defaultListType)
	case req.Keyword != "":
		query = productSearchByKeyword
		vars["keyword"] = req.Keyword
		listType = intOrDefault(listType, defaultListType)
	default:
		query = productSearchListWide
		listType = intOrDefault(listType, defaultListType)
	}
	vars["listType"] = listType

	return Request{Query: query, Variables: vars}
}

// NormalizeSubIDs returns exactly subIDCount entries, preserving the order
// of the first five and padding with empty strings. The mutation requires a
// fixed-arity array.
func NormalizeSubIDs(ids []string) []string {
	out := make([]string, subIDCount)
	copy(out, ids)
	return out
}

// ShortLinkMutation builds the generateShortLink operation for an origin
// URL with up to five attribution sub-IDs.
func ShortLinkMutation(originURL string, subIDs []string) Request {
	return Request{
		Query: shortLinkMutation,
		Variables: map[string]any{
			"url":    originURL,
			"subIds": NormalizeSubIDs(subIDs),
		},
	}
}

// ReportRequest parameterizes one page of a commission report. ScrollID
// must be the token from the previous page's PageInfo, or empty for the
// first page.
type ReportRequest struct {
	StartTime int64
	EndTime   int64
	Page      int
	Limit     int
	ScrollID  string
}

// ConversionReportQuery builds one page of the conversion report.
func ConversionReportQuery(req ReportRequest) Request {
	return reportQuery("ConversionReport", "conversionReport", req)
}

// ValidatedReportQuery builds one page of the validated report (orders with
// confirmed commission). Same shape as the conversion report.
func ValidatedReportQuery(req ReportRequest) Request {
	return reportQuery("ValidatedReport", "validatedReport", req)
}

func reportQuery(opName, field string, req ReportRequest) Request {
	vars := map[string]any{
		"start": req.StartTime,
		"end":   req.EndTime,
		"page":  intOrDefault(req.Page, defaultPage),
		"limit": intOrDefault(req.Limit, defaultReportLimit),
	}
	if req.ScrollID != "" {
		vars["scrollId"] = req.ScrollID
	}
	return Request{
		Query:     fmt.Sprintf(reportQueryTemplate, opName, field),
		Variables: vars,
	}
}

func intOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
