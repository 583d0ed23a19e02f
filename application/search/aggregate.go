package search

import (
	"fmt"
	"sort"

	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
)

// MapValidIDs turns the oracle's flat verdict back into price points. Ids
// that don't map to a submitted listing are dropped silently (the oracle may
// echo stale or duplicate ids), as are listings without any price. The
// result is sorted by price ascending; the sort is stable so equal prices
// keep the oracle's order.
func MapValidIDs(validIDs []int, listings []model.RawListing) []model.PricePoint {
	byID := indexByID(listings)

	points := make([]model.PricePoint, 0, len(validIDs))
	for _, id := range validIDs {
		listing, ok := byID[id]
		if !ok {
			continue
		}
		point, ok := buildPricePoint(listing)
		if !ok {
			continue
		}
		points = append(points, point)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Price < points[j].Price
	})
	return points
}

// BuildVariants does the grouped-mode equivalent: member ids are resolved
// per group, unmatched and unpriced listings dropped, items sorted by price,
// and the stats computed over what survived. A variant with no priced items
// is meaningless and is dropped entirely.
func BuildVariants(groups []model.OracleGroup, listings []model.RawListing) []model.ProductVariant {
	byID := indexByID(listings)

	variants := make([]model.ProductVariant, 0, len(groups))
	for _, g := range groups {
		items := make([]model.PricePoint, 0, len(g.MemberIDs))
		for _, id := range g.MemberIDs {
			listing, ok := byID[id]
			if !ok {
				continue
			}
			point, ok := buildPricePoint(listing)
			if !ok {
				continue
			}
			items = append(items, point)
		}
		if len(items) == 0 {
			continue
		}

		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})

		minPrice, maxPrice, sum := items[0].Price, items[0].Price, 0.0
		for _, it := range items {
			if it.Price < minPrice {
				minPrice = it.Price
			}
			if it.Price > maxPrice {
				maxPrice = it.Price
			}
			sum += it.Price
		}

		description := g.Description
		if description == "" {
			description = fmt.Sprintf("Tìm thấy %d ưu đãi cho phân loại này.", len(items))
		}

		variants = append(variants, model.ProductVariant{
			VariantName:  g.Name,
			Description:  description,
			AveragePrice: sum / float64(len(items)),
			MinPrice:     minPrice,
			MaxPrice:     maxPrice,
			Items:        items,
		})
	}
	return variants
}

func indexByID(listings []model.RawListing) map[int]model.RawListing {
	byID := make(map[int]model.RawListing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	return byID
}

// buildPricePoint resolves the effective price and normalizes the listing.
// The original price is only kept when it is actually higher than the
// resolved price, since that's the only case where showing a discount makes
// sense.
func buildPricePoint(l model.RawListing) (model.PricePoint, bool) {
	price, ok := l.EffectivePrice()
	if !ok {
		return model.PricePoint{}, false
	}

	point := model.PricePoint{
		StoreName:    l.Source,
		Price:        price,
		Currency:     constant.Currency,
		ProductTitle: l.Name,
		URL:          l.URL,
		ImageURL:     l.ImageURL,
		Unit:         l.Unit,
		Quantity:     l.Quantity,
	}
	if l.OriginalPrice != nil && *l.OriginalPrice > price {
		point.OriginalPrice = l.OriginalPrice
	}
	return point, true
}
