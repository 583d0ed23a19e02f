package search_test

import (
	"reflect"
	"testing"

	"github.com/minhqn/price-intel/application/search"
	"github.com/minhqn/price-intel/model"
)

func fptr(f float64) *float64 { return &f }

func pricedListing(id int, name, source string, original, discount *float64) model.RawListing {
	return model.RawListing{
		ID:            id,
		Name:          name,
		Source:        source,
		OriginalPrice: original,
		DiscountPrice: discount,
	}
}

func TestMapValidIDs_PriceResolution(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "Sản phẩm A", "WinMart", fptr(100000), fptr(80000)),
		pricedListing(2, "Sản phẩm B", "Coopmart", fptr(100000), nil),
	}

	got := search.MapValidIDs([]int{1, 2}, listings)

	if len(got) != 2 {
		t.Fatalf("point count = %d, want 2", len(got))
	}
	if got[0].Price != 80000 {
		t.Fatalf("discounted listing resolved to %v, want 80000", got[0].Price)
	}
	if got[0].OriginalPrice == nil || *got[0].OriginalPrice != 100000 {
		t.Fatalf("discounted listing lost its original price: %+v", got[0])
	}
	if got[1].Price != 100000 {
		t.Fatalf("undiscounted listing resolved to %v, want 100000", got[1].Price)
	}
	if got[1].OriginalPrice != nil {
		t.Fatalf("undiscounted listing should not carry an original price: %+v", got[1])
	}
}

func TestMapValidIDs_SortStableAscending(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "Giá 50", "Store1", fptr(50), nil),
		pricedListing(2, "Giá 20 đầu", "Store2", fptr(20), nil),
		pricedListing(3, "Giá 20 sau", "Store3", fptr(20), nil),
		pricedListing(4, "Giá 10", "Store4", fptr(10), nil),
	}

	got := search.MapValidIDs([]int{1, 2, 3, 4}, listings)

	prices := make([]float64, 0, len(got))
	for _, p := range got {
		prices = append(prices, p.Price)
	}
	if !reflect.DeepEqual(prices, []float64{10, 20, 20, 50}) {
		t.Fatalf("sorted prices = %v, want [10 20 20 50]", prices)
	}
	// Ties keep their original relative order.
	if got[1].ProductTitle != "Giá 20 đầu" || got[2].ProductTitle != "Giá 20 sau" {
		t.Fatalf("equal prices reordered: %q then %q", got[1].ProductTitle, got[2].ProductTitle)
	}
}

func TestMapValidIDs_DropsUnknownAndUnpriced(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "Có giá", "Store1", fptr(30000), nil),
		pricedListing(2, "Không giá", "Store2", nil, nil),
	}

	// 99 was never submitted; 2 has no price. Both vanish silently.
	got := search.MapValidIDs([]int{99, 2, 1}, listings)

	if len(got) != 1 {
		t.Fatalf("point count = %d, want 1 (%+v)", len(got), got)
	}
	if got[0].ProductTitle != "Có giá" {
		t.Fatalf("kept the wrong listing: %+v", got[0])
	}
}

func TestBuildVariants_Aggregates(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "Gói 10", "Store1", fptr(10), nil),
		pricedListing(2, "Gói 20", "Store2", fptr(20), nil),
		pricedListing(3, "Gói 30", "Store3", fptr(30), nil),
	}
	groups := []model.OracleGroup{
		{Name: "Gói nhỏ", Description: "Quy cách 500g", MemberIDs: []int{3, 1, 2}},
	}

	got := search.BuildVariants(groups, listings)

	if len(got) != 1 {
		t.Fatalf("variant count = %d, want 1", len(got))
	}
	v := got[0]
	if v.MinPrice != 10 || v.MaxPrice != 30 || v.AveragePrice != 20 {
		t.Fatalf("stats = min %v max %v avg %v, want 10/30/20", v.MinPrice, v.MaxPrice, v.AveragePrice)
	}
	if v.Description != "Quy cách 500g" {
		t.Fatalf("description = %q", v.Description)
	}
	if v.Items[0].Price != 10 || v.Items[2].Price != 30 {
		t.Fatalf("items not sorted ascending: %+v", v.Items)
	}
}

func TestBuildVariants_DropsEmptyGroup(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "Có giá", "Store1", fptr(15000), nil),
		pricedListing(2, "Không giá", "Store2", nil, nil),
	}
	groups := []model.OracleGroup{
		{Name: "Nhóm rỗng", MemberIDs: []int{42, 2}},
		{Name: "Nhóm thật", MemberIDs: []int{1}},
	}

	got := search.BuildVariants(groups, listings)

	if len(got) != 1 {
		t.Fatalf("variant count = %d, want 1 (empty group must be dropped)", len(got))
	}
	if got[0].VariantName != "Nhóm thật" {
		t.Fatalf("kept the wrong group: %q", got[0].VariantName)
	}
}

func TestBuildVariants_DefaultDescription(t *testing.T) {
	listings := []model.RawListing{
		pricedListing(1, "A", "Store1", fptr(10), nil),
		pricedListing(2, "B", "Store2", fptr(20), nil),
	}
	groups := []model.OracleGroup{
		{Name: "Nhóm", MemberIDs: []int{1, 2}},
	}

	got := search.BuildVariants(groups, listings)

	want := "Tìm thấy 2 ưu đãi cho phân loại này."
	if got[0].Description != want {
		t.Fatalf("default description = %q, want %q", got[0].Description, want)
	}
}
