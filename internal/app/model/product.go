package model

import "math"

// CategoryAll selects every product in the catalog.
const CategoryAll = "All"

type Product struct {
	ID            string  `json:"id" yaml:"id"`                                             // 상품 ID
	Name          string  `json:"name" yaml:"name"`                                         // 상품명
	Price         float64 `json:"price" yaml:"price"`                                       // 판매가
	OriginalPrice float64 `json:"original_price,omitempty" yaml:"original_price,omitempty"` // 정가 (할인 시)
	Image         string  `json:"image" yaml:"image"`                                       // 이미지 참조 (asset key)
	Category      string  `json:"category" yaml:"category"`                                 // 카테고리
	Rating        float64 `json:"rating" yaml:"rating"`                                     // 평점
	Reviews       int     `json:"reviews" yaml:"reviews"`                                   // 리뷰 수
	IsNew         bool    `json:"is_new" yaml:"is_new"`                                     // 신상품 여부
	IsSale        bool    `json:"is_sale" yaml:"is_sale"`                                   // 세일 여부
}

// InCategory reports whether the product passes the category filter.
// Matching is exact and case-sensitive; CategoryAll and "" match everything.
func (p Product) InCategory(category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.Category == category
}

// DiscountPercent returns the rounded percentage off the original price, or 0.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}
