package domain

// FindingTag identifies a category of advisory data-quality finding.
type FindingTag string

const (
	// FindingNegativeUnits flags records with Units_Sold < 0.
	FindingNegativeUnits FindingTag = "negative-units"
	// FindingNegativePrice flags records with Price < 0.
	FindingNegativePrice FindingTag = "negative-price"
	// FindingNegativeStock flags records with Opening_Stock < 0.
	FindingNegativeStock FindingTag = "negative-stock"
	// FindingTurnoverExceeds100 flags records whose computed turnover
	// rate is a numeric value above 100% (sold more than was stocked).
	// Records whose turnover is not computable are never counted here.
	FindingTurnoverExceeds100 FindingTag = "turnover-exceeds-100-percent"
	// FindingUnknownMonth flags records whose month label is outside
	// the fixed Jan..Dec set and therefore has no month number.
	FindingUnknownMonth FindingTag = "unknown-month"
	// FindingTurnoverNotComputable flags records with zero opening
	// stock, whose turnover rate has no numeric value.
	FindingTurnoverNotComputable FindingTag = "turnover-not-computable"
)

// Finding is an advisory observation over the whole dataset. Findings
// never block processing; they are collected and reported alongside the
// enriched output.
type Finding struct {
	Tag     FindingTag `json:"tag"`
	Count   int        `json:"count"`
	Message string     `json:"message"`
}
