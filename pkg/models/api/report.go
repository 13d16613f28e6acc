package api

// SovMetrics is the wire form of a brand's share percentages.
type SovMetrics struct {
	OverallPct float64 `json:"overall_pct"`
	AdPct      float64 `json:"ad_pct"`
	OrganicPct float64 `json:"organic_pct"`
}

type SlotHeader struct {
	Slot   string   `json:"slot"`
	Brands []string `json:"brands"`
}

type MonthHeader struct {
	Month string       `json:"month"`
	Slots []SlotHeader `json:"slots"`
}

type PivotRow struct {
	Platform        string                                      `json:"platform"`
	City            string                                      `json:"city"`
	FirstInPlatform bool                                        `json:"first_in_platform"`
	Data            map[string]map[string]map[string]SovMetrics `json:"data"`
}

type PivotReport struct {
	Headers []MonthHeader `json:"headers"`
	Rows    []PivotRow    `json:"rows"`
}
