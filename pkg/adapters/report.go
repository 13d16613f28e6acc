package adapters

import (
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/api"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

func MapSovMetricsDomainToApi(m domain.SovMetrics) api.SovMetrics {
	return api.SovMetrics{
		OverallPct: m.Overall,
		AdPct:      m.Ad,
		OrganicPct: m.Organic,
	}
}

func MapHeaderTreeDomainToApi(h domain.HeaderTree) []api.MonthHeader {
	months := make([]api.MonthHeader, 0, len(h.Months))
	for _, m := range h.Months {
		slots := make([]api.SlotHeader, 0, len(m.Slots))
		for _, s := range m.Slots {
			slots = append(slots, api.SlotHeader{Slot: s.Slot, Brands: s.Brands})
		}
		months = append(months, api.MonthHeader{Month: m.Month, Slots: slots})
	}
	return months
}

func MapPivotRowDomainToApi(r domain.PivotRow) api.PivotRow {
	data := make(map[string]map[string]map[string]api.SovMetrics, len(r.Data))
	for month, slots := range r.Data {
		slotMap := make(map[string]map[string]api.SovMetrics, len(slots))
		for slot, brands := range slots {
			brandMap := make(map[string]api.SovMetrics, len(brands))
			for brand, m := range brands {
				brandMap[brand] = MapSovMetricsDomainToApi(m)
			}
			slotMap[slot] = brandMap
		}
		data[month] = slotMap
	}
	return api.PivotRow{
		Platform:        r.Platform,
		City:            r.City,
		FirstInPlatform: r.FirstInPlatform,
		Data:            data,
	}
}

func MapPivotResultDomainToApi(res *domain.PivotResult) api.PivotReport {
	report := api.PivotReport{
		Headers: MapHeaderTreeDomainToApi(res.Headers),
		Rows:    make([]api.PivotRow, 0, len(res.Rows)),
	}
	for _, r := range res.Rows {
		report.Rows = append(report.Rows, MapPivotRowDomainToApi(r))
	}
	return report
}
