package storage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/contractflow/backend/model"
)

// GetDashboardStats computes the dashboard snapshot from the current
// contract set. Nothing is cached; every call walks the full collection.
//
// Contracts in ai_review or archived are counted in totalContracts but fall
// into no statusDistribution bucket.
func (s *MemStorage) GetDashboardStats() model.DashboardStats {
	contracts := s.GetContracts()
	totalContracts := len(contracts)

	var dist model.StatusDistribution
	for _, c := range contracts {
		switch c.Status {
		case model.StatusApproved:
			dist.Approved++
		case model.StatusPending:
			dist.Pending++
		case model.StatusNeedsReview:
			dist.NeedsMoreInformation++
		case model.StatusRejected:
			dist.Rejected++
		}
	}

	approvalRate := "0"
	if totalContracts > 0 {
		approvalRate = fmt.Sprintf("%.1f", float64(dist.Approved)/float64(totalContracts)*100)
	}

	var totalValue float64
	industry := make(map[string]*industryAccumulator)
	for _, c := range contracts {
		v := parseValue(c.Value)
		totalValue += v

		acc, ok := industry[c.Industry]
		if !ok {
			acc = &industryAccumulator{}
			industry[c.Industry] = acc
		}
		acc.contracts++
		acc.value += v
	}

	industryData := make(map[string]model.IndustryStat, len(industry))
	for name, acc := range industry {
		industryData[name] = model.IndustryStat{
			Value:     formatIndustryValue(acc.value),
			Contracts: acc.contracts,
		}
	}

	now := time.Now()
	thirtyDays := now.AddDate(0, 0, 30)
	expiring := 0
	for _, c := range contracts {
		if c.EndDate != nil && !c.EndDate.After(thirtyDays) && !c.EndDate.Before(now) {
			expiring++
		}
	}

	return model.DashboardStats{
		AvgProcessingTime:  "4.2 days", // placeholder until processing times are tracked
		ApprovalRate:       approvalRate + "%",
		ExpiringContracts:  expiring,
		TotalValue:         formatTotalValue(totalValue),
		TotalContracts:     totalContracts,
		StatusDistribution: dist,
		IndustryData:       industryData,
	}
}

type industryAccumulator struct {
	value     float64
	contracts int
}

// parseValue reads a contract's decimal value string, treating empty or
// unparseable input as zero.
func parseValue(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatTotalValue keeps the upstream formatter's quirk: anything below a
// billion is rendered in millions, even sub-million totals.
func formatTotalValue(v float64) string {
	if v >= 1e9 {
		return fmt.Sprintf("$%.1fB", v/1e9)
	}
	return fmt.Sprintf("$%.0fM", v/1e6)
}

func formatIndustryValue(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.0fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
