package storage

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/contractflow/backend/model"
)

// Seed loads the demo dataset: one admin, four vendor accounts with their
// companies, and five contracts each carrying one AI analysis. Run once at
// startup before the server accepts requests.
func (s *MemStorage) Seed() {
	admin := s.CreateUser(model.User{
		Username:  "admin",
		Password:  "admin123", // demo credential, not hashed
		Role:      model.RoleAdmin,
		FirstName: "Alex",
		LastName:  "Rodriguez",
		Email:     "admin@contractflow.com",
	})

	seedVendors := []struct {
		username string
		company  string
		industry string
	}{
		{"techcorp", "TechCorp Solutions", "Technology"},
		{"medcorp", "MedSupply Corp", "Healthcare"},
		{"fincorp", "FinConsult LLC", "Finance"},
		{"mfgcorp", "Manufacturing Inc", "Manufacturing"},
	}

	for _, sv := range seedVendors {
		user := s.CreateUser(model.User{
			Username:  sv.username,
			Password:  "vendor123",
			Role:      model.RoleVendor,
			FirstName: strings.Split(sv.company, " ")[0],
			LastName:  "Team",
			Email:     fmt.Sprintf("contact@%s.com", sv.username),
		})

		s.CreateVendor(model.Vendor{
			UserID:             user.ID,
			CompanyName:        sv.company,
			ContactName:        user.FirstName + " " + user.LastName,
			ContactEmail:       user.Email,
			ContactPhone:       "+1-555-0100",
			Industry:           sv.industry,
			VerificationStatus: model.VerificationVerified,
			Documents:          []string{},
		})
	}

	seedContracts := []struct {
		title     string
		vendorID  int
		status    string
		value     string
		industry  string
		startDate string
		endDate   string
	}{
		{"Cloud Infrastructure Services Agreement", 1, model.StatusApproved, "2400000", "Technology", "2024-01-01", "2025-12-31"},
		{"Healthcare Services Contract", 2, model.StatusApproved, "1800000", "Healthcare", "2024-02-01", "2024-12-31"},
		{"Financial Advisory Agreement", 3, model.StatusAIReview, "950000", "Finance", "2024-03-01", "2024-11-30"},
		{"Manufacturing Partnership Contract", 4, model.StatusNeedsReview, "3200000", "Manufacturing", "2024-04-01", "2025-03-31"},
		{"Software License Agreement", 1, model.StatusPending, "750000", "Technology", "2024-05-01", "2024-10-31"},
	}

	for _, sc := range seedContracts {
		start := mustDate(sc.startDate)
		end := mustDate(sc.endDate)

		contract := s.CreateContract(model.Contract{
			Title:            sc.title,
			Description:      "Professional services agreement for " + sc.title,
			VendorID:         sc.vendorID,
			Status:           sc.status,
			Value:            sc.value,
			Currency:         "USD",
			StartDate:        &start,
			EndDate:          &end,
			Industry:         sc.industry,
			ContractDocument: fmt.Sprintf("/documents/contract_%d.pdf", s.nextContractID),
			SubmittedLetter:  fmt.Sprintf("/documents/letter_%d.pdf", s.nextContractID),
			AIAnalysis: map[string]any{
				"confidence": rand.Intn(40) + 60, // 60-100%
				"riskScore":  rand.Intn(30) + 10, // 10-40%
				"keyTerms":   []string{"payment terms", "liability clauses", "termination conditions"},
			},
		})

		// Jitter the submission date into the past 30 days so the dashboard
		// ordering has something to sort.
		s.mu.Lock()
		s.contracts[contract.ID].SubmissionDate = time.Now().Add(-time.Duration(rand.Float64() * 30 * 24 * float64(time.Hour)))
		s.mu.Unlock()

		suggested := model.ActionApprove
		if sc.status == model.StatusNeedsReview {
			suggested = model.ActionRequestInfo
		}
		riskFlags := []string{}
		if sc.status == model.StatusNeedsReview {
			riskFlags = []string{"Unusual liability clause", "Missing termination clause"}
		}

		s.CreateAiAnalysis(model.AiAnalysis{
			ContractID:      contract.ID,
			AnalysisType:    "content",
			ConfidenceScore: fmt.Sprintf("%.2f", rand.Float64()*40+60),
			SuggestedAction: suggested,
			KeyFindings: []string{
				"Standard terms and conditions",
				"Acceptable payment schedule",
				"Clear deliverables defined",
			},
			RiskFlags:       riskFlags,
			Recommendations: "Contract appears standard with acceptable terms. Recommend approval.",
		})
	}

	slog.Info("demo dataset seeded",
		"admin_user", admin.Username,
		"vendors", len(seedVendors),
		"contracts", len(seedContracts),
	)
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
