package model

import (
	"time"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// Vendor verification statuses
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Contract statuses
const (
	StatusPending     = "pending"
	StatusAIReview    = "ai_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusNeedsReview = "needs_review"
	StatusArchived    = "archived"
)

// AI analysis suggested actions
const (
	ActionApprove     = "approve"
	ActionReject      = "reject"
	ActionRequestInfo = "request_info"
)

// Notification types
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
)

// User is an account that can sign in, either an administrator or a vendor contact.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"` // plaintext in the demo dataset
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Vendor is a supplier company owned by exactly one User.
type Vendor struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"userId"`
	CompanyName        string    `json:"companyName"`
	ContactName        string    `json:"contactName"`
	ContactEmail       string    `json:"contactEmail"`
	ContactPhone       string    `json:"contactPhone,omitempty"`
	Industry           string    `json:"industry"`
	VerificationStatus string    `json:"verificationStatus"`
	Documents          []string  `json:"documents"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Contract is a submitted agreement under review.
//
// Value is a decimal string; unparseable or empty values count as zero in
// aggregates. The AIAnalysis blob is legacy and is written independently of
// the AiAnalysis collection; the two are never reconciled.
type Contract struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	VendorID         int        `json:"vendorId"`
	Status           string     `json:"status"`
	Value            string     `json:"value,omitempty"`
	Currency         string     `json:"currency"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	SubmissionDate   time.Time  `json:"submissionDate"`
	ContractDocument string     `json:"contractDocument,omitempty"`
	SubmittedLetter  string     `json:"submittedLetter,omitempty"`
	SensitiveData    string     `json:"sensitiveData,omitempty"`
	Industry         string     `json:"industry"`
	AIAnalysis       any        `json:"aiAnalysis,omitempty"`
	AdminNotes       string     `json:"adminNotes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// AiAnalysis is an append-only record produced by the analysis pipeline.
// A contract may accumulate several analyses over time.
type AiAnalysis struct {
	ID              int       `json:"id"`
	ContractID      int       `json:"contractId"`
	AnalysisType    string    `json:"analysisType"` // content, risk, compliance
	ConfidenceScore string    `json:"confidenceScore"`
	SuggestedAction string    `json:"suggestedAction"`
	KeyFindings     []string  `json:"keyFindings"`
	RiskFlags       []string  `json:"riskFlags"`
	Recommendations string    `json:"recommendations"`
	ProcessedAt     time.Time `json:"processedAt"`
}

// Notification is a message addressed to a user, optionally referencing
// another entity.
type Notification struct {
	ID                int       `json:"id"`
	UserID            int       `json:"userId"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	Type              string    `json:"type"`
	IsRead            bool      `json:"isRead"`
	RelatedEntityType string    `json:"relatedEntityType,omitempty"` // contract, vendor
	RelatedEntityID   int       `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// VendorUpdate is a partial update for a Vendor. Nil fields are left
// untouched; non-nil fields overwrite, including explicit empty values.
type VendorUpdate struct {
	CompanyName        *string  `json:"companyName"`
	ContactName        *string  `json:"contactName"`
	ContactEmail       *string  `json:"contactEmail"`
	ContactPhone       *string  `json:"contactPhone"`
	Industry           *string  `json:"industry"`
	VerificationStatus *string  `json:"verificationStatus"`
	Documents          []string `json:"documents"`
}

// ContractUpdate is a partial update for a Contract, same merge semantics as
// VendorUpdate.
type ContractUpdate struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	Value            *string    `json:"value"`
	Currency         *string    `json:"currency"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	ContractDocument *string    `json:"contractDocument"`
	SubmittedLetter  *string    `json:"submittedLetter"`
	SensitiveData    *string    `json:"sensitiveData"`
	Industry         *string    `json:"industry"`
	AIAnalysis       any        `json:"aiAnalysis"`
	AdminNotes       *string    `json:"adminNotes"`
}

// ContractWithVendor is the contract list view: the contract plus its vendor
// and every analysis recorded for it.
type ContractWithVendor struct {
	Contract
	Vendor     Vendor       `json:"vendor"`
	AiAnalyses []AiAnalysis `json:"aiAnalyses"`
}

// VendorWithUser is a vendor joined to its owning user account.
type VendorWithUser struct {
	Vendor
	User User `json:"user"`
}

// StatusDistribution buckets contracts by review status. Contracts in
// ai_review or archived fall into no bucket.
type StatusDistribution struct {
	Approved             int `json:"approved"`
	Pending              int `json:"pending"`
	NeedsMoreInformation int `json:"needsMoreInformation"`
	Rejected             int `json:"rejected"`
}

// IndustryStat is the per-industry rollup: human-formatted summed value and
// contract count.
type IndustryStat struct {
	Value     string `json:"value"`
	Contracts int    `json:"contracts"`
}

// DashboardStats is the point-in-time snapshot served to the dashboard,
// recomputed from the contract collection on every request.
type DashboardStats struct {
	AvgProcessingTime  string                  `json:"avgProcessingTime"`
	ApprovalRate       string                  `json:"approvalRate"`
	ExpiringContracts  int                     `json:"expiringContracts"`
	TotalValue         string                  `json:"totalValue"`
	TotalContracts     int                     `json:"totalContracts"`
	StatusDistribution StatusDistribution      `json:"statusDistribution"`
	IndustryData       map[string]IndustryStat `json:"industryData"`
}
