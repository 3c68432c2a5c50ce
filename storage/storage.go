package storage

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/contractflow/backend/model"
)

// Storage is the data access contract the HTTP layer works against. A
// database-backed implementation would sit behind this same interface.
//
// Single-entity lookups signal "not found" with a nil result rather than an
// error; the store performs no validation and trusts its caller.
type Storage interface {
	// Users
	GetUser(id int) *model.User
	GetUserByUsername(username string) *model.User
	CreateUser(user model.User) *model.User

	// Vendors
	GetVendor(id int) *model.Vendor
	GetVendorByUserID(userID int) *model.Vendor
	GetVendorsWithUser() []model.VendorWithUser
	CreateVendor(vendor model.Vendor) *model.Vendor
	UpdateVendor(id int, updates model.VendorUpdate) *model.Vendor

	// Contracts
	GetContract(id int) *model.Contract
	GetContracts() []model.Contract
	GetContractsWithVendor() []model.ContractWithVendor
	GetContractsByVendor(vendorID int) []model.Contract
	CreateContract(contract model.Contract) *model.Contract
	UpdateContract(id int, updates model.ContractUpdate) *model.Contract
	DeleteContract(id int) bool

	// AI analyses
	GetAiAnalysesByContract(contractID int) []model.AiAnalysis
	CreateAiAnalysis(analysis model.AiAnalysis) *model.AiAnalysis

	// Notifications
	GetNotificationsByUser(userID int) []model.Notification
	CreateNotification(notification model.Notification) *model.Notification
	MarkNotificationRead(id int) bool

	// Dashboard
	GetDashboardStats() model.DashboardStats
}

// MemStorage keeps every collection in process memory. Ids come from
// per-entity counters starting at 1 and are never reused, even after a
// delete.
type MemStorage struct {
	mu sync.RWMutex

	users         map[int]*model.User
	vendors       map[int]*model.Vendor
	contracts     map[int]*model.Contract
	aiAnalyses    map[int]*model.AiAnalysis
	notifications map[int]*model.Notification

	nextUserID         int
	nextVendorID       int
	nextContractID     int
	nextAiAnalysisID   int
	nextNotificationID int
}

// NewMemStorage returns an empty store. Call Seed to load the demo dataset.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:              make(map[int]*model.User),
		vendors:            make(map[int]*model.Vendor),
		contracts:          make(map[int]*model.Contract),
		aiAnalyses:         make(map[int]*model.AiAnalysis),
		notifications:      make(map[int]*model.Notification),
		nextUserID:         1,
		nextVendorID:       1,
		nextContractID:     1,
		nextAiAnalysisID:   1,
		nextNotificationID: 1,
	}
}

// User methods

func (s *MemStorage) GetUser(id int) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.users[id])
}

func (s *MemStorage) GetUserByUsername(username string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return copyOf(u)
		}
	}
	return nil
}

func (s *MemStorage) CreateUser(user model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = time.Now()
	s.users[user.ID] = &user
	return copyOf(&user)
}

// Vendor methods

func (s *MemStorage) GetVendor(id int) *model.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.vendors[id])
}

func (s *MemStorage) GetVendorByUserID(userID int) *model.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vendors {
		if v.UserID == userID {
			return copyOf(v)
		}
	}
	return nil
}

// GetVendorsWithUser joins each vendor to its owning user. Vendors whose
// user lookup fails are left out of the result; each miss is logged so the
// integrity problem is visible.
func (s *MemStorage) GetVendorsWithUser() []model.VendorWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.VendorWithUser, 0, len(s.vendors))
	for _, v := range s.vendors {
		user, ok := s.users[v.UserID]
		if !ok {
			slog.Warn("vendor references missing user, dropped from join",
				"vendor_id", v.ID,
				"user_id", v.UserID,
			)
			continue
		}
		result = append(result, model.VendorWithUser{Vendor: *v, User: *user})
	}
	return result
}

func (s *MemStorage) CreateVendor(vendor model.Vendor) *model.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor.ID = s.nextVendorID
	s.nextVendorID++
	vendor.CreatedAt = time.Now()
	if vendor.VerificationStatus == "" {
		vendor.VerificationStatus = model.VerificationPending
	}
	s.vendors[vendor.ID] = &vendor
	return copyOf(&vendor)
}

func (s *MemStorage) UpdateVendor(id int, updates model.VendorUpdate) *model.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil
	}

	if updates.CompanyName != nil {
		v.CompanyName = *updates.CompanyName
	}
	if updates.ContactName != nil {
		v.ContactName = *updates.ContactName
	}
	if updates.ContactEmail != nil {
		v.ContactEmail = *updates.ContactEmail
	}
	if updates.ContactPhone != nil {
		v.ContactPhone = *updates.ContactPhone
	}
	if updates.Industry != nil {
		v.Industry = *updates.Industry
	}
	if updates.VerificationStatus != nil {
		v.VerificationStatus = *updates.VerificationStatus
	}
	if updates.Documents != nil {
		v.Documents = updates.Documents
	}
	return copyOf(v)
}

// Contract methods

func (s *MemStorage) GetContract(id int) *model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.contracts[id])
}

func (s *MemStorage) GetContracts() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		result = append(result, *c)
	}
	return result
}

// GetContractsWithVendor joins each contract to its vendor and attaches all
// analyses recorded for it, newest submission first. Contracts whose vendor
// lookup fails are left out; each miss is logged.
func (s *MemStorage) GetContractsWithVendor() []model.ContractWithVendor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.ContractWithVendor, 0, len(s.contracts))
	for _, c := range s.contracts {
		vendor, ok := s.vendors[c.VendorID]
		if !ok {
			slog.Warn("contract references missing vendor, dropped from join",
				"contract_id", c.ID,
				"vendor_id", c.VendorID,
			)
			continue
		}

		analyses := make([]model.AiAnalysis, 0)
		for _, a := range s.aiAnalyses {
			if a.ContractID == c.ID {
				analyses = append(analyses, *a)
			}
		}

		result = append(result, model.ContractWithVendor{
			Contract:   *c,
			Vendor:     *vendor,
			AiAnalyses: analyses,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmissionDate.After(result[j].SubmissionDate)
	})
	return result
}

func (s *MemStorage) GetContractsByVendor(vendorID int) []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Contract, 0)
	for _, c := range s.contracts {
		if c.VendorID == vendorID {
			result = append(result, *c)
		}
	}
	return result
}

func (s *MemStorage) CreateContract(contract model.Contract) *model.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	contract.ID = s.nextContractID
	s.nextContractID++
	contract.SubmissionDate = now
	contract.CreatedAt = now
	contract.UpdatedAt = now
	if contract.Status == "" {
		contract.Status = model.StatusPending
	}
	if contract.Currency == "" {
		contract.Currency = "USD"
	}
	s.contracts[contract.ID] = &contract
	return copyOf(&contract)
}

func (s *MemStorage) UpdateContract(id int, updates model.ContractUpdate) *model.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return nil
	}

	if updates.Title != nil {
		c.Title = *updates.Title
	}
	if updates.Description != nil {
		c.Description = *updates.Description
	}
	if updates.Status != nil {
		c.Status = *updates.Status
	}
	if updates.Value != nil {
		c.Value = *updates.Value
	}
	if updates.Currency != nil {
		c.Currency = *updates.Currency
	}
	if updates.StartDate != nil {
		c.StartDate = updates.StartDate
	}
	if updates.EndDate != nil {
		c.EndDate = updates.EndDate
	}
	if updates.ContractDocument != nil {
		c.ContractDocument = *updates.ContractDocument
	}
	if updates.SubmittedLetter != nil {
		c.SubmittedLetter = *updates.SubmittedLetter
	}
	if updates.SensitiveData != nil {
		c.SensitiveData = *updates.SensitiveData
	}
	if updates.Industry != nil {
		c.Industry = *updates.Industry
	}
	if updates.AIAnalysis != nil {
		c.AIAnalysis = updates.AIAnalysis
	}
	if updates.AdminNotes != nil {
		c.AdminNotes = *updates.AdminNotes
	}
	c.UpdatedAt = time.Now()
	return copyOf(c)
}

// DeleteContract removes the contract. Analyses for the contract are kept;
// they stay reachable via GetAiAnalysesByContract only.
func (s *MemStorage) DeleteContract(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[id]; !ok {
		return false
	}
	delete(s.contracts, id)
	return true
}

// AI analysis methods

func (s *MemStorage) GetAiAnalysesByContract(contractID int) []model.AiAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.AiAnalysis, 0)
	for _, a := range s.aiAnalyses {
		if a.ContractID == contractID {
			result = append(result, *a)
		}
	}
	return result
}

func (s *MemStorage) CreateAiAnalysis(analysis model.AiAnalysis) *model.AiAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis.ID = s.nextAiAnalysisID
	s.nextAiAnalysisID++
	analysis.ProcessedAt = time.Now()
	s.aiAnalyses[analysis.ID] = &analysis
	return copyOf(&analysis)
}

// Notification methods

func (s *MemStorage) GetNotificationsByUser(userID int) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result
}

func (s *MemStorage) CreateNotification(notification model.Notification) *model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = s.nextNotificationID
	s.nextNotificationID++
	notification.CreatedAt = time.Now()
	s.notifications[notification.ID] = &notification
	return copyOf(&notification)
}

func (s *MemStorage) MarkNotificationRead(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return false
	}
	n.IsRead = true
	return true
}

// copyOf returns a shallow copy so callers never hold a pointer into the
// store's maps.
func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
