package handler

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/contractflow/backend/model"
	"github.com/contractflow/backend/service"
	"github.com/contractflow/backend/storage"
	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	store     storage.Storage
	analyzer  *service.Analyzer
	documents *service.DocumentService
}

func NewContractHandler(store storage.Storage, analyzer *service.Analyzer, docs *service.DocumentService) *ContractHandler {
	return &ContractHandler{
		store:     store,
		analyzer:  analyzer,
		documents: docs,
	}
}

type CreateContractRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	VendorID         int        `json:"vendorId" binding:"required"`
	Status           string     `json:"status"`
	Value            string     `json:"value"`
	Currency         string     `json:"currency"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	ContractDocument string     `json:"contractDocument"`
	SubmittedLetter  string     `json:"submittedLetter"`
	SensitiveData    string     `json:"sensitiveData"`
	Industry         string     `json:"industry" binding:"required"`
	AIAnalysis       any        `json:"aiAnalysis"`
	AdminNotes       string     `json:"adminNotes"`
}

// List returns all contracts joined to their vendor and analyses
func (h *ContractHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetContractsWithVendor())
}

// Get returns a single contract
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	contract := h.store.GetContract(id)
	if contract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// Create validates and stores a submitted contract, then schedules the
// simulated AI review
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return
	}

	contract := h.store.CreateContract(model.Contract{
		Title:            req.Title,
		Description:      req.Description,
		VendorID:         req.VendorID,
		Status:           req.Status,
		Value:            req.Value,
		Currency:         req.Currency,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ContractDocument: req.ContractDocument,
		SubmittedLetter:  req.SubmittedLetter,
		SensitiveData:    req.SensitiveData,
		Industry:         req.Industry,
		AIAnalysis:       req.AIAnalysis,
		AdminNotes:       req.AdminNotes,
	})

	h.analyzer.Schedule(contract.ID)

	c.JSON(http.StatusCreated, contract)
}

// Update applies a partial update to a contract
func (h *ContractHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	var updates model.ContractUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return
	}

	contract := h.store.UpdateContract(id, updates)
	if contract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// Delete removes a contract
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	if !h.store.DeleteContract(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnalyses returns every analysis recorded for a contract
func (h *ContractHandler) GetAnalyses(c *gin.Context) {
	contractID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	c.JSON(http.StatusOK, h.store.GetAiAnalysesByContract(contractID))
}

// CreateAnalysis runs the simulated analysis on demand
func (h *ContractHandler) CreateAnalysis(c *gin.Context) {
	contractID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	analysis := h.analyzer.Analyze(contractID)

	c.JSON(http.StatusCreated, analysis)
}

// UploadDocument stores a contract document or submitted letter in the
// object store and records the reference on the contract
func (h *ContractHandler) UploadDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract id"})
		return
	}

	if h.store.GetContract(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	// PDF and DOCX allowed
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".docx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and DOCX files are allowed"})
		return
	}

	contentType := "application/pdf"
	if ext == ".docx" {
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	kind := c.DefaultPostForm("kind", "contract")
	if kind != "contract" && kind != "letter" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'contract' or 'letter'"})
		return
	}

	objectName := h.documents.ObjectName(id, kind, header.Filename)
	if err := h.documents.Upload(c.Request.Context(), objectName, file, header.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document: " + err.Error()})
		return
	}

	url, err := h.documents.PresignedURL(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}

	updates := model.ContractUpdate{}
	if kind == "contract" {
		updates.ContractDocument = &objectName
	} else {
		updates.SubmittedLetter = &objectName
	}
	contract := h.store.UpdateContract(id, updates)
	if contract == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"objectName": objectName,
		"url":        url,
	})
}
