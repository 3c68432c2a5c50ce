package handler

import (
	"net/http"
	"strconv"

	"github.com/contractflow/backend/model"
	"github.com/contractflow/backend/storage"
	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	store storage.Storage
}

func NewVendorHandler(store storage.Storage) *VendorHandler {
	return &VendorHandler{store: store}
}

type RegisterUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type RegisterVendorDetails struct {
	CompanyName  string   `json:"companyName" binding:"required"`
	ContactName  string   `json:"contactName" binding:"required"`
	ContactEmail string   `json:"contactEmail" binding:"required,email"`
	ContactPhone string   `json:"contactPhone"`
	Industry     string   `json:"industry" binding:"required"`
	Documents    []string `json:"documents"`
}

type RegisterVendorRequest struct {
	User   RegisterUserRequest   `json:"user" binding:"required"`
	Vendor RegisterVendorDetails `json:"vendor" binding:"required"`
}

// List returns all vendors joined to their user accounts
func (h *VendorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetVendorsWithUser())
}

// Register creates the user account first, then the vendor that owns it
func (h *VendorHandler) Register(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return
	}

	if h.store.GetUserByUsername(req.User.Username) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	user := h.store.CreateUser(model.User{
		Username:  req.User.Username,
		Password:  req.User.Password,
		Role:      model.RoleVendor,
		FirstName: req.User.FirstName,
		LastName:  req.User.LastName,
		Email:     req.User.Email,
	})

	vendor := h.store.CreateVendor(model.Vendor{
		UserID:       user.ID,
		CompanyName:  req.Vendor.CompanyName,
		ContactName:  req.Vendor.ContactName,
		ContactEmail: req.Vendor.ContactEmail,
		ContactPhone: req.Vendor.ContactPhone,
		Industry:     req.Vendor.Industry,
		Documents:    req.Vendor.Documents,
	})

	c.JSON(http.StatusCreated, gin.H{"user": user, "vendor": vendor})
}

// Update applies a partial update to a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	var updates model.VendorUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return
	}

	vendor := h.store.UpdateVendor(id, updates)
	if vendor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// Contracts returns the contracts submitted by one vendor
func (h *VendorHandler) Contracts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	c.JSON(http.StatusOK, h.store.GetContractsByVendor(id))
}
