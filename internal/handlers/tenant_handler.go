package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/httpresp"
	"github.com/dalevdmerwe/salon-booking/internal/models"
	"github.com/dalevdmerwe/salon-booking/internal/storage"
	"github.com/dalevdmerwe/salon-booking/internal/validators"
)

// Admin CRUD over tenants, plus logo upload into the image bucket.

type TenantHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewTenantHandler(db *gorm.DB, images *storage.ImageStore) *TenantHandler {
	return &TenantHandler{db: db, images: images}
}

type CreateTenantRequest struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Description   string `json:"description"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
}

type UpdateTenantRequest struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	Description   *string `json:"description"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	BusinessHours *string `json:"business_hours"`
	IsActive      *bool   `json:"is_active"`
}

func (h *TenantHandler) List(c *gin.Context) {
	var tenants []models.Tenant
	if err := h.db.Order("name ASC").Find(&tenants).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tenants", "Could not list tenants.")
		return
	}

	httpresp.List(c, tenants)
}

func (h *TenantHandler) Get(c *gin.Context) {
	tenant, ok := h.byID(c)
	if !ok {
		return
	}

	httpresp.OK(c, tenant)
}

func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid tenant data.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email domain does not resolve.")
		return
	}

	tenant := models.Tenant{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		BusinessHours: req.BusinessHours,
		IsActive:      true,
	}

	if err := h.db.Create(&tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_create_tenant", "Could not create tenant.")
		return
	}

	httpresp.Created(c, tenant)
}

func (h *TenantHandler) Update(c *gin.Context) {
	tenant, ok := h.byID(c)
	if !ok {
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid tenant data.")
		return
	}

	if req.Email != nil && *req.Email != "" && !validators.IsEmailDomainValid(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email domain does not resolve.")
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Slug != nil {
		tenant.Slug = *req.Slug
	}
	if req.Description != nil {
		tenant.Description = *req.Description
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Address != nil {
		tenant.Address = *req.Address
	}
	if req.BusinessHours != nil {
		tenant.BusinessHours = *req.BusinessHours
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := h.db.Save(tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tenant", "Could not update tenant.")
		return
	}

	httpresp.OK(c, tenant)
}

func (h *TenantHandler) Delete(c *gin.Context) {
	tenant, ok := h.byID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_tenant", "Could not delete tenant.")
		return
	}

	c.Status(http.StatusNoContent)
}

////////////////////////////////////////////////////////
// IMAGE
////////////////////////////////////////////////////////

func (h *TenantHandler) UploadImage(c *gin.Context) {
	tenant, ok := h.byID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field 'image' is required.")
		return
	}
	defer file.Close()

	url, err := h.images.UploadTenantImage(c.Request.Context(), tenant.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	tenant.ImageURL = url
	if err := h.db.Save(tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tenant", "Could not save the image URL.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}

func (h *TenantHandler) DeleteImage(c *gin.Context) {
	tenant, ok := h.byID(c)
	if !ok {
		return
	}

	if err := h.images.DeleteTenantImage(c.Request.Context(), tenant.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete the image.")
		return
	}

	tenant.ImageURL = ""
	if err := h.db.Save(tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tenant", "Could not clear the image URL.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TenantHandler) byID(c *gin.Context) (*models.Tenant, bool) {
	id := c.Param("id")

	var tenant models.Tenant
	if err := h.db.Where("id = ?", id).First(&tenant).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Tenant not found.")
		return nil, false
	}

	return &tenant, true
}
