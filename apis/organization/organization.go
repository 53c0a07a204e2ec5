package organization

import (
	"errors"
	"math"
	"strings"

	"github.com/creasty/defaults"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
)

// ListOrganizations godoc
//
//	@Summary		list organizations, super admin only
//	@Tags			organization
//	@Produce		json
//	@Router			/organizations [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
//	@Failure		403		{object}	utils.MessageResponse
func ListOrganizations(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.Role != RoleSuperAdmin {
		return Forbidden()
	}

	querySet := DB.Model(&Organization{})
	if query.Type != "" {
		querySet = querySet.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		querySet = querySet.Where(
			"name LIKE ? OR code LIKE ?",
			"%"+query.Search+"%", "%"+query.Search+"%",
		)
	}

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	organizations := make([]Organization, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Order("created_at DESC").
		Find(&organizations).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Organizations: organizations,
		Pagination:    query.Build(total),
	})
}

// GetOrganizationByCode godoc
//
//	@Summary		public view of an organization by its code
//	@Tags			organization
//	@Produce		json
//	@Router			/organizations/code/{code} [get]
//	@Param			code	path		string	true	"code"
//	@Success		200		{object}	OrganizationPublic
//	@Failure		404		{object}	utils.MessageResponse
func GetOrganizationByCode(c *fiber.Ctx) error {
	organization, err := LoadOrganizationByCode(c.Params("code"))
	if err != nil {
		return NotFound("Organization not found")
	}

	return c.JSON(organization.Public())
}

// GetOrganization godoc
//
//	@Summary		get an organization, member or admin
//	@Tags			organization
//	@Produce		json
//	@Router			/organizations/{id} [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	Organization
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func GetOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.OrganizationID != id && user.Role != RoleSuperAdmin {
		return Forbidden()
	}

	var organization Organization
	err = DB.Take(&organization, id).Error
	if err != nil {
		return NotFound("Organization not found")
	}

	return c.JSON(organization)
}

// GetOrganizationStats godoc
//
//	@Summary		recompute and return organization statistics
//	@Tags			organization
//	@Produce		json
//	@Router			/organizations/{id}/stats [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	StatsResponse
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func GetOrganizationStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}
	if admin.OrganizationID != id && admin.Role != RoleSuperAdmin {
		return Forbidden()
	}

	var organization Organization
	err = DB.Take(&organization, id).Error
	if err != nil {
		return NotFound("Organization not found")
	}

	statistics, err := RefreshOrganizationStatistics(DB, id)
	if err != nil {
		return err
	}

	stats := StatsResponse{
		TotalUsers:    statistics.TotalUsers,
		TotalItems:    statistics.TotalItems,
		ResolvedItems: statistics.ResolvedItems,
	}
	DB.Model(&Item{}).Where("organization_id = ? AND status = ?", id, ItemStatusActive).
		Count(&stats.ActiveItems)
	if stats.TotalItems > 0 {
		stats.ResolutionRate = math.Round(
			float64(stats.ResolvedItems)/float64(stats.TotalItems)*1000) / 10
	}

	return c.JSON(stats)
}

// CreateOrganization godoc
//
//	@Summary		create an organization, super admin only
//	@Tags			organization
//	@Accept			json
//	@Produce		json
//	@Router			/organizations [post]
//	@Param			json	body		CreateRequest	true	"json"
//	@Success		201		{object}	OrganizationResponse
//	@Failure		400		{object}	utils.MessageResponse	"code already in use"
//	@Failure		403		{object}	utils.MessageResponse
func CreateOrganization(c *fiber.Ctx) error {
	var body CreateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.Role != RoleSuperAdmin {
		return Forbidden()
	}

	code := strings.ToUpper(body.Code)
	var existing Organization
	err = DB.Take(&existing, "code = ?", code).Error
	if err == nil {
		return BadRequest("Organization code already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	organization := Organization{
		Name:         body.Name,
		Code:         code,
		Type:         body.Type,
		Description:  body.Description,
		Address:      body.Address,
		City:         body.City,
		State:        body.State,
		ZipCode:      body.ZipCode,
		Country:      body.Country,
		ContactEmail: body.ContactEmail,
		ContactPhone: body.ContactPhone,
		Status:       OrganizationStatusActive,
		CreatedByID:  user.ID,
	}
	if body.Settings != nil {
		organization.Settings = *body.Settings
	} else {
		_ = defaults.Set(&organization.Settings)
	}

	err = DB.Create(&organization).Error
	if err != nil {
		return err
	}

	return c.Status(201).JSON(OrganizationResponse{
		Message:      "Organization created successfully",
		Organization: &organization,
	})
}

// ModifyOrganization godoc
//
//	@Summary		modify an organization, own admin or super admin
//	@Tags			organization
//	@Accept			json
//	@Produce		json
//	@Router			/organizations/{id} [put]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ModifyRequest	true	"json"
//	@Success		200		{object}	OrganizationResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifyOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ModifyRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}
	if admin.OrganizationID != id && admin.Role != RoleSuperAdmin {
		return Forbidden()
	}

	var organization Organization
	err = DB.Take(&organization, id).Error
	if err != nil {
		return NotFound("Organization not found")
	}

	if body.Name != nil {
		organization.Name = *body.Name
	}
	if body.Type != nil {
		organization.Type = *body.Type
	}
	if body.Description != nil {
		organization.Description = *body.Description
	}
	if body.Address != nil {
		organization.Address = *body.Address
	}
	if body.City != nil {
		organization.City = *body.City
	}
	if body.State != nil {
		organization.State = *body.State
	}
	if body.ZipCode != nil {
		organization.ZipCode = *body.ZipCode
	}
	if body.Country != nil {
		organization.Country = *body.Country
	}
	if body.ContactEmail != nil {
		organization.ContactEmail = *body.ContactEmail
	}
	if body.ContactPhone != nil {
		organization.ContactPhone = *body.ContactPhone
	}

	err = DB.Save(&organization).Error
	if err != nil {
		return err
	}
	DeleteOrganizationCache(organization.Code)

	return c.JSON(OrganizationResponse{
		Message:      "Organization updated successfully",
		Organization: &organization,
	})
}

// DeleteOrganization godoc
//
//	@Summary		delete an organization, super admin only; refused while members remain
//	@Tags			organization
//	@Produce		json
//	@Router			/organizations/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		400	{object}	utils.MessageResponse	"organization still has users"
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func DeleteOrganization(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.Role != RoleSuperAdmin {
		return Forbidden()
	}

	var organization Organization
	err = DB.Take(&organization, id).Error
	if err != nil {
		return NotFound("Organization not found")
	}

	var userCount int64
	err = DB.Model(&User{}).Where("organization_id = ?", id).Count(&userCount).Error
	if err != nil {
		return err
	}
	if userCount > 0 {
		return BadRequest("Cannot delete organization with existing users")
	}

	err = DB.Delete(&organization).Error
	if err != nil {
		return err
	}
	DeleteOrganizationCache(organization.Code)

	return c.JSON(MessageResponse{Message: "Organization deleted successfully"})
}

// ModifySettings godoc
//
//	@Summary		update organization registration settings, own admin or super admin
//	@Tags			organization
//	@Accept			json
//	@Produce		json
//	@Router			/organizations/{id}/settings [patch]
//	@Param			id		path		int						true	"id"
//	@Param			json	body		ModifySettingsRequest	true	"json"
//	@Success		200		{object}	OrganizationResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifySettings(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ModifySettingsRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}
	if admin.OrganizationID != id && admin.Role != RoleSuperAdmin {
		return Forbidden()
	}

	var organization Organization
	err = DB.Take(&organization, id).Error
	if err != nil {
		return NotFound("Organization not found")
	}

	if body.AllowPublicRegistration != nil {
		organization.Settings.AllowPublicRegistration = *body.AllowPublicRegistration
	}
	if body.RequireInviteCode != nil {
		organization.Settings.RequireInviteCode = *body.RequireInviteCode
	}

	err = DB.Model(&organization).Update("settings", organization.Settings).Error
	if err != nil {
		return err
	}
	DeleteOrganizationCache(organization.Code)

	return c.JSON(OrganizationResponse{
		Message:      "Organization settings updated successfully",
		Organization: &organization,
	})
}
