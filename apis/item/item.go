package item

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
)

// ListItems godoc
//
//	@Summary		list items with filters and pagination
//	@Tags			item
//	@Produce		json
//	@Router			/items [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
func ListItems(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	querySet := itemFilter(DB.Model(&Item{}), &query)

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	items := make([]Item, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Preload("Reporter").Preload("Organization").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Items:      items,
		Pagination: query.Build(total),
	})
}

// GetItem godoc
//
//	@Summary		get a single item
//	@Tags			item
//	@Produce		json
//	@Router			/items/{id} [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	Item
//	@Failure		404	{object}	utils.MessageResponse
func GetItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var item Item
	err = DB.Preload("Reporter").Preload("Organization").Preload("ResolvedBy").
		Take(&item, id).Error
	if err != nil {
		return NotFound("Item not found")
	}

	return c.JSON(item)
}

// CreateItem godoc
//
//	@Summary		report a lost or found item
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Router			/items [post]
//	@Param			json	body		CreateRequest	true	"json"
//	@Success		201		{object}	ItemResponse
//	@Failure		401		{object}	utils.MessageResponse
func CreateItem(c *fiber.Ctx) error {
	var body CreateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	item := Item{
		Type:           body.Type,
		Title:          body.Title,
		Description:    body.Description,
		Location:       body.Location,
		Status:         ItemStatusActive,
		Reward:         body.Reward,
		Images:         body.Images,
		Category:       body.Category,
		Color:          body.Color,
		Brand:          body.Brand,
		ContactName:    body.ContactName,
		ContactEmail:   body.ContactEmail,
		ContactPhone:   body.ContactPhone,
		Tags:           body.Tags,
		ReporterID:     user.ID,
		OrganizationID: user.OrganizationID,
	}
	err = DB.Create(&item).Error
	if err != nil {
		return err
	}
	item.Reporter = user

	return c.Status(201).JSON(ItemResponse{
		Message: "Item created successfully",
		Item:    &item,
	})
}

// ModifyItem godoc
//
//	@Summary		modify an item, reporter or admin only
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Router			/items/{id} [put]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ModifyRequest	true	"json"
//	@Success		200		{object}	ItemResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifyItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ModifyRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	var item Item
	err = DB.Take(&item, id).Error
	if err != nil {
		return NotFound("Item not found")
	}

	if item.ReporterID != user.ID && !user.IsAdminRole() {
		return Forbidden()
	}

	applyModify(&item, &body)
	err = DB.Save(&item).Error
	if err != nil {
		return err
	}

	return c.JSON(ItemResponse{
		Message: "Item updated successfully",
		Item:    &item,
	})
}

// DeleteItem godoc
//
//	@Summary		delete an item, reporter or admin only
//	@Tags			item
//	@Produce		json
//	@Router			/items/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func DeleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	var item Item
	err = DB.Take(&item, id).Error
	if err != nil {
		return NotFound("Item not found")
	}

	if item.ReporterID != user.ID && !user.IsAdminRole() {
		return Forbidden()
	}

	err = DB.Delete(&item).Error
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Item deleted successfully"})
}

// ResolveItem godoc
//
//	@Summary		mark an item as resolved
//	@Tags			item
//	@Produce		json
//	@Router			/items/{id}/resolve [patch]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ResolveRequest	false	"json"
//	@Success		200		{object}	ItemResponse
//	@Failure		404		{object}	utils.MessageResponse
func ResolveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ResolveRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	var item Item
	err = DB.Take(&item, id).Error
	if err != nil {
		return NotFound("Item not found")
	}

	now := time.Now()
	item.Status = ItemStatusResolved
	item.ResolvedByID = &user.ID
	item.ResolvedAt = &now
	item.Notes = body.Notes
	err = DB.Save(&item).Error
	if err != nil {
		return err
	}

	return c.JSON(ItemResponse{
		Message: "Item marked as resolved",
		Item:    &item,
	})
}

// ListUserItems godoc
//
//	@Summary		list items reported by a user
//	@Tags			item
//	@Produce		json
//	@Router			/items/user/{userId} [get]
//	@Param			userId	path		int	true	"userId"
//	@Success		200		{array}		Item
//	@Failure		401		{object}	utils.MessageResponse
func ListUserItems(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return BadRequest()
	}

	_, err = LoadUser(c)
	if err != nil {
		return err
	}

	var items []Item
	err = DB.Preload("Organization").
		Where("reporter_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// ListOrganizationItems godoc
//
//	@Summary		list items of an organization
//	@Tags			item
//	@Produce		json
//	@Router			/items/organization/{orgId} [get]
//	@Param			orgId	path		int			true	"orgId"
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
func ListOrganizationItems(c *fiber.Ctx) error {
	organizationID, err := c.ParamsInt("orgId")
	if err != nil {
		return BadRequest()
	}

	var query ListRequest
	err = ValidateQuery(c, &query)
	if err != nil {
		return err
	}
	query.OrganizationID = organizationID

	querySet := itemFilter(DB.Model(&Item{}), &query)

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	items := make([]Item, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Preload("Reporter").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Items:      items,
		Pagination: query.Build(total),
	})
}

func itemFilter(querySet *gorm.DB, query *ListRequest) *gorm.DB {
	if query.Type != "" {
		querySet = querySet.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}
	if query.Category != "" {
		querySet = querySet.Where("category = ?", query.Category)
	}
	if query.OrganizationID != 0 {
		querySet = querySet.Where("organization_id = ?", query.OrganizationID)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		querySet = querySet.Where(
			"title LIKE ? OR description LIKE ? OR location LIKE ?",
			like, like, like,
		)
	}
	return querySet
}

func applyModify(item *Item, body *ModifyRequest) {
	if body.Title != nil {
		item.Title = *body.Title
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Location != nil {
		item.Location = *body.Location
	}
	if body.Status != nil {
		item.Status = *body.Status
	}
	if body.Reward != nil {
		item.Reward = *body.Reward
	}
	if body.Images != nil {
		item.Images = body.Images
	}
	if body.Category != nil {
		item.Category = *body.Category
	}
	if body.Color != nil {
		item.Color = *body.Color
	}
	if body.Brand != nil {
		item.Brand = *body.Brand
	}
	if body.ContactName != nil {
		item.ContactName = *body.ContactName
	}
	if body.ContactEmail != nil {
		item.ContactEmail = *body.ContactEmail
	}
	if body.ContactPhone != nil {
		item.ContactPhone = *body.ContactPhone
	}
	if body.Tags != nil {
		item.Tags = body.Tags
	}
	if body.Notes != nil {
		item.Notes = *body.Notes
	}
}
