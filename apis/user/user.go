package user

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
	"lostfound_backend/utils/auth"
)

// ListUsers godoc
//
//	@Summary		list users, admin only
//	@Tags			user
//	@Produce		json
//	@Router			/users [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
//	@Failure		403		{object}	utils.MessageResponse
func ListUsers(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}
	// organization admins only see their own members
	if admin.Role != RoleSuperAdmin {
		query.OrganizationID = admin.OrganizationID
	}

	return listUsers(c, &query)
}

// ListOrganizationUsers godoc
//
//	@Summary		list users of an organization
//	@Tags			user
//	@Produce		json
//	@Router			/users/organization/{orgId} [get]
//	@Param			orgId	path		int			true	"orgId"
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
func ListOrganizationUsers(c *fiber.Ctx) error {
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

	_, err = LoadUser(c)
	if err != nil {
		return err
	}

	return listUsers(c, &query)
}

func listUsers(c *fiber.Ctx, query *ListRequest) error {
	querySet := DB.Model(&User{})
	if query.Role != "" {
		querySet = querySet.Where("role = ?", query.Role)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}
	if query.OrganizationID != 0 {
		querySet = querySet.Where("organization_id = ?", query.OrganizationID)
	}
	if query.Search != "" {
		querySet = querySet.Where(
			"name LIKE ? OR email LIKE ?",
			"%"+query.Search+"%", "%"+query.Search+"%",
		)
	}

	var total int64
	err := querySet.Count(&total).Error
	if err != nil {
		return err
	}

	users := make([]User, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Preload("Organization").
		Order("joined_time DESC").
		Find(&users).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Users:      users,
		Pagination: query.Build(total),
	})
}

// GetUser godoc
//
//	@Summary		get a user, self or admin
//	@Tags			user
//	@Produce		json
//	@Router			/users/{id} [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	User
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.ID != id && !user.IsAdminRole() {
		return Forbidden()
	}

	var target User
	err = DB.Preload("Organization").Take(&target, id).Error
	if err != nil {
		return NotFound("User not found")
	}

	return c.JSON(target)
}

// GetUserStats godoc
//
//	@Summary		item statistics of a user, self or admin
//	@Tags			user
//	@Produce		json
//	@Router			/users/{id}/stats [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	StatsResponse
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func GetUserStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	if user.ID != id && !user.IsAdminRole() {
		return Forbidden()
	}

	var target User
	err = DB.Take(&target, id).Error
	if err != nil {
		return NotFound("User not found")
	}

	var stats StatsResponse
	DB.Model(&Item{}).Where("reporter_id = ?", id).Count(&stats.TotalItems)
	DB.Model(&Item{}).Where("reporter_id = ? AND status = ?", id, ItemStatusActive).
		Count(&stats.ActiveItems)
	DB.Model(&Item{}).Where("reporter_id = ? AND status = ?", id, ItemStatusResolved).
		Count(&stats.ResolvedItems)
	if stats.TotalItems > 0 {
		stats.ResolutionRate = math.Round(
			float64(stats.ResolvedItems)/float64(stats.TotalItems)*1000) / 10
	}

	return c.JSON(stats)
}

// CreateUser godoc
//
//	@Summary		create a user directly, admin only
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Router			/users [post]
//	@Param			json	body		CreateRequest	true	"json"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	utils.MessageResponse	"user already exists"
//	@Failure		403		{object}	utils.MessageResponse
func CreateUser(c *fiber.Ctx) error {
	var body CreateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	var existing User
	err = DB.Take(&existing, "email = ?", body.Email).Error
	if err == nil {
		return BadRequest("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	organizationID := body.OrganizationID
	if organizationID == 0 || admin.Role != RoleSuperAdmin {
		organizationID = admin.OrganizationID
	}

	password, err := auth.MakePassword(body.Password)
	if err != nil {
		return err
	}
	user := User{
		Name:           body.Name,
		Email:          body.Email,
		Password:       password,
		Role:           body.Role,
		Status:         UserStatusActive,
		OrganizationID: organizationID,
	}
	err = DB.Create(&user).Error
	if err != nil {
		return err
	}

	return c.Status(201).JSON(UserResponse{
		Message: "User created successfully",
		User:    &user,
	})
}

// ModifyUser godoc
//
//	@Summary		modify a user, self or admin; role changes admin only
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Router			/users/{id} [put]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ModifyRequest	true	"json"
//	@Success		200		{object}	UserResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifyUser(c *fiber.Ctx) error {
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
	if user.ID != id && !user.IsAdminRole() {
		return Forbidden()
	}

	var target User
	err = DB.Take(&target, id).Error
	if err != nil {
		return NotFound("User not found")
	}

	if body.Name != nil {
		target.Name = *body.Name
	}
	if body.Phone != nil {
		target.Phone = *body.Phone
	}
	// only admins may move users between roles and organizations
	if user.IsAdminRole() {
		if body.Role != nil {
			target.Role = *body.Role
		}
		if body.OrganizationID != nil {
			target.OrganizationID = *body.OrganizationID
		}
	}

	err = DB.Save(&target).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(target.ID)

	return c.JSON(UserResponse{
		Message: "User updated successfully",
		User:    &target,
	})
}

// DeleteUser godoc
//
//	@Summary		delete a user, admin only; super admins are undeletable
//	@Tags			user
//	@Produce		json
//	@Router			/users/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	_, err = LoadAdmin(c)
	if err != nil {
		return err
	}

	var target User
	err = DB.Take(&target, id).Error
	if err != nil {
		return NotFound("User not found")
	}

	if target.Role == RoleSuperAdmin {
		return Forbidden("Cannot delete super admin")
	}

	err = DB.Delete(&target).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(target.ID)

	return c.JSON(MessageResponse{Message: "User deleted successfully"})
}

// ModifyUserStatus godoc
//
//	@Summary		update a user's status, admin only
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Router			/users/{id}/status [patch]
//	@Param			id		path		int					true	"id"
//	@Param			json	body		ModifyStatusRequest	true	"json"
//	@Success		200		{object}	UserResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifyUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ModifyStatusRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	_, err = LoadAdmin(c)
	if err != nil {
		return err
	}

	var target User
	err = DB.Take(&target, id).Error
	if err != nil {
		return NotFound("User not found")
	}

	target.Status = body.Status
	err = DB.Model(&target).Update("status", body.Status).Error
	if err != nil {
		return err
	}
	DeleteUserCacheByID(target.ID)

	return c.JSON(UserResponse{
		Message: "User status updated successfully",
		User:    &target,
	})
}
