package report

import (
	"time"

	"github.com/gofiber/fiber/v2"

	. "lostfound_backend/models"
	. "lostfound_backend/utils"
)

// ListReports godoc
//
//	@Summary		list reports of own organization, admin only
//	@Tags			report
//	@Produce		json
//	@Router			/reports [get]
//	@Param			query	query		ListRequest	false	"query"
//	@Success		200		{object}	ListResponse
//	@Failure		403		{object}	utils.MessageResponse
func ListReports(c *fiber.Ctx) error {
	var query ListRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	admin, err := LoadAdmin(c)
	if err != nil {
		return err
	}

	querySet := DB.Model(&Report{})
	if admin.Role != RoleSuperAdmin {
		querySet = querySet.Where("organization_id = ?", admin.OrganizationID)
	}
	if query.Type != "" {
		querySet = querySet.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		querySet = querySet.Where("status = ?", query.Status)
	}
	if query.Priority != "" {
		querySet = querySet.Where("priority = ?", query.Priority)
	}
	if query.Search != "" {
		querySet = querySet.Where(
			"reason LIKE ? OR description LIKE ?",
			"%"+query.Search+"%", "%"+query.Search+"%",
		)
	}

	var total int64
	err = querySet.Count(&total).Error
	if err != nil {
		return err
	}

	reports := make([]Report, 0, query.Limit)
	err = querySet.Scopes(query.Scope).
		Preload("Reporter").
		Preload("Item").
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Reports:    reports,
		Pagination: query.Build(total),
	})
}

// GetReport godoc
//
//	@Summary		get a report, reporter or admin
//	@Tags			report
//	@Produce		json
//	@Router			/reports/{id} [get]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	Report
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func GetReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	var report Report
	err = DB.Preload("Reporter").Preload("Item").Take(&report, id).Error
	if err != nil {
		return NotFound("Report not found")
	}

	if report.ReporterID != user.ID && !user.IsAdminRole() {
		return Forbidden()
	}
	if user.Role == RoleAdmin && report.OrganizationID != user.OrganizationID {
		return Forbidden()
	}

	return c.JSON(report)
}

// CreateReport godoc
//
//	@Summary		file a report
//	@Tags			report
//	@Accept			json
//	@Produce		json
//	@Router			/reports [post]
//	@Param			json	body		CreateRequest	true	"json"
//	@Success		201		{object}	ReportResponse
//	@Failure		404		{object}	utils.MessageResponse	"item not found"
func CreateReport(c *fiber.Ctx) error {
	var body CreateRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, err := LoadUser(c)
	if err != nil {
		return err
	}

	if body.ItemID != nil {
		var item Item
		err = DB.Take(&item, *body.ItemID).Error
		if err != nil {
			return NotFound("Item not found")
		}
	}

	report := Report{
		Type:           body.Type,
		Status:         ReportStatusPending,
		Reason:         body.Reason,
		Description:    body.Description,
		Priority:       body.Priority,
		Evidence:       body.Evidence,
		ItemID:         body.ItemID,
		ReporterID:     user.ID,
		OrganizationID: user.OrganizationID,
	}
	err = DB.Create(&report).Error
	if err != nil {
		return err
	}

	return c.Status(201).JSON(ReportResponse{
		Message: "Report submitted successfully",
		Report:  &report,
	})
}

// ModifyReport godoc
//
//	@Summary		update report status, priority or notes, admin only
//	@Tags			report
//	@Accept			json
//	@Produce		json
//	@Router			/reports/{id} [put]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ModifyRequest	true	"json"
//	@Success		200		{object}	ReportResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ModifyReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ModifyRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	report, err := loadReportForAdmin(c, id)
	if err != nil {
		return err
	}

	if body.Status != nil {
		report.Status = *body.Status
	}
	if body.Priority != nil {
		report.Priority = *body.Priority
	}
	if body.AdminNotes != nil {
		report.AdminNotes = *body.AdminNotes
	}

	err = DB.Save(report).Error
	if err != nil {
		return err
	}

	return c.JSON(ReportResponse{
		Message: "Report updated successfully",
		Report:  report,
	})
}

// AssignReport godoc
//
//	@Summary		assign a report to an admin for investigation
//	@Tags			report
//	@Accept			json
//	@Produce		json
//	@Router			/reports/{id}/assign [patch]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		AssignRequest	true	"json"
//	@Success		200		{object}	ReportResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func AssignReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body AssignRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	report, err := loadReportForAdmin(c, id)
	if err != nil {
		return err
	}

	var assignee User
	err = DB.Take(&assignee, body.AssignedTo).Error
	if err != nil {
		return NotFound("User not found")
	}
	if !assignee.IsAdminRole() {
		return BadRequest("Reports can only be assigned to admins")
	}

	now := time.Now()
	report.AssignedToID = &assignee.ID
	report.AssignedAt = &now
	report.Status = ReportStatusInvestigating
	err = DB.Select("AssignedToID", "AssignedAt", "Status").Save(report).Error
	if err != nil {
		return err
	}

	return c.JSON(ReportResponse{
		Message: "Report assigned successfully",
		Report:  report,
	})
}

// ResolveReport godoc
//
//	@Summary		resolve a report with an outcome
//	@Tags			report
//	@Accept			json
//	@Produce		json
//	@Router			/reports/{id}/resolve [patch]
//	@Param			id		path		int				true	"id"
//	@Param			json	body		ResolveRequest	true	"json"
//	@Success		200		{object}	ReportResponse
//	@Failure		403		{object}	utils.MessageResponse
//	@Failure		404		{object}	utils.MessageResponse
func ResolveReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	var body ResolveRequest
	err = ValidateBody(c, &body)
	if err != nil {
		return err
	}

	report, err := loadReportForAdmin(c, id)
	if err != nil {
		return err
	}

	now := time.Now()
	report.Status = ReportStatusResolved
	report.Resolution = body.Resolution
	report.ActionTaken = body.ActionTaken
	report.ResolvedAt = &now
	err = DB.Select("Status", "Resolution", "ActionTaken", "ResolvedAt").Save(report).Error
	if err != nil {
		return err
	}

	return c.JSON(ReportResponse{
		Message: "Report resolved successfully",
		Report:  report,
	})
}

// DeleteReport godoc
//
//	@Summary		delete a report, admin only
//	@Tags			report
//	@Produce		json
//	@Router			/reports/{id} [delete]
//	@Param			id	path		int	true	"id"
//	@Success		200	{object}	utils.MessageResponse
//	@Failure		403	{object}	utils.MessageResponse
//	@Failure		404	{object}	utils.MessageResponse
func DeleteReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest()
	}

	report, err := loadReportForAdmin(c, id)
	if err != nil {
		return err
	}

	err = DB.Delete(report).Error
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: "Report deleted successfully"})
}

func loadReportForAdmin(c *fiber.Ctx, id int) (*Report, error) {
	admin, err := LoadAdmin(c)
	if err != nil {
		return nil, err
	}

	var report Report
	err = DB.Take(&report, id).Error
	if err != nil {
		return nil, NotFound("Report not found")
	}
	if admin.Role != RoleSuperAdmin && report.OrganizationID != admin.OrganizationID {
		return nil, Forbidden()
	}
	return &report, nil
}
