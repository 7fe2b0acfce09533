package controller

import (
	"errors"

	"pfe_service/internal/middleware"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type SavedPfeController struct {
	SavedPfeService *service.SavedPfeService
}

func NewSavedPfeController(savedPfeService *service.SavedPfeService) *SavedPfeController {
	return &SavedPfeController{SavedPfeService: savedPfeService}
}

// @Summary 收藏PFE
// @Tags 收藏夹
// @Produce json
// @Param pfeId path int true "PFE ID"
// @Param X-Company-Id header string true "企业ID"
// @Success 201 {object} util.Response
// @Router /api/saved-pfes/{pfeId} [post]
func (c *SavedPfeController) SavePfe(ctx *gin.Context) {
	companyID := middleware.CompanyID(ctx)
	if companyID == "" {
		util.BadRequest(ctx, "X-Company-Id header is required")
		return
	}

	pfeID, err := util.ParseUint(ctx.Param("pfeId"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	saved, err := c.SavedPfeService.Save(companyID, pfeID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPfeNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrPfeAlreadySaved):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, saved)
}

// @Summary 取消收藏
// @Tags 收藏夹
// @Param pfeId path int true "PFE ID"
// @Param X-Company-Id header string true "企业ID"
// @Success 204
// @Router /api/saved-pfes/{pfeId} [delete]
func (c *SavedPfeController) UnsavePfe(ctx *gin.Context) {
	companyID := middleware.CompanyID(ctx)
	if companyID == "" {
		util.BadRequest(ctx, "X-Company-Id header is required")
		return
	}

	pfeID, err := util.ParseUint(ctx.Param("pfeId"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.SavedPfeService.Unsave(companyID, pfeID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 获取企业收藏列表
// @Tags 收藏夹
// @Produce json
// @Param X-Company-Id header string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/saved-pfes [get]
func (c *SavedPfeController) GetSavedPfes(ctx *gin.Context) {
	companyID := middleware.CompanyID(ctx)
	if companyID == "" {
		util.BadRequest(ctx, "X-Company-Id header is required")
		return
	}

	saved, err := c.SavedPfeService.GetByCompanyID(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, saved)
}

// @Summary 查询是否已收藏
// @Tags 收藏夹
// @Produce json
// @Param pfeId path int true "PFE ID"
// @Param X-Company-Id header string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/saved-pfes/{pfeId}/is-saved [get]
func (c *SavedPfeController) IsPfeSaved(ctx *gin.Context) {
	companyID := middleware.CompanyID(ctx)
	if companyID == "" {
		util.BadRequest(ctx, "X-Company-Id header is required")
		return
	}

	pfeID, err := util.ParseUint(ctx.Param("pfeId"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	saved, err := c.SavedPfeService.IsSaved(companyID, pfeID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"isSaved": saved})
}
