package controller

import (
	"errors"
	"strconv"

	"pfe_service/internal/model"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type InternshipOfferController struct {
	InternshipOfferService *service.InternshipOfferService
}

func NewInternshipOfferController(offerService *service.InternshipOfferService) *InternshipOfferController {
	return &InternshipOfferController{InternshipOfferService: offerService}
}

// @Summary 发布实习岗位
// @Tags 实习岗位
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/internship-offers [post]
func (c *InternshipOfferController) CreateOffer(ctx *gin.Context) {
	var offer model.InternshipOffer
	if err := ctx.ShouldBindJSON(&offer); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if offer.Title == "" || offer.CompanyID == "" {
		util.BadRequest(ctx, "title and companyId are required")
		return
	}

	created, err := c.InternshipOfferService.Create(&offer)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, created)
}

// @Summary 更新实习岗位
// @Tags 实习岗位
// @Accept json
// @Produce json
// @Param id path int true "岗位ID"
// @Success 200 {object} util.Response
// @Router /api/internship-offers/{id} [put]
func (c *InternshipOfferController) UpdateOffer(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	var update model.InternshipOffer
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	offer, err := c.InternshipOfferService.Update(id, &update)
	if err != nil {
		if errors.Is(err, util.ErrOfferNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, offer)
}

// @Summary 删除实习岗位
// @Tags 实习岗位
// @Param id path int true "岗位ID"
// @Success 204
// @Router /api/internship-offers/{id} [delete]
func (c *InternshipOfferController) DeleteOffer(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.InternshipOfferService.Delete(id); err != nil {
		if errors.Is(err, util.ErrOfferNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 获取实习岗位详情
// @Tags 实习岗位
// @Produce json
// @Param id path int true "岗位ID"
// @Success 200 {object} util.Response
// @Router /api/internship-offers/{id} [get]
func (c *InternshipOfferController) GetOfferByID(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	offer, err := c.InternshipOfferService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrOfferNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, offer)
}

// @Summary 获取实习岗位列表
// @Tags 实习岗位
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/internship-offers [get]
func (c *InternshipOfferController) GetAllOffers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offers, total, err := c.InternshipOfferService.GetAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"items": offers,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// @Summary 获取企业的实习岗位
// @Tags 实习岗位
// @Produce json
// @Param companyId path string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/internship-offers/company/{companyId} [get]
func (c *InternshipOfferController) GetOffersByCompanyID(ctx *gin.Context) {
	offers, err := c.InternshipOfferService.GetByCompanyID(ctx.Param("companyId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, offers)
}
