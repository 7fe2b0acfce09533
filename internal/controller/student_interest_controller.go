package controller

import (
	"errors"

	"pfe_service/internal/model"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentInterestController struct {
	StudentInterestService *service.StudentInterestService
}

func NewStudentInterestController(interestService *service.StudentInterestService) *StudentInterestController {
	return &StudentInterestController{StudentInterestService: interestService}
}

// @Summary 登记实习意向
// @Tags 实习意向
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/student-interests [post]
func (c *StudentInterestController) CreateInterest(ctx *gin.Context) {
	var interest model.StudentInterest
	if err := ctx.ShouldBindJSON(&interest); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if interest.StudentID == "" || interest.InternshipOfferID == 0 {
		util.BadRequest(ctx, "studentId and internshipOfferId are required")
		return
	}

	created, err := c.StudentInterestService.Create(&interest)
	if err != nil {
		if errors.Is(err, util.ErrOfferNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, created)
}

// @Summary 更新实习意向
// @Tags 实习意向
// @Accept json
// @Produce json
// @Param id path int true "意向ID"
// @Success 200 {object} util.Response
// @Router /api/student-interests/{id} [put]
func (c *StudentInterestController) UpdateInterest(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	var update model.StudentInterest
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	interest, err := c.StudentInterestService.Update(id, &update)
	if err != nil {
		if errors.Is(err, util.ErrInterestNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interest)
}

// @Summary 删除实习意向
// @Tags 实习意向
// @Param id path int true "意向ID"
// @Success 204
// @Router /api/student-interests/{id} [delete]
func (c *StudentInterestController) DeleteInterest(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.StudentInterestService.Delete(id); err != nil {
		if errors.Is(err, util.ErrInterestNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// @Summary 获取实习意向详情
// @Tags 实习意向
// @Produce json
// @Param id path int true "意向ID"
// @Success 200 {object} util.Response
// @Router /api/student-interests/{id} [get]
func (c *StudentInterestController) GetInterestByID(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	interest, err := c.StudentInterestService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrInterestNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interest)
}

// @Summary 获取学生的意向列表
// @Tags 实习意向
// @Produce json
// @Param studentId path string true "学生ID"
// @Success 200 {object} util.Response
// @Router /api/student-interests/student/{studentId} [get]
func (c *StudentInterestController) GetInterestsByStudentID(ctx *gin.Context) {
	interests, err := c.StudentInterestService.GetByStudentID(ctx.Param("studentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interests)
}

// @Summary 获取某岗位的意向列表
// @Tags 实习意向
// @Produce json
// @Param internshipOfferId path int true "岗位ID"
// @Success 200 {object} util.Response
// @Router /api/student-interests/internship-offer/{internshipOfferId} [get]
func (c *StudentInterestController) GetInterestsByOfferID(ctx *gin.Context) {
	offerID, err := util.ParseUint(ctx.Param("internshipOfferId"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	interests, err := c.StudentInterestService.GetByOfferID(offerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interests)
}
