package controller

import (
	"errors"

	"pfe_service/internal/model"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type TechnicalTestController struct {
	TechnicalTestService *service.TechnicalTestService
	ProposalService      *service.ProposalService
}

func NewTechnicalTestController(testService *service.TechnicalTestService, proposalService *service.ProposalService) *TechnicalTestController {
	return &TechnicalTestController{
		TechnicalTestService: testService,
		ProposalService:      proposalService,
	}
}

// @Summary 获取技术测试详情
// @Description 含题目列表；测试完成后附带参考答案与判卷结果
// @Tags 技术测试
// @Produce json
// @Param id path int true "测试ID"
// @Success 200 {object} util.Response
// @Router /api/technical-tests/{id} [get]
func (c *TechnicalTestController) GetTestByID(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	test, err := c.TechnicalTestService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrTechnicalTestNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	companyID := ""
	if proposal, err := c.ProposalService.GetByID(test.ProposalID); err == nil {
		companyID = proposal.CompanyID
	}
	util.Success(ctx, test.View(companyID, true))
}

// @Summary 提交技术测试答卷
// @Description 单次提交：选择题精确匹配，开放题语义判卷，返回判卷后的完整测试
// @Tags 技术测试
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/technical-tests/submit [post]
func (c *TechnicalTestController) SubmitTest(ctx *gin.Context) {
	var req service.TestSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TechnicalTestService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTechnicalTestNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrTestAlreadyCompleted), errors.Is(err, util.ErrNoAnswersProvided):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, test.View("", true))
}

// @Summary 获取学生的技术测试列表
// @Tags 技术测试
// @Produce json
// @Param studentId path string true "学生ID"
// @Success 200 {object} util.Response
// @Router /api/technical-tests/student/{studentId} [get]
func (c *TechnicalTestController) GetTestsByStudentID(ctx *gin.Context) {
	tests, err := c.TechnicalTestService.GetByStudentID(ctx.Param("studentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, testViews(tests, ""))
}

// @Summary 获取企业的技术测试列表
// @Tags 技术测试
// @Produce json
// @Param companyId path string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/technical-tests/company/{companyId} [get]
func (c *TechnicalTestController) GetTestsByCompanyID(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	tests, err := c.TechnicalTestService.GetByCompanyID(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, testViews(tests, companyID))
}

// @Summary 删除技术测试
// @Tags 技术测试
// @Param id path int true "测试ID"
// @Success 204
// @Router /api/technical-tests/{id} [delete]
func (c *TechnicalTestController) DeleteTest(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.TechnicalTestService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func testViews(tests []model.TechnicalTest, companyID string) []model.TechnicalTestView {
	views := make([]model.TechnicalTestView, len(tests))
	for i := range tests {
		views[i] = tests[i].View(companyID, true)
	}
	return views
}
