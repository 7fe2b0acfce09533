package controller

import (
	"errors"

	"pfe_service/internal/middleware"
	"pfe_service/internal/model"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type ProposalController struct {
	ProposalService *service.ProposalService
}

func NewProposalController(proposalService *service.ProposalService) *ProposalController {
	return &ProposalController{ProposalService: proposalService}
}

// @Summary 创建提案
// @Description 企业针对某个PFE项目发起提案，初始状态为PENDING
// @Tags 提案
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/proposals [post]
func (c *ProposalController) CreateProposal(ctx *gin.Context) {
	var req service.ProposalCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	proposal, err := c.ProposalService.Create(&req)
	if err != nil {
		if errors.Is(err, util.ErrPfeNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, proposal.View())
}

// @Summary 更新提案状态
// @Description 状态迁移到ACCEPTED时自动创建技术测试并返回测试ID
// @Tags 提案
// @Accept json
// @Produce json
// @Param id path int true "提案ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/{id}/status [patch]
func (c *ProposalController) UpdateProposalStatus(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	proposal, test, err := c.ProposalService.SetStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProposalNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidProposalStatus):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if test != nil {
		util.Success(ctx, gin.H{
			"message":         "Proposal accepted and technical test created",
			"technicalTestId": test.ID,
		})
		return
	}
	util.Success(ctx, gin.H{
		"message": "Proposal status updated to " + string(proposal.Status),
	})
}

// @Summary 接受提案并创建技术测试
// @Description 幂等接口：重复调用返回已存在的测试，不会重复生成
// @Tags 提案
// @Produce json
// @Param id path int true "提案ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/{id}/accept-proposal [post]
func (c *ProposalController) AcceptProposal(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	proposal, test, err := c.ProposalService.AcceptAndCreateTest(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrProposalNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message":         "Proposal accepted and technical test created with questions based on PFE technologies",
		"technicalTestId": test.ID,
		"technicalTest":   test.View(proposal.CompanyID, true),
	})
}

// @Summary 发送面试邀请
// @Description 邮件发送成功后提案状态迁移到MEETING_SCHEDULED，发送失败不迁移
// @Tags 提案
// @Accept json
// @Produce json
// @Param id path int true "提案ID"
// @Param X-Company-Id header string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/{id}/send-interview-invitation [post]
func (c *ProposalController) SendInterviewInvitation(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	companyID := middleware.CompanyID(ctx)
	if companyID == "" {
		util.BadRequest(ctx, "X-Company-Id header is required")
		return
	}

	var req service.InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err = c.ProposalService.SendInterviewInvitation(ctx.Request.Context(), id, companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProposalNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotProposalOwner):
			util.Forbidden(ctx, "You don't have permission to send interview invitation for this proposal")
		case errors.Is(err, util.ErrEmailRecipientMissing), errors.Is(err, util.ErrInterviewTimeInPast):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"message": "Interview invitation sent successfully and proposal status updated",
	})
}

// @Summary 获取提案详情
// @Tags 提案
// @Produce json
// @Param id path int true "提案ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/{id} [get]
func (c *ProposalController) GetProposalByID(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	proposal, err := c.ProposalService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrProposalNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposal.View())
}

// @Summary 获取全部提案
// @Tags 提案
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/proposals [get]
func (c *ProposalController) GetAllProposals(ctx *gin.Context) {
	proposals, err := c.ProposalService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposalViews(proposals))
}

// @Summary 获取学生的提案列表
// @Tags 提案
// @Produce json
// @Param studentId path string true "学生ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/student/{studentId} [get]
func (c *ProposalController) GetProposalsByStudentID(ctx *gin.Context) {
	proposals, err := c.ProposalService.GetByStudentID(ctx.Param("studentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposalViews(proposals))
}

// @Summary 获取企业的提案列表
// @Tags 提案
// @Produce json
// @Param companyId path string true "企业ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/company/{companyId} [get]
func (c *ProposalController) GetProposalsByCompanyID(ctx *gin.Context) {
	proposals, err := c.ProposalService.GetByCompanyID(ctx.Param("companyId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposalViews(proposals))
}

// @Summary 获取某PFE下的提案列表
// @Tags 提案
// @Produce json
// @Param pfeId path int true "PFE ID"
// @Success 200 {object} util.Response
// @Router /api/proposals/pfe/{pfeId} [get]
func (c *ProposalController) GetProposalsByPfeID(ctx *gin.Context) {
	pfeID, err := util.ParseUint(ctx.Param("pfeId"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	proposals, err := c.ProposalService.GetByPfeID(pfeID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, proposalViews(proposals))
}

// @Summary 删除提案
// @Tags 提案
// @Param id path int true "提案ID"
// @Success 204
// @Router /api/proposals/{id} [delete]
func (c *ProposalController) DeleteProposal(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.ProposalService.Delete(id); err != nil {
		if errors.Is(err, util.ErrProposalNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func proposalViews(proposals []model.Proposal) []model.ProposalView {
	views := make([]model.ProposalView, len(proposals))
	for i := range proposals {
		views[i] = proposals[i].View()
	}
	return views
}
