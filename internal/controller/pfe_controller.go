package controller

import (
	"errors"
	"time"

	"pfe_service/internal/model"
	"pfe_service/internal/repository"
	"pfe_service/internal/service"
	"pfe_service/internal/util"

	"github.com/gin-gonic/gin"
)

type PfeController struct {
	PfeService *service.PfeService
}

func NewPfeController(pfeService *service.PfeService) *PfeController {
	return &PfeController{PfeService: pfeService}
}

// @Summary 发布PFE项目
// @Description 学生上传项目信息与PDF报告，创建新的PFE条目
// @Tags PFE项目
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "项目标题"
// @Param description formData string true "项目描述"
// @Param githubUrl formData string true "代码仓库地址"
// @Param videoUrl formData string false "演示视频地址"
// @Param technologies formData string false "逗号分隔的技术栈"
// @Param openFor formData string true "开放类型 PFE/INTERNSHIP/BOTH"
// @Param studentId formData string true "学生ID"
// @Param rapport formData file true "PDF报告"
// @Success 201 {object} util.Response
// @Router /api/pfe [post]
func (c *PfeController) CreatePfe(ctx *gin.Context) {
	technologies, err := model.ParseTechnologies(ctx.PostForm("technologies"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	openFor := model.OpenFor(ctx.PostForm("openFor"))
	if !openFor.IsValid() {
		util.BadRequest(ctx, "invalid openFor value")
		return
	}

	fileHeader, err := ctx.FormFile("rapport")
	if err != nil {
		util.BadRequest(ctx, "rapport file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	req := &service.PfeCreateRequest{
		Title:        ctx.PostForm("title"),
		Description:  ctx.PostForm("description"),
		GithubURL:    ctx.PostForm("githubUrl"),
		VideoURL:     ctx.PostForm("videoUrl"),
		Technologies: technologies,
		OpenFor:      openFor,
		StudentID:    ctx.PostForm("studentId"),
	}
	if req.Title == "" || req.StudentID == "" {
		util.BadRequest(ctx, "title and studentId are required")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}
	pfe, err := c.PfeService.Create(ctx.Request.Context(), req, file, fileHeader.Size, contentType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, util.ErrOnlyPDFAllowed) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, pfe)
}

// @Summary 获取PFE详情
// @Tags PFE项目
// @Produce json
// @Param id path int true "PFE ID"
// @Success 200 {object} util.Response
// @Router /api/pfe/{id} [get]
func (c *PfeController) GetPfeByID(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	view, err := c.PfeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrPfeNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取全部PFE
// @Tags PFE项目
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/pfe [get]
func (c *PfeController) GetAllPfes(ctx *gin.Context) {
	views, err := c.PfeService.GetAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary 按条件筛选PFE
// @Description 关键词、技术栈、开放类型、学生、时间范围组合筛选
// @Tags PFE项目
// @Produce json
// @Param keyword query string false "标题/描述关键词"
// @Param technologies query string false "逗号分隔的技术栈"
// @Param openFor query string false "开放类型"
// @Param studentId query string false "学生ID"
// @Param processing query bool false "是否处理中"
// @Success 200 {object} util.Response
// @Router /api/pfe/filter [get]
func (c *PfeController) FilterPfes(ctx *gin.Context) {
	technologies, err := model.ParseTechnologies(ctx.Query("technologies"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	filter := repository.PfeFilter{
		Keyword:      ctx.Query("keyword"),
		Technologies: technologies,
		OpenFor:      model.OpenFor(ctx.Query("openFor")),
		StudentID:    ctx.Query("studentId"),
	}

	if v := ctx.Query("processing"); v != "" {
		processing := v == "true"
		filter.Processing = &processing
	}
	for query, dst := range map[string]**time.Time{
		"createdAfter":  &filter.CreatedAfter,
		"createdBefore": &filter.CreatedBefore,
		"updatedAfter":  &filter.UpdatedAfter,
		"updatedBefore": &filter.UpdatedBefore,
	} {
		if v := ctx.Query(query); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				util.BadRequest(ctx, "invalid "+query+" timestamp")
				return
			}
			*dst = &t
		}
	}

	views, err := c.PfeService.Filter(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary 获取某学生的PFE列表
// @Tags PFE项目
// @Produce json
// @Param studentId path string true "学生ID"
// @Success 200 {object} util.Response
// @Router /api/pfe/student/{studentId} [get]
func (c *PfeController) GetPfesByStudentID(ctx *gin.Context) {
	views, err := c.PfeService.GetByStudentID(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary 更新PFE
// @Tags PFE项目
// @Accept json
// @Produce json
// @Param id path int true "PFE ID"
// @Success 200 {object} util.Response
// @Router /api/pfe/{id} [put]
func (c *PfeController) UpdatePfe(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	var req service.PfeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.PfeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, util.ErrPfeNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 删除PFE
// @Tags PFE项目
// @Param id path int true "PFE ID"
// @Success 204
// @Router /api/pfe/{id} [delete]
func (c *PfeController) DeletePfe(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return
	}

	if err := c.PfeService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrPfeNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
