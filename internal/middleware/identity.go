package middleware

import "github.com/gin-gonic/gin"

// 调用方身份由上游网关注入的不透明header透传，本服务不做鉴权
const (
	HeaderCompanyID = "X-Company-Id"
	HeaderStudentID = "X-Student-Id"

	ContextCompanyID = "companyId"
	ContextStudentID = "studentId"
)

// Identity 提取调用方身份header放入请求上下文
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if companyID := c.GetHeader(HeaderCompanyID); companyID != "" {
			c.Set(ContextCompanyID, companyID)
		}
		if studentID := c.GetHeader(HeaderStudentID); studentID != "" {
			c.Set(ContextStudentID, studentID)
		}
		c.Next()
	}
}

// CompanyID 返回请求的企业身份，未携带时为空串
func CompanyID(c *gin.Context) string {
	return c.GetString(ContextCompanyID)
}

// StudentID 返回请求的学生身份，未携带时为空串
func StudentID(c *gin.Context) string {
	return c.GetString(ContextStudentID)
}
