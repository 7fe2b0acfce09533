package service

import (
	"context"
	"fmt"
	"strings"

	"pfe_service/pkg/logger"

	"go.uber.org/zap"
)

// AnswerVerificationService 开放题语义判卷。
// 宽松失败策略：外部判卷通路任何故障一律判对，判卷决不能因依赖故障拖垮提交。
type AnswerVerificationService struct {
	ai ChatCompleter
}

func NewAnswerVerificationService(ai ChatCompleter) *AnswerVerificationService {
	return &AnswerVerificationService{ai: ai}
}

const verifyMaxTokens = 10

// Verify 返回学生答案是否与参考答案语义等价
func (s *AnswerVerificationService) Verify(ctx context.Context, correctAnswer, studentAnswer, questionText string) bool {
	prompt := fmt.Sprintf(`You are grading a technical interview answer. Reply with the single word "true" if the student's answer is semantically correct, or "false" if it is not.
Accept answers that use different wording or paraphrasing as long as they convey the same meaning as the reference answer.

Question: %s
Reference answer: %s
Student answer: %s

Reply with exactly "true" or "false".`, questionText, correctAnswer, studentAnswer)

	content, err := s.ai.Chat(ctx, "", prompt, 0, verifyMaxTokens)
	if err != nil {
		logger.Log.Warn("Answer verification failed, giving student benefit of the doubt", zap.Error(err))
		return true
	}

	return strings.TrimSpace(strings.ToLower(content)) == "true"
}
