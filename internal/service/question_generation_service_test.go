package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"pfe_service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChat 按调用次序回放预置应答
type stubChat struct {
	replies []string
	err     error
	prompts []string
}

func (s *stubChat) Chat(_ context.Context, _, userPrompt string, _ float64, _ int) (string, error) {
	s.prompts = append(s.prompts, userPrompt)
	if s.err != nil {
		return "", s.err
	}
	i := len(s.prompts) - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return s.replies[i], nil
}

func validQuestionsJSON(t *testing.T, techs ...string) string {
	t.Helper()
	raw := make([]map[string]interface{}, 0, GenerateQuestionCount)
	for i := 0; i < GenerateQuestionCount; i++ {
		tech := techs[i%len(techs)]
		raw = append(raw, map[string]interface{}{
			"text":             fmt.Sprintf("Question %d about %s?", i+1, tech),
			"isMultipleChoice": false,
			"correctAnswer":    "because",
			"explanation":      "details",
			"points":           3,
			"technology":       tech,
		})
	}
	b, err := json.Marshal(raw)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateReturnsModelQuestionsOnFirstTry(t *testing.T) {
	chat := &stubChat{replies: []string{validQuestionsJSON(t, "JAVA", "REACT")}}
	svc := NewQuestionGenerationService(chat, NewQuestionBankService())

	questions := svc.Generate(context.Background(), []model.Technology{model.TechJava, model.TechReact}, "a web project")

	require.Len(t, questions, 5)
	assert.Len(t, chat.prompts, 1)
	assert.Contains(t, chat.prompts[0], "JAVA, REACT")
	assert.Contains(t, chat.prompts[0], "a web project")
}

func TestGenerateParsesJSONWrappedInProse(t *testing.T) {
	reply := "Sure! Here are the questions:\n" + validQuestionsJSON(t, "GO") + "\nLet me know if you need more."
	chat := &stubChat{replies: []string{reply}}
	svc := NewQuestionGenerationService(chat, NewQuestionBankService())

	questions := svc.Generate(context.Background(), []model.Technology{model.TechGo}, "")
	require.Len(t, questions, 5)
}

func TestGenerateRetriesWithAmplifiedInstruction(t *testing.T) {
	short := `[{"text":"only one?","isMultipleChoice":false,"correctAnswer":"yes","points":3,"technology":"JAVA"}]`
	chat := &stubChat{replies: []string{short, validQuestionsJSON(t, "JAVA")}}
	svc := NewQuestionGenerationService(chat, NewQuestionBankService())

	questions := svc.Generate(context.Background(), []model.Technology{model.TechJava}, "")

	require.Len(t, questions, 5)
	require.Len(t, chat.prompts, 2)
	assert.Contains(t, chat.prompts[1], "IMPORTANT: You MUST return exactly 5 diverse questions")
}

func TestGenerateFallsBackToBankAfterRetry(t *testing.T) {
	chat := &stubChat{replies: []string{"no json here at all"}}
	bank := NewQuestionBankService()
	svc := NewQuestionGenerationService(chat, bank)

	techs := []model.Technology{model.TechReact}
	questions := svc.Generate(context.Background(), techs, "")

	assert.Len(t, chat.prompts, 2)
	assert.Equal(t, bank.Fallback(techs), questions)
}

func TestGenerateFallsBackWhenChatFails(t *testing.T) {
	chat := &stubChat{err: errors.New("upstream unavailable")}
	bank := NewQuestionBankService()
	svc := NewQuestionGenerationService(chat, bank)

	techs := []model.Technology{model.TechSpringBoot}
	questions := svc.Generate(context.Background(), techs, "")
	assert.Equal(t, bank.Fallback(techs), questions)

	// 持续故障下兜底输出保持确定性
	assert.Equal(t, questions, svc.Generate(context.Background(), techs, ""))
}

func TestParseGeneratedQuestionsDropsMalformedEntries(t *testing.T) {
	content := `[
		{"text":"good open question?","isMultipleChoice":false,"correctAnswer":"yes","points":3,"technology":"JAVA"},
		{"text":"","isMultipleChoice":false,"correctAnswer":"yes","points":3,"technology":"JAVA"},
		{"text":"no answer?","isMultipleChoice":false,"correctAnswer":"","points":3,"technology":"JAVA"},
		{"text":"points too high?","isMultipleChoice":false,"correctAnswer":"yes","points":6,"technology":"JAVA"},
		{"text":"three options?","isMultipleChoice":true,"options":["a","b","c"],"correctAnswer":"a","points":3,"technology":"JAVA"},
		{"text":"answer not an option?","isMultipleChoice":true,"options":["a","b","c","d"],"correctAnswer":"e","points":3,"technology":"JAVA"},
		{"text":"good mcq?","isMultipleChoice":true,"options":["a","b","c","d"],"correctAnswer":"b","points":2,"technology":"JAVA"}
	]`

	questions, err := parseGeneratedQuestions(content)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "good open question?", questions[0].Text)
	assert.Equal(t, "good mcq?", questions[1].Text)
}

func TestParseGeneratedQuestionsRejectsMissingArray(t *testing.T) {
	_, err := parseGeneratedQuestions("I could not generate any questions.")
	assert.Error(t, err)
}

func TestValidateGeneratedQuestionsRejectsDuplicates(t *testing.T) {
	q := model.Question{Text: "same?", CorrectAnswer: "a", Points: 3, Technology: "JAVA"}
	questions := []model.Question{q, q, q, q, q}

	err := validateGeneratedQuestions(questions, []model.Technology{model.TechJava})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateGeneratedQuestionsRequiresCoverage(t *testing.T) {
	questions := make([]model.Question, 0, 5)
	for i := 0; i < 5; i++ {
		questions = append(questions, model.Question{
			Text:          fmt.Sprintf("q%d?", i),
			CorrectAnswer: "a",
			Points:        3,
			Technology:    "JAVA",
		})
	}

	// 三项技术只覆盖一项，33% < 60%
	err := validateGeneratedQuestions(questions, []model.Technology{model.TechJava, model.TechReact, model.TechMySQL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverage")

	// 覆盖率按技术名大小写不敏感子串匹配
	questions[1].Technology = "react hooks"
	questions[2].Technology = "MySQL"
	assert.NoError(t, validateGeneratedQuestions(questions, []model.Technology{model.TechJava, model.TechReact, model.TechMySQL}))
}
