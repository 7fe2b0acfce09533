package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pfe_service/internal/model"
	"pfe_service/pkg/logger"
	"pfe_service/pkg/monitoring"

	"go.uber.org/zap"
)

// ChatCompleter 聊天补全客户端抽象，便于测试替身
type ChatCompleter interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

// 生成门限，经验阈值而非硬性不变量
const (
	GenerateQuestionCount = 5
	TechCoverageRatio     = 0.6

	generateTemperature = 0.7
	generateMaxTokens   = 4000
)

// QuestionGenerationService 根据技术栈与项目描述生成面试题，
// 校验失败重试一次，仍失败则整体退回题库兜底，绝不混合两种来源
type QuestionGenerationService struct {
	ai   ChatCompleter
	bank *QuestionBankService
}

func NewQuestionGenerationService(ai ChatCompleter, bank *QuestionBankService) *QuestionGenerationService {
	return &QuestionGenerationService{ai: ai, bank: bank}
}

// Generate 保证至少返回1题；AI通路不可用时为题库的确定性输出
func (s *QuestionGenerationService) Generate(ctx context.Context, technologies []model.Technology, description string) []model.Question {
	logger.Log.Info("Generating technical questions",
		zap.Any("technologies", technologies))

	prompt := buildGenerationPrompt(technologies, description)

	questions, err := s.generateOnce(ctx, prompt, technologies)
	if err == nil {
		monitoring.TestGenerationCounter.WithLabelValues("generated").Inc()
		return questions
	}
	logger.Log.Warn("Question generation failed validation, retrying once", zap.Error(err))

	// 单次重试，附加强调指令
	retryPrompt := prompt + "\n\nIMPORTANT: You MUST return exactly 5 diverse questions covering as many of the listed technologies as possible, with no duplicate question texts."
	questions, err = s.generateOnce(ctx, retryPrompt, technologies)
	if err == nil {
		monitoring.TestGenerationCounter.WithLabelValues("retry").Inc()
		return questions
	}

	logger.Log.Warn("Question generation failed after retry, using fallback questions", zap.Error(err))
	monitoring.TestGenerationCounter.WithLabelValues("fallback").Inc()
	return s.bank.Fallback(technologies)
}

func (s *QuestionGenerationService) generateOnce(ctx context.Context, prompt string, technologies []model.Technology) ([]model.Question, error) {
	content, err := s.ai.Chat(ctx, "", prompt, generateTemperature, generateMaxTokens)
	if err != nil {
		return nil, err
	}

	questions, err := parseGeneratedQuestions(content)
	if err != nil {
		return nil, err
	}

	if err := validateGeneratedQuestions(questions, technologies); err != nil {
		return nil, err
	}
	return questions, nil
}

type generatedQuestion struct {
	Text             string   `json:"text"`
	IsMultipleChoice bool     `json:"isMultipleChoice"`
	Options          []string `json:"options"`
	CorrectAnswer    string   `json:"correctAnswer"`
	Explanation      string   `json:"explanation"`
	Points           int      `json:"points"`
	Technology       string   `json:"technology"`
}

// parseGeneratedQuestions 容忍模型在JSON数组前后夹带散文，取首个'['到末个']'切片解析。
// 形状不合格的条目丢弃而非报错。
func parseGeneratedQuestions(content string) ([]model.Question, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []generatedQuestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse questions: %w", err)
	}

	questions := make([]model.Question, 0, len(raw))
	for _, g := range raw {
		if strings.TrimSpace(g.Text) == "" {
			continue
		}
		if strings.TrimSpace(g.CorrectAnswer) == "" {
			continue
		}
		if g.Points < 1 || g.Points > 5 {
			continue
		}
		if g.IsMultipleChoice {
			if len(g.Options) != 4 {
				continue
			}
			found := false
			for _, opt := range g.Options {
				if opt == g.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		questions = append(questions, model.Question{
			Text:             g.Text,
			IsMultipleChoice: g.IsMultipleChoice,
			Options:          model.StringList(g.Options),
			CorrectAnswer:    g.CorrectAnswer,
			Explanation:      g.Explanation,
			Points:           g.Points,
			Technology:       g.Technology,
		})
	}
	return questions, nil
}

// validateGeneratedQuestions 数量、技术覆盖率、去重、选项数四道闸门
func validateGeneratedQuestions(questions []model.Question, technologies []model.Technology) error {
	if len(questions) < GenerateQuestionCount {
		return fmt.Errorf("expected at least %d questions, got %d", GenerateQuestionCount, len(questions))
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.Text]; dup {
			return fmt.Errorf("duplicate question text: %s", q.Text)
		}
		seen[q.Text] = struct{}{}

		if q.IsMultipleChoice && len(q.Options) != 4 {
			return fmt.Errorf("multiple choice question must have exactly 4 options")
		}
	}

	if len(technologies) > 0 {
		covered := 0
		for _, tech := range technologies {
			name := strings.ToLower(string(tech))
			for _, q := range questions {
				if strings.Contains(strings.ToLower(q.Technology), name) {
					covered++
					break
				}
			}
		}
		ratio := float64(covered) / float64(len(technologies))
		if ratio < TechCoverageRatio {
			return fmt.Errorf("technology coverage %.0f%% below required %.0f%%", ratio*100, TechCoverageRatio*100)
		}
	}
	return nil
}

func buildGenerationPrompt(technologies []model.Technology, description string) string {
	techNames := make([]string, len(technologies))
	for i, t := range technologies {
		techNames[i] = string(t)
	}

	var hints strings.Builder
	for _, t := range technologies {
		hints.WriteString(fmt.Sprintf("- %s: %s\n", t, generationHint(t)))
	}

	return fmt.Sprintf(`Generate 5 technical interview questions based on the following technologies and project description.
Make sure the questions are challenging and relevant to assess a student's proficiency in these technologies.

Technologies: %s
Project Description: %s

Per-technology guidance:
%s
For each question:
1. Make it specific to one of the listed technologies
2. Ensure it's relevant to the project description when possible
3. Include a mix of theoretical knowledge and practical application
4. For multiple-choice questions, include 4 options with only one correct answer
5. For non-multiple-choice questions, expect a concise answer

Target difficulty mix: about 20%% of questions worth 1-2 points, 60%% worth 3 points, 20%% worth 4-5 points.

For each question, provide:
1. The question text
2. Whether it's multiple choice (true/false)
3. The correct answer
4. A detailed explanation of the answer that helps the student learn
5. Points (between 1-5 based on difficulty)
6. The technology the question targets

Format the response as a JSON array of objects with the following structure:
[
  {
    "text": "question text",
    "isMultipleChoice": boolean,
    "options": ["option1", "option2", "option3", "option4"] (only for multiple choice),
    "correctAnswer": "correct answer",
    "explanation": "explanation text",
    "points": number,
    "technology": "technology name"
  }
]`,
		strings.Join(techNames, ", "),
		description,
		hints.String(),
	)
}

// generationHint 技术到出题指令的有限分派表，未收录的技术走通用模板
func generationHint(tech model.Technology) string {
	switch tech {
	case model.TechJava, model.TechPython, model.TechGo, model.TechJavascript,
		model.TechTypescript, model.TechPHP:
		return "cover language fundamentals, idioms and common pitfalls"
	case model.TechSpringBoot, model.TechNodeJS, model.TechDjango, model.TechLaravel:
		return "cover framework architecture, request lifecycle and dependency management"
	case model.TechReact, model.TechAngular, model.TechVue, model.TechFlutter:
		return "cover component lifecycle, state management and rendering behavior"
	case model.TechMySQL, model.TechPostgreSQL, model.TechMongoDB:
		return "cover indexing, transactions and query optimization"
	case model.TechRedis, model.TechElasticsearch:
		return "cover data structures, caching strategies and consistency trade-offs"
	case model.TechDocker, model.TechKubernetes:
		return "cover containerization, orchestration and deployment workflows"
	case model.TechAWS, model.TechAzure:
		return "cover core services, scalability and cloud architecture decisions"
	default:
		return fmt.Sprintf("ask a practical question relevant to %s", tech)
	}
}
