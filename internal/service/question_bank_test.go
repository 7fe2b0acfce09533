package service

import (
	"testing"

	"pfe_service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackIsDeterministic(t *testing.T) {
	bank := NewQuestionBankService()
	techs := []model.Technology{model.TechJava, model.TechReact}

	first := bank.Fallback(techs)
	second := bank.Fallback(techs)
	assert.Equal(t, first, second)
}

func TestFallbackFollowsCallerOrder(t *testing.T) {
	bank := NewQuestionBankService()

	questions := bank.Fallback([]model.Technology{model.TechReact, model.TechJava})
	require.Len(t, questions, 5)

	// React 的两道题在前，Java 的两道题在后，末位是通用题
	assert.Equal(t, string(model.TechReact), questions[0].Technology)
	assert.Equal(t, string(model.TechReact), questions[1].Technology)
	assert.Equal(t, string(model.TechJava), questions[2].Technology)
	assert.Equal(t, string(model.TechJava), questions[3].Technology)
	assert.Equal(t, "GENERAL", questions[4].Technology)
}

func TestFallbackUnknownTechsGetGenericQuestions(t *testing.T) {
	bank := NewQuestionBankService()

	questions := bank.Fallback([]model.Technology{model.TechKubernetes, model.TechAWS})
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "GENERAL", q.Technology)
	}
}

func TestFallbackNeverExceedsFiveQuestions(t *testing.T) {
	bank := NewQuestionBankService()

	questions := bank.Fallback([]model.Technology{
		model.TechJava, model.TechReact, model.TechSpringBoot, model.TechJavascript,
	})
	assert.Len(t, questions, 5)
}

func TestFallbackSharesPairForJavascriptAndTypescript(t *testing.T) {
	bank := NewQuestionBankService()

	js := bank.Fallback([]model.Technology{model.TechJavascript})
	ts := bank.Fallback([]model.Technology{model.TechTypescript})
	assert.Equal(t, js, ts)
}

func TestFallbackQuestionShapes(t *testing.T) {
	bank := NewQuestionBankService()

	for _, q := range bank.Fallback([]model.Technology{model.TechSpringBoot}) {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.CorrectAnswer)
		assert.GreaterOrEqual(t, q.Points, 1)
		assert.LessOrEqual(t, q.Points, 5)
		if q.IsMultipleChoice {
			assert.Len(t, q.Options, 4)
			assert.Contains(t, []string(q.Options), q.CorrectAnswer)
		}
	}
}
