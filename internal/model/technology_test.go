package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTechnology(t *testing.T) {
	tech, err := ParseTechnology("java")
	require.NoError(t, err)
	assert.Equal(t, TechJava, tech)

	tech, err = ParseTechnology("  Spring_Boot ")
	require.NoError(t, err)
	assert.Equal(t, TechSpringBoot, tech)

	_, err = ParseTechnology("COBOL")
	assert.Error(t, err)
}

func TestParseTechnologies(t *testing.T) {
	techs, err := ParseTechnologies("java, react ,,mysql")
	require.NoError(t, err)
	assert.Equal(t, []Technology{TechJava, TechReact, TechMySQL}, techs)

	techs, err = ParseTechnologies("   ")
	require.NoError(t, err)
	assert.Nil(t, techs)

	_, err = ParseTechnologies("java,unknown")
	assert.Error(t, err)
}

func TestTechnologyListDedup(t *testing.T) {
	list := TechnologyList{TechReact, TechJava, TechReact, TechMySQL, TechJava}
	assert.Equal(t, TechnologyList{TechReact, TechJava, TechMySQL}, list.Dedup())

	assert.True(t, list.Contains(TechMySQL))
	assert.False(t, list.Contains(TechGo))
}

func TestTechnologyListScanValue(t *testing.T) {
	list := TechnologyList{TechGo, TechRedis}
	value, err := list.Value()
	require.NoError(t, err)

	var scanned TechnologyList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	var empty TechnologyList
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)

	var nilValue TechnologyList
	v, err := nilValue.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestParseProposalStatus(t *testing.T) {
	status, err := ParseProposalStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, ProposalAccepted, status)

	status, err = ParseProposalStatus(" MEETING_SCHEDULED ")
	require.NoError(t, err)
	assert.Equal(t, ProposalMeetingScheduled, status)

	_, err = ParseProposalStatus("ARCHIVED")
	assert.Error(t, err)
}

func TestQuestionViewHidesAnswersUntilReviewed(t *testing.T) {
	answer := "42"
	correct := true
	q := Question{
		Text:          "What is the answer?",
		CorrectAnswer: "42",
		Explanation:   "obviously",
		UserAnswer:    &answer,
		IsCorrect:     &correct,
		Points:        3,
	}

	hidden := q.View(false)
	assert.Empty(t, hidden.CorrectAnswer)
	assert.Empty(t, hidden.Explanation)
	assert.Nil(t, hidden.UserAnswer)
	assert.Nil(t, hidden.IsCorrect)

	reviewed := q.View(true)
	assert.Equal(t, "42", reviewed.CorrectAnswer)
	assert.Equal(t, "obviously", reviewed.Explanation)
	require.NotNil(t, reviewed.IsCorrect)
	assert.True(t, *reviewed.IsCorrect)
}
