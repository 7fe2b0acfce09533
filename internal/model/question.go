package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList 以JSON列存储的字符串数组（选择题选项）
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

func (StringList) GormDataType() string {
	return "json"
}

// Question 技术测试题目，由测试独占拥有
// swagger:model Question
type Question struct {
	BaseModel
	TechnicalTestID  uint       `gorm:"index;type:bigint unsigned" json:"technicalTestId"`
	Text             string     `gorm:"type:text;not null" json:"text"`
	Explanation      string     `gorm:"type:text" json:"explanation"`
	IsMultipleChoice bool       `gorm:"default:false" json:"isMultipleChoice"`
	Options          StringList `gorm:"type:json" json:"options,omitempty"` // 选择题固定4个选项
	CorrectAnswer    string     `gorm:"type:text" json:"correctAnswer"`
	UserAnswer       *string    `gorm:"type:text" json:"userAnswer,omitempty"`
	IsCorrect        *bool      `json:"isCorrect,omitempty"`
	Points           int        `gorm:"default:1" json:"points"` // 1-5
	Technology       string     `gorm:"size:64" json:"technology"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionView 学生侧投影：未完成的测试不暴露参考答案与解析
type QuestionView struct {
	ID               uint       `json:"id"`
	Text             string     `json:"text"`
	IsMultipleChoice bool       `json:"isMultipleChoice"`
	Options          StringList `json:"options,omitempty"`
	Points           int        `json:"points"`
	Technology       string     `json:"technology"`

	// 仅在测试完成后填充（答案复盘）
	CorrectAnswer string  `json:"correctAnswer,omitempty"`
	Explanation   string  `json:"explanation,omitempty"`
	UserAnswer    *string `json:"userAnswer,omitempty"`
	IsCorrect     *bool   `json:"isCorrect,omitempty"`
}

// View reviewed为true时包含答案复盘字段
func (q *Question) View(reviewed bool) QuestionView {
	v := QuestionView{
		ID:               q.ID,
		Text:             q.Text,
		IsMultipleChoice: q.IsMultipleChoice,
		Options:          q.Options,
		Points:           q.Points,
		Technology:       q.Technology,
	}
	if reviewed {
		v.CorrectAnswer = q.CorrectAnswer
		v.Explanation = q.Explanation
		v.UserAnswer = q.UserAnswer
		v.IsCorrect = q.IsCorrect
	}
	return v
}
