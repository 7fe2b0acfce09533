package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Technology 技术栈枚举，闭合目录
type Technology string

const (
	TechJava          Technology = "JAVA"
	TechPython        Technology = "PYTHON"
	TechGo            Technology = "GO"
	TechJavascript    Technology = "JAVASCRIPT"
	TechTypescript    Technology = "TYPESCRIPT"
	TechPHP           Technology = "PHP"
	TechSpringBoot    Technology = "SPRING_BOOT"
	TechNodeJS        Technology = "NODE_JS"
	TechReact         Technology = "REACT"
	TechAngular       Technology = "ANGULAR"
	TechVue           Technology = "VUE"
	TechDjango        Technology = "DJANGO"
	TechLaravel       Technology = "LARAVEL"
	TechFlutter       Technology = "FLUTTER"
	TechMySQL         Technology = "MYSQL"
	TechPostgreSQL    Technology = "POSTGRESQL"
	TechMongoDB       Technology = "MONGODB"
	TechRedis         Technology = "REDIS"
	TechElasticsearch Technology = "ELASTICSEARCH"
	TechDocker        Technology = "DOCKER"
	TechKubernetes    Technology = "KUBERNETES"
	TechAWS           Technology = "AWS"
	TechAzure         Technology = "AZURE"
)

// AllTechnologies 返回完整目录，顺序固定
func AllTechnologies() []Technology {
	return []Technology{
		TechJava, TechPython, TechGo, TechJavascript, TechTypescript, TechPHP,
		TechSpringBoot, TechNodeJS, TechReact, TechAngular, TechVue, TechDjango,
		TechLaravel, TechFlutter, TechMySQL, TechPostgreSQL, TechMongoDB,
		TechRedis, TechElasticsearch, TechDocker, TechKubernetes, TechAWS, TechAzure,
	}
}

var technologySet = func() map[Technology]struct{} {
	m := make(map[Technology]struct{})
	for _, t := range AllTechnologies() {
		m[t] = struct{}{}
	}
	return m
}()

func (t Technology) IsValid() bool {
	_, ok := technologySet[t]
	return ok
}

func (t Technology) String() string {
	return string(t)
}

// ParseTechnology 解析单个技术名（大小写不敏感）
func ParseTechnology(s string) (Technology, error) {
	t := Technology(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown technology: %s", s)
	}
	return t, nil
}

// ParseTechnologies 解析逗号分隔的技术列表，保留调用方顺序
func ParseTechnologies(s string) ([]Technology, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	techs := make([]Technology, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		t, err := ParseTechnology(p)
		if err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, nil
}

// TechnologyList 以JSON列存储的有序技术集合，保序去重由 Dedup 负责
type TechnologyList []Technology

// Dedup 保留首次出现的顺序，折叠重复项
func (l TechnologyList) Dedup() TechnologyList {
	seen := make(map[Technology]struct{}, len(l))
	out := make(TechnologyList, 0, len(l))
	for _, t := range l {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (l TechnologyList) Contains(t Technology) bool {
	for _, x := range l {
		if x == t {
			return true
		}
	}
	return false
}

func (l TechnologyList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *TechnologyList) Scan(value interface{}) error {
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
		return fmt.Errorf("cannot scan %T into TechnologyList", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

func (TechnologyList) GormDataType() string {
	return "json"
}
