package service

import (
	"pfe_service/internal/model"
)

// QuestionBankService 离线兜底题库：按技术键控的固定问答表，生成失败时替代AI产出
type QuestionBankService struct{}

func NewQuestionBankService() *QuestionBankService {
	return &QuestionBankService{}
}

const (
	fallbackTechQuestionLimit = 4
	fallbackTotalQuestions    = 5
)

// Fallback 按调用方给定顺序取各技术的固定题对，不足5题以通用题补齐，超出截断。
// 同一入参恒产出同一题目集合，不依赖外部状态。
func (s *QuestionBankService) Fallback(technologies []model.Technology) []model.Question {
	questions := make([]model.Question, 0, fallbackTotalQuestions)

	for _, tech := range technologies {
		pair, ok := bankQuestions(tech)
		if !ok {
			continue
		}
		questions = append(questions, pair...)
		if len(questions) >= fallbackTechQuestionLimit {
			break
		}
	}

	for _, g := range genericQuestions() {
		if len(questions) >= fallbackTotalQuestions {
			break
		}
		questions = append(questions, g)
	}

	if len(questions) > fallbackTotalQuestions {
		questions = questions[:fallbackTotalQuestions]
	}
	return questions
}

// bankQuestions 每项技术两道题：一道开放问答，一道四选一
func bankQuestions(tech model.Technology) ([]model.Question, bool) {
	switch tech {
	case model.TechJava:
		return []model.Question{
			{
				Text:             "What is the difference between '==' and '.equals()' in Java?",
				IsMultipleChoice: false,
				CorrectAnswer:    "'==' compares object references (memory addresses), while '.equals()' compares the content/values of objects.",
				Explanation:      "In Java, '==' is used to compare primitive types or to check if two references point to the same object. The '.equals()' method is used to compare the contents of objects. For example, two different String objects with the same characters would return true with .equals() but false with ==.",
				Points:           3,
				Technology:       string(model.TechJava),
			},
			{
				Text:             "Which of the following is NOT a feature of Java?",
				IsMultipleChoice: true,
				Options: model.StringList{
					"Platform independence",
					"Automatic memory management",
					"Multiple inheritance of classes",
					"Object-oriented programming",
				},
				CorrectAnswer: "Multiple inheritance of classes",
				Explanation:   "Java does not support multiple inheritance of classes to avoid the 'diamond problem'. However, it does support multiple inheritance of interfaces through the implements keyword.",
				Points:        2,
				Technology:    string(model.TechJava),
			},
		}, true
	case model.TechJavascript, model.TechTypescript:
		return []model.Question{
			{
				Text:             "What is the difference between 'let', 'const', and 'var' in JavaScript?",
				IsMultipleChoice: false,
				CorrectAnswer:    "'var' is function-scoped and can be redeclared, 'let' is block-scoped and can be reassigned but not redeclared, 'const' is block-scoped and cannot be reassigned or redeclared.",
				Explanation:      "'var' declarations are globally or function scoped and can be redeclared and updated. 'let' declarations are block scoped and can be updated but not redeclared. 'const' declarations are block scoped and cannot be updated or redeclared.",
				Points:           3,
				Technology:       string(model.TechJavascript),
			},
			{
				Text:             "Which of the following is true about closures in JavaScript?",
				IsMultipleChoice: true,
				Options: model.StringList{
					"Closures can only access global variables",
					"Closures allow a function to access variables from an outer function after the outer function has returned",
					"Closures are only available in ES6 and later",
					"Closures prevent memory leaks in all cases",
				},
				CorrectAnswer: "Closures allow a function to access variables from an outer function after the outer function has returned",
				Explanation:   "A closure is the combination of a function and the lexical environment within which that function was declared. This allows the function to access variables from its outer scope even after the outer function has returned.",
				Points:        4,
				Technology:    string(model.TechJavascript),
			},
		}, true
	case model.TechReact:
		return []model.Question{
			{
				Text:             "What is the purpose of React's virtual DOM?",
				IsMultipleChoice: false,
				CorrectAnswer:    "The virtual DOM is a lightweight copy of the actual DOM that React uses to improve performance by minimizing direct DOM manipulations.",
				Explanation:      "React creates a virtual representation of the UI in memory (virtual DOM), which it uses to determine what changes need to be made to the actual DOM. This approach is more efficient than directly manipulating the DOM for every state change.",
				Points:           3,
				Technology:       string(model.TechReact),
			},
			{
				Text:             "Which hook would you use to perform side effects in a functional component?",
				IsMultipleChoice: true,
				Options: model.StringList{
					"useState",
					"useEffect",
					"useContext",
					"useReducer",
				},
				CorrectAnswer: "useEffect",
				Explanation:   "The useEffect hook is used to perform side effects in functional components. Side effects include data fetching, subscriptions, manual DOM manipulations, and other operations that affect components outside the current render cycle.",
				Points:        2,
				Technology:    string(model.TechReact),
			},
		}, true
	case model.TechSpringBoot:
		return []model.Question{
			{
				Text:             "What is the purpose of the @Autowired annotation in Spring?",
				IsMultipleChoice: false,
				CorrectAnswer:    "@Autowired is used for automatic dependency injection, allowing Spring to resolve and inject collaborating beans into your bean.",
				Explanation:      "The @Autowired annotation in Spring is used to automatically inject dependencies. It can be applied to fields, setter methods, or constructors. Spring will look for a matching bean definition and wire it in at runtime.",
				Points:           3,
				Technology:       string(model.TechSpringBoot),
			},
			{
				Text:             "Which of the following is NOT a feature of Spring Boot?",
				IsMultipleChoice: true,
				Options: model.StringList{
					"Auto-configuration",
					"Embedded server support",
					"Manual XML configuration requirement",
					"Production-ready features",
				},
				CorrectAnswer: "Manual XML configuration requirement",
				Explanation:   "Spring Boot aims to minimize configuration, especially XML configuration. It uses auto-configuration, which automatically configures your application based on the dependencies you have added. XML configuration is optional, not required.",
				Points:        2,
				Technology:    string(model.TechSpringBoot),
			},
		}, true
	}
	return nil, false
}

func genericQuestions() []model.Question {
	return []model.Question{
		{
			Text:             "What is the time complexity of binary search?",
			IsMultipleChoice: true,
			Options: model.StringList{
				"O(1)",
				"O(log n)",
				"O(n)",
				"O(n²)",
			},
			CorrectAnswer: "O(log n)",
			Explanation:   "Binary search has a time complexity of O(log n) because it repeatedly divides the search interval in half. If the array has n elements, the algorithm takes at most log₂(n) steps to find the target element.",
			Points:        3,
			Technology:    "GENERAL",
		},
		{
			Text:             "What is the difference between a stack and a queue?",
			IsMultipleChoice: false,
			CorrectAnswer:    "A stack follows Last-In-First-Out (LIFO) order, while a queue follows First-In-First-Out (FIFO) order.",
			Explanation:      "In a stack, elements are added and removed from the same end (like a stack of plates), following LIFO order. In a queue, elements are added at one end and removed from the other (like a line of people), following FIFO order.",
			Points:           2,
			Technology:       "GENERAL",
		},
	}
}
