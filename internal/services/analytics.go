package services

import (
	"github.com/VishvKaneria/dynamic-active-lms/internal/models"
)

type ScoreDistribution struct {
	FullMarks int `json:"full_marks"`
	Partial   int `json:"partial"`
	Zero      int `json:"zero"`
}

type ClassOverview struct {
	TotalStudents     int               `json:"total_students"`
	AverageScore      float64           `json:"average_score"`
	Highest           int               `json:"highest"`
	Lowest            int               `json:"lowest"`
	ScoreDistribution ScoreDistribution `json:"score_distribution"`
}

type QuestionAnalysis struct {
	Question        string  `json:"q"`
	Answer          string  `json:"answer"`
	CorrectRate     float64 `json:"correct_rate"`
	MostCommonWrong *string `json:"most_common_wrong"`
}

type StudentFeedback struct {
	StudentID    string   `json:"student_id"`
	Score        int      `json:"score"`
	Total        int      `json:"total"`
	AccuracyRate float64  `json:"accuracy_rate"`
	WrongAnswers []string `json:"wrong_answers"`
}

type Report struct {
	ClassOverview    ClassOverview      `json:"class_overview"`
	QuestionAnalysis []QuestionAnalysis `json:"question_analysis"`
	StudentFeedback  []StudentFeedback  `json:"student_feedback"`
}

// AnalyticsService derives class and per-question statistics from stored
// submissions. All computation is pure; reports are rebuilt on every request.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// Analyze builds the report for one quiz. When a student has several attempts
// the latest one (highest attempt number) counts for the class overview and
// per-student feedback; per-question rates are computed over every attempt.
func (s *AnalyticsService) Analyze(quiz *models.Quiz, submissions []models.Submission) Report {
	canonical := latestAttempts(submissions)

	report := Report{
		ClassOverview:    classOverview(canonical),
		QuestionAnalysis: questionAnalysis(quiz, submissions),
		StudentFeedback:  studentFeedback(quiz, canonical),
	}
	return report
}

// latestAttempts reduces submissions to one per student, keeping the order in
// which students were first seen so output stays deterministic.
func latestAttempts(submissions []models.Submission) []models.Submission {
	byStudent := make(map[string]int)
	var canonical []models.Submission
	for _, sub := range submissions {
		idx, seen := byStudent[sub.StudentID]
		if !seen {
			byStudent[sub.StudentID] = len(canonical)
			canonical = append(canonical, sub)
			continue
		}
		if sub.Attempt > canonical[idx].Attempt {
			canonical[idx] = sub
		}
	}
	return canonical
}

func classOverview(canonical []models.Submission) ClassOverview {
	overview := ClassOverview{TotalStudents: len(canonical)}
	if len(canonical) == 0 {
		return overview
	}

	sum := 0
	overview.Highest = canonical[0].Score
	overview.Lowest = canonical[0].Score
	for _, sub := range canonical {
		sum += sub.Score
		if sub.Score > overview.Highest {
			overview.Highest = sub.Score
		}
		if sub.Score < overview.Lowest {
			overview.Lowest = sub.Score
		}

		switch {
		case sub.Score == sub.Total:
			overview.ScoreDistribution.FullMarks++
		case sub.Score == 0:
			overview.ScoreDistribution.Zero++
		default:
			overview.ScoreDistribution.Partial++
		}
	}
	overview.AverageScore = float64(sum) / float64(len(canonical))
	return overview
}

func questionAnalysis(quiz *models.Quiz, submissions []models.Submission) []QuestionAnalysis {
	analysis := make([]QuestionAnalysis, 0, len(quiz.Questions))

	for i, q := range quiz.Questions {
		qa := QuestionAnalysis{Question: q.Text, Answer: q.Answer}

		correct := 0
		wrongCounts := make(map[string]int)
		var wrongOrder []string

		for _, sub := range submissions {
			answers := sub.AnswerList()
			answer := ""
			if i < len(answers) {
				answer = answers[i]
			}

			if answer != "" && answer == q.Answer {
				correct++
			} else if answer != "" {
				if _, seen := wrongCounts[answer]; !seen {
					wrongOrder = append(wrongOrder, answer)
				}
				wrongCounts[answer]++
			}
		}

		if len(submissions) > 0 {
			qa.CorrectRate = float64(correct) / float64(len(submissions)) * 100
		}

		// first-encountered answer wins ties
		best := 0
		for _, answer := range wrongOrder {
			if wrongCounts[answer] > best {
				best = wrongCounts[answer]
				a := answer
				qa.MostCommonWrong = &a
			}
		}

		analysis = append(analysis, qa)
	}
	return analysis
}

func studentFeedback(quiz *models.Quiz, canonical []models.Submission) []StudentFeedback {
	feedback := make([]StudentFeedback, 0, len(canonical))
	for _, sub := range canonical {
		fb := StudentFeedback{
			StudentID:    sub.StudentID,
			Score:        sub.Score,
			Total:        sub.Total,
			WrongAnswers: []string{},
		}
		if sub.Total > 0 {
			fb.AccuracyRate = float64(sub.Score) / float64(sub.Total) * 100
		}

		answers := sub.AnswerList()
		for i, q := range quiz.Questions {
			answer := ""
			if i < len(answers) {
				answer = answers[i]
			}
			if answer != q.Answer {
				fb.WrongAnswers = append(fb.WrongAnswers, q.Text)
			}
		}
		feedback = append(feedback, fb)
	}
	return feedback
}
