package service

import (
	"errors"
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

func newCourseService(t *testing.T) (*CourseService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewQuizAttemptRepository(db),
		db,
	)
	return svc, db
}

// createTestCourse builds a 2-module course worth 100 coins. Each module
// has two questions whose correct answers are "A" and "B".
func createTestCourse(t *testing.T, db *gorm.DB) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:      "Go for Gophers",
		CoinReward: 100,
		Modules: []model.CourseModule{
			{
				Title: "Basics",
				Order: 1,
				Questions: []model.Question{
					{Question: "Q1", Options: []string{"A", "B", "C"}, CorrectAnswer: "A", Order: 1},
					{Question: "Q2", Options: []string{"A", "B", "C"}, CorrectAnswer: "B", Order: 2},
				},
			},
			{
				Title: "Concurrency",
				Order: 2,
				Questions: []model.Question{
					{Question: "Q1", Options: []string{"A", "B", "C"}, CorrectAnswer: "A", Order: 1},
					{Question: "Q2", Options: []string{"A", "B", "C"}, CorrectAnswer: "B", Order: 2},
				},
			},
		},
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func TestEnrollIdempotent(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "dave", 0)

	first, err := svc.Enroll(user.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	second, err := svc.Enroll(user.ID, course.ID)
	if err != nil {
		t.Fatalf("second enroll failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("second enroll created a new record: %q vs %q", first.ID, second.ID)
	}

	enrollments, err := svc.ListEnrollments(user.ID)
	if err != nil {
		t.Fatalf("list enrollments: %v", err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("enrollment count = %d, want 1", len(enrollments))
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, db := newCourseService(t)
	user := createTestUser(t, db, "erin", 0)

	if _, err := svc.Enroll(user.ID, "no-such-course"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("error = %v, want ErrCourseNotFound", err)
	}
}

func TestQuizScoring(t *testing.T) {
	questions := []model.Question{
		{CorrectAnswer: "A"},
		{CorrectAnswer: "B"},
		{CorrectAnswer: "C"},
		{CorrectAnswer: "D"},
	}

	if got := scoreQuiz(questions, []string{"A", "B", "C", "D"}); got != 100 {
		t.Fatalf("all correct = %v, want 100", got)
	}
	if got := scoreQuiz(questions, []string{"D", "C", "B", "A"}); got != 0 {
		t.Fatalf("all wrong = %v, want 0", got)
	}
	if got := scoreQuiz(questions, []string{"A", "B"}); got != 50 {
		t.Fatalf("half answered = %v, want 50", got)
	}
	if got := scoreQuiz(questions, []string{"A", "B", "C", "D", "A", "A"}); got != 100 {
		t.Fatalf("extra answers = %v, want 100", got)
	}
	if got := scoreQuiz(nil, []string{"A"}); got != 0 {
		t.Fatalf("no questions = %v, want 0", got)
	}
}

func TestSubmitQuizUnknownModule(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "frank", 0)

	_, err := svc.SubmitQuiz(user.ID, QuizSubmission{
		ModuleID: "no-such-module",
		CourseID: course.ID,
		Answers:  []string{"A", "B"},
	})
	if !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("error = %v, want ErrModuleNotFound", err)
	}
}

func TestSubmitQuizFailedAttemptPaysNothing(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "grace", 0)

	if _, err := svc.Enroll(user.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	result, err := svc.SubmitQuiz(user.ID, QuizSubmission{
		ModuleID: course.Modules[0].ID,
		CourseID: course.ID,
		Answers:  []string{"B", "A"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed || result.Score != 0 || result.CoinsEarned != 0 {
		t.Fatalf("failed attempt result = %+v", result)
	}
	if got := reloadUser(t, db, user.ID); got.Coins != 0 {
		t.Fatalf("coins after fail = %d, want 0", got.Coins)
	}

	var attempts int64
	db.Model(&model.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&attempts)
	if attempts != 1 {
		t.Fatalf("attempt count = %d, want 1", attempts)
	}
}

func TestCourseCompletionPaysDeclaredReward(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "heidi", 0)

	if _, err := svc.Enroll(user.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	first, err := svc.SubmitQuiz(user.ID, QuizSubmission{
		ModuleID: course.Modules[0].ID,
		CourseID: course.ID,
		Answers:  []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("first module: %v", err)
	}
	if !first.Passed || first.CoinsEarned != CoinsPerModule {
		t.Fatalf("first module result = %+v", first)
	}

	enrollment, err := repository.NewEnrollmentRepository(db).FindByUserAndCourse(user.ID, course.ID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if enrollment.Progress != 50 {
		t.Fatalf("progress after one of two modules = %v, want 50", enrollment.Progress)
	}

	second, err := svc.SubmitQuiz(user.ID, QuizSubmission{
		ModuleID: course.Modules[1].ID,
		CourseID: course.ID,
		Answers:  []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("second module: %v", err)
	}
	if !second.Passed {
		t.Fatalf("second module result = %+v", second)
	}

	enrollment, err = repository.NewEnrollmentRepository(db).FindByUserAndCourse(user.ID, course.ID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if enrollment.Progress != 100 {
		t.Fatalf("final progress = %v, want 100", enrollment.Progress)
	}
	if enrollment.CoinsEarned != course.CoinReward {
		t.Fatalf("enrollment coins = %d, want the declared reward %d", enrollment.CoinsEarned, course.CoinReward)
	}

	got := reloadUser(t, db, user.ID)
	if got.Coins != course.CoinReward {
		t.Fatalf("user coins = %d, want %d", got.Coins, course.CoinReward)
	}
	if got.TotalCoursesCompleted != 1 {
		t.Fatalf("completed courses = %d, want 1", got.TotalCoursesCompleted)
	}
}

func TestRepassCompletedModuleNoDoubleCredit(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "ivan", 0)

	if _, err := svc.Enroll(user.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	submission := QuizSubmission{
		ModuleID: course.Modules[0].ID,
		CourseID: course.ID,
		Answers:  []string{"A", "B"},
	}
	if _, err := svc.SubmitQuiz(user.ID, submission); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	repeat, err := svc.SubmitQuiz(user.ID, submission)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if repeat.CoinsEarned != 0 {
		t.Fatalf("repeat pass paid %d coins, want 0", repeat.CoinsEarned)
	}

	if got := reloadUser(t, db, user.ID); got.Coins != CoinsPerModule {
		t.Fatalf("coins after repeat = %d, want %d", got.Coins, CoinsPerModule)
	}

	enrollment, err := repository.NewEnrollmentRepository(db).FindByUserAndCourse(user.ID, course.ID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if len(enrollment.CompletedModules) != 1 {
		t.Fatalf("completed modules = %v, want one entry", enrollment.CompletedModules)
	}

	attempts, err := svc.ListAttempts(user.ID)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempt log = %d rows, want 2", len(attempts))
	}
	for _, a := range attempts {
		if !a.Passed || a.Score != 100 {
			t.Fatalf("attempt = %+v", a)
		}
	}
}

func TestSubmitQuizWithoutEnrollmentOnlyLogs(t *testing.T) {
	svc, db := newCourseService(t)
	course := createTestCourse(t, db)
	user := createTestUser(t, db, "judy", 0)

	result, err := svc.SubmitQuiz(user.ID, QuizSubmission{
		ModuleID: course.Modules[0].ID,
		CourseID: course.ID,
		Answers:  []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Passed || result.CoinsEarned != 0 {
		t.Fatalf("unenrolled pass result = %+v", result)
	}
	if got := reloadUser(t, db, user.ID); got.Coins != 0 {
		t.Fatalf("coins = %d, want 0", got.Coins)
	}
}

func TestModuleCreditCappedByCourseReward(t *testing.T) {
	svc, db := newCourseService(t)
	user := createTestUser(t, db, "kate", 0)

	// 30-coin course with two modules: flat per-module credit would
	// overshoot, so the second module pays only the remainder
	course := &model.Course{
		Title:      "Short Course",
		CoinReward: 30,
		Modules: []model.CourseModule{
			{Title: "One", Order: 1, Questions: []model.Question{{Question: "Q", Options: []string{"A", "B"}, CorrectAnswer: "A", Order: 1}}},
			{Title: "Two", Order: 2, Questions: []model.Question{{Question: "Q", Options: []string{"A", "B"}, CorrectAnswer: "A", Order: 1}}},
		},
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	if _, err := svc.Enroll(user.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	first, err := svc.SubmitQuiz(user.ID, QuizSubmission{ModuleID: course.Modules[0].ID, CourseID: course.ID, Answers: []string{"A"}})
	if err != nil {
		t.Fatalf("first module: %v", err)
	}
	if first.CoinsEarned != CoinsPerModule {
		t.Fatalf("first module paid %d, want %d", first.CoinsEarned, CoinsPerModule)
	}

	second, err := svc.SubmitQuiz(user.ID, QuizSubmission{ModuleID: course.Modules[1].ID, CourseID: course.ID, Answers: []string{"A"}})
	if err != nil {
		t.Fatalf("second module: %v", err)
	}
	if second.CoinsEarned != 10 {
		t.Fatalf("second module paid %d, want the 10-coin remainder", second.CoinsEarned)
	}

	if got := reloadUser(t, db, user.ID); got.Coins != course.CoinReward {
		t.Fatalf("total payout = %d, want %d", got.Coins, course.CoinReward)
	}
}
