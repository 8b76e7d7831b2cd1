package controller

import (
	"errors"
	"peerlearn_backend/internal/service"
	"peerlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AuthService   *service.AuthService
}

func NewCourseController(courseService *service.CourseService, authService *service.AuthService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		AuthService:   authService,
	}
}

// ListCourses godoc
// @Summary List the course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get one course with its modules and quizzes
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Idempotent: a second enrollment returns the existing record
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.CourseService.Enroll(user.ID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, enrollment)
}

// ListEnrollments godoc
// @Summary List the caller's enrollments
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 401 {object} util.Response
// @Router /enrollments [get]
func (c *CourseController) ListEnrollments(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollments, err := c.CourseService.ListEnrollments(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

// ListQuizAttempts godoc
// @Summary List the caller's quiz attempt history
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Failure 401 {object} util.Response
// @Router /quizzes/attempts [get]
func (c *CourseController) ListQuizAttempts(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.CourseService.ListAttempts(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}

// swagger:model QuizAnswer
type QuizAnswer struct {
	Answer string `json:"answer"`
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	ModuleID string       `json:"module_id" binding:"required"`
	CourseID string       `json:"course_id" binding:"required"`
	Answers  []QuizAnswer `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for a module
// @Description Grades by position against the module's questions; pass threshold is 70
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "Quiz submission"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/submit [post]
func (c *CourseController) SubmitQuiz(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answers := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, a.Answer)
	}

	result, err := c.CourseService.SubmitQuiz(user.ID, service.QuizSubmission{
		ModuleID: req.ModuleID,
		CourseID: req.CourseID,
		Answers:  answers,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrModuleNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
