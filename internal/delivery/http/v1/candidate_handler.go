package v1

import (
	"net/http"
	"strconv"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidate")
	{
		candidates.POST("", handler.Create)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}

	protected.GET("/all-candidates", handler.Search)
	protected.GET("/generate-report", handler.GenerateReport)
}

// Create godoc
// @Summary      Create candidate
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CreateCandidateInput  true  "Candidate details"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidate [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CreateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Get godoc
// @Summary      Get candidate by id
// @Tags         candidate
// @Produce      json
// @Param        id   path      string  true  "Candidate UUID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidate/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Update godoc
// @Summary      Update candidate
// @Description  Partial update; absent fields are left unchanged
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        id         path      string  true  "Candidate UUID"
// @Param        candidate  body      domain.UpdateCandidateInput  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidate/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	var input domain.UpdateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete candidate
// @Tags         candidate
// @Param        id  path  string  true  "Candidate UUID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /candidate/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Search godoc
// @Summary      List candidates
// @Description  Filter by exact-match fields and/or a free-text keyword; no parameters returns everything
// @Tags         all_candidates
// @Produce      json
// @Param        first_name           query  string  false  "First name"
// @Param        last_name            query  string  false  "Last name"
// @Param        email                query  string  false  "Email"
// @Param        career_level         query  string  false  "Career level"
// @Param        job_major            query  string  false  "Job major"
// @Param        years_of_experience  query  int     false  "Years of experience"
// @Param        degree_type          query  string  false  "Degree type"
// @Param        skills               query  string  false  "Skill"
// @Param        nationality          query  string  false  "Nationality"
// @Param        city                 query  string  false  "City"
// @Param        salary               query  number  false  "Salary"
// @Param        gender               query  string  false  "Gender"
// @Param        keyword              query  string  false  "Free-text search over all fields"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Router       /all-candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) Search(c *gin.Context) {
	filter, err := parseCandidateFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidates, err := h.candidateUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// GenerateReport godoc
// @Summary      Candidate CSV report
// @Description  Download all candidates as a CSV file
// @Tags         generate_report
// @Produce      text/csv
// @Success      200  {string}  string  "CSV file with all candidates"
// @Router       /generate-report [get]
// @Security     BearerAuth
func (h *CandidateHandler) GenerateReport(c *gin.Context) {
	report, err := h.candidateUC.GenerateReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=candidates.csv")
	c.Data(http.StatusOK, "text/csv", report)
}

func parseCandidateFilter(c *gin.Context) (domain.CandidateFilter, error) {
	var f domain.CandidateFilter

	strParam := func(name string) *string {
		if v, ok := c.GetQuery(name); ok && v != "" {
			return &v
		}
		return nil
	}

	f.FirstName = strParam("first_name")
	f.LastName = strParam("last_name")
	f.Email = strParam("email")
	f.CareerLevel = strParam("career_level")
	f.JobMajor = strParam("job_major")
	f.DegreeType = strParam("degree_type")
	f.Skill = strParam("skills")
	f.Nationality = strParam("nationality")
	f.City = strParam("city")
	f.Gender = strParam("gender")
	f.Keyword = strParam("keyword")

	// Numeric parameters distinguish "0" from absent
	if v, ok := c.GetQuery("years_of_experience"); ok && v != "" {
		years, err := strconv.Atoi(v)
		if err != nil || years < 0 {
			return f, apperror.BadRequest("years_of_experience must be a non-negative integer")
		}
		f.YearsOfExperience = &years
	}
	if v, ok := c.GetQuery("salary"); ok && v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil || salary < 0 {
			return f, apperror.BadRequest("salary must be a non-negative number")
		}
		f.Salary = &salary
	}

	return f, nil
}
