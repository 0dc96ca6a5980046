package postgres

import (
	"strings"
	"testing"

	"go-candidate-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestFilterEmptyMatchesEverything(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterExactMatchFields(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		FirstName:   strPtr("Lina"),
		CareerLevel: strPtr(domain.CareerLevelSenior),
	})

	assert.Equal(t, " WHERE first_name = $1 AND career_level = $2", where)
	assert.Equal(t, []any{"Lina", "Senior"}, args)
}

// Zero is a legitimate value for the numeric fields and must produce a
// condition, not be dropped as "absent".
func TestFilterZeroYearsOfExperience(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		YearsOfExperience: intPtr(0),
	})

	assert.Equal(t, " WHERE years_of_experience = $1", where)
	assert.Equal(t, []any{0}, args)
}

func TestFilterZeroSalary(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		Salary: floatPtr(0),
	})

	assert.Equal(t, " WHERE salary = $1", where)
	assert.Equal(t, []any{0.0}, args)
}

func TestFilterSkillUsesArrayContainment(t *testing.T) {
	where, _ := buildCandidateFilter(domain.CandidateFilter{
		Skill: strPtr("Go"),
	})

	assert.Contains(t, where, "$1 = ANY(skills)")
}

func TestFilterKeywordGroup(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		Keyword: strPtr("engineer"),
	})

	require.Equal(t, []any{"%engineer%"}, args)

	// One OR group, case-insensitive, over every searchable field
	assert.True(t, strings.HasPrefix(where, " WHERE ("))
	assert.Equal(t, len(keywordColumns)-1, strings.Count(where, " OR "))
	for _, col := range keywordColumns {
		assert.Contains(t, where, col+" ILIKE $1")
	}
	assert.Contains(t, where, "years_of_experience::text ILIKE $1")
	assert.Contains(t, where, "salary::text ILIKE $1")
}

func TestFilterKeywordCombinedWithAnd(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		City:    strPtr("Amman"),
		Keyword: strPtr("engineer"),
	})

	assert.Equal(t, []any{"Amman", "%engineer%"}, args)
	assert.True(t, strings.HasPrefix(where, " WHERE city = $1 AND ("))
	assert.Contains(t, where, "job_major ILIKE $2")
}

func TestFilterAllFieldsPresent(t *testing.T) {
	where, args := buildCandidateFilter(domain.CandidateFilter{
		FirstName:         strPtr("Lina"),
		LastName:          strPtr("Haddad"),
		Email:             strPtr("lina.haddad@example.com"),
		CareerLevel:       strPtr(domain.CareerLevelSenior),
		JobMajor:          strPtr("Software Engineering"),
		YearsOfExperience: intPtr(8),
		DegreeType:        strPtr(domain.DegreeTypeMaster),
		Skill:             strPtr("Go"),
		Nationality:       strPtr("Jordan"),
		City:              strPtr("Amman"),
		Salary:            floatPtr(95000),
		Gender:            strPtr(domain.GenderFemale),
		Keyword:           strPtr("go"),
	})

	assert.Len(t, args, 13)
	assert.Equal(t, 12, strings.Count(where, " AND "))
}
