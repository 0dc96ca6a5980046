package postgres

import (
	"fmt"
	"strings"

	"go-candidate-backend/internal/domain"
)

// keywordColumns are every searchable candidate field, cast to text where
// needed so the keyword can match numeric values and the skills array.
var keywordColumns = []string{
	"first_name",
	"last_name",
	"email",
	"career_level",
	"job_major",
	"years_of_experience::text",
	"degree_type",
	"array_to_string(skills, ' ')",
	"nationality",
	"city",
	"salary::text",
	"gender",
}

// buildCandidateFilter translates the optional search parameters into a
// WHERE clause and its arguments. Present concrete fields become
// exact-match conditions ANDed together; a keyword becomes an OR group of
// case-insensitive substring matches over every field, ANDed with the
// rest. With nothing present it returns an empty clause (full scan).
//
// Presence is pointer-based on purpose: zero is a legitimate value for
// years_of_experience and salary and must produce a condition.
func buildCandidateFilter(f domain.CandidateFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(expr string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.FirstName != nil {
		add("first_name = $%d", *f.FirstName)
	}
	if f.LastName != nil {
		add("last_name = $%d", *f.LastName)
	}
	if f.Email != nil {
		add("email = $%d", *f.Email)
	}
	if f.CareerLevel != nil {
		add("career_level = $%d", *f.CareerLevel)
	}
	if f.JobMajor != nil {
		add("job_major = $%d", *f.JobMajor)
	}
	if f.YearsOfExperience != nil {
		add("years_of_experience = $%d", *f.YearsOfExperience)
	}
	if f.DegreeType != nil {
		add("degree_type = $%d", *f.DegreeType)
	}
	if f.Skill != nil {
		add("$%d = ANY(skills)", *f.Skill)
	}
	if f.Nationality != nil {
		add("nationality = $%d", *f.Nationality)
	}
	if f.City != nil {
		add("city = $%d", *f.City)
	}
	if f.Salary != nil {
		add("salary = $%d", *f.Salary)
	}
	if f.Gender != nil {
		add("gender = $%d", *f.Gender)
	}

	if f.Keyword != nil && *f.Keyword != "" {
		args = append(args, "%"+*f.Keyword+"%")
		n := len(args)
		group := make([]string, 0, len(keywordColumns))
		for _, col := range keywordColumns {
			group = append(group, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(group, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
