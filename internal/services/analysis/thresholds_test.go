package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MeanRev/internal/domain/models"
)

func TestGradeForStepBoundaries(t *testing.T) {
	p := DefaultPolicy

	cases := []struct {
		name       string
		confidence float64
		want       models.InvestmentGrade
	}{
		{"at A+ step", 85, models.GradeAPlus},
		{"just below A+ step", 84.9, models.GradeA},
		{"at A step", 75, models.GradeA},
		{"just below A step", 74.9, models.GradeBPlus},
		{"at B+ step", 65, models.GradeBPlus},
		{"just below B+ step", 64.9, models.GradeB},
		{"at B step", 50, models.GradeB},
		{"just below B step", 49.9, models.GradeC},
		{"at C step", 30, models.GradeC},
		{"just below C step", 29.9, models.GradeD},
		{"zero", 0, models.GradeD},
		{"perfect score", 100, models.GradeAPlus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.GradeFor(tc.confidence))
		})
	}
}
