package services

import (
	"testing"

	"agazian/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgesFor(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   []string
	}{
		{name: "zero", points: 0, want: nil},
		{name: "just below scholar", points: 499, want: nil},
		{name: "scholar exactly", points: 500, want: []string{models.BadgeScholar}},
		{name: "between thresholds", points: 999, want: []string{models.BadgeScholar}},
		{name: "master exactly", points: 1000, want: []string{models.BadgeScholar, models.BadgeMaster}},
		{name: "far past master", points: 5000, want: []string{models.BadgeScholar, models.BadgeMaster}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BadgesFor(tt.points))
		})
	}
}

func TestAwardBadgesDoesNotDuplicate(t *testing.T) {
	prog := &models.UserProgress{
		Points: 1200,
		Badges: []string{models.BadgeScholar},
	}
	awardBadges(prog)
	assert.Equal(t, []string{models.BadgeScholar, models.BadgeMaster}, []string(prog.Badges))

	awardBadges(prog)
	assert.Len(t, []string(prog.Badges), 2)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, models.LevelFor(0))
	assert.Equal(t, 1, models.LevelFor(99))
	assert.Equal(t, 2, models.LevelFor(100))
	assert.Equal(t, 5, models.LevelFor(499))
	assert.Equal(t, 11, models.LevelFor(1000))
}
