package services

import "agazian/models"

// badgeThreshold maps a point total to the badge it unlocks
type badgeThreshold struct {
	Points int
	Name   string
}

// badgeThresholds is ordered ascending; a badge is earned once the learner's
// points in a course reach the threshold and is never removed afterwards.
var badgeThresholds = []badgeThreshold{
	{Points: 500, Name: models.BadgeScholar},
	{Points: 1000, Name: models.BadgeMaster},
}

// BadgesFor returns every badge unlocked at the given point total
func BadgesFor(points int) []string {
	var earned []string
	for _, t := range badgeThresholds {
		if points >= t.Points {
			earned = append(earned, t.Name)
		}
	}
	return earned
}

// awardBadges appends newly qualifying badges to the progress record,
// preserving any badge already present
func awardBadges(prog *models.UserProgress) {
	for _, name := range BadgesFor(prog.Points) {
		if !prog.HasBadge(name) {
			prog.Badges = append(prog.Badges, name)
		}
	}
}
