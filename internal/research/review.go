package research

import (
	"fmt"

	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// ApprovedIdeas returns the indexes of ideas a reviewer approved for production.
// An unknown status means the file was edited incorrectly and is an error.
func ApprovedIdeas(ideas []models.ScoredIdea) ([]int, error) {
	approved := []int{}
	for i, idea := range ideas {
		if !idea.Status.IsValid() {
			return nil, fmt.Errorf("idea %d (%s) has unknown status %q", i+1, idea.Keyword, idea.Status)
		}
		if idea.Status == models.IdeaApproved {
			approved = append(approved, i)
		}
	}
	return approved, nil
}
