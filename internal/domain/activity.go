package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityAction names an entry in an issue's history.
type ActivityAction string

const (
	ActivityReported      ActivityAction = "reported"
	ActivityClaimed       ActivityAction = "claimed"
	ActivityStatusChanged ActivityAction = "status_changed"
)

func (a ActivityAction) String() string { return string(a) }

// IssueActivity is one append-only history record of an issue.
// Changes holds action-specific details such as the from/to status.
type IssueActivity struct {
	ID        uuid.UUID
	IssueID   uuid.UUID
	ActorID   uuid.UUID
	Action    ActivityAction
	Changes   map[string]any
	CreatedAt time.Time
}

// NewTransitionActivity records a status change from -> i.Status made by actor.
func NewTransitionActivity(i *Issue, actor uuid.UUID, from IssueStatus) IssueActivity {
	action := ActivityStatusChanged
	changes := map[string]any{"from": from.String(), "to": i.Status.String()}
	if i.Status == StatusUnderReview && from == StatusReported {
		action = ActivityClaimed
		changes["assignedTo"] = actor.String()
	}
	return IssueActivity{
		ID:        uuid.New(),
		IssueID:   i.ID,
		ActorID:   actor,
		Action:    action,
		Changes:   changes,
		CreatedAt: i.UpdatedAt,
	}
}
