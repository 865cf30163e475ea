package service

// Status tracks the lifecycle of a booked service. OnMyWay is optional:
// a scheduled service may start without the babysitter ever flagging
// departure. Completed is terminal.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusOnMyWay    Status = "on_my_way"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusOnMyWay, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// RecordStatus replaces the nullable deleted_at convention: every query
// filters on it explicitly instead of remembering to exclude tombstones.
type RecordStatus string

const (
	RecordActive      RecordStatus = "active"
	RecordSoftDeleted RecordStatus = "soft_deleted"
)

func (s RecordStatus) String() string {
	return string(s)
}
