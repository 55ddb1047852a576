package domain

// WipState classifies a column's load against its WIP limit.
type WipState string

const (
	WipSafe    WipState = "safe"
	WipWarning WipState = "warning"
	WipLimit   WipState = "limit"
)

// WipStatus reports how full a column is relative to its WIP limit.
type WipStatus struct {
	Percentage float64  `json:"percentage"`
	State      WipState `json:"state"`
}

// WipStatus evaluates the column's task count against its optional limit.
// Columns without a limit are always safe at 0%. Otherwise the state is
// "limit" at or above 100%, "warning" at or above 80%, and "safe" below.
// The limit is advisory: the board never blocks a mutation because of it.
func (c Column) WipStatus() WipStatus {
	if c.MaxTasks == nil {
		return WipStatus{Percentage: 0, State: WipSafe}
	}
	percentage := float64(len(c.TaskIDs)) / float64(*c.MaxTasks) * 100
	switch {
	case percentage >= 100:
		return WipStatus{Percentage: percentage, State: WipLimit}
	case percentage >= 80:
		return WipStatus{Percentage: percentage, State: WipWarning}
	default:
		return WipStatus{Percentage: percentage, State: WipSafe}
	}
}
