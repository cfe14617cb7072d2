package model

// Leave represents a leave request as stored in the `leaves` table.
// LeaveID is generated by the database on insert. From and To are
// calendar dates in YYYY-MM-DD form; whether From must precede To is
// decided by the handler's validation strictness, not here. UserID
// references the requesting employee by value only.
type Leave struct {
	LeaveID          int64  `json:"leaveId"`
	From             string `json:"from"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Reason           string `json:"reason"`
	EmergencyContact string `json:"emergencyContact"`
	UserID           int64  `json:"userId"`
}
