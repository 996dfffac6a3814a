package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick personal maternity paternity"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type DecideLeaveRequest struct {
	Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	RejectionReason string `json:"rejection_reason" binding:"max=1000"`
}

type SetBalanceRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick personal maternity paternity"`
	Balance   *int   `json:"balance" binding:"required,min=0"`
}

// ListQuery adalah query string GET /leaves dan GET /leaves/export.
type ListQuery struct {
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	LeaveType string `form:"leave_type" binding:"omitempty,oneof=annual sick personal maternity paternity"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	NumberOfDays    int     `json:"number_of_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type BalanceItem struct {
	LeaveType string `json:"leave_type"`
	Balance   int    `json:"balance"`
	Taken     int    `json:"taken"`
	Available int    `json:"available"`
}

type BalanceResponse struct {
	UserID   string        `json:"user_id"`
	Balances []BalanceItem `json:"balances"`
}

type ReconcileItem struct {
	LeaveType    string `json:"leave_type"`
	Taken        int    `json:"taken"`
	ApprovedDays int    `json:"approved_days"`
	LedgerDays   int    `json:"ledger_days"`
	Drift        int    `json:"drift"`
}

type ReconcileResponse struct {
	UserID     string          `json:"user_id"`
	Consistent bool            `json:"consistent"`
	Items      []ReconcileItem `json:"items"`
}
