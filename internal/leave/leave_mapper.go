package leave

import "time"

func toLeaveResponse(l *Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		UserID:          l.UserID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(DateLayout),
		EndDate:         l.EndDate.Format(DateLayout),
		NumberOfDays:    l.NumberOfDays,
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
		ApprovedAt:      formatTime(l.ApprovedAt),
		CancelledAt:     formatTime(l.CancelledAt),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func toBalanceResponse(userID string, balances []Balance) BalanceResponse {
	byType := make(map[string]Balance, len(balances))
	for _, b := range balances {
		byType[b.LeaveType] = b
	}

	resp := BalanceResponse{UserID: userID, Balances: make([]BalanceItem, 0, len(Types))}
	for _, t := range Types {
		b, ok := byType[t]
		if !ok {
			continue
		}
		resp.Balances = append(resp.Balances, BalanceItem{
			LeaveType: t,
			Balance:   b.Balance,
			Taken:     b.Taken,
			Available: b.Available(),
		})
	}
	return resp
}
