package holiday

type CreateHolidayRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Name        string  `json:"name" binding:"required,max=150"`
	Description *string `json:"description"`
	IsRecurring bool    `json:"is_recurring"`
}

type BulkCopyRequest struct {
	FromYear int `json:"from_year" binding:"required,min=1900,max=9999"`
	ToYear   int `json:"to_year" binding:"required,min=1900,max=9999"`
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
}

type BulkCopyFailure struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type BulkCopyResponse struct {
	Created []HolidayResponse `json:"created"`
	Failed  []BulkCopyFailure `json:"failed"`
}

func toResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Date:        h.Date.Format(DateLayout),
		Name:        h.Name,
		Description: h.Description,
		IsRecurring: h.IsRecurring,
	}
}
