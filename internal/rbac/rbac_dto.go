package rbac

// CheckRequest memeriksa capability caller sendiri; owner_id opsional untuk aturan ":own".
type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
	OwnerID  string `json:"owner_id" binding:"omitempty,uuid"`
}
