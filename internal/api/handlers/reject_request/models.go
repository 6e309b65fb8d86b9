package reject_request

// RejectRequestRequest HTTP request model
type RejectRequestRequest struct {
	Note *string `json:"note,omitempty"` // Причина отклонения (опционально)
}
